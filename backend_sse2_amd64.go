//+build !noasm
//+build !appengine

/*
 * MinIO Cloud Storage, (C) 2020 MinIO, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package mison

import "unsafe"

// SSE2Backend compares 64-byte chunks against the eight structural
// characters four 16-byte lanes at a time (PCMPEQB + PMOVMSKB),
// concatenating the four 16-bit movemasks into one 64-bit Bitmap field
// per character. Requires cpuid.CPU.Supports(cpuid.SSE2); callers on
// amd64 without SSE2 should fall back to ScalarBackend (in practice every
// amd64 CPU has SSE2, so this is effectively unconditional on that arch).
type SSE2Backend struct{}

var sse2Patterns = buildLanePatterns(16)

//go:noescape
func sse2Bitmap(s unsafe.Pointer, patterns unsafe.Pointer, out unsafe.Pointer)

// Full implements Backend.
func (SSE2Backend) Full(s []byte, o int) Bitmap {
	var bm Bitmap
	sse2Bitmap(unsafe.Pointer(&s[o]), unsafe.Pointer(&sse2Patterns[0]), unsafe.Pointer(&bm))
	return bm
}

// Partial implements Backend.
func (SSE2Backend) Partial(s []byte, o int) Bitmap {
	var buf [64]byte
	copy(buf[:], s[o:])
	var bm Bitmap
	sse2Bitmap(unsafe.Pointer(&buf[0]), unsafe.Pointer(&sse2Patterns[0]), unsafe.Pointer(&bm))
	return bm
}
