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

// AVX2Backend compares 64-byte chunks against the eight structural
// characters two 32-byte lanes at a time (VPCMPEQB + VPMOVMSKB),
// concatenating the two 32-bit movemasks into one 64-bit Bitmap field per
// character. Requires cpuid.CPU.Supports(cpuid.AVX2).
type AVX2Backend struct{}

var avx2Patterns = buildLanePatterns(32)

//go:noescape
func avx2Bitmap(s unsafe.Pointer, patterns unsafe.Pointer, out unsafe.Pointer)

// Full implements Backend.
func (AVX2Backend) Full(s []byte, o int) Bitmap {
	var bm Bitmap
	avx2Bitmap(unsafe.Pointer(&s[o]), unsafe.Pointer(&avx2Patterns[0]), unsafe.Pointer(&bm))
	return bm
}

// Partial implements Backend.
func (AVX2Backend) Partial(s []byte, o int) Bitmap {
	var buf [64]byte
	copy(buf[:], s[o:])
	var bm Bitmap
	avx2Bitmap(unsafe.Pointer(&buf[0]), unsafe.Pointer(&avx2Patterns[0]), unsafe.Pointer(&bm))
	return bm
}
