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

import "github.com/klauspost/cpuid/v2"

// DefaultBackend picks the fastest Backend the running CPU supports,
// preferring AVX2, then SSE2, then the portable scalar implementation.
func DefaultBackend() Backend {
	switch {
	case cpuid.CPU.Supports(cpuid.AVX2):
		return AVX2Backend{}
	case cpuid.CPU.Supports(cpuid.SSE2):
		return SSE2Backend{}
	default:
		return ScalarBackend{}
	}
}

// SupportedBackends reports the names of the Backend implementations the
// running CPU supports: "scalar" first, then "sse2" and "avx2" when
// available (the reverse of DefaultBackend's preference).
func SupportedBackends() []string {
	names := []string{"scalar"}
	if cpuid.CPU.Supports(cpuid.SSE2) {
		names = append(names, "sse2")
	}
	if cpuid.CPU.Supports(cpuid.AVX2) {
		names = append(names, "avx2")
	}
	return names
}
