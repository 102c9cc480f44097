//go:build !amd64
// +build !amd64

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

// DefaultBackend returns the portable scalar implementation; non-amd64
// architectures carry no assembly routines in this package.
func DefaultBackend() Backend {
	return ScalarBackend{}
}

// SupportedBackends reports the names of the Backend implementations
// available on the running architecture.
func SupportedBackends() []string {
	return []string{"scalar"}
}
