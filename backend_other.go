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

// SSE2Backend and AVX2Backend have no assembly routines outside amd64;
// both names resolve to the portable scalar implementation so callers can
// request either one uniformly across architectures.
type SSE2Backend = ScalarBackend

type AVX2Backend = ScalarBackend
