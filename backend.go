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

// Backend produces structural-character Bitmaps for 64-byte windows of a
// record. Implementations are stateless after construction and safely
// shared by reference across goroutines; only the narrow two-method
// contract below is assumed by the rest of the package.
type Backend interface {
	// Full returns the Bitmap for the 64-byte window starting at offset o.
	// The caller guarantees o+64 <= len(s).
	Full(s []byte, o int) Bitmap

	// Partial returns the Bitmap for the window starting at offset o when
	// o+64 may exceed len(s). Bytes beyond len(s) are treated as zero,
	// which never matches a structural character.
	Partial(s []byte, o int) Bitmap
}
