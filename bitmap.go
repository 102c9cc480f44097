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

// Bitmap holds, for one 64-byte chunk of a record, one bit per byte for
// each structural character. Bit k of a field is set iff the input byte
// at (chunk base + k) equals that field's character; bit 0 corresponds to
// the lowest-address byte of the chunk.
type Bitmap struct {
	Backslash    uint64
	Quote        uint64
	Colon        uint64
	Comma        uint64
	LeftBrace    uint64
	RightBrace   uint64
	LeftBracket  uint64
	RightBracket uint64
}

// leftMask returns the bits that open a nesting scope: '{' or '['.
func (b *Bitmap) leftMask() uint64 {
	return b.LeftBrace | b.LeftBracket
}

// rightMask returns the bits that close a nesting scope: '}' or ']'.
func (b *Bitmap) rightMask() uint64 {
	return b.RightBrace | b.RightBracket
}
