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

// structuralChars lists the eight structural characters in Bitmap field
// order: Backslash, Quote, Colon, Comma, LeftBrace, RightBrace,
// LeftBracket, RightBracket.
var structuralChars = [8]byte{'\\', '"', ':', ',', '{', '}', '[', ']'}

// buildLanePatterns returns one contiguous buffer holding, for each of the
// eight structural characters (in order), a lane-width run of that
// character's byte -- the splat vectors the SIMD backends compare each
// input lane against. The asm routines index into this buffer with fixed
// compile-time offsets (laneWidth*k), so the layout must stay flat and
// contiguous.
func buildLanePatterns(laneWidth int) []byte {
	p := make([]byte, 8*laneWidth)
	for i, c := range structuralChars {
		for j := 0; j < laneWidth; j++ {
			p[i*laneWidth+j] = c
		}
	}
	return p
}
