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

import "math/bits"

// StructuralIndex is the output of IndexBuilder.Build: the raw structural
// bitmaps for the whole record plus, for each nesting level up to the
// builder's configured depth, a colon/comma bitmap restricted to the
// positions that belong directly to a field at that level.
//
// A StructuralIndex borrows record; it does not copy it, and every
// position it returns is a byte offset into that same slice.
type StructuralIndex struct {
	record  []byte
	bitmaps []Bitmap
	bColon  [][]uint64
	bComma  [][]uint64
}

// Record returns the byte slice this index was built over.
func (x *StructuralIndex) Record() []byte { return x.record }

// ColonPositions returns the offsets of every colon at the given nesting
// level whose position falls in [begin, end). The second return value is
// false if level is not below the builder's configured depth.
func (x *StructuralIndex) ColonPositions(begin, end, level int) ([]int, bool) {
	if level >= len(x.bColon) {
		return nil, false
	}
	return generatePositions(x.bColon[level], begin, end), true
}

// CommaPositions returns the offsets of every comma at the given nesting
// level whose position falls in [begin, end). The second return value is
// false if level is not below the builder's configured depth.
func (x *StructuralIndex) CommaPositions(begin, end, level int) ([]int, bool) {
	if level >= len(x.bComma) {
		return nil, false
	}
	return generatePositions(x.bComma[level], begin, end), true
}

// FindObjectField locates the last quoted field name in [begin, end) (end
// is normally the colon that follows the name) and returns its raw bytes
// (escape sequences intact, matching the raw bytes of a query path
// literal) along with the offset of the name's first byte, one past its
// opening quote.
func (x *StructuralIndex) FindObjectField(begin, end int) ([]byte, int, error) {
	fsi, fei, err := findPreFieldIndices(x.bitmaps, begin, end)
	if err != nil {
		return nil, 0, err
	}
	return x.record[fsi:fei], fsi, nil
}

// FindObjectValue trims surrounding whitespace and a trailing field
// delimiter (`,` for an interior field, `}` for the last field of an
// object) from [begin, end), returning the tight span of the value itself.
func (x *StructuralIndex) FindObjectValue(begin, end int, isLastField bool) (int, int) {
	delim := byte(',')
	if isLastField {
		delim = '}'
	}
	vsi, vei := trimmed(x.record, begin, end)
	if vei > begin && x.record[vei-1] == delim {
		vei--
	}
	return trimmed(x.record, vsi, vei)
}

// FindArrayValue trims surrounding whitespace from [begin, end).
func (x *StructuralIndex) FindArrayValue(begin, end int) (int, int) {
	return trimmed(x.record, begin, end)
}

// Substr returns the raw bytes of record[begin:end] without copying.
func (x *StructuralIndex) Substr(begin, end int) []byte {
	return x.record[begin:end]
}

// generatePositions collects every set bit of bitmap (one uint64 per
// 64-byte chunk) whose absolute byte offset falls in [begin, end).
func generatePositions(bitmap []uint64, begin, end int) []int {
	var cp []int
	for i := begin / 64; i < (end+63)/64; i++ {
		mBits := bitmap[i]
		for mBits != 0 {
			mBit := extractRightmost(mBits)
			offset := i*64 + bits.TrailingZeros64(mBit)
			if begin <= offset && offset < end {
				cp = append(cp, offset)
			}
			mBits = removeRightmost(mBits)
		}
	}
	return cp
}

// findPreFieldIndices scans backward from end looking for the two quotes
// delimiting the field name that immediately precedes a value span,
// returning (start, end) of the name's bytes (excluding the quotes).
func findPreFieldIndices(bitmaps []Bitmap, begin, end int) (int, int, error) {
	var ei int
	haveEI := false

	lo := begin / 64
	hi := (end + 1 + 63) / 64
	if hi > len(bitmaps) {
		hi = len(bitmaps)
	}
	for i := hi - 1; i >= lo; i-- {
		mQuote := bitmaps[i].Quote
		for mQuote != 0 {
			offset := (i+1)*64 - bits.LeadingZeros64(mQuote) - 1
			if offset < end {
				if haveEI {
					si := offset + 1
					return si, ei, nil
				}
				ei = offset
				haveEI = true
			}
			mQuote = removeLeftmost(mQuote)
		}
	}

	return 0, 0, ErrInvalidRecord
}

// trimmed narrows [begin, end) to exclude leading/trailing JSON
// whitespace (space, tab, carriage return, newline).
func trimmed(s []byte, begin, end int) (int, int) {
	for begin < end && isWS(s[begin]) {
		begin++
	}
	for end > begin && isWS(s[end-1]) {
		end--
	}
	return begin, end
}

func isWS(c byte) bool {
	switch c {
	case ' ', '\n', '\t', '\r':
		return true
	default:
		return false
	}
}
