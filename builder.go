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

// IndexBuilder runs the four-pass structural-index construction over a
// record, reusing its bitmap scratch buffers across calls to Build instead
// of allocating them per record (spec.md §3, §5). Because of that reuse, a
// single IndexBuilder may not be used to build two records concurrently,
// and the *StructuralIndex returned by one Build call is invalidated -- its
// backing arrays are overwritten in place -- by the builder's next Build
// call. Give each worker goroutine its own IndexBuilder (spec.md §5).
type IndexBuilder struct {
	backend Backend
	level   int

	bitmaps []Bitmap
	bColon  [][]uint64
	bComma  [][]uint64
	index   StructuralIndex
}

// NewIndexBuilder returns a builder that produces colon/comma bitmaps for
// the given number of nesting levels using backend.
func NewIndexBuilder(backend Backend, level int) *IndexBuilder {
	return &IndexBuilder{
		backend: backend,
		level:   level,
		bColon:  make([][]uint64, level),
		bComma:  make([][]uint64, level),
	}
}

// Build constructs a StructuralIndex over record, using this builder's
// own scratch buffers. The returned *StructuralIndex aliases those
// buffers; it remains valid only until the next call to Build on the same
// builder, which clears and re-reserves them in place (mirroring
// original_source/src/index_builder/builder.rs's VecExt::init).
//
// Pass 1 computes the raw structural-character bitmaps 64 bytes at a
// time. Pass 2 removes quote bits that are themselves escaped by an odd
// run of backslashes. Pass 3 masks out colon/comma/brace/bracket bits
// that fall inside a string literal. Pass 4 walks brace/bracket bits with
// an explicit stack to discover nesting and restricts each level's
// colon/comma bitmaps to the positions that belong directly to a field at
// that level.
func (ib *IndexBuilder) Build(record []byte) (*StructuralIndex, error) {
	bLen := (len(record) + 63) / 64

	ib.bitmaps = reserve(ib.bitmaps, bLen)
	for i := 0; i < ib.level; i++ {
		ib.bColon[i] = reserveU64(ib.bColon[i], bLen)
		ib.bComma[i] = reserveU64(ib.bComma[i], bLen)
	}

	buildStructuralCharacterBitmaps(&ib.bitmaps, record, ib.backend)
	removeUnstructuralQuotes(ib.bitmaps)
	removeUnstructuralCharacters(ib.bitmaps)
	if err := buildLeveledBitmaps(ib.bitmaps, ib.bColon, ib.bComma, ib.level); err != nil {
		return nil, err
	}

	ib.index = StructuralIndex{
		record:  record,
		bitmaps: ib.bitmaps,
		bColon:  ib.bColon,
		bComma:  ib.bComma,
	}
	return &ib.index, nil
}

// reserve clears buf to zero length, growing it first if its capacity is
// below n, so callers never allocate once a builder's scratch has reached
// its largest-seen record size.
func reserve(buf []Bitmap, n int) []Bitmap {
	if cap(buf) < n {
		return make([]Bitmap, 0, n)
	}
	return buf[:0]
}

// reserveU64 is reserve for a []uint64 scratch slice.
func reserveU64(buf []uint64, n int) []uint64 {
	if cap(buf) < n {
		return make([]uint64, 0, n)
	}
	return buf[:0]
}

// buildStructuralCharacterBitmaps is pass 1.
func buildStructuralCharacterBitmaps(bitmaps *[]Bitmap, s []byte, backend Backend) {
	full := len(s) / 64
	for i := 0; i < full; i++ {
		*bitmaps = append(*bitmaps, backend.Full(s, i*64))
	}
	if len(s)%64 != 0 {
		*bitmaps = append(*bitmaps, backend.Partial(s, full*64))
	}
}

// removeUnstructuralQuotes is pass 2. A quote bit is unstructural (i.e. an
// escaped literal `"` rather than a string delimiter) when it is preceded
// by an odd number of consecutive backslashes.
func removeUnstructuralQuotes(bitmaps []Bitmap) {
	var uu uint64
	for i := range bitmaps {
		q1 := bitmaps[i].Quote
		var q2 uint64
		if i+1 < len(bitmaps) {
			q2 = bitmaps[i+1].Quote
		}
		bsq := (q1>>1 | q2<<63) & bitmaps[i].Backslash

		var u uint64
		for bsq != 0 {
			target := extractRightmost(bsq)
			pos := uint32(64) - uint32(bits.LeadingZeros64(target))
			if consecutiveOnes(bitmaps[:i+1], pos)%2 == 1 {
				u |= target
			}
			bsq ^= target
		}

		bitmaps[i].Quote &^= uu>>63 | u<<1
		uu = u
	}
}

// consecutiveOnes counts the run of consecutive 1 bits in the backslash
// bitmap of b[len(b)-1] ending just before bit pos, continuing into
// earlier chunks of b when the run reaches the chunk boundary.
func consecutiveOnes(b []Bitmap, pos uint32) uint32 {
	ones := leadingOnes(b[len(b)-1].Backslash, pos)
	if ones < pos {
		return ones
	}
	for i := len(b) - 2; i >= 0; i-- {
		l := leadingOnes(b[i].Backslash, 64)
		if l < 64 {
			return ones + l
		}
		ones += 64
	}
	return ones
}

// removeUnstructuralCharacters is pass 3: colon, comma, and bracket bits
// that fall inside a string literal (an odd number of structural quotes
// precede them, within the whole record) are cleared.
func removeUnstructuralCharacters(bitmaps []Bitmap) {
	n := 0
	for i := range bitmaps {
		b := &bitmaps[i]
		mQuote := b.Quote
		var mString uint64
		for mQuote != 0 {
			mString ^= smearRightmost(mQuote)
			mQuote = removeRightmost(mQuote)
			n++
		}
		if n%2 == 1 {
			mString ^= ^uint64(0)
		}

		b.Colon &^= mString
		b.Comma &^= mString
		b.LeftBrace &^= mString
		b.RightBrace &^= mString
		b.LeftBracket &^= mString
		b.RightBracket &^= mString
	}
}

// braceFrame records an unmatched opening brace/bracket bit while
// buildLeveledBitmaps walks the record.
type braceFrame struct {
	chunk   int
	leftBit uint64
	isBrace bool
}

// buildLeveledBitmaps is pass 4. It walks every left/right brace-or-bracket
// bit in record order using an explicit stack (no recursion, so nesting
// depth never risks a Go stack overflow), and for each level up to
// ib.level restricts that level's colon/comma bitmaps to only the
// positions that belong directly inside the object at that nesting depth.
func buildLeveledBitmaps(bitmaps []Bitmap, bColon, bComma [][]uint64, level int) error {
	for i := 0; i < level; i++ {
		for _, b := range bitmaps {
			bColon[i] = append(bColon[i], b.Colon)
			bComma[i] = append(bComma[i], b.Comma)
		}
	}

	var stack []braceFrame

	for i := range bitmaps {
		b := &bitmaps[i]
		mLeft := b.leftMask()
		mRight := b.rightMask()

		for {
			mRightBit := extractRightmost(mRight)
			mLeftBit := extractRightmost(mLeft)
			for mLeftBit != 0 && (mRightBit == 0 || mLeftBit < mRightBit) {
				isBrace := mLeftBit&b.LeftBrace != 0
				stack = append(stack, braceFrame{chunk: i, leftBit: mLeftBit, isBrace: isBrace})
				mLeft = removeRightmost(mLeft)
				mLeftBit = extractRightmost(mLeft)
			}

			if mRightBit != 0 {
				if len(stack) == 0 {
					return ErrInvalidRecord
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				j, mlb, isBrace := top.chunk, top.leftBit, top.isBrace
				if isBrace != (mRightBit&b.RightBrace != 0) {
					return ErrInvalidRecord
				}
				mLeftBit = mlb

				if len(stack) > 0 && len(stack)-1 < level {
					lvl := len(stack) - 1
					if i == j {
						mask := ^(mRightBit - mLeftBit)
						bColon[lvl][i] &= mask
						bComma[lvl][i] &= mask
					} else {
						maskJ := mLeftBit - 1
						bColon[lvl][j] &= maskJ
						bComma[lvl][j] &= maskJ

						maskI := ^(mRightBit - 1)
						bColon[lvl][i] &= maskI
						bComma[lvl][i] &= maskI

						for k := j + 1; k < i; k++ {
							bColon[lvl][k] = 0
							bComma[lvl][k] = 0
						}
					}
				}
			}

			mRight = removeRightmost(mRight)
			if mRightBit == 0 {
				break
			}
		}
	}

	if len(stack) != 0 {
		return ErrInvalidRecord
	}
	return nil
}
