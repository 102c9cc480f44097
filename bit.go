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

// removeRightmost clears the rightmost set bit of x.
func removeRightmost(x uint64) uint64 {
	return x & (x - 1)
}

// removeLeftmost clears the leftmost set bit of x.
func removeLeftmost(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	return x &^ (uint64(1) << (63 - bits.LeadingZeros64(x)))
}

// extractRightmost isolates the rightmost set bit of x.
func extractRightmost(x uint64) uint64 {
	return x & (-x)
}

// smearRightmost isolates the rightmost set bit of x and smears it
// (together with every lower bit) to the right, producing a mask of all
// ones from bit 0 through that bit, inclusive.
func smearRightmost(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	return x ^ (x - 1)
}

// leadingOnes returns the number of consecutive 1 bits in x when read
// starting at bit (pos-1) going down towards bit 0 -- i.e. the length of
// the run of set bits immediately below position pos, within this single
// word. pos must be in [0, 64].
func leadingOnes(x uint64, pos uint32) uint32 {
	if pos == 0 {
		return 0
	}
	return uint32(bits.LeadingZeros64(^(x << (64 - pos))))
}
