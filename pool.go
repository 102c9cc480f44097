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

import "sync"

// resultsPool recycles the [][]byte result slices Evaluator.Parse
// allocates. A slice goes back into the pool only when a caller passes it
// to Evaluator.Release.
var resultsPool = sync.Pool{
	New: func() interface{} { return make([][]byte, 0, 8) },
}

func getResults(n int) [][]byte {
	r := resultsPool.Get().([][]byte)
	if cap(r) < n {
		return make([][]byte, n)
	}
	r = r[:n]
	for i := range r {
		r[i] = nil
	}
	return r
}

func putResults(r [][]byte) {
	resultsPool.Put(r[:0])
}

// ParseNDJSON evaluates queryTree against every newline-delimited record
// read from lines, invoking fn with each record's results. Each non-nil
// element of results is a byte range into lines[i] itself, not a copy.
//
// Evaluation stops at the first error, either from malformed input or
// from fn itself.
func ParseNDJSON(lines [][]byte, queryTree *QueryTree, backend Backend, mode ParseMode, fn func(i int, results [][]byte) error) error {
	builder := NewIndexBuilder(backend, queryTree.MaxLevel())
	ev := NewEvaluator(builder, queryTree)

	for i, line := range lines {
		results, err := ev.Parse(line, mode)
		if err != nil {
			return err
		}
		if err := fn(i, results); err != nil {
			return err
		}
	}
	return nil
}
