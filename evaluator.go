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

import "bytes"

// ParseMode selects the evaluation strategy Evaluator.Parse uses.
type ParseMode int

const (
	// ModeBasic always walks colon/comma positions from scratch. It is
	// slower per record but never needs a fallback.
	ModeBasic ParseMode = iota
	// ModeSpeculative replays the most common field layout recorded by
	// earlier ModeBasic evaluations (including the ModeBasic fallback of
	// a ModeSpeculative call) against this Evaluator's query paths, which is considerably cheaper when
	// most records share a layout -- e.g. successive lines of
	// newline-delimited JSON emitted by the same producer. It falls
	// back to ModeBasic automatically unless SetAllowFallback(false)
	// was called.
	ModeSpeculative
)

// Evaluator evaluates a fixed set of query paths against records, using
// an IndexBuilder to construct each record's StructuralIndex and an
// optional per-node PatternTree to accelerate repeated layouts.
type Evaluator struct {
	builder         *IndexBuilder
	queryTree       *QueryTree
	rootPatternTree *PatternTree
	patternTrees    []*PatternTree
	savePatterns    bool
	allowFallback   bool
}

// NewEvaluator returns an Evaluator for queryTree, using builder
// (typically constructed with builder's level set to queryTree.MaxLevel())
// to index each record.
func NewEvaluator(builder *IndexBuilder, queryTree *QueryTree) *Evaluator {
	trees := make([]*PatternTree, queryTree.NumNodes())
	for i := range trees {
		trees[i] = NewPatternTree()
	}
	return &Evaluator{
		builder:         builder,
		queryTree:       queryTree,
		rootPatternTree: NewPatternTree(),
		patternTrees:    trees,
		allowFallback:   true,
	}
}

// patternTreeFor returns the PatternTree associated with node, accounting
// for the query tree's root (whose node ID is not a valid index into
// patternTrees, since NumNodes excludes the root).
func (e *Evaluator) patternTreeFor(node *QueryNode) *PatternTree {
	if node.nodeID < 0 {
		return e.rootPatternTree
	}
	return e.patternTrees[node.nodeID]
}

// SetSavePatterns controls whether ModeBasic records the field layout it
// discovers into each visited node's PatternTree, for later ModeSpeculative
// calls to replay.
func (e *Evaluator) SetSavePatterns(v bool) { e.savePatterns = v }

// SetAllowFallback controls whether ModeSpeculative silently falls back to
// ModeBasic when the recorded pattern does not match (true, the default)
// or returns ErrFailedSpeculativeParse instead (false).
func (e *Evaluator) SetAllowFallback(v bool) { e.allowFallback = v }

// Parse evaluates every registered query path against record and returns
// one result slot per path, in registration order. A nil slot means the
// path did not match this record. Every non-nil slot aliases record: the
// caller must copy it before record's backing array may be reused or
// mutated.
func (e *Evaluator) Parse(record []byte, mode ParseMode) ([][]byte, error) {
	record = bytes.TrimSpace(record)
	if len(record) == 0 || record[0] != '{' {
		return nil, ErrInvalidRecord
	}

	index, err := e.builder.Build(record)
	if err != nil {
		return nil, err
	}

	results := getResults(len(e.queryTree.Paths()))

	switch mode {
	case ModeBasic:
		if err := e.parseBasic(index, 0, len(record), e.queryTree.Root(), results); err != nil {
			return nil, err
		}
	case ModeSpeculative:
		ok, err := e.parseSpeculative(index, 0, len(record), e.queryTree.Root(), results)
		if err != nil {
			return nil, err
		}
		if !ok {
			if !e.allowFallback {
				return nil, ErrFailedSpeculativeParse
			}
			for i := range results {
				results[i] = nil
			}
			if err := e.parseBasic(index, 0, len(record), e.queryTree.Root(), results); err != nil {
				return nil, err
			}
		}
	default:
		return nil, ErrInvalidQuery
	}

	return results, nil
}

// Release returns a results slice previously returned by Parse to the
// shared pool, so the next Parse call can reuse its backing array instead
// of allocating. Callers that copy out whatever they need from results
// before discarding them should call Release; it is always safe to skip.
func (e *Evaluator) Release(results [][]byte) {
	putResults(results)
}

// parseBasic walks the colon positions of node's level back to front,
// matching each field name against node's children and recursing into
// any matched non-leaf child, stopping as soon as every one of node's
// children has been located. When SetSavePatterns(true) was called and
// every child was located, it also records the layout it discovered
// (field name and cp index per matched child, in occurrence order) into
// node's PatternTree; a partial match records nothing.
func (e *Evaluator) parseBasic(index *StructuralIndex, begin, end int, node *QueryNode, results [][]byte) error {
	cp, ok := index.ColonPositions(begin, end, node.Level())
	if !ok {
		return ErrInvalidRecord
	}

	foundCount := 0
	var pattern []PatternField

	for i := len(cp) - 1; i >= 0; i-- {
		fieldBegin := begin
		if i != 0 {
			fieldBegin = cp[i-1]
		}
		field, fsi, err := index.FindObjectField(fieldBegin, cp[i])
		if err != nil {
			return err
		}

		if ch := node.Child(string(field)); ch != nil {
			vsi, vei := index.FindObjectValue(cp[i]+1, end, i == len(cp)-1)

			if id := ch.QueryID(); id >= 0 {
				results[id] = index.Substr(vsi, vei)
			}

			if !ch.IsLeaf() {
				if err := e.parseBasic(index, vsi, vei, ch, results); err != nil {
					return err
				}
			}

			foundCount++
			if e.savePatterns {
				pattern = append([]PatternField{{Name: string(field), Pos: i}}, pattern...)
			}
			if foundCount == node.NumChildren() {
				if e.savePatterns {
					e.patternTreeFor(node).Append(pattern)
				}
				break
			}
		}

		end = fsi - 1
	}

	return nil
}

// parseSpeculative replays node's recorded PatternTree: at each step it
// tries the current pattern node's children in descending weight order, confirming each
// guess against the record's actual field name before trusting its
// recorded position. It returns true only when the replay reached a leaf
// of the pattern tree (i.e. the record's layout exactly matched a
// previously recorded one at every visited node).
func (e *Evaluator) parseSpeculative(index *StructuralIndex, begin, end int, node *QueryNode, results [][]byte) (bool, error) {
	cp, ok := index.ColonPositions(begin, end, node.Level())
	if !ok {
		return false, ErrInvalidRecord
	}

	patternNode := e.patternTreeFor(node).Root()

	for !patternNode.IsLeaf() {
		success := false
		for _, child := range patternNode.Children() {
			i := child.Position()
			if i < 0 || i >= len(cp) {
				continue
			}
			fieldBegin := begin
			if i != 0 {
				fieldBegin = cp[i-1]
			}
			field, _, err := index.FindObjectField(fieldBegin, cp[i])
			if err != nil {
				return false, err
			}
			success = string(field) == child.Field()
			if !success {
				continue
			}

			chNode := node.Child(string(field))

			var fsi int
			if i == len(cp)-1 {
				fsi = end
			} else {
				_, fei, err := index.FindObjectField(cp[i], cp[i+1])
				if err != nil {
					return false, err
				}
				fsi = fei - 1
			}
			vsi, vei := index.FindObjectValue(cp[i]+1, fsi, i == len(cp)-1)

			if id := chNode.QueryID(); id >= 0 {
				results[id] = index.Substr(vsi, vei)
			}

			if !chNode.IsLeaf() {
				sub, err := e.parseSpeculative(index, vsi, vei, chNode, results)
				if err != nil {
					return false, err
				}
				if !sub {
					return false, nil
				}
			}

			patternNode = child
			break
		}
		if !success {
			break
		}
	}

	return !patternNode.IsRoot() && patternNode.IsLeaf(), nil
}
