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

import (
	"strings"
)

// QueryNode is one field of a registered query path.
type QueryNode struct {
	nodeID   int
	queryID  int // -1 when no query terminates at this node
	level    int
	children map[string]*QueryNode
}

func newQueryNode(nodeID, level int) *QueryNode {
	return &QueryNode{nodeID: nodeID, queryID: -1, level: level, children: make(map[string]*QueryNode)}
}

// QueryID reports the index into QueryTree.Paths of the query that
// terminates at this node, or -1 if none does.
func (n *QueryNode) QueryID() int { return n.queryID }

// Level is this node's distance from the root (the root's direct
// children are level 1).
func (n *QueryNode) Level() int { return n.level }

// Child looks up a named child field, returning nil if absent.
func (n *QueryNode) Child(field string) *QueryNode { return n.children[field] }

// NumChildren returns the number of distinct fields registered under n.
func (n *QueryNode) NumChildren() int { return len(n.children) }

// IsLeaf reports whether n has no registered children.
func (n *QueryNode) IsLeaf() bool { return len(n.children) == 0 }

// QueryTree indexes a set of JSONPath-subset query paths (`$.a.b.c`) as a
// trie, so the evaluator can walk a record's object fields and the query
// paths in lockstep instead of re-parsing and re-matching a path string
// for every field it visits.
type QueryTree struct {
	root     *QueryNode
	paths    []string
	maxLevel int
	numNodes int
}

// NewQueryTree returns an empty QueryTree.
func NewQueryTree() *QueryTree {
	return &QueryTree{root: &QueryNode{nodeID: -1, queryID: -1, level: 0, children: make(map[string]*QueryNode)}}
}

// Root returns the trie's root node. The root itself never terminates a
// query; it only has children.
func (t *QueryTree) Root() *QueryNode { return t.root }

// Paths returns the query paths registered so far, in registration order.
// The slice is owned by the tree and must not be mutated.
func (t *QueryTree) Paths() []string { return t.paths }

// MaxLevel returns the deepest level reached by any registered path.
func (t *QueryTree) MaxLevel() int { return t.maxLevel }

// NumNodes returns the number of trie nodes created so far, excluding the
// root.
func (t *QueryTree) NumNodes() int { return t.numNodes }

// AddPath parses a query path of the form "$.a.b.c" and merges it into
// the trie, sharing any prefix already registered by an earlier path. It
// returns ErrInvalidQuery if path does not start with "$." or contains an
// empty field (e.g. "$.." or a trailing dot).
func (t *QueryTree) AddPath(path string) error {
	if !strings.HasPrefix(path, "$.") {
		return ErrInvalidQuery
	}

	cur := t.root
	for _, field := range strings.Split(path[2:], ".") {
		if field == "" {
			return ErrInvalidQuery
		}

		child, ok := cur.children[field]
		if !ok {
			child = newQueryNode(t.numNodes, cur.level+1)
			cur.children[field] = child
			t.numNodes++
		}
		cur = child
	}

	cur.queryID = len(t.paths)
	if cur.level > t.maxLevel {
		t.maxLevel = cur.level
	}
	t.paths = append(t.paths, path)

	return nil
}
