package mison

import "testing"

func TestPatternTreeAppend(t *testing.T) {
	tree := NewPatternTree()
	tree.Append([]PatternField{{"foo", 0}, {"bar", 1}, {"baz", 2}})
	tree.Append([]PatternField{{"foo", 0}, {"baz", 1}, {"bar", 3}})
	tree.Append([]PatternField{{"foo", 0}, {"bar", 2}, {"baz", 3}})

	root := tree.Root()
	if root.Weight() != 3 {
		t.Fatalf("root weight = %d, want 3", root.Weight())
	}
	if len(root.Children()) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children()))
	}

	foo := root.Children()[0]
	if foo.Field() != "foo" || foo.Position() != 0 || foo.Weight() != 3 {
		t.Fatalf("unexpected foo node: %+v", foo)
	}
	if len(foo.Children()) != 2 {
		t.Fatalf("foo has %d children, want 2", len(foo.Children()))
	}

	var sawBar1, sawBaz1 bool
	for _, ch := range foo.Children() {
		switch {
		case ch.Field() == "bar" && ch.Position() == 1:
			sawBar1 = true
			if len(ch.Children()) != 1 || ch.Children()[0].Field() != "baz" || ch.Children()[0].Position() != 2 {
				t.Errorf("unexpected grandchild of bar@1: %+v", ch.Children())
			}
		case ch.Field() == "baz" && ch.Position() == 1:
			sawBaz1 = true
			if len(ch.Children()) != 1 || ch.Children()[0].Field() != "bar" || ch.Children()[0].Position() != 3 {
				t.Errorf("unexpected grandchild of baz@1: %+v", ch.Children())
			}
		}
	}
	if !sawBar1 || !sawBaz1 {
		t.Errorf("missing expected second-level nodes: sawBar1=%v sawBaz1=%v", sawBar1, sawBaz1)
	}
}

func TestPatternTreeOrdersByWeight(t *testing.T) {
	tree := NewPatternTree()
	tree.Append([]PatternField{{"a", 0}})
	tree.Append([]PatternField{{"b", 0}})
	tree.Append([]PatternField{{"b", 0}})

	children := tree.Root().Children()
	if len(children) != 2 || children[0].Field() != "b" {
		t.Errorf("children not sorted by descending weight: %+v", children)
	}
}
