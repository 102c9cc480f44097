package mison

import "testing"

func TestQueryTreeAddPathInvalid(t *testing.T) {
	cases := []string{"", "$", "$..", "$.", "$.a."}
	for _, c := range cases {
		tree := NewQueryTree()
		if err := tree.AddPath(c); err != ErrInvalidQuery {
			t.Errorf("AddPath(%q): err = %v, want ErrInvalidQuery", c, err)
		}
	}
}

func TestQueryTreeAddPath(t *testing.T) {
	t.Run("single field", func(t *testing.T) {
		tree := NewQueryTree()
		if err := tree.AddPath("$.foo"); err != nil {
			t.Fatal(err)
		}
		if tree.MaxLevel() != 1 || tree.NumNodes() != 1 {
			t.Errorf("maxLevel=%d numNodes=%d, want 1,1", tree.MaxLevel(), tree.NumNodes())
		}
		foo := tree.Root().Child("foo")
		if foo == nil || foo.QueryID() != 0 || foo.Level() != 1 {
			t.Errorf("unexpected node for $.foo: %+v", foo)
		}
	})

	t.Run("nested field", func(t *testing.T) {
		tree := NewQueryTree()
		if err := tree.AddPath("$.foo.bar"); err != nil {
			t.Fatal(err)
		}
		if tree.MaxLevel() != 2 || tree.NumNodes() != 2 {
			t.Errorf("maxLevel=%d numNodes=%d, want 2,2", tree.MaxLevel(), tree.NumNodes())
		}
		foo := tree.Root().Child("foo")
		if foo == nil || foo.QueryID() != -1 {
			t.Fatalf("unexpected intermediate node: %+v", foo)
		}
		bar := foo.Child("bar")
		if bar == nil || bar.QueryID() != 0 || bar.Level() != 2 {
			t.Errorf("unexpected leaf node: %+v", bar)
		}
	})

	t.Run("shared prefix across paths", func(t *testing.T) {
		tree := NewQueryTree()
		for _, p := range []string{"$.f1.e1", "$.f1.e1.c3", "$.f2.e1"} {
			if err := tree.AddPath(p); err != nil {
				t.Fatal(err)
			}
		}
		if tree.MaxLevel() != 3 || tree.NumNodes() != 5 {
			t.Errorf("maxLevel=%d numNodes=%d, want 3,5", tree.MaxLevel(), tree.NumNodes())
		}

		f1 := tree.Root().Child("f1")
		f1e1 := f1.Child("e1")
		if f1e1.QueryID() != 0 {
			t.Errorf("$.f1.e1 queryID = %d, want 0", f1e1.QueryID())
		}
		f1e1c3 := f1e1.Child("c3")
		if f1e1c3.QueryID() != 1 {
			t.Errorf("$.f1.e1.c3 queryID = %d, want 1", f1e1c3.QueryID())
		}
		f2e1 := tree.Root().Child("f2").Child("e1")
		if f2e1.QueryID() != 2 {
			t.Errorf("$.f2.e1 queryID = %d, want 2", f2e1.QueryID())
		}
	})
}
