package mison

import (
	"bytes"
	"testing"
)

func TestStructuralIndexColonPositions(t *testing.T) {
	record := []byte(`{"a":1,"b":2}`)
	b := NewIndexBuilder(ScalarBackend{}, 1)
	idx, err := b.Build(record)
	if err != nil {
		t.Fatal(err)
	}

	cp, ok := idx.ColonPositions(0, len(record), 0)
	if !ok {
		t.Fatal("ColonPositions: ok = false")
	}
	want := []int{4, 10}
	if len(cp) != len(want) {
		t.Fatalf("ColonPositions = %v, want %v", cp, want)
	}
	for i := range want {
		if cp[i] != want[i] {
			t.Errorf("ColonPositions[%d] = %d, want %d", i, cp[i], want[i])
		}
	}

	if _, ok := idx.ColonPositions(0, len(record), 5); ok {
		t.Error("ColonPositions at out-of-range level: ok = true, want false")
	}
}

func TestStructuralIndexFindObjectField(t *testing.T) {
	record := []byte(`{"name":"value"}`)
	b := NewIndexBuilder(ScalarBackend{}, 1)
	idx, err := b.Build(record)
	if err != nil {
		t.Fatal(err)
	}

	cp, ok := idx.ColonPositions(0, len(record), 0)
	if !ok || len(cp) != 1 {
		t.Fatalf("ColonPositions = %v, ok=%v", cp, ok)
	}

	field, _, err := idx.FindObjectField(0, cp[0])
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(field, []byte("name")) {
		t.Errorf("FindObjectField = %q, want %q", field, "name")
	}
}

func TestStructuralIndexFindObjectValue(t *testing.T) {
	record := []byte(`{ "a": 1, "b": 2 }`)
	b := NewIndexBuilder(ScalarBackend{}, 1)
	idx, err := b.Build(record)
	if err != nil {
		t.Fatal(err)
	}

	cp, ok := idx.ColonPositions(0, len(record), 0)
	if !ok || len(cp) != 2 {
		t.Fatalf("ColonPositions = %v, ok=%v", cp, ok)
	}

	// The end boundary for a non-last field is the position just before
	// the next field's opening quote (index 10 here), not the next
	// colon -- mirroring how Evaluator.parseBasic computes it.
	vsi, vei := idx.FindObjectValue(cp[0]+1, 10, false)
	if got := idx.Substr(vsi, vei); string(got) != "1" {
		t.Errorf("first value = %q, want %q", got, "1")
	}

	vsi, vei = idx.FindObjectValue(cp[1]+1, len(record), true)
	if got := idx.Substr(vsi, vei); string(got) != "2" {
		t.Errorf("second value = %q, want %q", got, "2")
	}
}

func TestStructuralIndexFindArrayValue(t *testing.T) {
	record := []byte(`[a, b, c]`)
	vsi, vei := trimmed(record, 0, len(record))
	if string(record[vsi:vei]) != "[a, b, c]" {
		t.Errorf("trimmed = %q, want %q", record[vsi:vei], "[a, b, c]")
	}
}
