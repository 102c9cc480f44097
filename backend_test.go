package mison

import "testing"

func pad64(s string) []byte {
	b := make([]byte, 64)
	copy(b, s)
	for i := len(s); i < 64; i++ {
		b[i] = ' '
	}
	return b
}

func TestScalarBackendFull(t *testing.T) {
	record := pad64(`{}`)
	bm := ScalarBackend{}.Full(record, 0)

	if bm.LeftBrace != 0b1 {
		t.Errorf("LeftBrace = %b, want %b", bm.LeftBrace, 0b1)
	}
	if bm.RightBrace != 0b10 {
		t.Errorf("RightBrace = %b, want %b", bm.RightBrace, 0b10)
	}
	if bm.Quote != 0 || bm.Colon != 0 || bm.Comma != 0 || bm.Backslash != 0 {
		t.Errorf("unexpected non-brace bits set: %+v", bm)
	}
}

func TestScalarBackendPartial(t *testing.T) {
	bm := ScalarBackend{}.Partial([]byte(`{"a":1}`), 0)
	if bm.LeftBrace != 1<<0 {
		t.Errorf("LeftBrace = %b, want %b", bm.LeftBrace, 1<<0)
	}
	if bm.RightBrace != 1<<6 {
		t.Errorf("RightBrace = %b, want %b", bm.RightBrace, 1<<6)
	}
	if bm.Quote != (1<<1 | 1<<3) {
		t.Errorf("Quote = %b, want %b", bm.Quote, 1<<1|1<<3)
	}
	if bm.Colon != 1<<4 {
		t.Errorf("Colon = %b, want %b", bm.Colon, 1<<4)
	}
}

func TestMatchByte(t *testing.T) {
	w := uint64(0x0000000000225F7B) // lowest byte (LE) is '{'
	c := broadcast('{')
	got := matchByte(w, c)
	if got&1 == 0 {
		t.Errorf("matchByte did not detect '{' at byte 0: got %08b", got)
	}
}
