package arith

import "testing"

func TestCursor(t *testing.T) {
	cases := []struct {
		name string
		src  string
		ws   bool
		want string
	}{
		{"empty", "", false, ""},
		{"strict", "1+2", false, "1+2"},
		{"strict-space", " 1 ", false, " 1 "},
		{"skip-space", " 1 + 2 ", true, "1+2"},
		{"skip-all-space", " \t\r\n\v\f", true, ""},
		{"multibyte", "1×2", false, "1\xc3\x972"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cur := newCursor(c.src, c.ws)
			var got []byte
			last := 0
			for !cur.atEnd() {
				b, ok := cur.peek()
				if !ok {
					t.Fatalf("peek at %d reported end but atEnd did not", cur.pos)
				}
				if cur.pos < last {
					t.Fatalf("cursor moved backward from %d to %d", last, cur.pos)
				}
				last = cur.pos
				got = append(got, b)
				cur.advance()
			}
			if string(got) != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
			if _, ok := cur.peek(); ok {
				t.Error("peek at end reported a character")
			}
			if cur.pos != len(c.src) {
				t.Errorf("cursor ended at %d, not %d", cur.pos, len(c.src))
			}
		})
	}
}

func TestCursorAdvancePastEnd(t *testing.T) {
	cur := newCursor("1", false)
	cur.advance()
	cur.advance()
	if cur.pos != 1 {
		t.Errorf("advance past end moved cursor to %d", cur.pos)
	}
	if !cur.atEnd() {
		t.Error("cursor not at end")
	}
	if s := cur.current(); s != "" {
		t.Errorf("current at end is %q", s)
	}
}

func TestCursorRaw(t *testing.T) {
	cur := newCursor(" 1", true)
	if b, ok := cur.raw(); !ok || b != ' ' {
		t.Errorf("raw skipped whitespace: got %q, %t", b, ok)
	}
	if b, ok := cur.peek(); !ok || b != '1' {
		t.Errorf("peek did not skip whitespace: got %q, %t", b, ok)
	}
	if cur.pos != 1 {
		t.Errorf("cursor at %d after skipping one space", cur.pos)
	}
}

func TestCursorReset(t *testing.T) {
	cur := newCursor("1+2", false)
	cur.advance()
	cur.advance()
	cur.reset("(3)")
	if cur.pos != 0 {
		t.Errorf("reset left cursor at %d", cur.pos)
	}
	if b, ok := cur.peek(); !ok || b != '(' {
		t.Errorf("wrong first character after reset: %q, %t", b, ok)
	}
	if s := cur.rest(); s != "(3)" {
		t.Errorf("wrong rest after reset: %q", s)
	}
}

func TestCursorCurrent(t *testing.T) {
	cur := newCursor("2×3", false)
	cur.advance()
	if s := cur.current(); s != "×" {
		t.Errorf("want ×, got %q", s)
	}
}
