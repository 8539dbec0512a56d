package levenshtein

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func eqString(a, b string) bool { return a == b }

func split(s string) []string {
	return strings.Fields(s)
}

func opCodes[T any](script []Edit[T]) string {
	var b strings.Builder
	for _, e := range script {
		b.WriteString(e.Op.Code())
	}
	return b.String()
}

func TestAlignTieBreak(t *testing.T) {
	d, script := Align([]string{"a", "a"}, []string{"b", "a"}, eqString)
	if d != 1 {
		t.Fatalf("distance = %d, want 1", d)
	}
	want := []Edit[string]{
		{Op: OpSubstitute, From: "a", To: "b", FromIndex: 0, ToIndex: 0},
		{Op: OpMatch, From: "a", To: "a", FromIndex: 1, ToIndex: 1},
	}
	if !slices.Equal(script, want) {
		t.Fatalf("script = %+v, want %+v", script, want)
	}
}

func TestAlignOperationOrder(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		ops      string
		distance int
	}{
		{"identical", "x y z", "x y z", "===", 0},
		{"single insert at end", "a b", "a b c", "==I", 1},
		{"single delete at end", "a b c", "a b", "==D", 1},
		{"single substitution", "a", "b", "R", 1},
		{"swap prefers delete then insert", "a b", "b a", "D=I", 2},
		{"all different", "a b", "c d", "RR", 2},
		{"leading insert", "b", "a b", "I=", 1},
		{"leading delete", "a b", "b", "D=", 1},
		{"trailing deletes", "a b c d", "x b", "R=DD", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, script := Align(split(tt.from), split(tt.to), eqString)
			if d != tt.distance {
				t.Errorf("distance = %d, want %d", d, tt.distance)
			}
			if got := opCodes(script); got != tt.ops {
				t.Errorf("ops = %q, want %q", got, tt.ops)
			}
		})
	}
}

func TestAlignMatchesEngine(t *testing.T) {
	pairs := [][2]string{
		{"", ""},
		{"a b c", ""},
		{"the quick brown fox", "the quack brown dog fox"},
		{"a a a", "a b a b"},
	}
	for _, pair := range pairs {
		from, to := split(pair[0]), split(pair[1])
		d, script := Align(from, to, eqString)

		e := New(from, to, eqString)
		wantD, err := e.Distance()
		if err != nil {
			t.Fatalf("Distance(%q, %q): %v", pair[0], pair[1], err)
		}
		wantScript, err := e.Script()
		if err != nil {
			t.Fatalf("Script(%q, %q): %v", pair[0], pair[1], err)
		}
		if d != wantD || !slices.Equal(script, wantScript) {
			t.Fatalf("Align(%q, %q) = %d %+v, engine gives %d %+v", pair[0], pair[1], d, script, wantD, wantScript)
		}
	}
}

func TestAlignEmptySides(t *testing.T) {
	b := []string{"x", "y", "z"}

	d, script := Align(nil, b, eqString)
	if d != 3 || opCodes(script) != "III" {
		t.Fatalf("empty source: distance %d ops %q", d, opCodes(script))
	}
	if !slices.Equal(Targets(script), b) {
		t.Fatalf("inserts out of order: %v", Targets(script))
	}
	for i, e := range script {
		if e.FromIndex != -1 || e.ToIndex != i {
			t.Fatalf("edit %d has indexes %d/%d", i, e.FromIndex, e.ToIndex)
		}
	}

	d, script = Align(b, nil, eqString)
	if d != 3 || opCodes(script) != "DDD" {
		t.Fatalf("empty target: distance %d ops %q", d, opCodes(script))
	}
	if !slices.Equal(Sources(script), b) {
		t.Fatalf("deletes out of order: %v", Sources(script))
	}

	d, script = Align[string](nil, nil, eqString)
	if d != 0 || len(script) != 0 {
		t.Fatalf("both empty: distance %d script %v", d, script)
	}
}

func TestAlignIdentityIsAllMatch(t *testing.T) {
	a := split("the quick brown fox jumps over the lazy dog")
	d, script := Align(a, a, eqString)
	if d != 0 {
		t.Fatalf("distance = %d", d)
	}
	if c := Count(script); c.Match != len(a) || c.Cost() != 0 {
		t.Fatalf("counts = %+v", c)
	}
}

func TestAlignProperties(t *testing.T) {
	pairs := [][2]string{
		{"mr stark hi there", "mister stark hi there"},
		{"a b c d e f", "b c x e f g"},
		{"one", "one two three four"},
		{"kitten sitting on the mat", "sitting kitten on mat the"},
		{"a a a a", "a a"},
		{"x", ""},
		{"p q r s t u v w", "w v u t s r q p"},
	}

	for _, p := range pairs {
		a, b := split(p[0]), split(p[1])
		t.Run(p[0]+"|"+p[1], func(t *testing.T) {
			d, script := Align(a, b, eqString)
			back, reverse := Align(b, a, eqString)
			if d != back {
				t.Errorf("distance not symmetric: %d vs %d", d, back)
			}

			if got := Sources(script); !slices.Equal(got, a) {
				t.Errorf("sources = %v, want %v", got, a)
			}
			if got := Targets(script); !slices.Equal(got, b) {
				t.Errorf("targets = %v, want %v", got, b)
			}

			if len(script) < max(len(a), len(b)) || len(script) > len(a)+len(b) {
				t.Errorf("script length %d outside [%d, %d]", len(script), max(len(a), len(b)), len(a)+len(b))
			}
			if c := Count(script); c.Cost() != d {
				t.Errorf("script cost %d != distance %d", c.Cost(), d)
			}
			rc := Count(reverse)
			c := Count(script)
			if c.Insert-c.Delete != rc.Delete-rc.Insert {
				t.Errorf("insert/delete balance not mirrored: %+v vs %+v", c, rc)
			}

			fromNext, toNext := 0, 0
			for _, e := range script {
				if e.Op.HasFrom() {
					if e.FromIndex != fromNext {
						t.Fatalf("FromIndex %d, want %d", e.FromIndex, fromNext)
					}
					fromNext++
				} else if e.FromIndex != -1 {
					t.Fatalf("insert carries FromIndex %d", e.FromIndex)
				}
				if e.Op.HasTo() {
					if e.ToIndex != toNext {
						t.Fatalf("ToIndex %d, want %d", e.ToIndex, toNext)
					}
					toNext++
				} else if e.ToIndex != -1 {
					t.Fatalf("delete carries ToIndex %d", e.ToIndex)
				}
				if e.Op == OpMatch && e.From != e.To {
					t.Fatalf("match of unequal items %q %q", e.From, e.To)
				}
				if e.Op == OpSubstitute && e.From == e.To {
					t.Fatalf("substitute of equal items %q", e.From)
				}
			}
		})
	}
}

func TestEngineMemoizesDistance(t *testing.T) {
	calls := 0
	e := New([]int{1, 2, 3}, []int{1, 3}, func(a, b int) bool {
		calls++
		return a == b
	})
	d1, err := e.Distance()
	if err != nil {
		t.Fatalf("Distance: %v", err)
	}
	first := calls
	d2, _ := e.Distance()
	if _, err := e.Script(); err != nil {
		t.Fatalf("Script: %v", err)
	}
	if d1 != 1 || d2 != 1 {
		t.Fatalf("distances %d %d", d1, d2)
	}
	if calls != first || first != 6 {
		t.Fatalf("predicate called %d times after first computation (%d initially)", calls, first)
	}
}

func TestEngineCustomEquality(t *testing.T) {
	fold := func(a, b string) bool { return strings.EqualFold(a, b) }
	d, script := Align(split("Hello World"), split("hello WORLD"), fold)
	if d != 0 || opCodes(script) != "==" {
		t.Fatalf("distance %d ops %q", d, opCodes(script))
	}
	if script[0].From != "Hello" || script[0].To != "hello" {
		t.Fatalf("items should be kept verbatim: %+v", script[0])
	}
}

func TestEnginePropagatesPredicateFailure(t *testing.T) {
	boom := errors.New("incomparable")
	e := NewChecked([]string{"a", "b"}, []string{"a", "?"}, func(a, b string) (bool, error) {
		if b == "?" {
			return false, boom
		}
		return a == b, nil
	})

	_, err := e.Distance()
	var perr *PreconditionError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
	if perr.From != 0 || perr.To != 1 {
		t.Fatalf("unexpected pair %d/%d", perr.From, perr.To)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("cause not wrapped: %v", err)
	}
	if _, err := e.Script(); !errors.Is(err, boom) {
		t.Fatalf("Script should return the same failure, got %v", err)
	}
	if err := e.Walk(func(Edit[string]) error { return nil }); !errors.Is(err, boom) {
		t.Fatalf("Walk should return the same failure, got %v", err)
	}
}

func TestEngineWalkStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	e := New(split("a b c"), split("a x c"), eqString)
	seen := 0
	err := e.Walk(func(edit Edit[string]) error {
		seen++
		if edit.Op == OpSubstitute {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) || seen != 2 {
		t.Fatalf("err %v after %d edits", err, seen)
	}
}

func TestCells(t *testing.T) {
	if got := Cells(0, 0); got != 1 {
		t.Fatalf("Cells(0,0) = %d", got)
	}
	if got := Cells(3, 4); got != 20 {
		t.Fatalf("Cells(3,4) = %d", got)
	}
}

func TestOpCodes(t *testing.T) {
	tests := []struct {
		op   Op
		code string
		name string
	}{
		{OpNone, "-", "none"},
		{OpMatch, "=", "match"},
		{OpSubstitute, "R", "substitute"},
		{OpDelete, "D", "delete"},
		{OpInsert, "I", "insert"},
	}
	for _, tt := range tests {
		if tt.op.Code() != tt.code || tt.op.String() != tt.name {
			t.Errorf("%v: code %q name %q", byte(tt.op), tt.op.Code(), tt.op.String())
		}
	}
}
