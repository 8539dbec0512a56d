package transcript

import (
	"errors"
	"testing"
)

func feed[T any](t *testing.T, r *DualStreamReader[T], lines ...string) {
	t.Helper()
	for _, line := range lines {
		if err := r.ParseLine(line); err != nil {
			t.Fatalf("ParseLine(%q): %v", line, err)
		}
	}
}

func TestSegmentParserSingleSegment(t *testing.T) {
	r := NewDualStreamReader(DefaultOptions(), DecodeNLPTags)
	feed(t, r,
		"> I 1",
		"> T 00:00:01,600 --> 00:00:02,684",
		"> R 1600 2684 1084",
		"> S Mr Stark, hi there.",
		"> W 1600 mr PROPN False",
		"> W 2322 there ADV True",
		"",
	)

	side1 := r.Side1()
	if len(side1.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(side1.Segments))
	}
	seg := side1.Segments[0]
	if seg.Index != 1 || seg.BeginMs != 1600 || seg.EndMs != 2684 || seg.DurationMs != 1084 {
		t.Fatalf("unexpected segment fields: %+v", seg)
	}
	if seg.BeginLabel != "00:00:01,600" || seg.EndLabel != "00:00:02,684" {
		t.Fatalf("unexpected labels: %q %q", seg.BeginLabel, seg.EndLabel)
	}
	if seg.Text != "Mr Stark, hi there." {
		t.Fatalf("unexpected text: %q", seg.Text)
	}
	if seg.FirstWord != 0 || seg.LastWord != 1 || seg.WordCount() != 2 {
		t.Fatalf("unexpected word range [%d, %d]", seg.FirstWord, seg.LastWord)
	}
	if !seg.Valid() {
		t.Fatal("expected frozen segment to be valid")
	}
	if side1.Words.Len() != 2 {
		t.Fatalf("expected 2 words, got %d", side1.Words.Len())
	}
	first := side1.Words.At(0)
	if first.Position != 0 || first.TimestampMs != 1600 || first.Text != "mr" || first.Segment != seg {
		t.Fatalf("unexpected first word: %+v", first)
	}
	if first.Tags.POS != "PROPN" || !first.Tags.HasStop || first.Tags.IsStop {
		t.Fatalf("unexpected first word tags: %+v", first.Tags)
	}
	second := side1.Words.At(1)
	if second.Position != 1 || second.Text != "there" || !second.Tags.IsStop {
		t.Fatalf("unexpected second word: %+v", second)
	}

	if r.Side2().Words.Len() != 0 || len(r.Side2().Segments) != 0 {
		t.Fatal("side 2 should be untouched")
	}
}

func TestSegmentParserDiscardsIncompleteSegmentButKeepsWords(t *testing.T) {
	r := NewDualStreamReader(DefaultOptions(), DecodeNLPTags)
	feed(t, r,
		"> I 1",
		"> T 00:00:01,600 --> 00:00:02,684",
		"> R 1600 2684 1084",
		"> W 1600 mr PROPN False",
		"> W 2322 there ADV True",
		"> ",
	)

	side1 := r.Side1()
	if len(side1.Segments) != 0 {
		t.Fatalf("expected incomplete segment to be discarded, got %d segments", len(side1.Segments))
	}
	if side1.Discarded != 1 {
		t.Fatalf("expected 1 discarded segment, got %d", side1.Discarded)
	}
	if side1.Words.Len() != 2 {
		t.Fatalf("words must never be retracted; got %d", side1.Words.Len())
	}
	if side1.Words.At(0).Segment.Valid() {
		t.Fatal("word should reference the discarded (invalid) segment")
	}
}

func TestSegmentParserRequiresWordsUnlessAllowed(t *testing.T) {
	lines := []string{
		"> I 7",
		"> T 00:00:05,000 --> 00:00:06,000",
		"> R 5000 6000 1000",
		"> S [music]",
		"> ",
	}

	strict := NewDualStreamReader(DefaultOptions(), DecodeNLPTags)
	feed(t, strict, lines...)
	if got := len(strict.Side1().Segments); got != 0 {
		t.Fatalf("expected wordless segment to be invalid by default, got %d", got)
	}

	opts := DefaultOptions()
	opts.AllowEmptySegments = true
	lenient := NewDualStreamReader(opts, DecodeNLPTags)
	feed(t, lenient, lines...)
	segs := lenient.Side1().Segments
	if len(segs) != 1 {
		t.Fatalf("expected wordless segment to be kept, got %d", len(segs))
	}
	if segs[0].HasWords() || segs[0].FirstWord != -1 || segs[0].WordCount() != 0 {
		t.Fatalf("expected no word range, got [%d, %d]", segs[0].FirstWord, segs[0].LastWord)
	}
}

func TestSegmentParserIgnoresUnknownMnemonics(t *testing.T) {
	r := NewDualStreamReader(DefaultOptions(), DecodeRawTags)
	feed(t, r,
		"> I 3",
		"> X something new",
		"> D 100 200 100",
		"> T a --> b",
		"> R 1 2 1",
		"> S hi",
		"> W 1 hi",
		"> ",
	)
	if got := len(r.Side1().Segments); got != 1 {
		t.Fatalf("expected 1 segment, got %d", got)
	}
	if tags := r.Side1().Words.At(0).Tags; tags != nil {
		t.Fatalf("expected no tags, got %v", tags)
	}
}

func TestSegmentParserIgnoresWordWithoutText(t *testing.T) {
	r := NewDualStreamReader(DefaultOptions(), DecodeNLPTags)
	feed(t, r, "> W 1600")
	if r.Side1().Words.Len() != 0 {
		t.Fatal("expected W line without a word to be ignored")
	}
}

func TestSegmentParserMalformedNumbers(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		field string
	}{
		{"index", "> I one", "index"},
		{"range begin", "> R x 2684 1084", "range"},
		{"range duration", "> R 1600 2684 1.5", "range"},
		{"range missing", "> R 1600 2684", "range"},
		{"timestamp", "> W 16a0 mr PROPN False", "timestamp"},
		{"time labels", "> T 00:00:01,600 -->", "time labels"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewDualStreamReader(DefaultOptions(), DecodeNLPTags)
			feed(t, r, "> I 1", "> S ok")
			err := r.ParseLine(tt.line)
			if err == nil {
				t.Fatalf("expected error for %q", tt.line)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected ParseError, got %T", err)
			}
			if perr.Line != 3 {
				t.Errorf("Line = %d, want 3", perr.Line)
			}
			if perr.Field != tt.field {
				t.Errorf("Field = %q, want %q", perr.Field, tt.field)
			}
			if perr.Side != Side1 {
				t.Errorf("Side = %v, want side1", perr.Side)
			}
			if !errors.Is(err, ErrMalformedField) {
				t.Errorf("expected ErrMalformedField in chain: %v", err)
			}
			if again := r.ParseLine("> I 2"); again != err {
				t.Errorf("reader should stay poisoned, got %v", again)
			}
		})
	}
}

func TestDecodeNLPTags(t *testing.T) {
	tests := []struct {
		name     string
		fields   []string
		want     [2]string
		extra    int
		wantStop bool
	}{
		{"empty", nil, [2]string{"", ""}, 0, false},
		{"pos only", []string{"NOUN"}, [2]string{"NOUN", ""}, 0, false},
		{"pos and stop", []string{"ADV", "True"}, [2]string{"ADV", "True"}, 0, true},
		{"lowercase stop kept as written", []string{"ADV", "false"}, [2]string{"ADV", "false"}, 0, false},
		{"uppercase stop kept as written", []string{"ADV", "TRUE"}, [2]string{"ADV", "TRUE"}, 0, true},
		{"non-boolean second", []string{"ADV", "advmod"}, [2]string{"ADV", ""}, 1, false},
		{"extra tokens", []string{"ADV", "True", "RB", "advmod"}, [2]string{"ADV", "True"}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, err := DecodeNLPTags(tt.fields)
			if err != nil {
				t.Fatalf("DecodeNLPTags: %v", err)
			}
			if got := tags.Columns(); got != tt.want {
				t.Errorf("Columns() = %v, want %v", got, tt.want)
			}
			if len(tags.Extra) != tt.extra {
				t.Errorf("Extra = %v, want %d entries", tags.Extra, tt.extra)
			}
			if tags.IsStop != tt.wantStop {
				t.Errorf("IsStop = %v, want %v", tags.IsStop, tt.wantStop)
			}
		})
	}
}

func TestRawTagsColumns(t *testing.T) {
	tags, _ := DecodeRawTags([]string{"NOUN", "False", "extra"})
	if got := tags.Columns(); got != [2]string{"NOUN", "False"} {
		t.Fatalf("Columns() = %v", got)
	}
	one, _ := DecodeRawTags([]string{"NOUN"})
	if got := one.Columns(); got != [2]string{"NOUN", ""} {
		t.Fatalf("Columns() = %v", got)
	}
}
