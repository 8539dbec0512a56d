package comparison_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"srtdiff/internal/comparison"
	"srtdiff/internal/correlate"
	"srtdiff/internal/history"
	"srtdiff/internal/testsupport"
	"srtdiff/internal/transcript"
)

func fixture() *strings.Reader {
	return strings.NewReader(strings.Join(testsupport.Transcript, "\n") + "\n")
}

func options(t *testing.T, opts ...testsupport.ConfigOption) comparison.Options {
	t.Helper()
	cfg := testsupport.NewConfig(t, opts...)
	o, err := comparison.OptionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("OptionsFromConfig: %v", err)
	}
	return o
}

func TestRunWritesReferenceReport(t *testing.T) {
	opts := options(t)
	var out bytes.Buffer
	opts.Input = fixture()
	opts.Output = &out

	result, err := comparison.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Distance != 2 {
		t.Fatalf("expected distance 2, got %d", result.Distance)
	}
	if result.Counts.Match != 3 || result.Counts.Substitute != 1 || result.Counts.Insert != 1 || result.Counts.Delete != 0 {
		t.Fatalf("unexpected counts: %+v", result.Counts)
	}
	if result.Run != nil {
		t.Fatal("expected no history run without a recorder")
	}

	indent := strings.Repeat(" ", 15)
	want := strings.Join([]string{
		"2",
		"#--details--",
		"FROM_TS,FROM_WORD,FROM_POS,FROM_ISSTOP,LEV_OP,TO_TS,TO_WORD,TO_POS,TO_ISSTOP,TS_DIFF",
		"",
		"> I 1",
		"> T 00:00:00,100 --> 00:00:02,000",
		"> R 100 2000 1900",
		"> S The quick brown fox.",
		"",
		"",
		"<" + indent + " I 1",
		"<" + indent + " T 00:00:00,120 --> 00:00:02,500",
		"<" + indent + " R 120 2500 2380",
		"<" + indent + " S The quack brown dog fox.",
		"",
		"100,the,DET,True,=,120,the,DET,True,20",
		"400,quick,ADJ,False,R,450,quack,NOUN,False,50",
		"900,brown,ADJ,False,=,880,brown,ADJ,False,20",
		",,,,I,1300,dog,NOUN,False,",
		"1500,fox,NOUN,False,=,1700,fox,NOUN,False,200",
	}, "\n") + "\n"
	if got := out.String(); got != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunWithoutDetailsPrintsDistanceOnly(t *testing.T) {
	opts := options(t)
	opts.Writer.Details = false
	var out bytes.Buffer
	opts.Input = fixture()
	opts.Output = &out

	if _, err := comparison.Run(context.Background(), opts); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out.String() != "2\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunFoldCase(t *testing.T) {
	input := strings.Join([]string{
		"> I 1", "> T a --> b", "> R 0 10 10", "> S x",
		"> W 0 Istanbul X False",
		"> W 5 HELLO X False",
		"> ",
		"< I 1", "< T a --> b", "< R 0 10 10", "< S x",
		"< W 0 istanbul X False",
		"< W 5 hello X False",
		"< ",
	}, "\n")

	tests := []struct {
		name     string
		opts     []testsupport.ConfigOption
		distance int
	}{
		{"exact", nil, 2},
		{"folded", []testsupport.ConfigOption{testsupport.WithFoldCase("")}, 0},
		{"turkish", []testsupport.ConfigOption{testsupport.WithFoldCase("tr")}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options(t, tt.opts...)
			opts.Writer.Details = false
			opts.Input = strings.NewReader(input)
			opts.Output = &bytes.Buffer{}
			result, err := comparison.Run(context.Background(), opts)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if result.Distance != tt.distance {
				t.Fatalf("expected distance %d, got %d", tt.distance, result.Distance)
			}
		})
	}
}

func TestRunRejectsOversizedMatrix(t *testing.T) {
	// 5 x 6 cells for the fixture
	opts := options(t, testsupport.WithMaxCells(29))
	var out bytes.Buffer
	opts.Input = fixture()
	opts.Output = &out

	_, err := comparison.Run(context.Background(), opts)
	if !errors.Is(err, comparison.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}

	opts = options(t, testsupport.WithMaxCells(30))
	opts.Input = fixture()
	opts.Output = &bytes.Buffer{}
	if _, err := comparison.Run(context.Background(), opts); err != nil {
		t.Fatalf("expected 30 cells to fit, got %v", err)
	}
}

func TestRunPropagatesParseErrors(t *testing.T) {
	opts := options(t)
	var out bytes.Buffer
	opts.Input = strings.NewReader("> I 1\n> R 10 x 20\n")
	opts.InputName = "broken.txt"
	opts.Output = &out

	_, err := comparison.Run(context.Background(), opts)
	var perr *transcript.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Line != 2 {
		t.Fatalf("expected line 2, got %d", perr.Line)
	}
	if !strings.Contains(err.Error(), "broken.txt") {
		t.Fatalf("expected input name in error: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output on parse error, got %q", out.String())
	}
}

func TestRunRecordsHistory(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithHistory(), testsupport.WithFormat("json"))
	store := testsupport.MustOpenHistory(t, cfg)
	opts, err := comparison.OptionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("OptionsFromConfig: %v", err)
	}
	if opts.Format != correlate.FormatJSON {
		t.Fatalf("expected json format, got %q", opts.Format)
	}
	opts.Input = fixture()
	opts.InputName = "fixture.txt"
	opts.Output = &bytes.Buffer{}
	opts.History = store

	result, err := comparison.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Run == nil || result.Run.ID == "" {
		t.Fatal("expected a recorded run")
	}

	stored, err := store.Get(context.Background(), result.Run.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.Input != "fixture.txt" || stored.Distance != 2 || stored.Side1Words != 4 || stored.Side2Words != 5 {
		t.Fatalf("unexpected stored run: %#v", stored)
	}
	if stored.Side1Segments != 1 || stored.Insertions != 1 || stored.Substitutions != 1 {
		t.Fatalf("unexpected stored counts: %#v", stored)
	}
}

type failingRecorder struct{}

func (failingRecorder) Record(context.Context, *history.Run) error {
	return errors.New("disk full")
}

func TestRunSurfacesHistoryFailure(t *testing.T) {
	opts := options(t)
	opts.Input = fixture()
	opts.Output = &bytes.Buffer{}
	opts.History = failingRecorder{}

	result, err := comparison.Run(context.Background(), opts)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected history error, got %v", err)
	}
	if result.Distance != 2 {
		t.Fatalf("expected the result to survive a history failure, got %+v", result)
	}
}

func TestRunRequiresInputAndOutput(t *testing.T) {
	opts := options(t)
	if _, err := comparison.Run(context.Background(), opts); err == nil {
		t.Fatal("expected missing input to fail")
	}
	opts.Input = fixture()
	if _, err := comparison.Run(context.Background(), opts); err == nil {
		t.Fatal("expected missing output to fail")
	}
}

func TestLoad(t *testing.T) {
	input, err := comparison.Load(context.Background(), fixture(), transcript.DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if input.Side1.Words.Len() != 4 || input.Side2.Words.Len() != 5 {
		t.Fatalf("unexpected word counts: %d, %d", input.Side1.Words.Len(), input.Side2.Words.Len())
	}
	if input.Lines != len(testsupport.Transcript) {
		t.Fatalf("expected %d lines, got %d", len(testsupport.Transcript), input.Lines)
	}
}
