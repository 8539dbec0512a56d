package comparison

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"srtdiff/internal/correlate"
	"srtdiff/internal/history"
	"srtdiff/internal/language"
	"srtdiff/internal/levenshtein"
	"srtdiff/internal/logging"
	"srtdiff/internal/textutil"
	"srtdiff/internal/transcript"
)

// ErrTooLarge is returned when the alignment matrix would exceed MaxCells.
var ErrTooLarge = errors.New("alignment matrix too large")

// Word is the record type flowing through a comparison.
type Word = *transcript.WordRecord[transcript.NLPTags]

// Input is a parsed and verified transcript pair.
type Input struct {
	Side1 transcript.Dataset[transcript.NLPTags]
	Side2 transcript.Dataset[transcript.NLPTags]
	Lines int
}

// Result summarises a finished comparison.
type Result struct {
	Distance int
	Counts   levenshtein.Counts
	Input    *Input
	Duration time.Duration
	// Run is the stored history entry, nil when history is off.
	Run *history.Run
}

// Load parses in and verifies both sides.
func Load(ctx context.Context, in io.Reader, opts transcript.Options) (*Input, error) {
	reader, err := transcript.Read(ctx, in, opts, transcript.DecodeNLPTags)
	if err != nil {
		return nil, err
	}
	return &Input{
		Side1: reader.Side1(),
		Side2: reader.Side2(),
		Lines: reader.Lines(),
	}, nil
}

// Run executes a full comparison and writes the report to opts.Output.
func Run(ctx context.Context, opts Options) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Input == nil {
		return Result{}, errors.New("comparison input is nil")
	}
	if opts.Output == nil {
		return Result{}, errors.New("comparison output is nil")
	}
	logger := logging.NewComponentLogger(opts.Logger, "comparison")
	started := time.Now()

	readerOpts := opts.Reader
	readerOpts.Logger = logging.NewComponentLogger(opts.Logger, "reader")
	input, err := Load(ctx, opts.Input, readerOpts)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", displayName(opts.InputName), err)
	}

	from := input.Side1.Words.Words()
	to := input.Side2.Words.Words()
	cells := levenshtein.Cells(len(from), len(to))
	logger.Debug("alignment dimensions",
		logging.Int("side1_words", len(from)),
		logging.Int("side2_words", len(to)),
		logging.Uint64("cells", cells),
	)
	if opts.MaxCells > 0 && cells > uint64(opts.MaxCells) {
		return Result{}, fmt.Errorf("%w: %d x %d words needs %d cells, limit is %d (alignment.max_cells)",
			ErrTooLarge, len(from), len(to), cells, opts.MaxCells)
	}

	equal, err := equality(input, opts)
	if err != nil {
		return Result{}, err
	}
	if opts.FoldCase {
		logger.Debug("case folding enabled",
			logging.String("language", language.DisplayName(opts.Language)),
			logging.Bool("special_casing", language.SpecialCasing(opts.Language)),
		)
	}
	engine := levenshtein.NewChecked(from, to, equal)

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	distance, err := engine.Distance()
	if err != nil {
		return Result{}, fmt.Errorf("align: %w", err)
	}
	script, err := engine.Script()
	if err != nil {
		return Result{}, fmt.Errorf("align: %w", err)
	}
	counts := levenshtein.Count(script)
	logger.Debug("alignment complete",
		logging.Int("distance", distance),
		logging.Int("matches", counts.Match),
		logging.Int("substitutions", counts.Substitute),
		logging.Int("deletions", counts.Delete),
		logging.Int("insertions", counts.Insert),
	)

	if err := render(opts, distance, script); err != nil {
		return Result{}, fmt.Errorf("write report: %w", err)
	}

	result := Result{
		Distance: distance,
		Counts:   counts,
		Input:    input,
		Duration: time.Since(started),
	}
	if opts.History != nil {
		run := newRun(opts, result)
		if err := opts.History.Record(ctx, run); err != nil {
			return result, fmt.Errorf("record history: %w", err)
		}
		result.Run = run
		logger.Debug("run recorded", logging.String("run_id", run.ID))
	}
	return result, nil
}

func render(opts Options, distance int, script []levenshtein.Edit[Word]) error {
	writer, err := correlate.NewWriter(opts.Format, opts.Output, opts.Writer)
	if err != nil {
		return err
	}
	if err := writer.Begin(distance); err != nil {
		return err
	}
	if opts.Writer.Details {
		correlator := correlate.New[transcript.NLPTags](transcript.NLPTags.Columns)
		if err := correlator.Correlate(script, writer.WriteRow); err != nil {
			return err
		}
	}
	return writer.End()
}

// equality compares word text only. With case folding the keys are computed
// once per side and looked up by position.
func equality(input *Input, opts Options) (levenshtein.CheckedEqualFunc[Word], error) {
	if !opts.FoldCase {
		return func(a, b Word) (bool, error) {
			if a == nil || b == nil {
				return false, errors.New("nil word record")
			}
			return a.Text == b.Text, nil
		}, nil
	}

	folder, err := textutil.NewFolder(opts.Language)
	if err != nil {
		return nil, err
	}
	fromKeys := folder.Keys(input.Side1.Words.Texts())
	toKeys := folder.Keys(input.Side2.Words.Texts())
	return func(a, b Word) (bool, error) {
		if a == nil || b == nil {
			return false, errors.New("nil word record")
		}
		if a.Position >= len(fromKeys) || b.Position >= len(toKeys) {
			return false, fmt.Errorf("word position out of range: %d, %d", a.Position, b.Position)
		}
		return fromKeys[a.Position] == toKeys[b.Position], nil
	}, nil
}

func newRun(opts Options, result Result) *history.Run {
	run := &history.Run{
		Input:         displayName(opts.InputName),
		Distance:      result.Distance,
		Side1Words:    result.Input.Side1.Words.Len(),
		Side2Words:    result.Input.Side2.Words.Len(),
		Side1Segments: len(result.Input.Side1.Segments),
		Side2Segments: len(result.Input.Side2.Segments),
		Matches:       result.Counts.Match,
		Substitutions: result.Counts.Substitute,
		Deletions:     result.Counts.Delete,
		Insertions:    result.Counts.Insert,
		FoldCase:      opts.FoldCase,
		Duration:      result.Duration,
	}
	if opts.FoldCase {
		run.Language = opts.Language
	}
	return run
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "<stdin>"
	}
	return name
}

// compile-time check that the store satisfies Recorder.
var _ Recorder = (*history.Store)(nil)
