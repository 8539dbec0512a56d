package comparison

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"srtdiff/internal/config"
	"srtdiff/internal/correlate"
	"srtdiff/internal/history"
	"srtdiff/internal/transcript"
)

// Recorder persists run summaries. *history.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, run *history.Run) error
}

// Options describes one comparison.
type Options struct {
	Input     io.Reader
	InputName string
	Output    io.Writer

	Reader   transcript.Options
	FoldCase bool
	Language string
	// MaxCells bounds the alignment matrix. Zero disables the guard.
	MaxCells int64

	Format correlate.Format
	Writer correlate.Options

	History Recorder
	Logger  *slog.Logger
}

// OptionsFromConfig maps a finalized configuration onto Options. Input,
// Output, History and Logger are left for the caller, as is Writer.Colorize.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	if cfg == nil {
		return Options{}, fmt.Errorf("config is nil")
	}
	format, err := correlate.ParseFormat(cfg.Output.Format)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Reader: transcript.Options{
			Side1Prefix:        cfg.Input.Side1Prefix,
			Side2Prefix:        cfg.Input.Side2Prefix,
			StrictRouting:      cfg.Input.StrictRouting,
			AllowEmptySegments: cfg.Input.AllowEmptySegments,
		},
		FoldCase: cfg.Alignment.FoldCase,
		Language: cfg.Alignment.Language,
		MaxCells: cfg.Alignment.MaxCells,
		Format:   format,
		Writer: correlate.Options{
			Delimiter:   cfg.Output.Delimiter,
			Columns:     append([]string(nil), cfg.Output.Columns...),
			Details:     cfg.Output.Details,
			Side2Indent: cfg.Output.Side2Indent,
		},
	}, nil
}
