package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"srtdiff/internal/comparison"
	"srtdiff/internal/config"
	"srtdiff/internal/correlate"
	"srtdiff/internal/history"
	"srtdiff/internal/logging"
)

type compareFlags struct {
	format             string
	delimiter          string
	columns            string
	noDetails          bool
	side2Indent        int
	color              string
	foldCase           bool
	language           string
	maxCells           int64
	strict             bool
	allowEmptySegments bool
	side1Prefix        string
	side2Prefix        string
	history            bool
	noHistory          bool
}

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var flags compareFlags

	cmd := &cobra.Command{
		Use:   "compare [file|-]",
		Short: "Align both sides of a transcript stream and print the report",
		Long: `Read a combined I/T/R/S/W line stream, align the side 1 words against the
side 2 words with the Levenshtein distance and print the distance followed by
the per-word edit report. With no file, or "-", the stream is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.configCopy()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			logger, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}

			opts, err := comparison.OptionsFromConfig(cfg)
			if err != nil {
				return err
			}
			opts.Writer.Colorize = resolveColor(cfg.Output.Color, cmd.OutOrStdout())
			opts.Output = cmd.OutOrStdout()
			opts.Logger = logger

			in, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()
			opts.Input = in
			opts.InputName = name

			if cfg.History.Enabled {
				store, err := history.Open(cmd.Context(), cfg.History.Path)
				if err != nil {
					return fmt.Errorf("open history: %w", err)
				}
				defer store.Close()
				opts.History = store
			}

			result, err := comparison.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			logger.Info("comparison complete",
				logging.String("input", name),
				logging.Int("distance", result.Distance),
				logging.Duration("elapsed", result.Duration),
			)
			if result.Run != nil {
				logger.Info("run recorded", logging.String("run_id", result.Run.ShortID()))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.format, "format", "f", "", "Report format (csv, table, json)")
	f.StringVarP(&flags.delimiter, "delimiter", "d", "", "Field delimiter for csv output")
	f.StringVarP(&flags.columns, "columns", "C", "", "Ten header names separated by the delimiter")
	f.BoolVar(&flags.noDetails, "no-details", false, "Print the distance only")
	f.IntVar(&flags.side2Indent, "side2-indent", 0, "Spaces between '<' and the mnemonic in side 2 blocks")
	f.StringVar(&flags.color, "color", "", "Colour table output (auto, always, never)")
	f.BoolVarP(&flags.foldCase, "fold-case", "i", false, "Compare words case-insensitively")
	f.StringVar(&flags.language, "language", "", "BCP 47 tag for case folding")
	f.Int64Var(&flags.maxCells, "max-cells", 0, "Abort when the alignment matrix exceeds this many cells (0 disables)")
	f.BoolVar(&flags.strict, "strict", false, "Reject lines carrying neither side prefix")
	f.BoolVar(&flags.allowEmptySegments, "allow-empty-segments", false, "Keep segments that contributed no words")
	f.StringVar(&flags.side1Prefix, "side1-prefix", "", "Prefix marking side 1 lines")
	f.StringVar(&flags.side2Prefix, "side2-prefix", "", "Prefix marking side 2 lines")
	f.BoolVar(&flags.history, "history", false, "Record the run in the history store")
	f.BoolVar(&flags.noHistory, "no-history", false, "Do not record the run even if history is enabled")
	cmd.MarkFlagsMutuallyExclusive("history", "no-history")

	return cmd
}

// apply copies the flags the user set onto cfg and re-validates it.
func (f *compareFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("delimiter") {
		cfg.Output.Delimiter = f.delimiter
	}
	if changed("columns") {
		delim := cfg.Output.Delimiter
		if delim == "" {
			delim = ","
		}
		columns, err := correlate.ParseColumns(f.columns, delim)
		if err != nil {
			return fmt.Errorf("--columns: %w", err)
		}
		cfg.Output.Columns = columns
	}
	if changed("no-details") {
		cfg.Output.Details = !f.noDetails
	}
	if changed("side2-indent") {
		cfg.Output.Side2Indent = f.side2Indent
	}
	if changed("color") {
		cfg.Output.Color = f.color
	}
	if changed("fold-case") {
		cfg.Alignment.FoldCase = f.foldCase
	}
	if changed("language") {
		cfg.Alignment.Language = f.language
		cfg.Alignment.FoldCase = true
	}
	if changed("max-cells") {
		cfg.Alignment.MaxCells = f.maxCells
	}
	if changed("strict") {
		cfg.Input.StrictRouting = f.strict
	}
	if changed("allow-empty-segments") {
		cfg.Input.AllowEmptySegments = f.allowEmptySegments
	}
	if changed("side1-prefix") {
		cfg.Input.Side1Prefix = f.side1Prefix
	}
	if changed("side2-prefix") {
		cfg.Input.Side2Prefix = f.side2Prefix
	}
	if changed("history") {
		cfg.History.Enabled = f.history
	}
	if changed("no-history") && f.noHistory {
		cfg.History.Enabled = false
	}
	return cfg.Finalize()
}
