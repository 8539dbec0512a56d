package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"srtdiff/internal/comparison"
	"srtdiff/internal/transcript"
)

type parsedWord struct {
	Position    int    `json:"position"`
	TimestampMs int64  `json:"timestamp_ms"`
	Text        string `json:"text"`
	POS         string `json:"pos,omitempty"`
	IsStop      *bool  `json:"is_stop,omitempty"`
	Stop        string `json:"stop,omitempty"`
	Segment     *int   `json:"segment,omitempty"`
}

type parsedSegment struct {
	Index      int    `json:"index"`
	BeginLabel string `json:"begin_label"`
	EndLabel   string `json:"end_label"`
	BeginMs    int64  `json:"begin_ms"`
	EndMs      int64  `json:"end_ms"`
	DurationMs int64  `json:"duration_ms"`
	Text       string `json:"text"`
	FirstWord  int    `json:"first_word"`
	LastWord   int    `json:"last_word"`
}

type parsedSide struct {
	Side      string          `json:"side"`
	Words     []parsedWord    `json:"words"`
	Segments  []parsedSegment `json:"segments"`
	Discarded int             `json:"discarded_segments"`
}

type parseOutput struct {
	Lines int          `json:"lines"`
	Sides []parsedSide `json:"sides"`
}

func newParseCommand(ctx *commandContext) *cobra.Command {
	var (
		jsonOut bool
		side    int
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Dump the words and segments parsed from each side",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.configCopy()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("strict") {
				cfg.Input.StrictRouting = strict
			}
			if side != 0 && side != 1 && side != 2 {
				return fmt.Errorf("--side must be 1 or 2, got %d", side)
			}

			logger, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}

			opts, err := comparison.OptionsFromConfig(cfg)
			if err != nil {
				return err
			}
			opts.Reader.Logger = logger

			in, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			input, err := comparison.Load(cmd.Context(), in, opts.Reader)
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}

			out := parseOutput{Lines: input.Lines}
			for _, ds := range []transcript.Dataset[transcript.NLPTags]{input.Side1, input.Side2} {
				if side != 0 && int(ds.Side) != side {
					continue
				}
				out.Sides = append(out.Sides, toParsedSide(ds))
			}

			if jsonOut {
				return writeJSON(cmd, out)
			}
			writeLines(cmd, renderParseOutput(out, resolveColor(cfg.Output.Color, cmd.OutOrStdout())))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON")
	cmd.Flags().IntVar(&side, "side", 0, "Only dump side 1 or side 2")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject lines carrying neither side prefix")
	return cmd
}

func toParsedSide(ds transcript.Dataset[transcript.NLPTags]) parsedSide {
	out := parsedSide{
		Side:      ds.Side.String(),
		Words:     make([]parsedWord, 0, ds.Words.Len()),
		Segments:  make([]parsedSegment, 0, len(ds.Segments)),
		Discarded: ds.Discarded,
	}
	for _, w := range ds.Words.Words() {
		pw := parsedWord{
			Position:    w.Position,
			TimestampMs: w.TimestampMs,
			Text:        w.Text,
			POS:         w.Tags.POS,
			Stop:        w.Tags.Stop,
		}
		if w.Tags.HasStop {
			stop := w.Tags.IsStop
			pw.IsStop = &stop
		}
		if w.Segment.Valid() {
			index := w.Segment.Index
			pw.Segment = &index
		}
		out.Words = append(out.Words, pw)
	}
	for _, seg := range ds.Segments {
		out.Segments = append(out.Segments, parsedSegment{
			Index:      seg.Index,
			BeginLabel: seg.BeginLabel,
			EndLabel:   seg.EndLabel,
			BeginMs:    seg.BeginMs,
			EndMs:      seg.EndMs,
			DurationMs: seg.DurationMs,
			Text:       seg.Text,
			FirstWord:  seg.FirstWord,
			LastWord:   seg.LastWord,
		})
	}
	return out
}

func renderParseOutput(out parseOutput, colorize bool) []string {
	var lines []string
	for i, side := range out.Sides {
		if i > 0 {
			lines = append(lines, "")
		}
		title := fmt.Sprintf("%s: %d words, %d segments", side.Side, len(side.Words), len(side.Segments))
		if side.Discarded > 0 {
			title += fmt.Sprintf(" (%d discarded)", side.Discarded)
		}
		lines = append(lines, renderSectionHeader(title, colorize)...)

		segRows := make([][]string, 0, len(side.Segments))
		for _, seg := range side.Segments {
			words := ""
			if seg.FirstWord >= 0 {
				words = fmt.Sprintf("%d-%d", seg.FirstWord, seg.LastWord)
			}
			segRows = append(segRows, []string{
				strconv.Itoa(seg.Index),
				seg.BeginLabel,
				seg.EndLabel,
				words,
				seg.Text,
			})
		}
		lines = append(lines, renderTable("Segments", []tableColumn{
			{header: "#", align: alignRight},
			{header: "Begin"},
			{header: "End"},
			{header: "Words", align: alignRight},
			{header: "Text"},
		}, segRows, nil))

		wordRows := make([][]string, 0, len(side.Words))
		for _, w := range side.Words {
			stop := w.Stop
			seg := ""
			if w.Segment != nil {
				seg = strconv.Itoa(*w.Segment)
			}
			wordRows = append(wordRows, []string{
				strconv.Itoa(w.Position),
				strconv.FormatInt(w.TimestampMs, 10),
				w.Text,
				w.POS,
				stop,
				seg,
			})
		}
		lines = append(lines, renderTable("Words", []tableColumn{
			{header: "Pos", align: alignRight},
			{header: "Ms", align: alignRight},
			{header: "Word"},
			{header: "Tag"},
			{header: "Stop"},
			{header: "Segment", align: alignRight},
		}, wordRows, nil))
	}
	return append(lines, fmt.Sprintf("%d lines read", out.Lines))
}
