package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"srtdiff/internal/history"
	"srtdiff/internal/language"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded comparison runs",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryRemoveCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))

	return historyCmd
}

func (c *commandContext) withHistory(cmd *cobra.Command, fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := history.Open(cmd.Context(), cfg.History.Path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()
	return fn(store)
}

type runView struct {
	ID            string `json:"id"`
	CreatedAt     string `json:"created_at"`
	Input         string `json:"input"`
	Distance      int    `json:"distance"`
	Side1Words    int    `json:"side1_words"`
	Side2Words    int    `json:"side2_words"`
	Side1Segments int    `json:"side1_segments"`
	Side2Segments int    `json:"side2_segments"`
	Matches       int    `json:"matches"`
	Substitutions int    `json:"substitutions"`
	Deletions     int    `json:"deletions"`
	Insertions    int    `json:"insertions"`
	FoldCase      bool   `json:"fold_case"`
	Language      string `json:"language,omitempty"`
	DurationMs    int64  `json:"duration_ms"`
}

func toRunView(run *history.Run) runView {
	return runView{
		ID:            run.ID,
		CreatedAt:     run.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Input:         run.Input,
		Distance:      run.Distance,
		Side1Words:    run.Side1Words,
		Side2Words:    run.Side2Words,
		Side1Segments: run.Side1Segments,
		Side2Segments: run.Side2Segments,
		Matches:       run.Matches,
		Substitutions: run.Substitutions,
		Deletions:     run.Deletions,
		Insertions:    run.Insertions,
		FoldCase:      run.FoldCase,
		Language:      run.Language,
		DurationMs:    run.Duration.Milliseconds(),
	}
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var (
		limit   int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(cmd, func(store *history.Store) error {
				runs, err := store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if jsonOut {
					views := make([]runView, 0, len(runs))
					for _, run := range runs {
						views = append(views, toRunView(run))
					}
					return writeJSON(cmd, views)
				}
				if len(runs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded")
					return nil
				}
				writeLines(cmd, []string{renderRunTable(runs)})
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON")
	return cmd
}

func renderRunTable(runs []*history.Run) string {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.ShortID(),
			formatTimestamp(run.CreatedAt),
			run.Input,
			strconv.Itoa(run.Distance),
			fmt.Sprintf("%d/%d", run.Side1Words, run.Side2Words),
			fmt.Sprintf("%d/%d/%d/%d", run.Matches, run.Substitutions, run.Deletions, run.Insertions),
			formatDuration(run.Duration),
		})
	}
	return renderTable("", []tableColumn{
		{header: "ID"},
		{header: "Created"},
		{header: "Input"},
		{header: "Distance", align: alignRight},
		{header: "Words", align: alignRight},
		{header: "=/R/D/I", align: alignRight},
		{header: "Elapsed", align: alignRight},
	}, rows, nil)
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one run by id or unique id prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(cmd, func(store *history.Store) error {
				run, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, toRunView(run))
				}
				lang := "-"
				if run.FoldCase {
					lang = language.DisplayName(run.Language)
				}
				writeLines(cmd, []string{
					fmt.Sprintf("ID:            %s", run.ID),
					fmt.Sprintf("Created:       %s", formatTimestamp(run.CreatedAt)),
					fmt.Sprintf("Input:         %s", run.Input),
					fmt.Sprintf("Distance:      %d", run.Distance),
					fmt.Sprintf("Words:         %d / %d", run.Side1Words, run.Side2Words),
					fmt.Sprintf("Segments:      %d / %d", run.Side1Segments, run.Side2Segments),
					fmt.Sprintf("Matches:       %d", run.Matches),
					fmt.Sprintf("Substitutions: %d", run.Substitutions),
					fmt.Sprintf("Deletions:     %d", run.Deletions),
					fmt.Sprintf("Insertions:    %d", run.Insertions),
					fmt.Sprintf("Fold case:     %s (%s)", yesNo(run.FoldCase), lang),
					fmt.Sprintf("Elapsed:       %s", formatDuration(run.Duration)),
				})
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON")
	return cmd
}

func newHistoryRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete one run by id or unique id prefix",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(cmd, func(store *history.Store) error {
				run, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				removed, err := store.Remove(cmd.Context(), run.ID)
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("%w: %s", history.ErrNotFound, run.ID)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed run %s\n", run.ShortID())
				return nil
			})
		},
	}
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded run",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear history without --yes")
			}
			return ctx.withHistory(cmd, func(store *history.Store) error {
				cleared, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d run(s)\n", cleared)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deleting all runs")
	return cmd
}
