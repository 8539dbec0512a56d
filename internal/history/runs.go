package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no run matches an identifier.
var ErrNotFound = errors.New("run not found")

// ErrAmbiguous is returned when an identifier prefix matches several runs.
var ErrAmbiguous = errors.New("run id prefix is ambiguous")

// Run summarises one comparison.
type Run struct {
	ID            string
	CreatedAt     time.Time
	Input         string
	Distance      int
	Side1Words    int
	Side2Words    int
	Side1Segments int
	Side2Segments int
	Matches       int
	Substitutions int
	Deletions     int
	Insertions    int
	FoldCase      bool
	Language      string
	Duration      time.Duration
}

// ShortID returns the first eight characters of the run id.
func (r *Run) ShortID() string {
	if len(r.ID) <= 8 {
		return r.ID
	}
	return r.ID[:8]
}

// createdAtLayout is fixed width so created_at sorts lexically.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

const runColumns = "id, created_at, input, distance, side1_words, side2_words, side1_segments, side2_segments, matches, substitutions, deletions, insertions, fold_case, language, duration_ms"

// Record inserts run. An empty ID is filled with a new UUID and a zero
// CreatedAt with the current time.
func (s *Store) Record(ctx context.Context, run *Run) error {
	if run == nil {
		return errors.New("run is nil")
	}
	ctx = ensureContext(ctx)
	if run.ID == "" {
		run.ID = uuid.NewString()
	} else if _, err := uuid.Parse(run.ID); err != nil {
		return fmt.Errorf("run id %q: %w", run.ID, err)
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	return s.withLock(ctx, func() error {
		_, err := s.execWithRetry(ctx,
			`INSERT INTO runs (`+runColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID,
			run.CreatedAt.UTC().Format(createdAtLayout),
			run.Input,
			run.Distance,
			run.Side1Words,
			run.Side2Words,
			run.Side1Segments,
			run.Side2Segments,
			run.Matches,
			run.Substitutions,
			run.Deletions,
			run.Insertions,
			boolToInt(run.FoldCase),
			nullableString(run.Language),
			run.Duration.Milliseconds(),
		)
		if err != nil {
			return fmt.Errorf("insert run: %w", err)
		}
		return nil
	})
}

// List returns the most recent runs first. A limit <= 0 returns every run.
func (s *Store) List(ctx context.Context, limit int) ([]*Run, error) {
	ctx = ensureContext(ctx)
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY created_at DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var runs []*Run
	err := retryOnBusy(ctx, func() error {
		runs = runs[:0]
		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			run, err := scanRun(rows)
			if err != nil {
				return err
			}
			runs = append(runs, run)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Get fetches a run by full id or by a unique prefix.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	ctx = ensureContext(ctx)
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return nil, ErrNotFound
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE id LIKE ? ESCAPE '\' ORDER BY (id = ?) DESC, created_at DESC LIMIT 2`,
		escapeLike(id)+"%", id)
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	defer rows.Close()

	var matches []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		if run.ID == id {
			return run, nil
		}
		matches = append(matches, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguous, id)
	}
}

// Remove deletes the run with the given full id.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	ctx = ensureContext(ctx)
	var removed bool
	err := s.withLock(ctx, func() error {
		res, err := s.execWithRetry(ctx, `DELETE FROM runs WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("remove run: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		removed = affected > 0
		return nil
	})
	return removed, err
}

// Clear deletes every run and reports how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	ctx = ensureContext(ctx)
	var cleared int64
	err := s.withLock(ctx, func() error {
		res, err := s.execWithRetry(ctx, `DELETE FROM runs`)
		if err != nil {
			return fmt.Errorf("clear runs: %w", err)
		}
		cleared, err = res.RowsAffected()
		return err
	})
	return cleared, err
}

func scanRun(scanner interface{ Scan(dest ...any) error }) (*Run, error) {
	var (
		run        Run
		createdRaw string
		foldCase   int64
		lang       sql.NullString
		durationMs int64
	)
	if err := scanner.Scan(
		&run.ID,
		&createdRaw,
		&run.Input,
		&run.Distance,
		&run.Side1Words,
		&run.Side2Words,
		&run.Side1Segments,
		&run.Side2Segments,
		&run.Matches,
		&run.Substitutions,
		&run.Deletions,
		&run.Insertions,
		&foldCase,
		&lang,
		&durationMs,
	); err != nil {
		return nil, fmt.Errorf("scan run: %w", err)
	}
	created, err := time.Parse(time.RFC3339Nano, createdRaw)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdRaw, err)
	}
	run.CreatedAt = created
	run.FoldCase = foldCase != 0
	run.Language = lang.String
	run.Duration = time.Duration(durationMs) * time.Millisecond
	return &run, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func escapeLike(value string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(value)
}
