package levenshtein

import "math"

// EqualFunc decides whether two items are the same for alignment purposes.
type EqualFunc[T any] func(a, b T) bool

// CheckedEqualFunc is an EqualFunc that can refuse a comparison. The first
// error aborts the computation.
type CheckedEqualFunc[T any] func(a, b T) (bool, error)

// Engine is bound to one (from, to, equal) triple. The matrices are built on
// the first call to Distance or Script and the result is memoized. An Engine
// is not safe for concurrent use.
type Engine[T any] struct {
	from  []T
	to    []T
	equal CheckedEqualFunc[T]

	done     bool
	distance int
	ops      []Op
	err      error
}

// New returns an engine for an infallible predicate.
func New[T any](from, to []T, equal EqualFunc[T]) *Engine[T] {
	return NewChecked(from, to, func(a, b T) (bool, error) {
		return equal(a, b), nil
	})
}

// NewChecked returns an engine for a predicate that may fail.
func NewChecked[T any](from, to []T, equal CheckedEqualFunc[T]) *Engine[T] {
	return &Engine[T]{from: from, to: to, equal: equal}
}

// Cells returns the size of the operation matrix for sequences of the given
// lengths. It saturates at math.MaxUint64.
func Cells(fromLen, toLen int) uint64 {
	rows, cols := uint64(fromLen)+1, uint64(toLen)+1
	if rows != 0 && cols > math.MaxUint64/rows {
		return math.MaxUint64
	}
	return rows * cols
}

// Dimensions reports the source and target lengths.
func (e *Engine[T]) Dimensions() (int, int) {
	return len(e.from), len(e.to)
}

// Distance returns the minimum number of edits turning from into to.
func (e *Engine[T]) Distance() (int, error) {
	e.compute()
	return e.distance, e.err
}

// Script returns the edit script in forward order.
func (e *Engine[T]) Script() ([]Edit[T], error) {
	e.compute()
	if e.err != nil {
		return nil, e.err
	}
	return e.backtrace(), nil
}

// Walk calls fn for every edit in forward order and stops at the first error.
func (e *Engine[T]) Walk(fn func(Edit[T]) error) error {
	script, err := e.Script()
	if err != nil {
		return err
	}
	for _, edit := range script {
		if err := fn(edit); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine[T]) compute() {
	if e.done {
		return
	}
	e.done = true

	n, m := len(e.from), len(e.to)
	cols := m + 1
	ops := make([]Op, (n+1)*cols)

	// Only two cost rows are live at a time; the op matrix keeps the full
	// history needed for the backtrace.
	prev := make([]int, cols)
	curr := make([]int, cols)

	ops[0] = OpNone
	for j := 1; j <= m; j++ {
		prev[j] = j
		ops[j] = OpInsert
	}

	for i := 1; i <= n; i++ {
		row := i * cols
		curr[0] = i
		ops[row] = OpDelete
		for j := 1; j <= m; j++ {
			same, err := e.equal(e.from[i-1], e.to[j-1])
			if err != nil {
				e.err = &PreconditionError{From: i - 1, To: j - 1, Err: err}
				return
			}
			deletion := prev[j] + 1
			insertion := curr[j-1] + 1
			substitution := prev[j-1]
			if !same {
				substitution++
			}
			best := min(insertion, deletion, substitution)
			curr[j] = best

			switch {
			case best == insertion:
				ops[row+j] = OpInsert
			case best == deletion:
				ops[row+j] = OpDelete
			case best == substitution && !same:
				ops[row+j] = OpSubstitute
			default:
				ops[row+j] = OpMatch
			}
		}
		prev, curr = curr, prev
	}

	e.distance = prev[m]
	e.ops = ops
}

func (e *Engine[T]) backtrace() []Edit[T] {
	n, m := len(e.from), len(e.to)
	cols := m + 1
	script := make([]Edit[T], 0, max(n, m))

	i, j := n, m
	for i > 0 || j > 0 {
		var edit Edit[T]
		switch op := e.ops[i*cols+j]; op {
		case OpDelete:
			edit = Edit[T]{Op: op, From: e.from[i-1], FromIndex: i - 1, ToIndex: -1}
			i--
		case OpInsert:
			edit = Edit[T]{Op: op, To: e.to[j-1], FromIndex: -1, ToIndex: j - 1}
			j--
		default:
			edit = Edit[T]{Op: op, From: e.from[i-1], To: e.to[j-1], FromIndex: i - 1, ToIndex: j - 1}
			i--
			j--
		}
		script = append(script, edit)
	}

	for l, r := 0, len(script)-1; l < r; l, r = l+1, r-1 {
		script[l], script[r] = script[r], script[l]
	}
	return script
}

// Align is a convenience wrapper returning the distance and script for an
// infallible predicate. An EqualFunc cannot report an error, so Align cannot
// fail either.
func Align[T any](from, to []T, equal EqualFunc[T]) (int, []Edit[T]) {
	e := New(from, to, equal)
	d, err := e.Distance()
	if err != nil {
		return d, nil
	}
	return d, e.backtrace()
}
