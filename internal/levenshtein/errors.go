package levenshtein

import "fmt"

// PreconditionError reports that the equality predicate failed for the item
// pair at From and To.
type PreconditionError struct {
	From int
	To   int
	Err  error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("compare source item %d with target item %d: %v", e.From, e.To, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }
