// Package levenshtein computes the edit distance between two sequences and
// reconstructs the full edit script that connects them.
//
// The engine is generic over the item type and never inspects items itself;
// equality is supplied by the caller. Ties between equally cheap operations
// are broken in a fixed order (insert, delete, substitute, match) so the
// produced script is deterministic for a given input pair.
package levenshtein
