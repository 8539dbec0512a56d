package textutil

import "strings"

// StripDelimiter removes every occurrence of delim from value. No other
// escaping is applied, so the result can be joined with delim safely.
func StripDelimiter(value, delim string) string {
	if delim == "" || !strings.Contains(value, delim) {
		return value
	}
	return strings.ReplaceAll(value, delim, "")
}

// StripDelimiterAll applies StripDelimiter to each value in place and returns
// the same slice for chaining.
func StripDelimiterAll(values []string, delim string) []string {
	for i, v := range values {
		values[i] = StripDelimiter(v, delim)
	}
	return values
}

// ParseBool accepts the tagger literals in any case. ok is false when value is
// not a recognised boolean.
func ParseBool(value string) (result bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}
