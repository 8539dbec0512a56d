package transcript

import (
	"srtdiff/internal/textutil"
)

// TagDecoder folds the trailing tokens of a W line into a tag payload.
type TagDecoder[T any] func(fields []string) (T, error)

// NLPTags holds the classifier columns carried on W lines: the
// part-of-speech label followed by the stop-word flag. Stop keeps the flag
// token as written; IsStop is its parsed value. Tokens beyond those two are
// kept verbatim in Extra.
type NLPTags struct {
	POS     string
	Stop    string
	IsStop  bool
	HasStop bool
	Extra   []string
}

// DecodeNLPTags is the TagDecoder for classifier output. It never fails: a
// second token that is not a boolean literal is kept in Extra and HasStop
// stays false.
func DecodeNLPTags(fields []string) (NLPTags, error) {
	var tags NLPTags
	if len(fields) == 0 {
		return tags, nil
	}
	tags.POS = fields[0]
	rest := fields[1:]
	if len(rest) > 0 {
		if stop, ok := textutil.ParseBool(rest[0]); ok {
			tags.Stop = rest[0]
			tags.IsStop = stop
			tags.HasStop = true
			rest = rest[1:]
		}
	}
	if len(rest) > 0 {
		tags.Extra = append([]string(nil), rest...)
	}
	return tags, nil
}

// Columns returns the POS and stop-word tokens as they appeared in the input.
// Absent values are empty.
func (t NLPTags) Columns() [2]string {
	return [2]string{t.POS, t.Stop}
}

// RawTags keeps W line tags as the literal tokens.
type RawTags []string

// DecodeRawTags is the TagDecoder that keeps tokens unchanged.
func DecodeRawTags(fields []string) (RawTags, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	return append(RawTags(nil), fields...), nil
}

// Columns returns the first two raw tokens.
func (t RawTags) Columns() [2]string {
	var cols [2]string
	for i := 0; i < len(t) && i < len(cols); i++ {
		cols[i] = t[i]
	}
	return cols
}
