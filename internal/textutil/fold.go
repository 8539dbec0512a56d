package textutil

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Folder produces case-insensitive comparison keys for words. The zero value
// is not usable; construct with NewFolder.
type Folder struct {
	tag    language.Tag
	caser  cases.Caser
	simple bool
}

// NewFolder builds a folder for the given BCP 47 tag. An empty tag or "und"
// selects Unicode default case folding; anything else uses the language's
// lowercase mapping (e.g. Turkish dotted/dotless i).
func NewFolder(tag string) (*Folder, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" || strings.EqualFold(tag, "und") {
		return &Folder{tag: language.Und, caser: cases.Fold(), simple: true}, nil
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("parse language %q: %w", tag, err)
	}
	return &Folder{tag: parsed, caser: cases.Lower(parsed)}, nil
}

// Key returns the folded form of word.
func (f *Folder) Key(word string) string {
	return f.caser.String(word)
}

// Keys folds every word and returns the keys in the same order.
func (f *Folder) Keys(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = f.Key(w)
	}
	return out
}

// Language reports the tag the folder was built with.
func (f *Folder) Language() string {
	if f.simple {
		return "und"
	}
	return f.tag.String()
}
