package language

import "strings"

// Undetermined selects Unicode default case folding.
const Undetermined = "und"

type entry struct {
	code2   string   // ISO 639-1
	code3   string   // ISO 639-2/T
	alt3    string   // ISO 639-2/B when it differs
	display string   // English name
	words   []string // accepted spellings
	// special marks languages whose lowercase mapping differs from Unicode
	// default folding.
	special bool
}

var languages = []entry{
	{"en", "eng", "", "English", []string{"english"}, false},
	{"es", "spa", "", "Spanish", []string{"spanish"}, false},
	{"fr", "fra", "fre", "French", []string{"french"}, false},
	{"de", "deu", "ger", "German", []string{"german"}, false},
	{"it", "ita", "", "Italian", []string{"italian"}, false},
	{"pt", "por", "", "Portuguese", []string{"portuguese"}, false},
	{"nl", "nld", "dut", "Dutch", []string{"dutch"}, false},
	{"pl", "pol", "", "Polish", []string{"polish"}, false},
	{"sv", "swe", "", "Swedish", []string{"swedish"}, false},
	{"da", "dan", "", "Danish", []string{"danish"}, false},
	{"no", "nor", "", "Norwegian", []string{"norwegian"}, false},
	{"fi", "fin", "", "Finnish", []string{"finnish"}, false},
	{"ru", "rus", "", "Russian", []string{"russian"}, false},
	{"el", "ell", "gre", "Greek", []string{"greek"}, false},
	{"tr", "tur", "", "Turkish", []string{"turkish"}, true},
	{"az", "aze", "", "Azerbaijani", []string{"azerbaijani", "azeri"}, true},
	{"lt", "lit", "", "Lithuanian", []string{"lithuanian"}, true},
}

var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	return nil
}

// Canonical maps a code or name to the tag used for case folding. Empty input
// is Undetermined and unknown values are returned trimmed but otherwise
// unchanged.
func Canonical(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, Undetermined) {
		return Undetermined
	}
	if e := lookup(trimmed); e != nil {
		return e.code2
	}
	return trimmed
}

// DisplayName returns a human-readable name for a language setting.
func DisplayName(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" || strings.EqualFold(trimmed, Undetermined) {
		return "Unicode default"
	}
	if e := lookup(trimmed); e != nil {
		return e.display
	}
	return trimmed
}

// SpecialCasing reports whether code has lowercase rules that differ from
// Unicode default folding, such as the Turkish dotted and dotless i.
func SpecialCasing(code string) bool {
	if e := lookup(code); e != nil {
		return e.special
	}
	return false
}
