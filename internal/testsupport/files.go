package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes lines joined by newlines to path, creating parent
// directories as needed, and returns path.
func WriteFile(t testing.TB, path string, lines ...string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// Transcript is a small two-sided fixture. Side 1 reads "the quick brown fox"
// and side 2 reads "the quack brown dog fox", so the alignment distance is 2.
var Transcript = []string{
	"> I 1",
	"> T 00:00:00,100 --> 00:00:02,000",
	"> R 100 2000 1900",
	"> S The quick brown fox.",
	"> W 100 the DET True",
	"> W 400 quick ADJ False",
	"> W 900 brown ADJ False",
	"> W 1500 fox NOUN False",
	"> ",
	"< I 1",
	"< T 00:00:00,120 --> 00:00:02,500",
	"< R 120 2500 2380",
	"< S The quack brown dog fox.",
	"< W 120 the DET True",
	"< W 450 quack NOUN False",
	"< W 880 brown ADJ False",
	"< W 1300 dog NOUN False",
	"< W 1700 fox NOUN False",
	"< ",
}
