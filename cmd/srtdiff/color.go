package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiBlue  = "\033[34m"
)

// resolveColor maps the output.color mode onto a decision for writer.
func resolveColor(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		return shouldColorize(writer)
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderSectionHeader(title string, colorize bool) []string {
	line := title
	rule := make([]byte, len(line))
	for i := range rule {
		rule[i] = '-'
	}
	if colorize {
		return []string{ansiBold + ansiBlue + line + ansiReset, ansiBlue + string(rule) + ansiReset}
	}
	return []string{line, string(rule)}
}
