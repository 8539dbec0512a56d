package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"srtdiff/internal/config"
)

// openInput returns the transcript stream named by args. No argument or "-"
// reads the command's stdin.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "-" {
		return io.NopCloser(cmd.InOrStdin()), "-", nil
	}
	path, err := config.ExpandPath(strings.TrimSpace(args[0]))
	if err != nil {
		return nil, "", err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}
	return file, path, nil
}
