package config

import (
	"fmt"
	"os"
	"strings"

	"srtdiff/internal/language"
)

func (c *Config) normalize() error {
	c.normalizeInput()
	c.normalizeAlignment()
	c.normalizeOutput()
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

// Prefixes are significant byte for byte, so they are never trimmed.
func (c *Config) normalizeInput() {
	if c.Input.Side1Prefix == "" {
		c.Input.Side1Prefix = defaultSide1Prefix
	}
	if c.Input.Side2Prefix == "" {
		c.Input.Side2Prefix = defaultSide2Prefix
	}
}

func (c *Config) normalizeAlignment() {
	c.Alignment.Language = language.Canonical(c.Alignment.Language)
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	if c.Output.Delimiter == "" {
		c.Output.Delimiter = defaultDelimiter
	}
	if len(c.Output.Columns) == 0 {
		c.Output.Columns = append([]string(nil), DefaultColumns...)
	}
	for i, col := range c.Output.Columns {
		c.Output.Columns[i] = strings.TrimSpace(col)
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultColor
	}
}

func (c *Config) normalizeHistory() error {
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath
	}
	var err error
	if c.History.Path, err = expandPath(strings.TrimSpace(c.History.Path)); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		if value, ok := os.LookupEnv(logLevelEnv); ok {
			c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
		}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.File != "" {
		var err error
		if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}
