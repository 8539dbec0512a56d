package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateAlignment(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateInput() error {
	if c.Input.Side1Prefix == c.Input.Side2Prefix {
		return errors.New("input.side1_prefix and input.side2_prefix must differ")
	}
	return nil
}

func (c *Config) validateAlignment() error {
	if c.Alignment.MaxCells < 0 {
		return errors.New("alignment.max_cells must be zero (disabled) or positive")
	}
	if c.Alignment.Language != defaultLanguage {
		if _, err := language.Parse(c.Alignment.Language); err != nil {
			return fmt.Errorf("alignment.language: %w", err)
		}
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "csv", "table", "json":
	default:
		return fmt.Errorf("output.format: unsupported value %q (want csv, table or json)", c.Output.Format)
	}
	if len(c.Output.Columns) != len(DefaultColumns) {
		return fmt.Errorf("output.columns: expected %d names, found %d", len(DefaultColumns), len(c.Output.Columns))
	}
	if c.Output.Side2Indent < 0 {
		return errors.New("output.side2_indent must not be negative")
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color: unsupported value %q (want auto, always or never)", c.Output.Color)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
