package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"srtdiff/internal/config"
	"srtdiff/internal/logging"
)

type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
	debug     bool
}

type commandContext struct {
	flags *globalFlags

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the configuration once and applies the global logging
// flags on top of it.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.flags != nil {
			path = strings.TrimSpace(c.flags.config)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.flags != nil {
			if c.flags.logLevel != "" {
				cfg.Logging.Level = c.flags.logLevel
			}
			if c.flags.debug {
				cfg.Logging.Level = "debug"
			}
			if c.flags.logFormat != "" {
				cfg.Logging.Format = c.flags.logFormat
			}
			if err := cfg.Finalize(); err != nil {
				c.configErr = err
				return
			}
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// configCopy returns a copy commands may override with their own flags.
func (c *commandContext) configCopy() (*config.Config, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	cp := *cfg
	cp.Output.Columns = append([]string(nil), cfg.Output.Columns...)
	return &cp, nil
}

// newLogger builds the logger for cfg. Logs go to the command's stderr and,
// when configured, to a file as well.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	opts := logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	}
	if cfg.Logging.File != "" {
		opts.OutputPaths = []string{cfg.Logging.File}
	}
	return logging.New(opts)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
