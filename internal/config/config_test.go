package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"srtdiff/internal/config"
)

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("SRTDIFF_LOG_LEVEL", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if resolved != filepath.Join(tempHome, ".config", "srtdiff", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if cfg.Input.Side1Prefix != "> " || cfg.Input.Side2Prefix != "< " || cfg.Input.StrictRouting {
		t.Fatalf("unexpected input defaults: %+v", cfg.Input)
	}
	if cfg.Output.Format != "csv" || cfg.Output.Delimiter != "," || !cfg.Output.Details || cfg.Output.Side2Indent != 15 {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
	if strings.Join(cfg.Output.Columns, ",") != "FROM_TS,FROM_WORD,FROM_POS,FROM_ISSTOP,LEV_OP,TO_TS,TO_WORD,TO_POS,TO_ISSTOP,TS_DIFF" {
		t.Fatalf("unexpected columns: %v", cfg.Output.Columns)
	}
	if cfg.Alignment.MaxCells != 50_000_000 || cfg.Alignment.FoldCase {
		t.Fatalf("unexpected alignment defaults: %+v", cfg.Alignment)
	}
	wantHistory := filepath.Join(tempHome, ".local", "share", "srtdiff", "history.db")
	if cfg.History.Path != wantHistory || cfg.History.Enabled {
		t.Fatalf("unexpected history defaults: %+v", cfg.History)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.toml")
	content := `
[input]
side1_prefix = "A|"
side2_prefix = "B|"
strict_routing = true

[alignment]
fold_case = true
language = "tr"
max_cells = 0

[output]
format = "TABLE"
details = false
columns = ["a", "b", "c", "d", "e", "f", "g", "h", "i", "j"]

[history]
enabled = true
path = "~/runs.db"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected %q to be loaded, got %q (exists=%v)", path, resolved, exists)
	}
	if cfg.Input.Side1Prefix != "A|" || !cfg.Input.StrictRouting {
		t.Fatalf("unexpected input: %+v", cfg.Input)
	}
	if !cfg.Alignment.FoldCase || cfg.Alignment.Language != "tr" || cfg.Alignment.MaxCells != 0 {
		t.Fatalf("unexpected alignment: %+v", cfg.Alignment)
	}
	if cfg.Output.Format != "table" || cfg.Output.Details || cfg.Output.Columns[9] != "j" {
		t.Fatalf("unexpected output: %+v", cfg.Output)
	}
	if cfg.Output.Delimiter != "," || cfg.Output.Side2Indent != 15 {
		t.Fatalf("unset keys should keep defaults: %+v", cfg.Output)
	}
	home, _ := os.UserHomeDir()
	if !cfg.History.Enabled || cfg.History.Path != filepath.Join(home, "runs.db") {
		t.Fatalf("unexpected history: %+v", cfg.History)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected level %q", cfg.Logging.Level)
	}
}

func TestLoadProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, "srtdiff.toml"), []byte("[output]\ndelimiter = \";\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || cfg.Output.Delimiter != ";" {
		t.Fatalf("expected project config to be used, got %+v", cfg.Output)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[output]\nfromat = \"csv\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "fromat") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestEnvLogLevelFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SRTDIFF_LOG_LEVEL", "WARN")
	path := filepath.Join(t.TempDir(), "missing.toml")

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected env level, got %q", cfg.Logging.Level)
	}

	withLevel := filepath.Join(t.TempDir(), "level.toml")
	if err := os.WriteFile(withLevel, []byte("[logging]\nlevel = \"error\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err = config.Load(withLevel)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Fatalf("file level should win over env, got %q", cfg.Logging.Level)
	}
}

func TestCreateSample(t *testing.T) {
	t.Setenv("SRTDIFF_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	cfg := config.Default()
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("sample does not validate: %v", err)
	}
	def := config.Default()
	if cfg.Output.Format != def.Output.Format || cfg.Input.Side1Prefix != def.Input.Side1Prefix {
		t.Fatalf("sample should carry the defaults, got %+v", cfg)
	}

	if err := config.CreateSample(path); err == nil {
		t.Fatal("expected CreateSample to refuse overwriting")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Delimiter = "\t"
	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var decoded config.Config
	if err := toml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v\n%s", err, data)
	}
	if decoded.Output.Delimiter != "\t" || decoded.Output.Side2Indent != 15 {
		t.Fatalf("unexpected decoded output %+v", decoded.Output)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		key    string
	}{
		{"same prefixes", func(c *config.Config) { c.Input.Side2Prefix = c.Input.Side1Prefix }, "input.side1_prefix"},
		{"negative cells", func(c *config.Config) { c.Alignment.MaxCells = -1 }, "alignment.max_cells"},
		{"bad language", func(c *config.Config) { c.Alignment.Language = "not a tag" }, "alignment.language"},
		{"bad format", func(c *config.Config) { c.Output.Format = "xml" }, "output.format"},
		{"short columns", func(c *config.Config) { c.Output.Columns = []string{"a", "b"} }, "output.columns"},
		{"negative indent", func(c *config.Config) { c.Output.Side2Indent = -2 }, "output.side2_indent"},
		{"bad color", func(c *config.Config) { c.Output.Color = "rainbow" }, "output.color"},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad log level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Logging.Level = "info"
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Fatalf("error %q should name %s", err, tt.key)
			}
		})
	}

	cfg := config.Default()
	cfg.Logging.Level = "info"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestFinalizeCanonicalizesLanguage(t *testing.T) {
	t.Setenv("SRTDIFF_LOG_LEVEL", "")
	tests := []struct {
		input string
		want  string
	}{
		{"Turkish", "tr"},
		{"tur", "tr"},
		{"", "und"},
		{"pt-BR", "pt-BR"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cfg := config.Default()
			cfg.History.Path = filepath.Join(t.TempDir(), "history.db")
			cfg.Alignment.Language = tt.input
			if err := cfg.Finalize(); err != nil {
				t.Fatalf("Finalize: %v", err)
			}
			if cfg.Alignment.Language != tt.want {
				t.Fatalf("language = %q, want %q", cfg.Alignment.Language, tt.want)
			}
		})
	}
}
