package config

const (
	defaultSide1Prefix    = "> "
	defaultSide2Prefix    = "< "
	defaultLanguage       = "und"
	defaultMaxCells       = 50_000_000
	defaultOutputFormat   = "csv"
	defaultDelimiter      = ","
	defaultSide2Indent    = 15
	defaultColor          = "auto"
	defaultHistoryPath    = "~/.local/share/srtdiff/history.db"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultConfigLocation = "~/.config/srtdiff/config.toml"
	projectConfigName     = "srtdiff.toml"

	logLevelEnv = "SRTDIFF_LOG_LEVEL"
)

// DefaultColumns are the header names of the reference report.
var DefaultColumns = []string{
	"FROM_TS", "FROM_WORD", "FROM_POS", "FROM_ISSTOP",
	"LEV_OP",
	"TO_TS", "TO_WORD", "TO_POS", "TO_ISSTOP",
	"TS_DIFF",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Input: Input{
			Side1Prefix: defaultSide1Prefix,
			Side2Prefix: defaultSide2Prefix,
		},
		Alignment: Alignment{
			Language: defaultLanguage,
			MaxCells: defaultMaxCells,
		},
		Output: Output{
			Format:      defaultOutputFormat,
			Delimiter:   defaultDelimiter,
			Columns:     append([]string(nil), DefaultColumns...),
			Details:     true,
			Side2Indent: defaultSide2Indent,
			Color:       defaultColor,
		},
		History: History{
			Path: defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
		},
	}
}
