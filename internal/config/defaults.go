package config

const (
	defaultConfigPath    = "~/.config/subweave/config.toml"
	projectConfigName    = "subweave.toml"
	defaultLinesPerGroup = 2
	defaultMinWords      = 2
	defaultFormat        = "json"
	defaultScorer        = "ratcliff"
	defaultThreshold     = 0.5
	defaultNormalization = "nfc"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Grouping: Grouping{
			LinesPerGroup: defaultLinesPerGroup,
			MinWords:      defaultMinWords,
		},
		Alignment: Alignment{
			Format:    defaultFormat,
			Scorer:    defaultScorer,
			Threshold: defaultThreshold,
		},
		Text: Text{
			Normalization: defaultNormalization,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
