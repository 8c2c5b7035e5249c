package config

const (
	defaultConfigPath    = "~/.config/rgadiag/config.toml"
	defaultLanguage      = "en"
	defaultOutputFormat  = "table"
	defaultColorMode     = "auto"
	defaultLogFormat     = "console"
	defaultLogLevel      = "warn"
	defaultReferenceMass = 2
)

// LanguageEnv overrides output.language when set.
const LanguageEnv = "RGADIAG_LANG"

// Output formats accepted by output.format.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Color modes accepted by output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Language: defaultLanguage,
			Format:   defaultOutputFormat,
			Color:    defaultColorMode,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Spectrum: Spectrum{
			ReferenceMass: defaultReferenceMass,
		},
	}
}
