package config

const (
	// DefaultOutputFormat is used when no format is configured.
	DefaultOutputFormat = OutputFormatXML

	// DefaultIndent is the default indentation width.
	DefaultIndent = 2

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
)

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() ConfkitConfig {
	return ConfkitConfig{
		Output: OutputConfig{
			Format: DefaultOutputFormat,
			Indent: DefaultIndent,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}
