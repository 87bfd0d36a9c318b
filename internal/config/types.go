package config

// ConfkitConfig is the top-level configuration structure for confkit.
type ConfkitConfig struct {
	Store   StoreConfig   `yaml:"store"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputFormat selects how commands render their results.
type OutputFormat string

const (
	OutputFormatXML   OutputFormat = "xml"
	OutputFormatYAML  OutputFormat = "yaml"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatTable OutputFormat = "table"
)

// OutputFormats lists the accepted output formats.
var OutputFormats = []string{
	string(OutputFormatXML),
	string(OutputFormatYAML),
	string(OutputFormatJSON),
	string(OutputFormatTable),
}

// StoreConfig defines the store files used when none are given on the
// command line.
type StoreConfig struct {
	Files     []string `yaml:"files,omitempty"`     // Store files, later override earlier; relative paths are resolved against the config directory
	EnvPrefix string   `yaml:"envPrefix,omitempty"` // Environment variable prefix layered over the files (default: none)
}

// OutputConfig defines how results are rendered.
type OutputConfig struct {
	Format OutputFormat `yaml:"format,omitempty"` // Default output format (default: xml)
	Indent int          `yaml:"indent,omitempty"` // Spaces per indentation level (default: 2)
}

// LoggingConfig defines the log level.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn or error (default: info)
}
