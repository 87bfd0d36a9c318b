// Package config provides configuration management for the confkit CLI
// itself.
//
// Configuration is loaded from config.yaml in a single directory. The
// default directory is ~/.config/confkit; commands accept --config-path to
// use another one. A missing file is not an error: defaults are used.
//
//	store:
//	  files: [base.yaml, local.jsonc]   # relative to the config directory
//	  envPrefix: APP_
//	output:
//	  format: xml                       # xml | yaml | json | table
//	  indent: 2
//	logging:
//	  level: info
//
// Load failures are reported as ConfigurationError values carrying the
// file, the error type (io, parse, validation) and suggestions.
package config
