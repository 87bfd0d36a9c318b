package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"confkit/internal/config"
	"confkit/pkg/configtree"
	"confkit/pkg/logging"
	"confkit/pkg/settings"
	"confkit/pkg/store"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeNotFound indicates a missing setting, connection string or section.
	ExitCodeNotFound = 2
	// ExitCodeInvalidConfig indicates a store file, section or setting that
	// could not be read or converted.
	ExitCodeInvalidConfig = 3
)

// rootOptions holds the global flags.
type rootOptions struct {
	files       []string
	configPath  string
	logLevel    string
	output      string
	envPrefix   string
	noColor     bool
	showSecrets bool
}

var version = "dev"

// rootCmd represents the base command for the confkit application.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "confkit",
		Short: "Inspect layered application configuration",
		Long: `confkit reads application settings, connection strings and configuration
sections from layered YAML, JSON or JSONC files and renders them as element
markup, YAML, JSON or tables.

Files given with --file are layered in order: later files override settings
and connection strings of earlier ones by key, and replace whole sections.`,
		// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
		SilenceUsage: true,
		Version:      version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogging(cmd, opts)
		},
	}
	cmd.SetVersionTemplate(`{{printf "confkit version %s\n" .Version}}`)

	flags := cmd.PersistentFlags()
	flags.StringArrayVarP(&opts.files, "file", "f", nil, "Store file to load (repeatable; later files override earlier ones)")
	flags.StringVar(&opts.configPath, "config-path", "", "Configuration directory (default: ~/.config/confkit)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (default from config: info)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output format: xml, yaml, json or table (default from config: xml)")
	flags.StringVar(&opts.envPrefix, "env-prefix", "", "Layer environment variables with this prefix over the app settings")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored table output")
	flags.BoolVar(&opts.showSecrets, "show-secrets", false, "Print connection strings without masking passwords")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSettingsCmd(opts))
	cmd.AddCommand(newConnectionsCmd(opts))
	cmd.AddCommand(newSectionsCmd(opts))
	cmd.AddCommand(newDumpCmd(opts))
	cmd.AddCommand(newWatchCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(getExitCode(err))
	}
}

// initLogging configures logging from --log-level, falling back to the
// configured level.
func initLogging(cmd *cobra.Command, opts *rootOptions) error {
	levelName := opts.logLevel
	if levelName == "" {
		if cfg, err := loadToolConfig(opts); err == nil {
			levelName = cfg.Logging.Level
		}
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())
	return nil
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	if errors.Is(err, store.ErrSectionNotFound) || errors.Is(err, settings.ErrKeyNotFound) || errors.Is(err, errConnectionNotFound) {
		return ExitCodeNotFound
	}

	var decodeErr *store.DecodeError
	var parseErr *settings.ParsingError
	var cfgErr config.ConfigurationError
	switch {
	case errors.As(err, &decodeErr),
		errors.As(err, &parseErr),
		errors.As(err, &cfgErr),
		errors.Is(err, store.ErrUnsupportedFormat),
		errors.Is(err, configtree.ErrValueConversion):
		return ExitCodeInvalidConfig
	}

	// Default to general error
	return ExitCodeError
}
