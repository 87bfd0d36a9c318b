package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"confkit/internal/config"
	"confkit/internal/formatting"
	"confkit/pkg/logging"
	"confkit/pkg/store"
)

var errNoStoreFiles = errors.New("no store files given: use --file or set store.files in config.yaml")

// cliEnv is everything a command needs: the tool config, the opened store
// and a formatter writing to the command's output.
type cliEnv struct {
	cfg       config.ConfkitConfig
	files     *store.FileStore
	store     store.Store
	formatter formatting.Formatter
}

func loadToolConfig(opts *rootOptions) (config.ConfkitConfig, error) {
	configPath := opts.configPath
	if configPath == "" {
		p, err := config.GetDefaultConfigPath()
		if err != nil {
			return config.ConfkitConfig{}, err
		}
		configPath = p
	}
	return config.LoadConfig(configPath)
}

// newFormatter builds the formatter for the effective output format.
func newFormatter(cmd *cobra.Command, opts *rootOptions, cfg config.ConfkitConfig) (formatting.Formatter, error) {
	name := opts.output
	if name == "" {
		name = string(cfg.Output.Format)
	}
	format, ok := formatting.ParseFormat(name)
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (expected one of %v)", name, config.OutputFormats)
	}
	return formatting.NewFormatter(formatting.Options{
		Format:      format,
		Indent:      cfg.Output.Indent,
		Color:       !opts.noColor,
		ShowSecrets: opts.showSecrets,
		Output:      cmd.OutOrStdout(),
	}), nil
}

// loadEnv loads the tool config and opens the store files, layering the
// environment store when a prefix is set.
func loadEnv(cmd *cobra.Command, opts *rootOptions) (*cliEnv, error) {
	cfg, err := loadToolConfig(opts)
	if err != nil {
		return nil, err
	}

	paths := opts.files
	if len(paths) == 0 {
		paths = cfg.Store.Files
	}
	if len(paths) == 0 {
		return nil, errNoStoreFiles
	}

	fs, err := store.Open(paths...)
	if err != nil {
		return nil, err
	}
	logging.Debug("CLI", "Opened store from %v", fs.Paths())

	env := &cliEnv{cfg: cfg, files: fs, store: fs}

	prefix := opts.envPrefix
	if prefix == "" {
		prefix = cfg.Store.EnvPrefix
	}
	if prefix != "" {
		env.store = store.Merged(fs, store.NewEnvStore(prefix))
	}

	env.formatter, err = newFormatter(cmd, opts, cfg)
	if err != nil {
		return nil, err
	}
	return env, nil
}
