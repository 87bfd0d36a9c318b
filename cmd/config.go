package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"confkit/internal/config"
	"confkit/pkg/configtree"
)

// configView is the effective tool configuration as a renderable section.
type configView struct {
	configtree.Section
	Store   storeView   `config:"store"`
	Output  outputView  `config:"output"`
	Logging loggingView `config:"logging"`
}

type storeView struct {
	EnvPrefix string     `config:"envPrefix"`
	Files     []fileView `config:"files,item=file"`
}

type fileView struct {
	Path string `config:"path"`
}

type outputView struct {
	Format string `config:"format"`
	Indent int    `config:"indent"`
}

type loggingView struct {
	Level string `config:"level"`
}

func newConfigView(cfg config.ConfkitConfig) *configView {
	v := &configView{
		Store:   storeView{EnvPrefix: cfg.Store.EnvPrefix},
		Output:  outputView{Format: string(cfg.Output.Format), Indent: cfg.Output.Indent},
		Logging: loggingView{Level: cfg.Logging.Level},
	}
	for _, f := range cfg.Store.Files {
		v.Store.Files = append(v.Store.Files, fileView{Path: f})
	}
	v.SetSectionName("confkit")
	return v
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the confkit configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Render the effective confkit configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadToolConfig(opts)
			if err != nil {
				return err
			}
			formatter, err := newFormatter(cmd, opts, cfg)
			if err != nil {
				return err
			}
			node, err := configtree.Build(newConfigView(cfg))
			if err != nil {
				return err
			}
			return formatter.FormatNode(node)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				p, err := config.GetDefaultConfigPath()
				if err != nil {
					return err
				}
				path = p
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})
	return cmd
}
