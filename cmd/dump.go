package cmd

import (
	"github.com/spf13/cobra"

	"confkit/pkg/markup"
)

func newDumpCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dump SECTION",
		Short: "Render a configuration section",
		Long: `Render a configuration section as element markup (default), YAML, JSON
or a table.

Scalar values become attributes, nested mappings become child elements, and
lists become an element holding one "add" element per item.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd, opts)
			if err != nil {
				return err
			}
			return dumpSection(env, args[0])
		},
	}
}

func dumpSection(env *cliEnv, name string) error {
	raw, err := env.files.RawSection(name)
	if err != nil {
		return err
	}
	node, err := markup.FromYAML(name, raw)
	if err != nil {
		return err
	}
	return env.formatter.FormatNode(node)
}
