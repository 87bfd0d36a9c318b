package cmd

import (
	"github.com/spf13/cobra"
)

func newSectionsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sections",
		Aliases: []string{"section"},
		Short:   "List configuration sections",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the names of all configuration sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd, opts)
			if err != nil {
				return err
			}
			return env.formatter.FormatNames("Sections", env.store.SectionNames())
		},
	})
	return cmd
}
