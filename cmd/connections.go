package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"confkit/pkg/store"
)

var errConnectionNotFound = errors.New("connection string not found")

func newConnectionsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "connections",
		Aliases: []string{"connection", "connectionstrings"},
		Short:   "List or read connection strings",
		Long: `List or read connection strings.

Passwords, account keys and tokens are masked unless --show-secrets is set.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all connection strings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd, opts)
			if err != nil {
				return err
			}
			return env.formatter.FormatConnections(env.store.ConnectionStrings())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get NAME",
		Short: "Print one connection string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd, opts)
			if err != nil {
				return err
			}
			cs, ok := env.store.ConnectionStrings().Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", errConnectionNotFound, args[0])
			}
			return env.formatter.FormatConnections(store.ConnectionStrings{cs})
		},
	})
	return cmd
}
