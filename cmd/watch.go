package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"confkit/pkg/logging"
	"confkit/pkg/store"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch SECTION",
		Short: "Render a section and re-render it whenever the store files change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd, opts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchSection(ctx, cmd, env, args[0], debounce)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", store.DefaultDebounce, "Quiet period before reloading after a change")
	return cmd
}

func watchSection(ctx context.Context, cmd *cobra.Command, env *cliEnv, name string, debounce time.Duration) error {
	if err := dumpSection(env, name); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return env.files.Watch(ctx, func(ev store.ReloadEvent) {
		if ev.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "reload failed: %v\n", ev.Err)
			return
		}
		fmt.Fprintf(out, "--- %s (%s)\n", ev.Time.Format(time.RFC3339), ev.ID)
		if err := dumpSection(env, name); err != nil {
			logging.Error("CLI", err, "Failed to render section %s", name)
			fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
		}
	}, store.WithDebounce(debounce))
}
