package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/focusblock/internal/logger"
	"github.com/sandeepkv93/focusblock/internal/model"
	"github.com/sandeepkv93/focusblock/internal/scheduler"
	"github.com/sandeepkv93/focusblock/internal/timer"
)

func runCmd(opts *rootOptions) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "run <domain>",
		Short: "Block a website for one focus session without the TUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			cleanup := setupLogger(cfg)
			defer cleanup()

			engine := newEngine(cfg)
			if err := engine.Start(args[0]); err != nil {
				if errors.Is(err, model.ErrPermissionDenied) {
					return fmt.Errorf("%w: run as Administrator/sudo to block websites", err)
				}
				return err
			}

			ticker, err := scheduler.NewTicker(interval, 4)
			if err != nil {
				engine.Reset()
				return err
			}
			ticker.Start()
			defer ticker.Stop()

			ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := c.OutOrStdout()
			snap := engine.Snapshot()
			fmt.Fprintf(out, "blocking %s for %s (hosts: %s)\n", snap.Domain, snap.State.Clock(), cfg.HostsPath)

			err = timer.Run(ctx, engine, ticker.C(), func(s model.TimerState) {
				if s.RemainingSeconds%60 == 0 && s.RemainingSeconds > 0 {
					fmt.Fprintf(out, "%s remaining\n", s.Clock())
				}
			})
			switch {
			case err == nil:
				fmt.Fprintln(out, "session complete: websites unblocked")
				return nil
			case errors.Is(err, context.Canceled):
				logger.L().Info("cli.run.interrupted", "domain", snap.Domain, "dropped_ticks", ticker.Dropped())
				fmt.Fprintln(out, "session reset: websites unblocked")
				return nil
			default:
				return err
			}
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Second, "length of one timer tick")
	_ = cmd.Flags().MarkHidden("interval")
	return cmd
}
