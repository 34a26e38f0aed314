package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/focusblock/internal/config"
	"github.com/sandeepkv93/focusblock/internal/hosts"
	"github.com/sandeepkv93/focusblock/internal/logger"
	"github.com/sandeepkv93/focusblock/internal/storage"
	"github.com/sandeepkv93/focusblock/internal/timer"
	"github.com/sandeepkv93/focusblock/internal/update"
)

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	debug      bool
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "focusblock",
		Short:        "focusblock: focus timer, website blocker and to-do list",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			cleanup := setupLogger(cfg)
			defer cleanup()

			repo, err := storage.OpenSQLite(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open task store: %w", err)
			}
			defer repo.Close()

			engine := newEngine(cfg)
			// The model resets on quit; this covers abnormal program exits.
			defer engine.Reset()

			var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
			if cfg.DesktopNotifications {
				notifier = update.ExecDesktopNotifier{}
			}
			m, err := update.NewModel(engine, repo, update.Options{
				Notifier:       notifier,
				DesktopEnabled: cfg.DesktopNotifications,
				HostsPath:      cfg.HostsPath,
			})
			if err != nil {
				return err
			}

			logger.L().Info("tui.start", "hosts", cfg.HostsPath, "db", cfg.DBPath)
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file (default ./"+config.DefaultFile+" if present)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to the log directory")

	cmd.AddCommand(
		runCmd(opts),
		tasksCmd(opts),
		hostsCmd(opts),
		configCmd(opts),
		versionCmd(),
	)
	return cmd
}

func (o *rootOptions) load() (config.RuntimeConfig, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.RuntimeConfig{}, err
	}
	if o.debug {
		cfg.Debug = true
	}
	return cfg, nil
}

// setupLogger never fails the command; without a log file records are
// discarded.
func setupLogger(cfg config.RuntimeConfig) func() {
	cleanup, err := logger.Setup(logger.Config{Dir: cfg.LogDir, Debug: cfg.Debug})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

func newEngine(cfg config.RuntimeConfig) *timer.Engine {
	store := hosts.NewStore(cfg.HostsPath, hosts.WithRedirectIP(cfg.RedirectIP))
	return timer.NewEngine(store, timer.WithDuration(cfg.SessionSeconds()))
}
