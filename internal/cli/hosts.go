package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/focusblock/internal/hosts"
)

func hostsCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "hosts",
		Short: "Inspect the hosts file used for blocking",
	}

	c.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the hosts file path",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				cfg, err := opts.load()
				if err != nil {
					return err
				}
				fmt.Fprintln(c.OutOrStdout(), cfg.HostsPath)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "Print the redirect entries in the hosts file",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				cfg, err := opts.load()
				if err != nil {
					return err
				}
				store := hosts.NewStore(cfg.HostsPath, hosts.WithRedirectIP(cfg.RedirectIP))
				entries, err := store.Entries()
				if err != nil {
					return err
				}
				out := c.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintf(out, "(no %s entries)\n", store.RedirectIP())
					return nil
				}
				for _, e := range entries {
					fmt.Fprintln(out, e)
				}
				return nil
			},
		},
	)
	return c
}
