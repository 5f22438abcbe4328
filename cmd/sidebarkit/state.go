package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sidebarkit/internal/cookie"
	"github.com/alexisbeaulieu97/sidebarkit/internal/sidebar"
)

func newStateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or change the persisted sidebar state",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the state the sidebar will open with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(app *AppContext) error {
				out := cmd.OutOrStdout()
				c, err := app.Jar.Get(cmd.Context(), sidebar.CookieName)
				if errors.Is(err, cookie.ErrNotFound) {
					fmt.Fprintf(out, "unset (default %t)\n", app.Config.Sidebar.DefaultOpen)
					return nil
				}
				if err != nil {
					return err
				}
				open, ok := sidebar.ParseValue(c.Value)
				if !ok {
					fmt.Fprintf(out, "malformed %q (default %t)\n", c.Value, app.Config.Sidebar.DefaultOpen)
					return nil
				}
				fmt.Fprintf(out, "%t\n", open)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <true|false>",
		Short: "Persist the desktop sidebar state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			open, ok := sidebar.ParseValue(args[0])
			if !ok {
				return fmt.Errorf("state must be true or false, got %q", args[0])
			}
			return withApp(cmd, flags, func(app *AppContext) error {
				c := sidebar.Cookie(open)
				if err := app.Jar.Set(cmd.Context(), c); err != nil {
					return err
				}
				app.Logger.Info("sidebar state written", "value", c.Value)
				fmt.Fprintln(cmd.OutOrStdout(), c.String())
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget the persisted state so the default applies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(app *AppContext) error {
				return app.Jar.Delete(cmd.Context(), sidebar.CookieName)
			})
		},
	})

	return cmd
}

func withApp(cmd *cobra.Command, flags *rootFlags, fn func(*AppContext) error) error {
	app, err := openApp(cmd.Context(), flags)
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(app)
}
