package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/flicksy/flicksy-cli/internal/flicksy/app"
	"github.com/flicksy/flicksy-cli/internal/flicksy/cli"
	"github.com/flicksy/flicksy-cli/internal/flicksy/config"
	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
	"github.com/flicksy/flicksy-cli/internal/logging"
)

var (
	homeDir   string
	serverURL string
	timeout   time.Duration
	verbose   bool

	appCtx *app.App
)

// Execute builds the command tree and runs it.
func Execute() error {
	root := &cobra.Command{
		Use:           "flicksy",
		Short:         "Terminal client for the Flicksy social network",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(homeDir)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("server") {
				cfg.ServerURL = serverURL
			}
			if cmd.Flags().Changed("timeout") {
				cfg.RequestTimeout = timeout
			}
			level := cfg.LogLevel
			if verbose {
				level = "debug"
			}
			appCtx, err = app.New(cfg, logging.New(level))
			return err
		},
	}

	root.PersistentFlags().StringVar(&homeDir, "home", "", "client home dir (default ~/.flicksy)")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "backend base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-request timeout")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		registerCmd(),
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		feedCmd(),
		postCmd(),
		likeCmd(),
		commentsCmd(),
		commentCmd(),
		profileCmd(),
		searchCmd(),
		trendingCmd(),
		verifyCmd(),
		adminCmd(),
	)

	err := root.Execute()
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return err
}

// gated runs fn only once the session has resolved to an authenticated
// identity. Every protected command goes through here; there is no other
// path to protected rendering.
func gated(cmd *cobra.Command, fn func(context.Context, models.User) error) error {
	err := cli.RunGated(cmd.Context(), appCtx.Sessions, cli.Views{
		Loading: func() { fmt.Fprintln(cmd.ErrOrStderr(), "Checking session...") },
		Authenticated: func(u models.User) error {
			return fn(cmd.Context(), u)
		},
	})
	if errors.Is(err, cli.ErrLoginRequired) {
		return errors.New("not logged in; run 'flicksy login' first")
	}
	return err
}
