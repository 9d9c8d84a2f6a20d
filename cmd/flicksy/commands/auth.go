package commands

import (
	"bufio"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flicksy/flicksy-cli/internal/flicksy/cli"
	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in with username and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunGated(cmd.Context(), appCtx.Sessions, cli.Views{
				Loading: func() { fmt.Fprintln(cmd.ErrOrStderr(), "Checking session...") },
				Authenticated: func(u models.User) error {
					fmt.Fprintf(cmd.OutOrStdout(), "Already logged in as @%s. Run 'flicksy logout' first to switch accounts.\n", u.Username)
					return nil
				},
				Anonymous: func() error {
					return runLoginForm(cmd)
				},
			})
		},
	}
}

// runLoginForm is the interactive login form. Backend rejections are
// surfaced inline and the form stays editable; the user can simply rerun
// the command to resubmit.
func runLoginForm(cmd *cobra.Command) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	username, err := cli.Prompt(reader, "Username", out)
	if err != nil {
		return err
	}
	password, err := cli.PromptPassword(out, "Password")
	if err != nil {
		return err
	}

	user, err := appCtx.Auth.Login(cmd.Context(), username, password)
	if err != nil {
		fmt.Fprintln(out, "Login failed:", loginFailureReason(err))
		return err
	}

	fmt.Fprintf(out, "Logged in as @%s\n", user.Username)
	return nil
}

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunGated(cmd.Context(), appCtx.Sessions, cli.Views{
				Loading: func() { fmt.Fprintln(cmd.ErrOrStderr(), "Checking session...") },
				Authenticated: func(u models.User) error {
					fmt.Fprintf(cmd.OutOrStdout(), "Already logged in as @%s. Run 'flicksy logout' first.\n", u.Username)
					return nil
				},
				Anonymous: func() error {
					return runRegisterForm(cmd)
				},
			})
		},
	}
}

func runRegisterForm(cmd *cobra.Command) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	req := models.RegisterRequest{}
	var err error
	if req.Username, err = cli.Prompt(reader, "Username (letters, numbers, underscores)", out); err != nil {
		return err
	}
	if req.Email, err = cli.Prompt(reader, "Email", out); err != nil {
		return err
	}
	if req.DisplayName, err = cli.Prompt(reader, "Display name", out); err != nil {
		return err
	}
	if req.Bio, err = cli.Prompt(reader, "Bio (optional)", out); err != nil {
		return err
	}
	if req.Password, err = cli.PromptPassword(out, "Password (min 6 characters)"); err != nil {
		return err
	}

	user, err := appCtx.Auth.Register(cmd.Context(), req)
	if err != nil {
		fmt.Fprintln(out, "Registration failed:", loginFailureReason(err))
		return err
	}

	fmt.Fprintf(out, "Welcome to Flicksy, @%s!\n", user.Username)
	return nil
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the stored credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Local operation only: logging out must work even when the
			// backend is unreachable, so no session resolution happens.
			if err := appCtx.Sessions.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gated(cmd, func(ctx context.Context, u models.User) error {
				cli.RenderUser(cmd.OutOrStdout(), u)
				if u.IsAdmin() {
					fmt.Fprintln(cmd.OutOrStdout(), "role: admin")
				}
				return nil
			})
		},
	}
}
