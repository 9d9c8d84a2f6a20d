package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flicksy/flicksy-cli/internal/flicksy/api"
	"github.com/flicksy/flicksy-cli/internal/flicksy/cli"
	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Request and track account verification",
	}
	cmd.AddCommand(verifyRequestCmd(), verifyStatusCmd())
	return cmd
}

func verifyRequestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "request <reason>",
		Short: "Apply for the verified badge",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gated(cmd, func(ctx context.Context, u models.User) error {
				if u.IsVerified {
					fmt.Fprintln(cmd.OutOrStdout(), "You are already verified.")
					return nil
				}
				req, err := appCtx.Verification.Request(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Verification request %s submitted.\n", req.ID)
				return nil
			})
		},
	}
}

func verifyStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your latest verification request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gated(cmd, func(ctx context.Context, _ models.User) error {
				req, err := appCtx.Verification.Status(ctx)
				if errors.Is(err, api.ErrNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), "No verification request on file.")
					return nil
				}
				if err != nil {
					return err
				}
				cli.RenderVerification(cmd.OutOrStdout(), req)
				return nil
			})
		},
	}
}
