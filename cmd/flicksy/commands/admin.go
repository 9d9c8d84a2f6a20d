package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flicksy/flicksy-cli/internal/flicksy/cli"
	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin dashboard (admin role required)",
	}
	cmd.AddCommand(adminStatsCmd(), adminRequestsCmd(), adminReviewCmd())
	return cmd
}

func adminStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show platform totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gated(cmd, func(ctx context.Context, _ models.User) error {
				stats, err := appCtx.Admin.Stats(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "users:                 %d\n", stats.Users)
				fmt.Fprintf(out, "posts:                 %d\n", stats.Posts)
				fmt.Fprintf(out, "comments:              %d\n", stats.Comments)
				fmt.Fprintf(out, "pending verifications: %d\n", stats.PendingVerifications)
				return nil
			})
		},
	}
}

func adminRequestsCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "List verification requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gated(cmd, func(ctx context.Context, _ models.User) error {
				reqs, err := appCtx.Admin.VerificationRequests(ctx, status)
				if err != nil {
					return err
				}
				if len(reqs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No verification requests.")
					return nil
				}
				for _, r := range reqs {
					fmt.Fprintf(cmd.OutOrStdout(), "[%s] @%s (%s): %s\n", r.ID, r.Username, r.Status, r.Reason)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", models.VerificationPending, "filter by status (pending, approved, rejected; empty for all)")
	return cmd
}

func adminReviewCmd() *cobra.Command {
	var reject bool
	var note string
	cmd := &cobra.Command{
		Use:   "review <request-id>",
		Short: "Approve or reject a verification request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gated(cmd, func(ctx context.Context, _ models.User) error {
				res, err := appCtx.Admin.Review(ctx, args[0], !reject, note)
				if err != nil {
					return err
				}
				cli.RenderVerification(cmd.OutOrStdout(), res)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&reject, "reject", false, "reject instead of approve")
	cmd.Flags().StringVar(&note, "note", "", "reviewer note shown to the applicant")
	return cmd
}
