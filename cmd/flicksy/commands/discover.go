package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flicksy/flicksy-cli/internal/flicksy/cli"
	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

func searchCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search users and posts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gated(cmd, func(ctx context.Context, _ models.User) error {
				res, err := appCtx.Discovery.Search(ctx, strings.Join(args, " "), limit)
				if err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), "Search failed:", loginFailureReason(err))
					return nil
				}
				out := cmd.OutOrStdout()
				if len(res.Users) == 0 && len(res.Posts) == 0 {
					fmt.Fprintln(out, "No matches.")
					return nil
				}
				if len(res.Users) > 0 {
					fmt.Fprintln(out, "Users:")
					for _, u := range res.Users {
						fmt.Fprintf(out, "  @%s (%s)\n", u.Username, u.DisplayName)
					}
				}
				if len(res.Posts) > 0 {
					fmt.Fprintln(out, "Posts:")
					cli.RenderPosts(out, res.Posts)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "max results per category")
	return cmd
}

func trendingCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Show trending topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gated(cmd, func(ctx context.Context, _ models.User) error {
				topics, err := appCtx.Discovery.Trending(ctx, limit)
				if err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), "Could not load trending topics:", loginFailureReason(err))
					return nil
				}
				cli.RenderTrending(cmd.OutOrStdout(), topics)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of topics")
	return cmd
}

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile <username>",
		Short: "Show a user's public profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gated(cmd, func(ctx context.Context, _ models.User) error {
				user, err := appCtx.Discovery.Profile(ctx, args[0])
				if err != nil {
					return err
				}
				cli.RenderUser(cmd.OutOrStdout(), user)
				return nil
			})
		},
	}
}
