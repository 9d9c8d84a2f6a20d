package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flicksy/flicksy-cli/internal/flicksy/cli"
	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

func feedCmd() *cobra.Command {
	var limit, skip int
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the post feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gated(cmd, func(ctx context.Context, _ models.User) error {
				posts, err := appCtx.Feed.List(ctx, limit, skip)
				if err != nil {
					// Degrade to "nothing fetched"; the user retries by
					// rerunning the command.
					fmt.Fprintln(cmd.OutOrStdout(), "Could not load the feed:", loginFailureReason(err))
					return nil
				}
				cli.RenderPosts(cmd.OutOrStdout(), posts)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "posts per page")
	cmd.Flags().IntVar(&skip, "skip", 0, "posts to skip")
	return cmd
}

func postCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post <content>",
		Short: "Publish a new post",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gated(cmd, func(ctx context.Context, _ models.User) error {
				post, err := appCtx.Feed.Compose(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Posted %s\n", post.ID)
				return nil
			})
		},
	}
}

func likeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <post-id>",
		Short: "Like or unlike a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gated(cmd, func(ctx context.Context, _ models.User) error {
				liked, err := appCtx.Feed.ToggleLike(ctx, args[0])
				if err != nil {
					return err
				}
				if liked {
					fmt.Fprintln(cmd.OutOrStdout(), "Liked.")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "Unliked.")
				}
				return nil
			})
		},
	}
}

func commentsCmd() *cobra.Command {
	var limit, skip int
	cmd := &cobra.Command{
		Use:   "comments <post-id>",
		Short: "Show a post's comment thread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gated(cmd, func(ctx context.Context, _ models.User) error {
				comments, err := appCtx.Feed.Comments(ctx, args[0], limit, skip)
				if err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), "Could not load comments:", loginFailureReason(err))
					return nil
				}
				cli.RenderComments(cmd.OutOrStdout(), comments)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "comments per page")
	cmd.Flags().IntVar(&skip, "skip", 0, "comments to skip")
	return cmd
}

func commentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment <post-id> <content>",
		Short: "Reply to a post",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gated(cmd, func(ctx context.Context, _ models.User) error {
				comment, err := appCtx.Feed.Reply(ctx, args[0], strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Comment %s added\n", comment.ID)
				return nil
			})
		},
	}
}
