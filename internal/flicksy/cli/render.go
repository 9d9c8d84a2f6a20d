package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

// RenderPosts prints a feed page.
func RenderPosts(w io.Writer, posts []models.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "Nothing here yet.")
		return
	}
	for _, p := range posts {
		like := " "
		if p.LikedByUser {
			like = "*"
		}
		fmt.Fprintf(w, "[%s] %s%s (@%s) %s\n", p.ID, p.AuthorDisplayName, badge(p.AuthorIsVerified), p.AuthorUsername, p.CreatedAt.Local().Format(time.DateTime))
		fmt.Fprintf(w, "  %s\n", p.Content)
		fmt.Fprintf(w, "  %s%d likes  %d comments\n\n", like, p.LikesCount, p.CommentsCount)
	}
}

// RenderComments prints a comment thread, oldest first.
func RenderComments(w io.Writer, comments []models.Comment) {
	if len(comments) == 0 {
		fmt.Fprintln(w, "No comments yet.")
		return
	}
	for _, c := range comments {
		fmt.Fprintf(w, "%s%s (@%s): %s\n", c.AuthorDisplayName, badge(c.AuthorIsVerified), c.AuthorUsername, c.Content)
	}
}

// RenderUser prints a profile card.
func RenderUser(w io.Writer, u models.User) {
	fmt.Fprintf(w, "%s%s (@%s)\n", u.DisplayName, badge(u.IsVerified), u.Username)
	if u.Bio != "" {
		fmt.Fprintf(w, "%s\n", u.Bio)
	}
	fmt.Fprintf(w, "%d posts  %d followers  %d following\n", u.PostsCount, u.FollowersCount, u.FollowingCount)
}

// RenderTrending prints the hashtag leaderboard.
func RenderTrending(w io.Writer, topics []models.TrendingTopic) {
	if len(topics) == 0 {
		fmt.Fprintln(w, "Nothing is trending right now.")
		return
	}
	for i, tt := range topics {
		fmt.Fprintf(w, "%2d. %s (%d)\n", i+1, tt.Tag, tt.Count)
	}
}

// RenderVerification prints the state of a verification request.
func RenderVerification(w io.Writer, v models.VerificationRequest) {
	fmt.Fprintf(w, "request %s: %s\n", v.ID, v.Status)
	if v.Reason != "" {
		fmt.Fprintf(w, "  reason: %s\n", v.Reason)
	}
	if v.Note != "" {
		fmt.Fprintf(w, "  note: %s\n", v.Note)
	}
}

func badge(verified bool) string {
	if verified {
		return " [v]"
	}
	return ""
}
