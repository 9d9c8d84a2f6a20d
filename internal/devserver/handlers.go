package devserver

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

const userKey = "current_user"

// Handlers implements the HTTP surface over the store.
type Handlers struct {
	store    *Store
	tokens   *TokenManager
	trending *Trending
	cfg      *Config
	log      *zap.Logger
}

// NewHandlers wires handlers to their dependencies.
func NewHandlers(store *Store, tokens *TokenManager, trending *Trending, cfg *Config, log *zap.Logger) *Handlers {
	return &Handlers{store: store, tokens: tokens, trending: trending, cfg: cfg, log: log}
}

func detail(status int, msg string) error {
	return fiber.NewError(status, msg)
}

// requireAuth validates the bearer token and stores the caller snapshot
// in locals.
func (h *Handlers) requireAuth(c *fiber.Ctx) error {
	user, err := h.caller(c)
	if err != nil {
		return err
	}
	c.Locals(userKey, user)
	return c.Next()
}

// optionalAuth resolves the caller when a valid token is present and
// passes anonymous requests through.
func (h *Handlers) optionalAuth(c *fiber.Ctx) error {
	if user, err := h.caller(c); err == nil {
		c.Locals(userKey, user)
	}
	return c.Next()
}

// requireAdmin rejects non-admin callers. Must run after requireAuth.
func (h *Handlers) requireAdmin(c *fiber.Ctx) error {
	user := currentUser(c)
	if !user.IsAdmin() {
		return detail(fiber.StatusForbidden, "Admin access required")
	}
	return c.Next()
}

func (h *Handlers) caller(c *fiber.Ctx) (models.User, error) {
	header := c.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return models.User{}, detail(fiber.StatusUnauthorized, "Not authenticated")
	}
	userID, err := h.tokens.Verify(parts[1])
	if err != nil {
		return models.User{}, detail(fiber.StatusUnauthorized, "Invalid or expired token")
	}
	user, err := h.store.UserByID(userID)
	if err != nil {
		return models.User{}, detail(fiber.StatusUnauthorized, "Invalid or expired token")
	}
	return user, nil
}

func currentUser(c *fiber.Ctx) models.User {
	user, _ := c.Locals(userKey).(models.User)
	return user
}

func currentUserID(c *fiber.Ctx) string {
	return currentUser(c).ID
}

func (h *Handlers) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Flicksy API", "version": h.cfg.Version})
}

func (h *Handlers) register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(fiber.StatusBadRequest, "Invalid request body")
	}
	if len(req.Username) < 3 || len(req.Username) > 30 {
		return detail(fiber.StatusBadRequest, "Username must be 3-30 characters")
	}
	if !usernamePattern.MatchString(req.Username) {
		return detail(fiber.StatusBadRequest, "Username may only contain letters, numbers and underscores")
	}
	if !strings.Contains(req.Email, "@") {
		return detail(fiber.StatusBadRequest, "Invalid email address")
	}
	if req.DisplayName == "" || len(req.DisplayName) > 50 {
		return detail(fiber.StatusBadRequest, "Display name must be 1-50 characters")
	}
	if len(req.Bio) > 160 {
		return detail(fiber.StatusBadRequest, "Bio must be at most 160 characters")
	}
	if len(req.Password) < 6 {
		return detail(fiber.StatusBadRequest, "Password must be at least 6 characters")
	}

	hash, err := hashPassword(req.Password, h.cfg.BcryptCost)
	if err != nil {
		return err
	}
	user, err := h.store.CreateUser(req.Username, req.Email, req.DisplayName, req.Bio, hash, models.RoleUser)
	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			return detail(fiber.StatusBadRequest, conflict.Detail)
		}
		return err
	}
	h.log.Info("account registered", zap.String("username", user.Username))
	return h.issueToken(c, user)
}

func (h *Handlers) login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return detail(fiber.StatusBadRequest, "Invalid request body")
	}
	id, hash, err := h.store.Credentials(req.Username)
	if err != nil || comparePassword(hash, req.Password) != nil {
		return detail(fiber.StatusUnauthorized, "Invalid username or password")
	}
	user, err := h.store.UserByID(id)
	if err != nil {
		return detail(fiber.StatusUnauthorized, "Invalid username or password")
	}
	return h.issueToken(c, user)
}

func (h *Handlers) issueToken(c *fiber.Ctx, user models.User) error {
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		return err
	}
	return c.JSON(models.AuthResult{AccessToken: token, TokenType: "bearer", User: user})
}

func (h *Handlers) me(c *fiber.Ctx) error {
	return c.JSON(currentUser(c))
}

func (h *Handlers) profile(c *fiber.Ctx) error {
	user, err := h.store.UserByUsername(c.Params("username"))
	if err != nil {
		return detail(fiber.StatusNotFound, "User not found")
	}
	return c.JSON(user)
}

func (h *Handlers) listPosts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	skip := c.QueryInt("skip", 0)
	return c.JSON(h.store.ListPosts(limit, skip, currentUserID(c)))
}

func (h *Handlers) createPost(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return detail(fiber.StatusBadRequest, "Invalid request body")
	}
	content := strings.TrimSpace(req.Content)
	if content == "" || len(content) > models.MaxPostLength {
		return detail(fiber.StatusBadRequest, "Post must be 1-500 characters")
	}
	post, err := h.store.CreatePost(currentUserID(c), content)
	if err != nil {
		return err
	}
	if err := h.trending.Bump(c.UserContext(), content); err != nil {
		h.log.Warn("trending bump failed", zap.Error(err))
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *Handlers) toggleLike(c *fiber.Ctx) error {
	liked, err := h.store.ToggleLike(c.Params("id"), currentUserID(c))
	if errors.Is(err, ErrNotFound) {
		return detail(fiber.StatusNotFound, "Post not found")
	}
	if err != nil {
		return err
	}
	msg := "Post unliked"
	if liked {
		msg = "Post liked"
	}
	return c.JSON(fiber.Map{"liked": liked, "message": msg})
}

func (h *Handlers) listComments(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	skip := c.QueryInt("skip", 0)
	comments, err := h.store.ListComments(c.Params("id"), limit, skip)
	if errors.Is(err, ErrNotFound) {
		return detail(fiber.StatusNotFound, "Post not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(comments)
}

func (h *Handlers) createComment(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return detail(fiber.StatusBadRequest, "Invalid request body")
	}
	content := strings.TrimSpace(req.Content)
	if content == "" || len(content) > models.MaxCommentLength {
		return detail(fiber.StatusBadRequest, "Comment must be 1-280 characters")
	}
	comment, err := h.store.CreateComment(c.Params("id"), currentUserID(c), content)
	if errors.Is(err, ErrNotFound) {
		return detail(fiber.StatusNotFound, "Post not found")
	}
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *Handlers) search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return detail(fiber.StatusBadRequest, "Query must not be empty")
	}
	return c.JSON(h.store.Search(query, c.QueryInt("limit", 20), currentUserID(c)))
}

func (h *Handlers) listTrending(c *fiber.Ctx) error {
	topics, err := h.trending.Top(c.UserContext(), c.QueryInt("limit", 10))
	if err != nil {
		return err
	}
	return c.JSON(topics)
}

func (h *Handlers) requestVerification(c *fiber.Ctx) error {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return detail(fiber.StatusBadRequest, "Invalid request body")
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" || len(reason) > 500 {
		return detail(fiber.StatusBadRequest, "Reason must be 1-500 characters")
	}
	v, err := h.store.CreateVerification(currentUserID(c), reason)
	if errors.Is(err, ErrConflict) {
		return detail(fiber.StatusBadRequest, "A verification request is already pending")
	}
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

func (h *Handlers) myVerification(c *fiber.Ctx) error {
	v, err := h.store.LatestVerification(currentUserID(c))
	if errors.Is(err, ErrNotFound) {
		return detail(fiber.StatusNotFound, "No verification request found")
	}
	if err != nil {
		return err
	}
	return c.JSON(v)
}

func (h *Handlers) adminStats(c *fiber.Ctx) error {
	return c.JSON(h.store.Stats())
}

func (h *Handlers) adminListVerifications(c *fiber.Ctx) error {
	status := c.Query("status")
	switch status {
	case "", models.VerificationPending, models.VerificationApproved, models.VerificationRejected:
	default:
		return detail(fiber.StatusBadRequest, "Unknown status filter")
	}
	return c.JSON(h.store.ListVerifications(status))
}

func (h *Handlers) adminReview(c *fiber.Ctx) error {
	var req struct {
		Approve bool   `json:"approve"`
		Note    string `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil {
		return detail(fiber.StatusBadRequest, "Invalid request body")
	}
	v, err := h.store.ReviewVerification(c.Params("id"), req.Approve, req.Note)
	if errors.Is(err, ErrNotFound) {
		return detail(fiber.StatusNotFound, "Verification request not found")
	}
	if errors.Is(err, ErrConflict) {
		return detail(fiber.StatusBadRequest, "Request already reviewed")
	}
	if err != nil {
		return err
	}
	h.log.Info("verification reviewed",
		zap.String("request_id", v.ID), zap.String("status", v.Status))
	return c.JSON(v)
}
