package devserver

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// errorHandler turns every error into the {"detail": ...} shape the
// client expects.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return c.Status(code).JSON(fiber.Map{"detail": msg})
}

// setupRoutes registers middlewares and the full API surface.
func setupRoutes(app *fiber.App, h *Handlers) {
	app.Use(recover.New())

	api := app.Group("/api")
	api.Get("/", h.health)

	api.Post("/auth/register", h.register)
	api.Post("/auth/login", h.login)
	api.Get("/auth/me", h.requireAuth, h.me)

	api.Get("/users/:username", h.profile)

	api.Get("/posts", h.optionalAuth, h.listPosts)
	api.Post("/posts", h.requireAuth, h.createPost)
	api.Post("/posts/:id/like", h.requireAuth, h.toggleLike)
	api.Get("/posts/:id/comments", h.listComments)
	api.Post("/posts/:id/comments", h.requireAuth, h.createComment)

	api.Get("/search", h.optionalAuth, h.search)
	api.Get("/trending", h.listTrending)

	api.Post("/verification/requests", h.requireAuth, h.requestVerification)
	api.Get("/verification/requests/me", h.requireAuth, h.myVerification)

	admin := api.Group("/admin", h.requireAuth, h.requireAdmin)
	admin.Get("/stats", h.adminStats)
	admin.Get("/verification/requests", h.adminListVerifications)
	admin.Post("/verification/requests/:id/review", h.adminReview)
}
