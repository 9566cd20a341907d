package routes

import (
	"time"

	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/config"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/handlers"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	reportHandler *handlers.ReportHandler,
	commentHandler *handlers.CommentHandler,
	universityHandler *handlers.UniversityHandler,
	caseFileHandler *handlers.CaseFileHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	adminHandler *handlers.AdminHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", handlers.HealthCheck)

	// Auth is public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// The moderation queue must register before the :id routes so the
	// static segment wins.
	api.Get("/reports/moderation", middleware.JWTProtected(cfg), reportHandler.ModerationQueue)

	// Public read surface. OptionalAuth lets owners, moderators and
	// admins see through anonymity and into private reports without
	// blocking guests.
	api.Get("/reports", middleware.OptionalAuth(cfg), reportHandler.List)
	api.Get("/reports/:id", middleware.OptionalAuth(cfg), reportHandler.Get)
	api.Get("/reports/:id/comments", middleware.OptionalAuth(cfg), commentHandler.ListForReport)

	api.Get("/universities", universityHandler.List)
	api.Get("/universities/:id", universityHandler.Get)
	api.Get("/case-files", caseFileHandler.List)
	api.Get("/case-files/:id", caseFileHandler.Get)
	api.Get("/analytics/reports-by-university", analyticsHandler.ByUniversity)
	api.Get("/analytics/reports-by-month", analyticsHandler.ByMonth)

	// Protected routes (JWT required) - apply middleware to individual
	// routes so the public surface stays token-free
	api.Post("/reports", middleware.JWTProtected(cfg), reportHandler.Create)
	api.Put("/reports/:id", middleware.JWTProtected(cfg), reportHandler.Update)
	api.Delete("/reports/:id", middleware.JWTProtected(cfg), reportHandler.Delete)
	api.Put("/reports/:id/like", middleware.JWTProtected(cfg), reportHandler.ToggleLike)
	api.Put("/reports/:id/flag", middleware.JWTProtected(cfg), reportHandler.Flag)

	api.Post("/reports/:id/comments", middleware.JWTProtected(cfg), commentHandler.Add)
	api.Put("/reports/:id/comments/:commentId", middleware.JWTProtected(cfg), commentHandler.Update)
	api.Delete("/reports/:id/comments/:commentId", middleware.JWTProtected(cfg), commentHandler.Delete)
	api.Post("/reports/:id/comments/:commentId/replies", middleware.JWTProtected(cfg), commentHandler.AddReply)
	api.Put("/reports/:id/comments/:commentId/replies/:replyId", middleware.JWTProtected(cfg), commentHandler.UpdateReply)
	api.Delete("/reports/:id/comments/:commentId/replies/:replyId", middleware.JWTProtected(cfg), commentHandler.DeleteReply)

	api.Get("/users/me", middleware.JWTProtected(cfg), userHandler.Me)
	api.Put("/users/me", middleware.JWTProtected(cfg), userHandler.UpdateMe)

	// Case file curation is a staff surface; reads above stay public
	staff := api.Group("/case-files", middleware.JWTProtected(cfg), middleware.ModOrAdminRequired())
	staff.Post("/", caseFileHandler.Create)
	staff.Put("/:id", caseFileHandler.Update)
	staff.Delete("/:id", caseFileHandler.Delete)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired())
	admin.Get("/universities/pending", adminHandler.PendingUniversities)
	admin.Post("/universities", universityHandler.Create)
	admin.Put("/universities/approve/:id", adminHandler.ApproveUniversity)
	admin.Post("/universities/merge", adminHandler.MergeUniversities)
	admin.Delete("/universities/:id", adminHandler.DeleteUniversity)
	admin.Get("/flagged-reports", adminHandler.FlaggedReports)
	admin.Put("/dismiss-flags/:id", adminHandler.DismissFlags)
}
