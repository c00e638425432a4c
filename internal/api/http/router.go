package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/feedback-service/internal/api/http/handlers"
	"github.com/spec-kit/feedback-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Session           *handlers.SessionHandler
	Auth              *handlers.AuthHandler
	Feedback          *handlers.FeedbackHandler
	Admin             *handlers.AdminHandler
	SessionMiddleware *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/session", cfg.Session.Create)

	scoped := app.Group("", cfg.SessionMiddleware.Handle)
	scoped.Get("/session/view", cfg.Session.View)
	scoped.Post("/session/view", cfg.Session.SwitchView)

	scoped.Post("/auth/login", cfg.Auth.Login)
	scoped.Post("/auth/signup", cfg.Auth.Signup)
	scoped.Post("/auth/social", cfg.Auth.Social)

	authed := scoped.Group("", auth.RequireAuthenticated())
	authed.Post("/auth/logout", cfg.Auth.Logout)
	authed.Post("/session/navigate", cfg.Session.Navigate)
	authed.Post("/session/exit-admin", cfg.Session.ExitAdmin)

	authed.Post("/feedback", cfg.Feedback.Submit)
	authed.Get("/feedback", cfg.Feedback.Track)
	authed.Get("/feedback/meta", cfg.Feedback.Meta)

	// The admin screen is reachable by any authenticated session; the
	// admin-entry button is a UI affordance, not an access-control boundary.
	authed.Get("/admin/dashboard", cfg.Admin.Dashboard)
	authed.Put("/admin/feedback/:id/status", cfg.Admin.UpdateStatus)
	authed.Post("/admin/feedback/:id/response/edit", cfg.Admin.OpenEditor)
	authed.Post("/admin/feedback/:id/response/cancel", cfg.Admin.CancelEditor)
	authed.Post("/admin/feedback/:id/response/save", cfg.Admin.SaveResponse)
	authed.Post("/admin/feedback/:id/response/draft", cfg.Admin.DraftResponse)
}
