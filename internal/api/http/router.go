package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cleanstreet/complaint-service/internal/api/http/handlers"
	"github.com/cleanstreet/complaint-service/internal/auth"
	"github.com/cleanstreet/complaint-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Users      *handlers.UsersHandler
	Complaints *handlers.ComplaintsHandler
	Locations  *handlers.LocationsHandler
	Feedback   *handlers.FeedbackHandler
	Gate       *auth.Gate
	UploadDir  string
}

// RegisterRoutes wires HTTP routes. The authentication gate runs on every
// request and only binds identity; each route's policy decides whether an
// unauthenticated or under-privileged caller is acceptable.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Uploaded complaint images are public.
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api", cfg.Gate.Handle)

	users := api.Group("/users")
	users.Post("/register", cfg.Users.Register)
	users.Post("/login", cfg.Users.Login)
	users.Get("", auth.RequireRole(domain.RoleAdmin), cfg.Users.List)
	users.Get("/:id", auth.RequireRole(), cfg.Users.Get)
	users.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Users.Delete)

	complaints := api.Group("/complaints")
	complaints.Post("", auth.RequireRole(domain.RoleUser, domain.RoleAdmin), cfg.Complaints.Create)
	complaints.Get("", auth.RequireRole(domain.RoleAdmin), cfg.Complaints.List)
	complaints.Get("/user/:userId", auth.RequireRole(domain.RoleUser, domain.RoleAdmin), cfg.Complaints.ListByOwner)
	complaints.Get("/:id", auth.RequireRole(domain.RoleUser, domain.RoleAdmin), cfg.Complaints.Get)
	complaints.Put("/:id/status", auth.RequireRole(domain.RoleAdmin), cfg.Complaints.UpdateStatus)
	complaints.Put("/:id", auth.RequireRole(domain.RoleUser, domain.RoleAdmin), cfg.Complaints.UpdateContent)
	complaints.Delete("/:id", auth.RequireRole(domain.RoleUser, domain.RoleAdmin), cfg.Complaints.Delete)

	locations := api.Group("/locations")
	locations.Post("", auth.RequireRole(domain.RoleAdmin), cfg.Locations.Add)
	locations.Get("", auth.RequireRole(), cfg.Locations.List)
	locations.Get("/:id", auth.RequireRole(), cfg.Locations.Get)
	locations.Put("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Locations.Update)
	locations.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Locations.Delete)

	feedback := api.Group("/feedback")
	feedback.Post("", cfg.Feedback.Submit)
	feedback.Get("", auth.RequireRole(domain.RoleAdmin), cfg.Feedback.List)
}
