package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/advisor"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/analytics"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/auth"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/usecase"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	CatalogUC    *usecase.CatalogUseCase
	BookingUC    *usecase.BookingUseCase
	NavigationUC *usecase.NavigationUseCase
	PanelUC      *usecase.PanelUseCase
	DashboardUC  *analytics.DashboardUseCase
	Advisor      *advisor.Manager
	JWTSecret    string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public except logout)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/signup", authHandler.Signup)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/logout", authHandler.Logout)

	// Catalog
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog := protected.Group("/catalog")
	catalog.Get("/", catalogHandler.List)
	catalog.Get("/:id", catalogHandler.GetByID)

	// Bookings; status decisions are restricted to showroom staff
	bookingHandler := NewBookingHandler(deps.BookingUC)
	bookings := protected.Group("/bookings")
	bookings.Get("/", bookingHandler.List)
	bookings.Post("/", bookingHandler.Create)
	bookings.Patch("/:id/status",
		RequireRole(string(entity.RoleAdmin), string(entity.RoleSalesManager), string(entity.RoleSalesExecutive)),
		bookingHandler.UpdateStatus)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)

	// AI advisor
	advisorHandler := NewAdvisorHandler(deps.Advisor)
	advisorGroup := protected.Group("/advisor")
	advisorGroup.Post("/messages", advisorHandler.Submit)
	advisorGroup.Get("/messages", advisorHandler.Transcript)

	// Navigation and static panels
	navHandler := NewNavigationHandler(deps.NavigationUC, deps.PanelUC)
	protected.Get("/navigation", navHandler.Active)
	protected.Put("/navigation", navHandler.Select)
	protected.Get("/panels/overview", navHandler.Overview)
	protected.Get("/panels/architecture", navHandler.Architecture)
}
