package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appadvisor "github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/advisor"
	appanalytics "github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/analytics"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/auth"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/ports"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/usecase"
	infraai "github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/infrastructure/ai"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/infrastructure/memory"
	httpRouter "github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/interfaces/http"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/pkg/config"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("auth_mode", cfg.Auth.Mode).
		Msg("starting application")

	// Seed snapshot: embedded demo data unless a file overrides it.
	seed := memory.DefaultSeed()
	if cfg.Seed.File != "" {
		seed, err = memory.LoadSeedFile(cfg.Seed.File)
		if err != nil {
			log.Fatal().Err(err).Msg("load seed file")
		}
		log.Info().Str("file", cfg.Seed.File).Msg("seed loaded from file")
	}

	vehicleRepo := memory.NewVehicleRepository(seed.Vehicles)
	bookingRepo := memory.NewBookingRepository(seed.Bookings)
	userRepo := memory.NewUserRepository(seed.Users)

	// External advisory service; the session layer owns the per-request timeout.
	var advisorSvc ports.AdvisorService
	switch cfg.AI.Provider {
	case "anthropic":
		advisorSvc = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	default:
		advisorSvc = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}
	advisorManager := appadvisor.NewManager(advisorSvc, time.Duration(cfg.AI.TimeoutSeconds)*time.Second, log)

	catalogUC := usecase.NewCatalogUseCase(vehicleRepo)
	bookingUC := usecase.NewBookingUseCase(bookingRepo, log)
	navigationUC := usecase.NewNavigationUseCase()
	panelUC := usecase.NewPanelUseCase()
	dashboardUC := appanalytics.NewDashboardUseCase(bookingRepo, vehicleRepo)

	var authenticator auth.Authenticator
	demoMode := cfg.Auth.Mode == "demo"
	if demoMode {
		authenticator = auth.NewDemoAuthenticator()
	} else {
		authenticator = auth.NewCredentialsAuthenticator(userRepo)
	}
	authUC := auth.NewUseCase(authenticator, userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, demoMode, advisorManager, navigationUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI at http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ShowroomOS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CatalogUC:    catalogUC,
		BookingUC:    bookingUC,
		NavigationUC: navigationUC,
		PanelUC:      panelUC,
		DashboardUC:  dashboardUC,
		Advisor:      advisorManager,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
