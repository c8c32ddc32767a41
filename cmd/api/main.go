package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/shravani12148/Goal--Based-Diversification-System/internal/config"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/handler"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/logger"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/repository"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/scheduler"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/service"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/solver"
)

// @title Goal-Based Diversification API
// @version 1.0
// @description Financial aggregation and reporting API: monthly records, yearly summaries, year-over-year trends, and solver-backed investment goals.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.Load()
	lg := logger.Logger()

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	recordRepo := repository.NewRecordRepository(db)
	goalRepo := repository.NewGoalRepository(db)

	// Solver client
	solverClient := solver.NewClient(cfg.SolverURL, cfg.SolverTimeout)

	// Services
	userService := service.NewUserService(userRepo)
	recordService := service.NewRecordService(recordRepo)
	reportService := service.NewReportService(recordRepo)
	goalService := service.NewGoalService(goalRepo, solverClient)
	exportService := service.NewExportService()

	// Handlers
	authHandler := handler.NewAuthHandler(userService)
	recordHandler := handler.NewRecordHandler(recordService)
	reportHandler := handler.NewReportHandler(reportService)
	goalHandler := handler.NewGoalHandler(goalService)
	exportHandler := handler.NewExportHandler(goalService, exportService)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Health check
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Public routes
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(handler.AuthMiddleware)

		// Current user
		r.Get("/api/auth/me", authHandler.Me)

		// Monthly records
		r.Get("/api/records", recordHandler.List)
		r.Post("/api/records", recordHandler.Create)
		r.Get("/api/records/{id}", recordHandler.Get)
		r.Put("/api/records/{id}", recordHandler.Update)
		r.Delete("/api/records/{id}", recordHandler.Delete)

		// Reports
		r.Get("/api/reports/summary/{year}", reportHandler.YearlySummary)
		r.Get("/api/reports/comparison/{year}", reportHandler.YearlyComparison)
		r.Get("/api/reports/breakdown/{year}", reportHandler.MonthlyBreakdown)

		// Goals
		r.Get("/api/goals", goalHandler.List)
		r.Post("/api/goals", goalHandler.Create)
		r.Get("/api/goals/{id}", goalHandler.Get)
		r.Delete("/api/goals/{id}", goalHandler.Delete)
		r.Get("/api/goals/{id}/export/csv", exportHandler.PortfolioCSV)
		r.Get("/api/goals/{id}/export/pdf", exportHandler.PortfolioPDF)
	})

	// Solver health probe
	var probe *scheduler.Scheduler
	if cfg.SolverHealthEnabled {
		schedCfg := scheduler.Config{
			Schedule: cfg.SolverHealthSchedule,
			Timeout:  cfg.SolverTimeout,
			Enabled:  cfg.SolverHealthEnabled,
		}
		probe = scheduler.New(schedCfg, solverClient, lg)
		if err := probe.Start(); err != nil {
			lg.Error("Failed to start solver health probe", slog.String("error", err.Error()))
		} else {
			probe.RunNow()
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		lg.Info("Shutting down server...")

		if probe != nil {
			ctx := probe.Stop()
			<-ctx.Done()
			lg.Info("Solver health probe stopped")
		}

		if err := server.Shutdown(context.Background()); err != nil {
			lg.Error("Server shutdown error", slog.String("error", err.Error()))
		}
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("Server failed: %v", err)
	}
}
