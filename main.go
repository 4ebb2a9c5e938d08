package main

//go:generate swag init

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/satheeshds/property/db"
	_ "github.com/satheeshds/property/docs"
	"github.com/satheeshds/property/handlers"
	"github.com/satheeshds/property/store"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed static/*
var staticFiles embed.FS

// @title           Property Management API
// @version         1.0.0
// @description     API for managing contacts (landlords/tenants), property units, and lease agreements.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey  ApiKeyAuth
// @in              header
// @name            X-API-Key

func main() {
	// Load .env if present, then configure structured logging
	_ = godotenv.Load()

	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Open database
	database, err := db.Open()
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Run migrations
	if err := db.Migrate(database); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Optional demo data
	if os.Getenv("LOAD_TEST_DATA") == "true" {
		if err := db.LoadTestData(database); err != nil {
			slog.Error("failed to load test data", "error", err)
			os.Exit(1)
		}
	}

	// Set shared store for handlers
	handlers.Store = store.New(database)

	// Mint an API key on first boot when none is configured
	if os.Getenv("API_KEY") == "" {
		key, created, err := handlers.Store.EnsureAPIKey("default")
		if err != nil {
			slog.Error("failed to provision api key", "error", err)
			os.Exit(1)
		}
		if created {
			slog.Info("generated api key, pass it in the X-API-Key header", "key", key)
		}
	}

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// API routes behind the API key check
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(handlers.APIKeyAuth)

		// Contacts
		r.Get("/contacts", handlers.ListContacts)
		r.Post("/contacts", handlers.CreateContact)
		r.Get("/contacts/landlords", handlers.ListLandlords)
		r.Get("/contacts/tenants", handlers.ListTenants)
		r.Get("/contacts/{id}", handlers.GetContact)
		r.Put("/contacts/{id}", handlers.UpdateContact)
		r.Delete("/contacts/{id}", handlers.DeleteContact)

		// Units
		r.Get("/units", handlers.ListUnits)
		r.Post("/units", handlers.CreateUnit)
		r.Get("/units/vacant", handlers.ListVacantUnits)
		r.Get("/units/occupied", handlers.ListOccupiedUnits)
		r.Get("/units/{id}", handlers.GetUnit)
		r.Put("/units/{id}", handlers.UpdateUnit)
		r.Delete("/units/{id}", handlers.DeleteUnit)

		// Leases
		r.Get("/leases", handlers.ListLeases)
		r.Post("/leases", handlers.CreateLease)
		r.Get("/leases/{id}", handlers.GetLease)
		r.Put("/leases/{id}", handlers.UpdateLease)
		r.Delete("/leases/{id}", handlers.DeleteLease)

		// Reports
		r.Get("/dashboard", handlers.GetDashboard)
		r.Get("/summary", handlers.GetSummary)
	})

	// Serve static files (UI)
	staticFS, _ := fs.Sub(staticFiles, "static")
	r.Handle("/*", http.FileServer(http.FS(staticFS)))

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	slog.Info("server starting", "address", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
