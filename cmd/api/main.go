package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/joho/godotenv"

	"github.com/smartdelivery/smartdelivery-golang/internal/ai"
	"github.com/smartdelivery/smartdelivery-golang/internal/auth"
	"github.com/smartdelivery/smartdelivery-golang/internal/config"
	"github.com/smartdelivery/smartdelivery-golang/internal/database"
	"github.com/smartdelivery/smartdelivery-golang/internal/handlers"
	"github.com/smartdelivery/smartdelivery-golang/internal/routes"
	"github.com/smartdelivery/smartdelivery-golang/internal/service"
	"github.com/smartdelivery/smartdelivery-golang/internal/store"
)

func main() {
	// --- Environment & Config ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}
	cfg := config.Load()
	log.Printf("Configuration loaded: %s", cfg)

	// --- Database ---
	db, err := openDB(cfg.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := database.InitSchema(db); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	// --- Stores ---
	orders := store.NewOrderStore(db)
	drivers := store.NewDriverStore(db)
	users := store.NewUserStore(db)

	// --- AI Report Service ---
	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY is not set. Driver reports will serve fallback text.")
	}
	reporter, err := ai.NewReportService(context.Background(), cfg.GeminiAPIKey, cfg.ReportModel, cfg.ReportTimeout)
	if err != nil {
		log.Fatalf("Failed to initialize report service: %v", err)
	}
	defer reporter.Close()

	// --- Services ---
	lifecycle := service.NewLifecycle(orders, nil, nil)
	analytics := service.NewAnalytics(orders, drivers, service.MatchSubstring, nil)
	roster := service.NewRoster(drivers, orders, users)
	accounts := service.NewAccounts(users, drivers, auth.NewResetKeys(cfg.ResetKeyTTL, nil))

	app := &handlers.Handlers{
		Lifecycle: lifecycle,
		Analytics: analytics,
		Roster:    roster,
		Accounts:  accounts,
		Orders:    orders,
		Reporter:  reporter,
		JWTSecret: cfg.JWTSecret,
	}

	// --- Router & Server ---
	router := routes.SetupRouter(app)

	log.Printf("Starting delivery API server on %s...", cfg.HTTPAddr)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func openDB(dsn string) (*sql.DB, error) {
	if dsn != "" {
		return database.OpenDBWithDSN(dsn)
	}
	return database.OpenDB()
}
