package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coderash112/Daily-Payouts-BPO/internal/config"
	"github.com/coderash112/Daily-Payouts-BPO/internal/infra/database"
	"github.com/coderash112/Daily-Payouts-BPO/internal/infra/http/handlers"
	"github.com/coderash112/Daily-Payouts-BPO/internal/infra/http/middleware"
	"github.com/coderash112/Daily-Payouts-BPO/internal/infra/integration/googlesheets"
	"github.com/coderash112/Daily-Payouts-BPO/internal/infra/mail"
	"github.com/coderash112/Daily-Payouts-BPO/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)

	// 2. Integrations
	sheetsClient, err := googlesheets.NewClient(googlesheets.ClientConfig{
		ServiceAccountEmail: cfg.GoogleServiceAccountEmail,
		PrivateKeyPEM:       cfg.GooglePrivateKey,
		SpreadsheetID:       cfg.GoogleSheetID,
	})
	if err != nil {
		log.Fatalf("google sheets client: %v", err)
	}

	mailSender := mail.NewEmailSender(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass,
		cfg.MailFrom, cfg.MailTo,
	)

	// 3. UseCases
	submitLeadUC := usecase.NewSubmitLeadUseCase(leadRepo, sheetsClient, mailSender)

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(submitLeadUC)
	healthHandler := handlers.NewHealthHandler(db)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Post("/api/leads", leadHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("🔥 Lead intake API running on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
