package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"onboard/internal/config"
	"onboard/internal/db"
	"onboard/internal/domain/checklist"
	"onboard/internal/domain/onboarding"
	"onboard/internal/domain/refdata"
	"onboard/internal/domain/salary"
	"onboard/internal/domain/status"
	"onboard/internal/middleware"
	centralofficehandlers "onboard/internal/transport/http/handlers/centraloffice"
	onboardinghandlers "onboard/internal/transport/http/handlers/onboarding"
	salaryhandlers "onboard/internal/transport/http/handlers/salary"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	refStore := refdata.NewStore(pool)
	statusStore := status.NewStore(pool)

	onboardingService := onboarding.NewService(
		onboarding.NewStore(pool), refStore, statusStore,
		onboarding.Defaults{
			AuditUserID:      cfg.DefaultAuditUserID,
			ContractTermDays: cfg.ContractTermDays,
		})
	checklistService := checklist.NewService(checklist.NewStore(pool), refStore, statusStore)
	salaryService := salary.NewService(salary.NewStore(pool), refStore, statusStore, cfg.DefaultAuditUserID)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1/employee", func(r chi.Router) {
		onboardinghandlers.NewHandler(onboardingService).RegisterRoutes(r)
		centralofficehandlers.NewHandler(checklistService).RegisterRoutes(r)
		salaryhandlers.NewHandler(salaryService).RegisterRoutes(r)
	})

	log.Printf("onboarding server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
