package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adboard.org/internal/auth"
	"adboard.org/internal/campaign"
	"adboard.org/internal/config"
	"adboard.org/internal/httpapi"
	"adboard.org/internal/obs"
	"adboard.org/internal/seed"
	"adboard.org/internal/store/pg"
)

var (
	version = "0.3.0"
	commit  = "dev"
)

func main() {
	cfg := config.Load()

	obs.Init()
	obs.InitBuildInfo(version, commit)

	sessions, err := auth.NewSessions(cfg.SessionSecret)
	if err != nil {
		log.Fatalf("sessions: %v", err)
	}

	// With a DSN both the account and dashboard stores share one pool;
	// without one the server runs on seeded in-memory stores.
	var (
		db        *sql.DB
		userStore auth.Store
		dataStore campaign.Store
	)
	if cfg.DatabaseDSN != "" {
		pgs, err := pg.Open(cfg.DatabaseDSN)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		db = pgs.DB()
		userStore = auth.NewPGStore(db)
		dataStore = pgs
	} else {
		mem := auth.NewMemoryStore()
		data := campaign.NewMemoryStore()
		if err := seed.Apply(context.Background(), mem, data); err != nil {
			log.Fatalf("seed: %v", err)
		}
		userStore = mem
		dataStore = data
		log.Printf("No ADBOARD_PG_DSN set; serving seeded in-memory data")
	}

	api := httpapi.New(
		auth.NewService(userStore, sessions),
		dataStore,
		httpapi.ReadyProbe{DB: db},
		version,
		httpapi.WithSecureCookies(cfg.IsProduction()),
		httpapi.WithRateLimit(cfg.RateBurst, cfg.RatePerSecond),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting adboard-api %s on %s", version, srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	if db != nil {
		_ = db.Close()
	}
	log.Println("Stopped")
}
