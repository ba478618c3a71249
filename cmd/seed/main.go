package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"adboard.org/internal/auth"
	"adboard.org/internal/seed"
	"adboard.org/internal/store/pg"
)

func main() {
	log.SetFlags(0)
	dsn := flag.String("dsn", os.Getenv("ADBOARD_PG_DSN"), "PostgreSQL DSN")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("missing DSN: provide via -dsn or ADBOARD_PG_DSN")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	store, err := pg.Open(*dsn)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer store.Close()

	if err := seed.Apply(ctx, auth.NewPGStore(store.DB()), store); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("Seeded demo data (%s / %s)", seed.AdminEmail, seed.DemoPassword)
}
