package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"certpoints/internal/app"
	"certpoints/internal/catalog"
	"certpoints/internal/config"
	"certpoints/internal/logger"
)

func main() {
	deleteOnly := flag.Bool("d", false, "delete all activity rules instead of loading the built-in catalog")
	flag.Parse()

	conf, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %+v", err)
	}
	lg := logger.NewRollbarLogger(log.New(os.Stderr, "", log.LstdFlags), conf)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a, err := app.Open(ctx, conf, lg)
	if err != nil {
		log.Fatalf("Failed to open stores: %+v", err)
	}
	defer a.Close(context.Background())

	rules := catalog.DefaultRules()
	if *deleteOnly {
		rules = nil
	}

	n, err := a.Catalog.Seed(ctx, rules)
	if err != nil {
		log.Fatalf("Failed to seed activity rules: %+v", err)
	}

	if *deleteOnly {
		log.Println("Deleted all activity rules")
		return
	}
	log.Printf("Seeded %d activity rules (%s)", n, catalog.DefaultVersion)
}
