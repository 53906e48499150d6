package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/marcelsud/webhook-capture/capture"
	"github.com/marcelsud/webhook-capture/capture/postgres"
	captureredis "github.com/marcelsud/webhook-capture/capture/redis"
	"github.com/marcelsud/webhook-capture/config"
	"github.com/marcelsud/webhook-capture/seed"
)

/* seed - Populates the capture store with plausible Stripe webhook events
 * Usage: go run cmd/seed/main.go [-profile profile.yaml]
 * The store is cleared first; seeding is a reset, not an append.
 */

func main() {
	profilePath := flag.String("profile", "", "optional YAML seeding profile")
	flag.Parse()

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	profile := seed.DefaultProfile()
	if *profilePath != "" {
		profile, err = seed.LoadProfile(*profilePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	ctx := context.Background()

	repo, err := newRepository(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer repo.Close(ctx)

	fmt.Println("🌱 Starting store seed for Stripe webhook events...")

	service := capture.NewService(repo)
	if err := service.Reset(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	events, err := profile.Events()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, event := range events {
		if _, err := repo.Insert(ctx, event); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fmt.Printf("✅ Inserted %d webhook events.\n", len(events))
}

func newRepository(cfg *config.Config) (capture.Repository, error) {
	switch cfg.Storage {
	case "redis":
		return captureredis.NewRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case "postgres":
		return postgres.NewRepository(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage)
	}
}
