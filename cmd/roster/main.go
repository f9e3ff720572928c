package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/oop-showcase/internal/config"
	"github.com/KirkDiggler/oop-showcase/internal/demo"
	"github.com/KirkDiggler/oop-showcase/internal/events"
	"github.com/KirkDiggler/oop-showcase/internal/services"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if !cfg.Demo.Verbose {
		log.SetOutput(io.Discard)
	}
	if envErr != nil {
		log.Println("No .env file found")
	}

	provider := services.NewProvider(nil)

	if cfg.Demo.Verbose {
		provider.EventBus.SubscribeAll(&events.LogListener{}, events.AllEventTypes...)
	}

	if err := demo.RunRoster(context.Background(), os.Stdout, provider.RosterService); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Roster demo failed: %v", err)
	}
}
