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
	"github.com/KirkDiggler/oop-showcase/internal/narrator"
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

	provider := services.NewProvider(&services.ProviderConfig{
		Picker: narrator.NewRandomPicker(cfg.Narrator.Seed),
	})

	if cfg.Demo.Verbose {
		provider.EventBus.SubscribeAll(&events.LogListener{}, events.AllEventTypes...)
	}

	if cfg.Narrator.Seed != 0 {
		log.Printf("Narrator seeded with %d", cfg.Narrator.Seed)
	}

	if err := demo.RunFleet(context.Background(), os.Stdout, provider.FleetService); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Fleet demo failed: %v", err)
	}
}
