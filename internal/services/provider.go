package services

import (
	"github.com/KirkDiggler/oop-showcase/internal/domain/fleet"
	"github.com/KirkDiggler/oop-showcase/internal/domain/roster"
	"github.com/KirkDiggler/oop-showcase/internal/events"
	"github.com/KirkDiggler/oop-showcase/internal/narrator"
	"github.com/KirkDiggler/oop-showcase/internal/repositories/heroes"
	"github.com/KirkDiggler/oop-showcase/internal/repositories/vehicles"
	fleetService "github.com/KirkDiggler/oop-showcase/internal/services/fleet"
	rosterService "github.com/KirkDiggler/oop-showcase/internal/services/roster"
	"github.com/KirkDiggler/oop-showcase/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	RosterService rosterService.Service
	FleetService  fleetService.Service
	EventBus      *events.Bus
}

// ProviderConfig holds configuration for creating services.
// Every field is optional.
type ProviderConfig struct {
	HeroRepository    heroes.Repository
	VehicleRepository vehicles.Repository
	HeroIDs           uuid.Generator
	VehicleIDs        uuid.Generator
	Picker            narrator.Picker
	EventBus          *events.Bus
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	heroRepo := cfg.HeroRepository
	if heroRepo == nil {
		heroRepo = heroes.NewInMemoryRepository()
	}

	vehicleRepo := cfg.VehicleRepository
	if vehicleRepo == nil {
		vehicleRepo = vehicles.NewInMemoryRepository()
	}

	eventBus := cfg.EventBus
	if eventBus == nil {
		eventBus = events.NewBus()
	}

	return &Provider{
		RosterService: rosterService.NewService(&rosterService.ServiceConfig{
			Repository: heroRepo,
			Registry:   roster.NewRegistry(cfg.HeroIDs),
			EventBus:   eventBus,
		}),
		FleetService: fleetService.NewService(&fleetService.ServiceConfig{
			Repository: vehicleRepo,
			Garage:     fleet.NewGarage(cfg.VehicleIDs, cfg.Picker),
			EventBus:   eventBus,
		}),
		EventBus: eventBus,
	}
}
