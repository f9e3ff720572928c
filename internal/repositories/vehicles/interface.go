package vehicles

//go:generate mockgen -destination=mock/mock.go -package=mockvehicles -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/oop-showcase/internal/domain/fleet"
)

// Repository keeps the vehicles registered during this process
type Repository interface {
	// Create stores a new vehicle
	Create(ctx context.Context, vehicle fleet.Vehicle) error

	// Get retrieves a vehicle by ID
	Get(ctx context.Context, id string) (fleet.Vehicle, error)

	// List returns every vehicle in the order they were created
	List(ctx context.Context) ([]fleet.Vehicle, error)

	// Delete removes a vehicle
	Delete(ctx context.Context, id string) error
}
