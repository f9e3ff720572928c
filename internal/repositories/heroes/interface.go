package heroes

//go:generate mockgen -destination=mock/mock.go -package=mockheroes -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/oop-showcase/internal/domain/roster"
)

// Repository keeps the heroes recruited during this process
type Repository interface {
	// Create stores a new hero
	Create(ctx context.Context, hero roster.Actor) error

	// Get retrieves a hero by ID
	Get(ctx context.Context, id string) (roster.Actor, error)

	// List returns every hero in the order they were created
	List(ctx context.Context) ([]roster.Actor, error)

	// Delete removes a hero
	Delete(ctx context.Context, id string) error
}
