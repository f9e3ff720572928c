package vehicles

import (
	"context"
	"slices"
	"sync"

	"github.com/KirkDiggler/oop-showcase/internal/domain/fleet"
	apperr "github.com/KirkDiggler/oop-showcase/internal/errors"
)

// InMemoryRepository stores live vehicles, not copies: callers mutate the
// vehicle they get back.
type InMemoryRepository struct {
	mu       sync.RWMutex
	vehicles map[string]fleet.Vehicle
	order    []string
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		vehicles: make(map[string]fleet.Vehicle),
	}
}

// Create stores a new vehicle
func (r *InMemoryRepository) Create(_ context.Context, vehicle fleet.Vehicle) error {
	if vehicle == nil {
		return apperr.InvalidArgument("vehicle cannot be nil")
	}

	if vehicle.ID() == "" {
		return apperr.InvalidArgument("vehicle ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vehicles[vehicle.ID()]; exists {
		return apperr.AlreadyExistsf("vehicle with ID '%s' already exists", vehicle.ID()).
			WithMeta("vehicle_id", vehicle.ID())
	}

	r.vehicles[vehicle.ID()] = vehicle
	r.order = append(r.order, vehicle.ID())

	return nil
}

// Get retrieves a vehicle by ID
func (r *InMemoryRepository) Get(_ context.Context, id string) (fleet.Vehicle, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("vehicle ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	vehicle, exists := r.vehicles[id]
	if !exists {
		return nil, apperr.NotFoundf("vehicle with ID '%s' not found", id).
			WithMeta("vehicle_id", id)
	}

	return vehicle, nil
}

// List returns every vehicle in creation order
func (r *InMemoryRepository) List(_ context.Context) ([]fleet.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]fleet.Vehicle, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.vehicles[id])
	}

	return result, nil
}

// Delete removes a vehicle
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("vehicle ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vehicles[id]; !exists {
		return apperr.NotFoundf("vehicle with ID '%s' not found", id).
			WithMeta("vehicle_id", id)
	}

	delete(r.vehicles, id)
	r.order = slices.DeleteFunc(r.order, func(existing string) bool { return existing == id })
	return nil
}
