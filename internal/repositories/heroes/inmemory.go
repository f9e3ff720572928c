package heroes

import (
	"context"
	"slices"
	"sync"

	"github.com/KirkDiggler/oop-showcase/internal/domain/roster"
	apperr "github.com/KirkDiggler/oop-showcase/internal/errors"
)

// InMemoryRepository stores live heroes, not copies: callers mutate the
// hero they get back.
type InMemoryRepository struct {
	mu     sync.RWMutex
	heroes map[string]roster.Actor
	order  []string
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		heroes: make(map[string]roster.Actor),
	}
}

// Create stores a new hero
func (r *InMemoryRepository) Create(_ context.Context, hero roster.Actor) error {
	if hero == nil {
		return apperr.InvalidArgument("hero cannot be nil")
	}

	if hero.ID() == "" {
		return apperr.InvalidArgument("hero ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.heroes[hero.ID()]; exists {
		return apperr.AlreadyExistsf("hero with ID '%s' already exists", hero.ID()).
			WithMeta("hero_id", hero.ID())
	}

	r.heroes[hero.ID()] = hero
	r.order = append(r.order, hero.ID())

	return nil
}

// Get retrieves a hero by ID
func (r *InMemoryRepository) Get(_ context.Context, id string) (roster.Actor, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("hero ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	hero, exists := r.heroes[id]
	if !exists {
		return nil, apperr.NotFoundf("hero with ID '%s' not found", id).
			WithMeta("hero_id", id)
	}

	return hero, nil
}

// List returns every hero in creation order
func (r *InMemoryRepository) List(_ context.Context) ([]roster.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]roster.Actor, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.heroes[id])
	}

	return result, nil
}

// Delete removes a hero. The registry count is not affected.
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("hero ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.heroes[id]; !exists {
		return apperr.NotFoundf("hero with ID '%s' not found", id).
			WithMeta("hero_id", id)
	}

	delete(r.heroes, id)
	r.order = slices.DeleteFunc(r.order, func(existing string) bool { return existing == id })
	return nil
}
