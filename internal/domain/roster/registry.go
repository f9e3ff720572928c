package roster

import (
	"fmt"
	"sync/atomic"

	"github.com/KirkDiggler/oop-showcase/internal/uuid"
)

// Registry constructs heroes and counts every construction. The count never
// goes down. Safe for concurrent use.
type Registry struct {
	ids     uuid.Generator
	created atomic.Int64
}

// NewRegistry creates a registry stamping IDs from ids
func NewRegistry(ids uuid.Generator) *Registry {
	if ids == nil {
		ids = uuid.NewPrefixedGenerator("hero")
	}

	return &Registry{ids: ids}
}

// NewHero creates a plain hero with full energy
func (r *Registry) NewHero(name, realName string, powerLevel int, primaryPower string) *Hero {
	h := r.newHero(name, realName, powerLevel, primaryPower)
	return &h
}

// NewFlyingHero creates a grounded flying hero
func (r *Registry) NewFlyingHero(name, realName string, powerLevel int, primaryPower string, maxAltitude int) *FlyingHero {
	return &FlyingHero{
		Hero:        r.newHero(name, realName, powerLevel, primaryPower),
		maxAltitude: maxAltitude,
	}
}

// NewTechHero creates a tech hero at tech level 1 with an empty arsenal
func (r *Registry) NewTechHero(name, realName string, powerLevel int, primaryPower string, gadgetCapacity int) *TechHero {
	return &TechHero{
		Hero:           r.newHero(name, realName, powerLevel, primaryPower),
		gadgetCapacity: gadgetCapacity,
		gadgets:        []string{},
		techLevel:      1,
	}
}

// Count returns how many heroes this registry has created
func (r *Registry) Count() int {
	return int(r.created.Load())
}

// HeroCount narrates Count
func (r *Registry) HeroCount() string {
	return fmt.Sprintf("Total superheroes created: %d", r.Count())
}

// No range validation: power levels and capacities are taken as given.
func (r *Registry) newHero(name, realName string, powerLevel int, primaryPower string) Hero {
	r.created.Add(1)

	return Hero{
		id:           r.ids.New(),
		name:         name,
		realName:     realName,
		powerLevel:   powerLevel,
		primaryPower: primaryPower,
		energy:       MaxEnergy,
		active:       true,
		weakness:     "Unknown",
	}
}
