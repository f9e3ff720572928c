package roster

import "github.com/KirkDiggler/oop-showcase/internal/domain/shared"

// Kind identifies which hero variant an Actor is
type Kind string

const (
	KindHero   Kind = "hero"
	KindFlying Kind = "flying"
	KindTech   Kind = "tech"
)

// Actor is what every hero can do. The set of implementers is closed:
// *Hero, *FlyingHero and *TechHero.
type Actor interface {
	ID() string
	Name() string
	Kind() Kind

	// Introduce returns the hero's introduction line
	Introduce() string

	// UsePower spends intensity*10 energy when the hero has enough of it
	UsePower(intensity int) *shared.Result

	// Rest recovers 30 energy, capped at MaxEnergy
	Rest() *shared.Result

	// Status reports power level, energy and activity
	Status() string

	String() string

	hero() *Hero
}

var (
	_ Actor = (*Hero)(nil)
	_ Actor = (*FlyingHero)(nil)
	_ Actor = (*TechHero)(nil)
)
