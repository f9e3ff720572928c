package roster

import (
	"fmt"

	"github.com/KirkDiggler/oop-showcase/internal/domain/shared"
)

const (
	// MaxEnergy is both the starting and the maximum energy of every hero
	MaxEnergy = 100

	// RestRecovery is the energy regained by one Rest
	RestRecovery = 30

	// PowerCostPerIntensity is the energy cost of one point of intensity
	PowerCostPerIntensity = 10
)

// Hero is the base roster entity. Energy always stays within [0, MaxEnergy].
type Hero struct {
	id           string
	name         string
	realName     string
	powerLevel   int
	primaryPower string
	energy       int
	active       bool
	weakness     string
}

func (h *Hero) ID() string           { return h.id }
func (h *Hero) Name() string         { return h.name }
func (h *Hero) RealName() string     { return h.realName }
func (h *Hero) PowerLevel() int      { return h.powerLevel }
func (h *Hero) PrimaryPower() string { return h.primaryPower }
func (h *Hero) Energy() int          { return h.energy }
func (h *Hero) IsActive() bool       { return h.active }
func (h *Hero) Kind() Kind           { return KindHero }

func (h *Hero) hero() *Hero { return h }

// Introduce returns the hero's introduction line
func (h *Hero) Introduce() string {
	return fmt.Sprintf("I am %s! My primary power is %s.", h.name, h.primaryPower)
}

// UsePower spends intensity*PowerCostPerIntensity energy. A tired hero keeps
// their energy untouched.
func (h *Hero) UsePower(intensity int) *shared.Result {
	if intensity < 1 {
		return h.invalidIntensity(intensity)
	}

	// Checked before multiplying so huge intensities cannot overflow the cost.
	if intensity > h.energy/PowerCostPerIntensity {
		return h.tooTired()
	}

	h.spend(intensity * PowerCostPerIntensity)

	return shared.Succeeded("%s uses %s with intensity %d! Energy remaining: %d",
		h.name, h.primaryPower, intensity, h.energy)
}

// Rest recovers RestRecovery energy without exceeding MaxEnergy
func (h *Hero) Rest() *shared.Result {
	h.energy = min(MaxEnergy, h.energy+RestRecovery)
	return shared.Succeeded("%s rests and recovers energy. Current energy: %d", h.name, h.energy)
}

// Status reports power level, energy and activity
func (h *Hero) Status() string {
	status := "Inactive"
	if h.active {
		status = "Active"
	}
	return fmt.Sprintf("%s - Power Level: %d, Energy: %d, Status: %s",
		h.name, h.powerLevel, h.energy, status)
}

func (h *Hero) String() string {
	return fmt.Sprintf("%s (Real name: %s)", h.name, h.realName)
}

// setWeakness records the hero's secret weakness. Nothing reads it back.
func (h *Hero) setWeakness(weakness string) {
	h.weakness = weakness
}

// spend deducts cost only when the hero can afford all of it
func (h *Hero) spend(cost int) bool {
	if h.energy < cost {
		return false
	}
	h.energy -= cost
	return true
}

func (h *Hero) tooTired() *shared.Result {
	return shared.Failed("%s is too tired to use their power! Energy: %d", h.name, h.energy)
}

func (h *Hero) invalidIntensity(intensity int) *shared.Result {
	return shared.Failed("%s cannot use %s with intensity %d!", h.name, h.primaryPower, intensity)
}
