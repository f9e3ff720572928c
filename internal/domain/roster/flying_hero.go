package roster

import (
	"github.com/KirkDiggler/oop-showcase/internal/domain/shared"
)

const (
	// TakeOffCost is the energy spent leaving the ground
	TakeOffCost = 15

	// TakeOffAltitude is the altitude reached right after take off
	TakeOffAltitude = 100

	// ClimbStep is how far one FlyHigher climbs
	ClimbStep = 500

	// AerialDiscountPercent is taken off power costs while airborne
	AerialDiscountPercent = 20
)

// FlyingHero is a Hero that can take off, climb and land. Powers used in
// the air are cheaper.
type FlyingHero struct {
	Hero

	maxAltitude     int
	currentAltitude int
	flying          bool
}

func (f *FlyingHero) Kind() Kind           { return KindFlying }
func (f *FlyingHero) MaxAltitude() int     { return f.maxAltitude }
func (f *FlyingHero) CurrentAltitude() int { return f.currentAltitude }
func (f *FlyingHero) IsFlying() bool       { return f.flying }

// TakeOff spends TakeOffCost energy and climbs to TakeOffAltitude
func (f *FlyingHero) TakeOff() *shared.Result {
	// A tired hero is reported as tired even when already airborne.
	if f.energy < TakeOffCost {
		return shared.Failed("%s is too tired to fly!", f.name)
	}

	if f.flying {
		return shared.Failed("%s is already flying!", f.name)
	}

	f.spend(TakeOffCost)
	f.flying = true
	f.currentAltitude = TakeOffAltitude
	return shared.Succeeded("%s takes off and soars to %d feet!", f.name, f.currentAltitude)
}

// Land brings the hero back to altitude 0
func (f *FlyingHero) Land() *shared.Result {
	if !f.flying {
		return shared.Failed("%s is already on the ground.", f.name)
	}

	f.flying = false
	f.currentAltitude = 0
	return shared.Succeeded("%s lands safely on the ground.", f.name)
}

// FlyHigher climbs ClimbStep feet, capped at the hero's max altitude.
// Climbing is free.
func (f *FlyingHero) FlyHigher() *shared.Result {
	if !f.flying {
		return shared.Failed("%s needs to take off first!", f.name)
	}

	if f.currentAltitude >= f.maxAltitude {
		return shared.Failed("%s has reached maximum altitude of %d feet!", f.name, f.maxAltitude)
	}

	f.currentAltitude = min(f.maxAltitude, f.currentAltitude+ClimbStep)
	return shared.Succeeded("%s flies higher to %d feet!", f.name, f.currentAltitude)
}

// UsePower behaves like Hero.UsePower on the ground. In the air the cost is
// reduced by AerialDiscountPercent, truncated toward zero.
func (f *FlyingHero) UsePower(intensity int) *shared.Result {
	if !f.flying {
		return f.Hero.UsePower(intensity)
	}

	if intensity < 1 {
		return f.invalidIntensity(intensity)
	}

	if intensity > f.energy*100/(PowerCostPerIntensity*(100-AerialDiscountPercent)) {
		return f.tooTired()
	}

	f.spend(intensity * PowerCostPerIntensity * (100 - AerialDiscountPercent) / 100)

	return shared.Succeeded("%s uses %s with intensity %d (with aerial advantage)! Energy remaining: %d",
		f.name, f.primaryPower, intensity, f.energy)
}
