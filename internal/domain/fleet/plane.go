package fleet

import "github.com/KirkDiggler/oop-showcase/internal/domain/shared"

// CruisingAltitude is reached on a plane's first move
const CruisingAltitude = 10000

// Plane flies, 50km for 5 fuel, and needs more than 5 fuel to do so
type Plane struct {
	frame

	altitudeLimit   int
	currentAltitude int
	airborne        bool
}

func (p *Plane) Kind() Kind           { return KindPlane }
func (p *Plane) AltitudeLimit() int   { return p.altitudeLimit }
func (p *Plane) CurrentAltitude() int { return p.currentAltitude }
func (p *Plane) IsAirborne() bool     { return p.airborne }

func (p *Plane) Move() *shared.Result {
	if !p.travel(5, 5, 50) {
		return shared.Failed("%s is out of fuel and cannot fly!", p.name)
	}

	if !p.airborne {
		p.airborne = true
		p.currentAltitude = CruisingAltitude
	}

	return shared.Succeeded("✈️ %s is flying through the skies at %dft! %s",
		p.name, p.currentAltitude, p.MovementSound())
}

func (p *Plane) MovementSound() string {
	return p.pick(KindPlane)
}

// Land grounds an airborne plane and stops it
func (p *Plane) Land() *shared.Result {
	if !p.airborne {
		return shared.Failed("%s is already on the ground!", p.name)
	}

	p.airborne = false
	p.currentAltitude = 0
	p.moving = false
	return shared.Succeeded("%s has landed safely!", p.name)
}
