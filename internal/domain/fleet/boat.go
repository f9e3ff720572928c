package fleet

import "github.com/KirkDiggler/oop-showcase/internal/domain/shared"

// Boat sails 5km for 1 fuel unless its anchor is down
type Boat struct {
	frame

	boatType      string
	anchorDropped bool
}

func (b *Boat) Kind() Kind            { return KindBoat }
func (b *Boat) BoatType() string      { return b.boatType }
func (b *Boat) IsAnchorDropped() bool { return b.anchorDropped }
func (b *Boat) MovementSound() string { return b.pick(KindBoat) }

// Move fails outright while anchored, whatever the fuel level
func (b *Boat) Move() *shared.Result {
	if b.anchorDropped {
		return shared.Failed("⚓ %s cannot move - anchor is dropped!", b.name)
	}

	if !b.travel(1, 1, 5) {
		return shared.Failed("%s is out of fuel and cannot sail!", b.name)
	}
	return shared.Succeeded("🚤 %s is sailing across the water! %s", b.name, b.MovementSound())
}

// DropAnchor always succeeds and stops the boat
func (b *Boat) DropAnchor() *shared.Result {
	b.anchorDropped = true
	b.moving = false
	return shared.Succeeded("⚓ %s has dropped anchor!", b.name)
}

// RaiseAnchor always succeeds
func (b *Boat) RaiseAnchor() *shared.Result {
	b.anchorDropped = false
	return shared.Succeeded("⚓ %s has raised anchor and is ready to sail!", b.name)
}
