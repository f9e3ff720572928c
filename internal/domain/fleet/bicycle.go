package fleet

import "github.com/KirkDiggler/oop-showcase/internal/domain/shared"

const (
	// RiderEnergy is a bicycle's "fuel capacity": the rider's stamina
	RiderEnergy = 100

	BicycleGears = 21
)

// Bicycle is pedalled 2km for 5 rider energy
type Bicycle struct {
	frame

	gearCount   int
	currentGear int
}

func (b *Bicycle) Kind() Kind       { return KindBicycle }
func (b *Bicycle) GearCount() int   { return b.gearCount }
func (b *Bicycle) CurrentGear() int { return b.currentGear }

func (b *Bicycle) Move() *shared.Result {
	if !b.travel(5, 5, 2) {
		return shared.Failed("The rider of %s is too tired to pedal!", b.name)
	}
	return shared.Succeeded("🚴 %s is pedaling along the path! %s", b.name, b.MovementSound())
}

func (b *Bicycle) MovementSound() string {
	return b.pick(KindBicycle)
}

// Refuel lets the rider rest; numerically the same as any refuel
func (b *Bicycle) Refuel() *shared.Result {
	b.fuel = b.fuelCapacity
	return shared.Succeeded("The rider of %s has rested and is energized!", b.name)
}
