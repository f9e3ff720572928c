package fleet

import (
	"github.com/KirkDiggler/oop-showcase/internal/narrator"
	"github.com/KirkDiggler/oop-showcase/internal/uuid"
)

// Garage builds vehicles with full tanks, stamping IDs and wiring the
// narrator used for movement sounds. Inputs are not range checked.
type Garage struct {
	ids    uuid.Generator
	picker narrator.Picker
}

// NewGarage creates a garage; nil arguments fall back to random defaults
func NewGarage(ids uuid.Generator, picker narrator.Picker) *Garage {
	if ids == nil {
		ids = uuid.NewPrefixedGenerator("vehicle")
	}
	if picker == nil {
		picker = narrator.NewRandomPicker(0)
	}

	return &Garage{
		ids:    ids,
		picker: picker,
	}
}

func (g *Garage) NewCar(name string, speed, fuelCapacity, doors int) *Car {
	return &Car{
		frame: g.newFrame(name, speed, fuelCapacity),
		doors: doors,
		gear:  MinGear,
	}
}

func (g *Garage) NewPlane(name string, speed, fuelCapacity, altitudeLimit int) *Plane {
	return &Plane{
		frame:         g.newFrame(name, speed, fuelCapacity),
		altitudeLimit: altitudeLimit,
	}
}

func (g *Garage) NewBoat(name string, speed, fuelCapacity int, boatType string) *Boat {
	return &Boat{
		frame:    g.newFrame(name, speed, fuelCapacity),
		boatType: boatType,
	}
}

// NewBicycle has no tank; its capacity is the rider's RiderEnergy
func (g *Garage) NewBicycle(name string, speed int) *Bicycle {
	return &Bicycle{
		frame:       g.newFrame(name, speed, RiderEnergy),
		gearCount:   BicycleGears,
		currentGear: 1,
	}
}

func (g *Garage) NewTrain(name string, speed, fuelCapacity, carCount int) *Train {
	return &Train{
		frame:    g.newFrame(name, speed, fuelCapacity),
		carCount: carCount,
		onTracks: true,
	}
}

func (g *Garage) newFrame(name string, speed, fuelCapacity int) frame {
	return frame{
		id:           g.ids.New(),
		name:         name,
		speed:        speed,
		fuelCapacity: fuelCapacity,
		fuel:         fuelCapacity,
		picker:       g.picker,
	}
}
