package fleet

import (
	"fmt"
	"slices"

	"github.com/KirkDiggler/oop-showcase/internal/domain/shared"
	"github.com/KirkDiggler/oop-showcase/internal/narrator"
)

// Kind identifies a vehicle variant
type Kind string

const (
	KindCar     Kind = "car"
	KindPlane   Kind = "plane"
	KindBoat    Kind = "boat"
	KindBicycle Kind = "bicycle"
	KindTrain   Kind = "train"
)

// Kinds lists every variant in declaration order
var Kinds = []Kind{KindCar, KindPlane, KindBoat, KindBicycle, KindTrain}

// Vehicle is the capability shared by every variant. Implementers are
// *Car, *Plane, *Boat, *Bicycle and *Train only.
type Vehicle interface {
	ID() string
	Name() string
	Kind() Kind
	Speed() int
	FuelCapacity() int
	Fuel() int
	Distance() int
	IsMoving() bool

	// Move spends fuel and covers distance in the variant's own way
	Move() *shared.Result

	// MovementSound picks one of the variant's Sounds
	MovementSound() string

	// Refuel fills the tank back to capacity
	Refuel() *shared.Result

	// Stop halts a moving vehicle
	Stop() *shared.Result

	// Status reports speed, fuel, motion and distance
	Status() string

	core() *frame
}

var (
	_ Vehicle = (*Car)(nil)
	_ Vehicle = (*Plane)(nil)
	_ Vehicle = (*Boat)(nil)
	_ Vehicle = (*Bicycle)(nil)
	_ Vehicle = (*Train)(nil)
)

var sounds = map[Kind][]string{
	KindCar:     {"Vroom vroom!", "Engine purring smoothly", "Tires gripping the asphalt"},
	KindPlane:   {"Whoooosh through the clouds!", "Jet engines roaring!", "Soaring silently above"},
	KindBoat:    {"Splash splash through the waves!", "Cutting through the water smoothly", "Wind filling the sails!"},
	KindBicycle: {"Pedaling rhythmically!", "Chain spinning smoothly", "Wheels rolling quietly"},
	KindTrain:   {"Choo choo! All aboard!", "Clickety-clack on the tracks", "Steam hissing, wheels turning"},
}

// Sounds returns the movement sounds a variant may narrate
func Sounds(kind Kind) []string {
	return slices.Clone(sounds[kind])
}

// frame holds the state every variant shares. Fuel stays within
// [0, fuelCapacity] and distance never decreases.
type frame struct {
	id           string
	name         string
	speed        int
	fuelCapacity int
	fuel         int
	distance     int
	moving       bool

	picker narrator.Picker
}

func (f *frame) ID() string        { return f.id }
func (f *frame) Name() string      { return f.name }
func (f *frame) Speed() int        { return f.speed }
func (f *frame) FuelCapacity() int { return f.fuelCapacity }
func (f *frame) Fuel() int         { return f.fuel }
func (f *frame) Distance() int     { return f.distance }
func (f *frame) IsMoving() bool    { return f.moving }

func (f *frame) core() *frame { return f }

// Refuel fills the tank back to capacity
func (f *frame) Refuel() *shared.Result {
	f.fuel = f.fuelCapacity
	return shared.Succeeded("%s has been refueled to %dL!", f.name, f.fuelCapacity)
}

// Stop halts a moving vehicle
func (f *frame) Stop() *shared.Result {
	if !f.moving {
		return shared.Failed("%s is already stopped.", f.name)
	}

	f.moving = false
	return shared.Succeeded("%s has stopped.", f.name)
}

// Status reports speed, fuel, motion and distance
func (f *frame) Status() string {
	status := "Stationary"
	if f.moving {
		status = "Moving"
	}
	return fmt.Sprintf("%s - Speed: %d km/h, Fuel: %dL, Status: %s, Distance: %dkm",
		f.name, f.speed, f.fuel, status, f.distance)
}

// travel moves only when fuel exceeds threshold. Fuel is floored at zero.
func (f *frame) travel(threshold, cost, distance int) bool {
	if f.fuel <= threshold {
		return false
	}

	f.moving = true
	f.fuel = max(0, f.fuel-cost)
	f.distance += distance
	return true
}

func (f *frame) pick(kind Kind) string {
	return f.picker.Pick(sounds[kind])
}
