package fleet

import "github.com/KirkDiggler/oop-showcase/internal/domain/shared"

const (
	MinGear = 1
	MaxGear = 5
)

// Car drives on the road, 10km for 2 fuel
type Car struct {
	frame

	doors int
	gear  int
}

func (c *Car) Kind() Kind { return KindCar }
func (c *Car) Doors() int { return c.doors }
func (c *Car) Gear() int  { return c.gear }

func (c *Car) Move() *shared.Result {
	if !c.travel(0, 2, 10) {
		return shared.Failed("%s is out of fuel and cannot drive!", c.name)
	}
	return shared.Succeeded("🚗 %s is driving on the road! %s", c.name, c.MovementSound())
}

func (c *Car) MovementSound() string {
	return c.pick(KindCar)
}

// ChangeGear accepts gears MinGear through MaxGear
func (c *Car) ChangeGear(gear int) *shared.Result {
	if gear < MinGear || gear > MaxGear {
		return shared.Failed("Invalid gear for %s!", c.name)
	}

	c.gear = gear
	return shared.Succeeded("%s shifts to gear %d", c.name, c.gear)
}
