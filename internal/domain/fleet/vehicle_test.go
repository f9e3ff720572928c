package fleet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/oop-showcase/internal/domain/fleet"
	"github.com/KirkDiggler/oop-showcase/internal/narrator"
	mocknarrator "github.com/KirkDiggler/oop-showcase/internal/narrator/mock"
	"github.com/KirkDiggler/oop-showcase/internal/uuid"
)

func newGarage(picks ...int) *fleet.Garage {
	return fleet.NewGarage(uuid.NewSequenceGenerator("vehicle"), mocknarrator.NewManualMockPicker(picks...))
}

func TestVehicle_MoveTable(t *testing.T) {
	tests := []struct {
		name         string
		build        func(g *fleet.Garage) fleet.Vehicle
		wantFuel     int
		wantDistance int
		wantMessage  string
		wantFailMsg  string
		drainToFuel  int
	}{
		{
			name:         "car",
			build:        func(g *fleet.Garage) fleet.Vehicle { return g.NewCar("Toyota Camry", 120, 50, 4) },
			wantFuel:     48,
			wantDistance: 10,
			wantMessage:  "🚗 Toyota Camry is driving on the road! Vroom vroom!",
			wantFailMsg:  "Toyota Camry is out of fuel and cannot drive!",
			drainToFuel:  0,
		},
		{
			name:         "plane",
			build:        func(g *fleet.Garage) fleet.Vehicle { return g.NewPlane("Boeing 747", 900, 200, 42000) },
			wantFuel:     195,
			wantDistance: 50,
			wantMessage:  "✈️ Boeing 747 is flying through the skies at 10000ft! Whoooosh through the clouds!",
			wantFailMsg:  "Boeing 747 is out of fuel and cannot fly!",
			drainToFuel:  5,
		},
		{
			name:         "boat",
			build:        func(g *fleet.Garage) fleet.Vehicle { return g.NewBoat("Ocean Breeze", 25, 100, "yacht") },
			wantFuel:     99,
			wantDistance: 5,
			wantMessage:  "🚤 Ocean Breeze is sailing across the water! Splash splash through the waves!",
			wantFailMsg:  "Ocean Breeze is out of fuel and cannot sail!",
			drainToFuel:  1,
		},
		{
			name:         "bicycle",
			build:        func(g *fleet.Garage) fleet.Vehicle { return g.NewBicycle("Mountain Bike", 25) },
			wantFuel:     95,
			wantDistance: 2,
			wantMessage:  "🚴 Mountain Bike is pedaling along the path! Pedaling rhythmically!",
			wantFailMsg:  "The rider of Mountain Bike is too tired to pedal!",
			drainToFuel:  5,
		},
		{
			name:         "train",
			build:        func(g *fleet.Garage) fleet.Vehicle { return g.NewTrain("Express Line", 200, 5000, 8) },
			wantFuel:     4997,
			wantDistance: 30,
			wantMessage:  "🚂 Express Line is chugging along the railway! Choo choo! All aboard!",
			wantFailMsg:  "Express Line is out of fuel and cannot run!",
			drainToFuel:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.build(newGarage())
			require.False(t, v.IsMoving())

			result := v.Move()

			assert.True(t, result.Success)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Equal(t, tt.wantFuel, v.Fuel())
			assert.Equal(t, tt.wantDistance, v.Distance())
			assert.True(t, v.IsMoving())

			for v.Move().Success {
				assert.GreaterOrEqual(t, v.Fuel(), 0)
			}
			assert.Equal(t, tt.drainToFuel, v.Fuel())

			distance := v.Distance()
			failed := v.Move()
			assert.False(t, failed.Success)
			assert.Equal(t, tt.wantFailMsg, failed.Message)
			assert.Equal(t, tt.drainToFuel, v.Fuel(), "a refused move costs nothing")
			assert.Equal(t, distance, v.Distance())
		})
	}
}

func TestVehicle_SoundsComeFromTheVariantSet(t *testing.T) {
	g := fleet.NewGarage(nil, narrator.NewRandomPicker(0))
	vehicles := []fleet.Vehicle{
		g.NewCar("Sports Car", 200, 60, 2),
		g.NewPlane("Fighter Jet", 1500, 1000, 50000),
		g.NewBoat("Dinghy", 10, 30, "sailboat"),
		g.NewBicycle("Racing Bike", 40),
		g.NewTrain("Night Train", 160, 900, 12),
	}

	for _, v := range vehicles {
		allowed := fleet.Sounds(v.Kind())
		require.Len(t, allowed, 3)
		for i := 0; i < 20; i++ {
			assert.Contains(t, allowed, v.MovementSound())
		}
	}
}

func TestVehicle_MoveNarratesThePickedSound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	picker := mocknarrator.NewMockPicker(ctrl)
	picker.EXPECT().
		Pick(fleet.Sounds(fleet.KindTrain)).
		Return("Steam hissing, wheels turning").
		Times(1)

	g := fleet.NewGarage(uuid.NewSequenceGenerator("vehicle"), picker)
	train := g.NewTrain("Express Line", 200, 5000, 8)

	assert.Equal(t, "🚂 Express Line is chugging along the railway! Steam hissing, wheels turning", train.Move().Message)
}

func TestVehicle_RefusedMoveDoesNotNarrate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	picker := mocknarrator.NewMockPicker(ctrl)
	picker.EXPECT().Pick(gomock.Any()).Times(0)

	g := fleet.NewGarage(nil, picker)
	plane := g.NewPlane("Glider", 80, 5, 3000)

	assert.False(t, plane.Move().Success)
}

func TestCar_TwentyFiveMovesDrainTheTank(t *testing.T) {
	car := newGarage().NewCar("Toyota Camry", 120, 50, 4)

	for i := 0; i < 25; i++ {
		require.True(t, car.Move().Success, "move %d", i+1)
	}

	assert.Equal(t, 0, car.Fuel())
	assert.Equal(t, 250, car.Distance())
	assert.False(t, car.Move().Success)
	assert.Equal(t, 250, car.Distance())
}

func TestCar_OddCapacityNeverGoesNegative(t *testing.T) {
	car := newGarage().NewCar("Beetle", 110, 3, 2)

	assert.True(t, car.Move().Success)
	assert.True(t, car.Move().Success)
	assert.Equal(t, 0, car.Fuel())
	assert.False(t, car.Move().Success)
}

func TestCar_ChangeGear(t *testing.T) {
	car := newGarage().NewCar("Toyota Camry", 120, 50, 4)
	require.Equal(t, 1, car.Gear())
	require.Equal(t, 4, car.Doors())

	for _, gear := range []int{0, 6, -1} {
		result := car.ChangeGear(gear)
		assert.False(t, result.Success)
		assert.Equal(t, "Invalid gear for Toyota Camry!", result.Message)
		assert.Equal(t, 1, car.Gear())
	}

	result := car.ChangeGear(3)
	assert.True(t, result.Success)
	assert.Equal(t, "Toyota Camry shifts to gear 3", result.Message)
	assert.Equal(t, 3, car.Gear())
	assert.Equal(t, 50, car.Fuel())
}

func TestPlane_Land(t *testing.T) {
	plane := newGarage().NewPlane("Boeing 747", 900, 200000, 42000)

	grounded := plane.Land()
	assert.False(t, grounded.Success)
	assert.Equal(t, "Boeing 747 is already on the ground!", grounded.Message)

	plane.Move()
	plane.Move()
	assert.True(t, plane.IsAirborne())
	assert.Equal(t, fleet.CruisingAltitude, plane.CurrentAltitude())
	assert.Equal(t, 42000, plane.AltitudeLimit())

	landed := plane.Land()
	assert.True(t, landed.Success)
	assert.Equal(t, "Boeing 747 has landed safely!", landed.Message)
	assert.False(t, plane.IsAirborne())
	assert.False(t, plane.IsMoving())
	assert.Equal(t, 0, plane.CurrentAltitude())
}

func TestBoat_Anchor(t *testing.T) {
	boat := newGarage().NewBoat("Ocean Breeze", 25, 100, "yacht")
	boat.Move()
	require.True(t, boat.IsMoving())
	assert.Equal(t, "yacht", boat.BoatType())

	dropped := boat.DropAnchor()
	assert.True(t, dropped.Success)
	assert.Equal(t, "⚓ Ocean Breeze has dropped anchor!", dropped.Message)
	assert.False(t, boat.IsMoving())

	fuel := boat.Fuel()
	for i := 0; i < 3; i++ {
		blocked := boat.Move()
		assert.False(t, blocked.Success)
		assert.Equal(t, "⚓ Ocean Breeze cannot move - anchor is dropped!", blocked.Message)
	}
	assert.Equal(t, fuel, boat.Fuel())

	raised := boat.RaiseAnchor()
	assert.Equal(t, "⚓ Ocean Breeze has raised anchor and is ready to sail!", raised.Message)
	assert.True(t, boat.Move().Success)
}

func TestBoat_AnchorBeatsEmptyTank(t *testing.T) {
	boat := newGarage().NewBoat("Wreck", 5, 0, "motorboat")
	boat.DropAnchor()

	assert.Equal(t, "⚓ Wreck cannot move - anchor is dropped!", boat.Move().Message)
}

func TestBicycle_RiderRests(t *testing.T) {
	bike := newGarage().NewBicycle("Mountain Bike", 25)
	assert.Equal(t, fleet.RiderEnergy, bike.FuelCapacity())
	assert.Equal(t, fleet.BicycleGears, bike.GearCount())
	assert.Equal(t, 1, bike.CurrentGear())

	bike.Move()
	bike.Move()

	result := bike.Refuel()
	assert.True(t, result.Success)
	assert.Equal(t, "The rider of Mountain Bike has rested and is energized!", result.Message)
	assert.Equal(t, fleet.RiderEnergy, bike.Fuel())
}

func TestTrain_DerailIsPermanent(t *testing.T) {
	train := newGarage().NewTrain("Express Line", 200, 5000, 8)
	train.Move()
	assert.Equal(t, 8, train.CarCount())

	derailed := train.Derail()
	assert.True(t, derailed.Success)
	assert.Equal(t, "⚠️ Express Line has derailed!", derailed.Message)
	assert.False(t, train.IsOnTracks())
	assert.False(t, train.IsMoving())

	again := train.Derail()
	assert.Equal(t, derailed.Message, again.Message)
	assert.False(t, train.IsOnTracks())

	train.Refuel()
	for i := 0; i < 3; i++ {
		result := train.Move()
		assert.False(t, result.Success)
		assert.Equal(t, "Express Line is derailed and cannot move!", result.Message)
	}
	assert.Equal(t, 30, train.Distance())
}

func TestVehicle_RefuelStopStatus(t *testing.T) {
	car := newGarage().NewCar("Toyota Camry", 120, 50, 4)

	assert.Equal(t, "Toyota Camry - Speed: 120 km/h, Fuel: 50L, Status: Stationary, Distance: 0km", car.Status())

	notMoving := car.Stop()
	assert.False(t, notMoving.Success)
	assert.Equal(t, "Toyota Camry is already stopped.", notMoving.Message)

	car.Move()
	car.Move()
	assert.Equal(t, "Toyota Camry - Speed: 120 km/h, Fuel: 46L, Status: Moving, Distance: 20km", car.Status())

	stopped := car.Stop()
	assert.True(t, stopped.Success)
	assert.Equal(t, "Toyota Camry has stopped.", stopped.Message)
	assert.False(t, car.IsMoving())

	refueled := car.Refuel()
	assert.Equal(t, "Toyota Camry has been refueled to 50L!", refueled.Message)
	assert.Equal(t, 50, car.Fuel())
	assert.Equal(t, 20, car.Distance(), "refuelling keeps the odometer")
}

func TestGarage_StampsIDs(t *testing.T) {
	g := newGarage()

	ids := []string{
		g.NewCar("a", 1, 1, 1).ID(),
		g.NewPlane("b", 1, 1, 1).ID(),
		g.NewBoat("c", 1, 1, "yacht").ID(),
		g.NewBicycle("d", 1).ID(),
		g.NewTrain("e", 1, 1, 1).ID(),
	}

	assert.Equal(t, []string{"vehicle-1", "vehicle-2", "vehicle-3", "vehicle-4", "vehicle-5"}, ids)
}

func TestSounds_ReturnsACopy(t *testing.T) {
	s := fleet.Sounds(fleet.KindCar)
	s[0] = "Honk"

	assert.Equal(t, "Vroom vroom!", fleet.Sounds(fleet.KindCar)[0])
	assert.Nil(t, fleet.Sounds(fleet.Kind("hovercraft")))
	assert.Len(t, fleet.Kinds, 5)
}
