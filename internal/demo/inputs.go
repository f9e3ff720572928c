package demo

import (
	fleetDomain "github.com/KirkDiggler/oop-showcase/internal/domain/fleet"
	rosterDomain "github.com/KirkDiggler/oop-showcase/internal/domain/roster"
	fleetService "github.com/KirkDiggler/oop-showcase/internal/services/fleet"
	rosterService "github.com/KirkDiggler/oop-showcase/internal/services/roster"
)

// JusticeLeague returns the heroes RunRoster recruits: Superman, Batman and
// Wonder Woman, in that order
func JusticeLeague() []*rosterService.RecruitInput {
	return []*rosterService.RecruitInput{
		{
			Kind:         rosterDomain.KindFlying,
			Name:         "Superman",
			RealName:     "Clark Kent",
			PowerLevel:   95,
			PrimaryPower: "Super Strength",
			MaxAltitude:  50000,
		},
		{
			Kind:           rosterDomain.KindTech,
			Name:           "Batman",
			RealName:       "Bruce Wayne",
			PowerLevel:     85,
			PrimaryPower:   "Strategic Combat",
			GadgetCapacity: 10,
		},
		{
			Kind:         rosterDomain.KindHero,
			Name:         "Wonder Woman",
			RealName:     "Diana Prince",
			PowerLevel:   90,
			PrimaryPower: "Divine Powers",
		},
	}
}

// Fleet returns the vehicles RunFleet drives, one of each kind in Kinds order
func Fleet() []*fleetService.RegisterInput {
	return []*fleetService.RegisterInput{
		{Kind: fleetDomain.KindCar, Name: "Toyota Camry", Speed: 120, FuelCapacity: 50, Doors: 4},
		{Kind: fleetDomain.KindPlane, Name: "Boeing 747", Speed: 900, FuelCapacity: 200000, AltitudeLimit: 42000},
		{Kind: fleetDomain.KindBoat, Name: "Ocean Breeze", Speed: 25, FuelCapacity: 100, BoatType: "yacht"},
		{Kind: fleetDomain.KindBicycle, Name: "Mountain Bike", Speed: 25},
		{Kind: fleetDomain.KindTrain, Name: "Express Line", Speed: 200, FuelCapacity: 5000, CarCount: 8},
	}
}

// MixedFleet returns the bonus round vehicles
func MixedFleet() []*fleetService.RegisterInput {
	return []*fleetService.RegisterInput{
		{Kind: fleetDomain.KindCar, Name: "Sports Car", Speed: 200, FuelCapacity: 60, Doors: 2},
		{Kind: fleetDomain.KindPlane, Name: "Fighter Jet", Speed: 1500, FuelCapacity: 1000, AltitudeLimit: 50000},
		{Kind: fleetDomain.KindBicycle, Name: "Racing Bike", Speed: 40},
	}
}
