package testutils

import (
	"github.com/KirkDiggler/oop-showcase/internal/demo"
	"github.com/KirkDiggler/oop-showcase/internal/events"
	mocknarrator "github.com/KirkDiggler/oop-showcase/internal/narrator/mock"
	"github.com/KirkDiggler/oop-showcase/internal/services"
	fleetService "github.com/KirkDiggler/oop-showcase/internal/services/fleet"
	rosterService "github.com/KirkDiggler/oop-showcase/internal/services/roster"
	"github.com/KirkDiggler/oop-showcase/internal/uuid"
)

// JusticeLeagueInputs returns Superman, Batman and Wonder Woman, in that order
func JusticeLeagueInputs() []*rosterService.RecruitInput {
	return demo.JusticeLeague()
}

// DemoFleetInputs returns one vehicle of each kind, in Kinds order
func DemoFleetInputs() []*fleetService.RegisterInput {
	return demo.Fleet()
}

// CreateTestProvider builds a provider with sequential IDs ("hero-1",
// "vehicle-1", ...), a picker that always narrates the first sound, and a
// recorder subscribed to every event.
func CreateTestProvider() (*services.Provider, *events.Recorder) {
	bus := events.NewBus()
	recorder := &events.Recorder{}
	bus.SubscribeAll(recorder, events.AllEventTypes...)

	provider := services.NewProvider(&services.ProviderConfig{
		HeroIDs:    uuid.NewSequenceGenerator("hero"),
		VehicleIDs: uuid.NewSequenceGenerator("vehicle"),
		Picker:     mocknarrator.NewManualMockPicker(),
		EventBus:   bus,
	})

	return provider, recorder
}
