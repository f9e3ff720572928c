package fleet

//go:generate mockgen -destination=mock/mock.go -package=mockfleet -source=service.go

import (
	"context"
	"log"

	fleetDomain "github.com/KirkDiggler/oop-showcase/internal/domain/fleet"
	"github.com/KirkDiggler/oop-showcase/internal/domain/shared"
	apperr "github.com/KirkDiggler/oop-showcase/internal/errors"
	"github.com/KirkDiggler/oop-showcase/internal/events"
	"github.com/KirkDiggler/oop-showcase/internal/repositories/vehicles"
)

// Repository is an alias for the vehicle repository interface
type Repository = vehicles.Repository

// Service registers vehicles and drives the whole fleet polymorphically
type Service interface {
	// Register builds a vehicle of the requested kind and stores it
	Register(ctx context.Context, input *RegisterInput) (fleetDomain.Vehicle, error)

	// Get retrieves a vehicle by ID
	Get(ctx context.Context, id string) (fleetDomain.Vehicle, error)

	// List returns the fleet in registration order
	List(ctx context.Context) ([]fleetDomain.Vehicle, error)

	// MoveAll moves the given vehicles, or the whole fleet when no IDs are given
	MoveAll(ctx context.Context, ids ...string) ([]*shared.Result, error)

	// RefuelAll refuels the whole fleet
	RefuelAll(ctx context.Context) ([]*shared.Result, error)

	// StatusReport returns one status line per vehicle
	StatusReport(ctx context.Context) ([]string, error)
}

// RegisterInput describes a vehicle to build. Fields that do not apply to
// the kind are ignored.
type RegisterInput struct {
	Kind         fleetDomain.Kind
	Name         string
	Speed        int
	FuelCapacity int // not used by bicycles

	Doors         int    // KindCar
	AltitudeLimit int    // KindPlane
	BoatType      string // KindBoat
	CarCount      int    // KindTrain
}

type service struct {
	repository Repository
	garage     *fleetDomain.Garage
	eventBus   *events.Bus
}

// ServiceConfig holds configuration for the fleet service
type ServiceConfig struct {
	Repository Repository
	Garage     *fleetDomain.Garage
	EventBus   *events.Bus // optional
}

// NewService creates a fleet service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		garage:     cfg.Garage,
		eventBus:   cfg.EventBus,
	}

	if svc.garage == nil {
		svc.garage = fleetDomain.NewGarage(nil, nil)
	}

	return svc
}

// Register builds a vehicle of the requested kind and stores it
func (s *service) Register(ctx context.Context, input *RegisterInput) (fleetDomain.Vehicle, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}

	var vehicle fleetDomain.Vehicle
	switch input.Kind {
	case fleetDomain.KindCar:
		vehicle = s.garage.NewCar(input.Name, input.Speed, input.FuelCapacity, input.Doors)
	case fleetDomain.KindPlane:
		vehicle = s.garage.NewPlane(input.Name, input.Speed, input.FuelCapacity, input.AltitudeLimit)
	case fleetDomain.KindBoat:
		vehicle = s.garage.NewBoat(input.Name, input.Speed, input.FuelCapacity, input.BoatType)
	case fleetDomain.KindBicycle:
		vehicle = s.garage.NewBicycle(input.Name, input.Speed)
	case fleetDomain.KindTrain:
		vehicle = s.garage.NewTrain(input.Name, input.Speed, input.FuelCapacity, input.CarCount)
	default:
		return nil, apperr.InvalidArgumentf("unknown vehicle kind '%s'", input.Kind).
			WithMeta("kind", string(input.Kind))
	}

	if err := s.repository.Create(ctx, vehicle); err != nil {
		return nil, apperr.Wrap(err, "failed to store vehicle").
			WithMeta("operation", "Register")
	}

	log.Printf("Fleet: registered %s %s (%s)", vehicle.Kind(), vehicle.Name(), vehicle.ID())

	if err := s.emit(events.EventTypeVehicleRegistered, vehicle, nil); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Get retrieves a vehicle by ID
func (s *service) Get(ctx context.Context, id string) (fleetDomain.Vehicle, error) {
	vehicle, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get vehicle %s", id)
	}
	return vehicle, nil
}

// List returns the fleet in registration order
func (s *service) List(ctx context.Context) ([]fleetDomain.Vehicle, error) {
	list, err := s.repository.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list vehicles")
	}
	return list, nil
}

// MoveAll moves the given vehicles in the given order. A refused move is a
// failed result, not an error; only a missing vehicle is an error.
func (s *service) MoveAll(ctx context.Context, ids ...string) ([]*shared.Result, error) {
	targets, err := s.resolve(ctx, ids)
	if err != nil {
		return nil, err
	}

	results := make([]*shared.Result, 0, len(targets))
	for _, vehicle := range targets {
		result := vehicle.Move()
		if err := s.emit(events.EventTypeVehicleMoved, vehicle, result); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

// RefuelAll refuels the whole fleet
func (s *service) RefuelAll(ctx context.Context) ([]*shared.Result, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*shared.Result, 0, len(list))
	for _, vehicle := range list {
		result := vehicle.Refuel()
		if err := s.emit(events.EventTypeVehicleRefueled, vehicle, result); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

// StatusReport returns one status line per vehicle
func (s *service) StatusReport(ctx context.Context) ([]string, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(list))
	for _, vehicle := range list {
		lines = append(lines, vehicle.Status())
	}

	return lines, nil
}

func (s *service) emit(eventType events.EventType, vehicle fleetDomain.Vehicle, result *shared.Result) error {
	if err := s.eventBus.Emit(events.NewEvent(eventType, vehicle.ID(), vehicle.Name(), result)); err != nil {
		return apperr.Wrapf(err, "failed to publish %s", eventType)
	}
	return nil
}

func (s *service) resolve(ctx context.Context, ids []string) ([]fleetDomain.Vehicle, error) {
	if len(ids) == 0 {
		return s.List(ctx)
	}

	targets := make([]fleetDomain.Vehicle, 0, len(ids))
	for _, id := range ids {
		vehicle, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		targets = append(targets, vehicle)
	}

	return targets, nil
}
