package demo

import (
	"context"
	"io"

	fleetDomain "github.com/KirkDiggler/oop-showcase/internal/domain/fleet"
	apperr "github.com/KirkDiggler/oop-showcase/internal/errors"
	fleetService "github.com/KirkDiggler/oop-showcase/internal/services/fleet"
)

// RunFleet registers the demo fleet, drives it through the transportation
// demonstration and then moves a second, mixed fleet.
func RunFleet(ctx context.Context, w io.Writer, svc fleetService.Service) error {
	fleet, err := register(ctx, svc, Fleet())
	if err != nil {
		return err
	}

	car, carOK := fleet[0].(*fleetDomain.Car)
	plane, planeOK := fleet[1].(*fleetDomain.Plane)
	boat, boatOK := fleet[2].(*fleetDomain.Boat)
	train, trainOK := fleet[4].(*fleetDomain.Train)
	if !carOK || !planeOK || !boatOK || !trainOK {
		return apperr.Internalf("demo fleet was built with unexpected variants")
	}

	ids := vehicleIDs(fleet)
	s := &script{w: w}
	s.line("=== TRANSPORTATION POLYMORPHISM DEMO ===\n")

	introductions, err := svc.StatusReport(ctx)
	if err != nil {
		return apperr.Wrap(err, "failed to report fleet status")
	}

	s.line("1. VEHICLE INTRODUCTIONS:")
	s.texts(introductions)
	s.line()

	for _, title := range []string{
		"2. ALL VEHICLES MOVE (Polymorphism in Action!):",
		"3. MOVE AGAIN TO SEE VARIETY:",
	} {
		moved, err := svc.MoveAll(ctx, ids...)
		if err != nil {
			return apperr.Wrap(err, "failed to move fleet")
		}

		s.line(title)
		s.lines(results(moved)...)
		s.line()
	}

	s.line("4. VEHICLE-SPECIFIC ACTIONS:")
	s.lines(
		car.ChangeGear(3),
		plane.Land(),
		boat.DropAnchor(),
		boat.Move(),
		boat.RaiseAnchor(),
		train.Derail(),
		train.Move(),
	)
	s.line()

	refueled, err := svc.RefuelAll(ctx)
	if err != nil {
		return apperr.Wrap(err, "failed to refuel fleet")
	}

	s.line("5. REFUEL ALL VEHICLES:")
	s.lines(results(refueled)...)
	s.line()

	final, err := svc.StatusReport(ctx)
	if err != nil {
		return apperr.Wrap(err, "failed to report fleet status")
	}

	s.line("6. FINAL STATUS:")
	s.texts(final)

	s.line("\n" + rule)
	s.line("BONUS: Polymorphism with Mixed Vehicle List")

	mixed, err := register(ctx, svc, MixedFleet())
	if err != nil {
		return err
	}

	moved, err := svc.MoveAll(ctx, vehicleIDs(mixed)...)
	if err != nil {
		return apperr.Wrap(err, "failed to move mixed fleet")
	}

	s.line("\n=== MOVING ALL VEHICLES POLYMORPHICALLY ===")
	s.lines(results(moved)...)

	s.line("\n" + rule)
	s.line("The power of polymorphism: One method name, many behaviors! 🚗✈️🚤🚴🚂")

	return s.err
}

func register(ctx context.Context, svc fleetService.Service, inputs []*fleetService.RegisterInput) ([]fleetDomain.Vehicle, error) {
	registered := make([]fleetDomain.Vehicle, 0, len(inputs))
	for _, input := range inputs {
		vehicle, err := svc.Register(ctx, input)
		if err != nil {
			return nil, apperr.Wrapf(err, "failed to register %s", input.Name)
		}
		registered = append(registered, vehicle)
	}
	return registered, nil
}

func vehicleIDs(list []fleetDomain.Vehicle) []string {
	ids := make([]string, 0, len(list))
	for _, vehicle := range list {
		ids = append(ids, vehicle.ID())
	}
	return ids
}
