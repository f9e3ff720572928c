package roster

//go:generate mockgen -destination=mock/mock.go -package=mockroster -source=service.go

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	rosterDomain "github.com/KirkDiggler/oop-showcase/internal/domain/roster"
	"github.com/KirkDiggler/oop-showcase/internal/domain/shared"
	apperr "github.com/KirkDiggler/oop-showcase/internal/errors"
	"github.com/KirkDiggler/oop-showcase/internal/events"
	"github.com/KirkDiggler/oop-showcase/internal/repositories/heroes"
)

// Repository is an alias for the hero repository interface
type Repository = heroes.Repository

// Service recruits heroes and acts on the whole roster
type Service interface {
	// Recruit constructs a hero of the requested kind and stores it
	Recruit(ctx context.Context, input *RecruitInput) (rosterDomain.Actor, error)

	// RecruitMany constructs heroes concurrently and stores them in input order
	RecruitMany(ctx context.Context, inputs []*RecruitInput) ([]rosterDomain.Actor, error)

	// Get retrieves a hero by ID
	Get(ctx context.Context, id string) (rosterDomain.Actor, error)

	// List returns the roster in recruitment order
	List(ctx context.Context) ([]rosterDomain.Actor, error)

	// RestAll rests every hero in recruitment order
	RestAll(ctx context.Context) ([]*shared.Result, error)

	// HeroCount narrates how many heroes were ever constructed
	HeroCount() string
}

// RecruitInput describes a hero to construct
type RecruitInput struct {
	Kind         rosterDomain.Kind
	Name         string
	RealName     string
	PowerLevel   int
	PrimaryPower string

	MaxAltitude    int // KindFlying only
	GadgetCapacity int // KindTech only
}

type service struct {
	repository Repository
	registry   *rosterDomain.Registry
	eventBus   *events.Bus
}

// ServiceConfig holds configuration for the roster service
type ServiceConfig struct {
	Repository Repository
	Registry   *rosterDomain.Registry
	EventBus   *events.Bus // optional
}

// NewService creates a roster service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		registry:   cfg.Registry,
		eventBus:   cfg.EventBus,
	}

	if svc.registry == nil {
		svc.registry = rosterDomain.NewRegistry(nil)
	}

	return svc
}

// Recruit constructs a hero of the requested kind and stores it
func (s *service) Recruit(ctx context.Context, input *RecruitInput) (rosterDomain.Actor, error) {
	if err := validateRecruitInput(input); err != nil {
		return nil, err
	}

	hero := s.build(input)
	if err := s.repository.Create(ctx, hero); err != nil {
		return nil, apperr.Wrap(err, "failed to store hero").
			WithMeta("operation", "Recruit")
	}

	log.Printf("Roster: recruited %s hero %s (%s)", hero.Kind(), hero.Name(), hero.ID())

	if err := s.emit(events.EventTypeHeroRecruited, hero, nil); err != nil {
		return nil, err
	}
	return hero, nil
}

// RecruitMany validates every input first, so a bad input recruits nobody.
// When storing fails partway, the heroes already stored are removed again.
// The registry count still includes every hero that was built.
func (s *service) RecruitMany(ctx context.Context, inputs []*RecruitInput) ([]rosterDomain.Actor, error) {
	for _, input := range inputs {
		if err := validateRecruitInput(input); err != nil {
			return nil, err
		}
	}

	actors := make([]rosterDomain.Actor, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			actors[i] = s.build(input)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, apperr.Wrap(err, "failed to recruit heroes").
			WithMeta("operation", "RecruitMany")
	}

	for i, hero := range actors {
		if err := s.repository.Create(ctx, hero); err != nil {
			s.unstore(ctx, actors[:i])
			return nil, apperr.Wrapf(err, "failed to store hero %s", hero.Name()).
				WithMeta("operation", "RecruitMany")
		}
	}

	for _, hero := range actors {
		if err := s.emit(events.EventTypeHeroRecruited, hero, nil); err != nil {
			return nil, err
		}
	}

	log.Printf("Roster: recruited %d heroes", len(actors))
	return actors, nil
}

// Get retrieves a hero by ID
func (s *service) Get(ctx context.Context, id string) (rosterDomain.Actor, error) {
	hero, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get hero %s", id)
	}
	return hero, nil
}

// List returns the roster in recruitment order
func (s *service) List(ctx context.Context) ([]rosterDomain.Actor, error) {
	list, err := s.repository.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list heroes")
	}
	return list, nil
}

// RestAll rests every hero in recruitment order
func (s *service) RestAll(ctx context.Context) ([]*shared.Result, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*shared.Result, 0, len(list))
	for _, hero := range list {
		result := hero.Rest()
		if err := s.emit(events.EventTypeHeroRested, hero, result); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *service) HeroCount() string {
	return s.registry.HeroCount()
}

// unstore removes heroes stored earlier in a failed RecruitMany
func (s *service) unstore(ctx context.Context, stored []rosterDomain.Actor) {
	for _, hero := range stored {
		if err := s.repository.Delete(ctx, hero.ID()); err != nil {
			log.Printf("Roster: failed to remove %s (%s) after a failed recruitment: %v", hero.Name(), hero.ID(), err)
		}
	}
}

func (s *service) emit(eventType events.EventType, hero rosterDomain.Actor, result *shared.Result) error {
	if err := s.eventBus.Emit(events.NewEvent(eventType, hero.ID(), hero.Name(), result)); err != nil {
		return apperr.Wrapf(err, "failed to publish %s", eventType)
	}
	return nil
}

// build assumes a validated input
func (s *service) build(input *RecruitInput) rosterDomain.Actor {
	switch input.Kind {
	case rosterDomain.KindFlying:
		return s.registry.NewFlyingHero(input.Name, input.RealName, input.PowerLevel, input.PrimaryPower, input.MaxAltitude)
	case rosterDomain.KindTech:
		return s.registry.NewTechHero(input.Name, input.RealName, input.PowerLevel, input.PrimaryPower, input.GadgetCapacity)
	default:
		return s.registry.NewHero(input.Name, input.RealName, input.PowerLevel, input.PrimaryPower)
	}
}

func validateRecruitInput(input *RecruitInput) error {
	if input == nil {
		return apperr.InvalidArgument("input cannot be nil")
	}

	switch input.Kind {
	case rosterDomain.KindHero, rosterDomain.KindFlying, rosterDomain.KindTech:
		return nil
	default:
		return apperr.InvalidArgumentf("unknown hero kind '%s'", input.Kind).
			WithMeta("kind", string(input.Kind))
	}
}
