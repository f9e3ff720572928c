package demo

import (
	"context"
	"fmt"
	"io"

	rosterDomain "github.com/KirkDiggler/oop-showcase/internal/domain/roster"
	"github.com/KirkDiggler/oop-showcase/internal/domain/shared"
	apperr "github.com/KirkDiggler/oop-showcase/internal/errors"
	rosterService "github.com/KirkDiggler/oop-showcase/internal/services/roster"
)

// RunRoster recruits Superman, Batman and Wonder Woman and walks them
// through the superhero demonstration.
func RunRoster(ctx context.Context, w io.Writer, svc rosterService.Service) error {
	recruited, err := svc.RecruitMany(ctx, JusticeLeague())
	if err != nil {
		return apperr.Wrap(err, "failed to recruit heroes")
	}

	superman, ok := recruited[0].(*rosterDomain.FlyingHero)
	if !ok {
		return apperr.Internalf("expected a flying hero, got %T", recruited[0])
	}
	batman, ok := recruited[1].(*rosterDomain.TechHero)
	if !ok {
		return apperr.Internalf("expected a tech hero, got %T", recruited[1])
	}
	wonderWoman := recruited[2]

	s := &script{w: w}
	s.line("=== SUPERHERO CLASS DEMONSTRATION ===\n")

	s.line("1. HERO INTRODUCTIONS:")
	for _, hero := range recruited {
		s.line(hero.Introduce())
	}
	s.line()

	s.line("2. BASIC POWER USAGE:")
	s.lines(
		superman.UsePower(2),
		batman.UsePower(1),
		wonderWoman.UsePower(3),
	)
	s.line()

	s.line("3. FLYING HERO ABILITIES:")
	s.lines(
		superman.TakeOff(),
		superman.FlyHigher(),
		superman.UsePower(2),
		superman.Land(),
	)
	s.line()

	s.line("4. TECH HERO ABILITIES:")
	s.lines(
		batman.AddGadget("Grappling Hook"),
		batman.AddGadget("Smoke Bombs"),
		batman.AddGadget("Batarang"),
		batman.UseGadget("Batarang"),
		batman.UpgradeTech(),
		batman.UseGadget("Grappling Hook"),
	)
	s.line()

	s.line("5. HERO STATUS (Polymorphism in action):")
	for _, hero := range recruited {
		s.line(hero.Status())
	}
	s.line()

	rested, err := svc.RestAll(ctx)
	if err != nil {
		return apperr.Wrap(err, "failed to rest heroes")
	}

	s.line("6. REST AND RECOVERY:")
	s.lines(results(rested)...)
	s.line()

	s.line("7. CLASS METHOD:")
	s.line(svc.HeroCount())
	s.line()

	s.line("8. STRING REPRESENTATION:")
	s.line(fmt.Sprintf("Heroes: %s, %s, %s", superman, batman, wonderWoman))

	return s.err
}

func results(list []*shared.Result) []fmt.Stringer {
	out := make([]fmt.Stringer, 0, len(list))
	for _, r := range list {
		out = append(out, r)
	}
	return out
}
