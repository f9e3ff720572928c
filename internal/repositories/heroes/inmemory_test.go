package heroes_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/oop-showcase/internal/domain/roster"
	apperr "github.com/KirkDiggler/oop-showcase/internal/errors"
	"github.com/KirkDiggler/oop-showcase/internal/repositories/heroes"
	"github.com/KirkDiggler/oop-showcase/internal/uuid"
)

func TestInMemoryRepository(t *testing.T) {
	setup := func(t *testing.T) (heroes.Repository, *roster.Registry, context.Context) {
		t.Helper()
		return heroes.NewInMemoryRepository(), roster.NewRegistry(uuid.NewSequenceGenerator("hero")), context.Background()
	}

	t.Run("creates and gets the live hero", func(t *testing.T) {
		repo, reg, ctx := setup(t)
		superman := reg.NewFlyingHero("Superman", "Clark Kent", 95, "Super Strength", 50000)

		require.NoError(t, repo.Create(ctx, superman))
		superman.TakeOff()

		got, err := repo.Get(ctx, superman.ID())
		require.NoError(t, err)
		flyer, ok := got.(*roster.FlyingHero)
		require.True(t, ok)
		assert.True(t, flyer.IsFlying(), "the stored hero is the live instance")
	})

	t.Run("rejects nil and empty IDs", func(t *testing.T) {
		repo, _, ctx := setup(t)

		err := repo.Create(ctx, nil)
		assert.True(t, apperr.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "hero cannot be nil")

		_, err = repo.Get(ctx, "")
		assert.True(t, apperr.IsInvalidArgument(err))

		assert.True(t, apperr.IsInvalidArgument(repo.Delete(ctx, "")))
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		repo, reg, ctx := setup(t)
		batman := reg.NewTechHero("Batman", "Bruce Wayne", 85, "Strategic Combat", 10)

		require.NoError(t, repo.Create(ctx, batman))
		err := repo.Create(ctx, batman)

		assert.True(t, apperr.IsAlreadyExists(err))
		assert.Equal(t, batman.ID(), apperr.GetMeta(err)["hero_id"])
	})

	t.Run("missing heroes are not found", func(t *testing.T) {
		repo, _, ctx := setup(t)

		_, err := repo.Get(ctx, "hero-404")
		assert.True(t, apperr.IsNotFound(err))
		assert.True(t, apperr.IsNotFound(repo.Delete(ctx, "hero-404")))
	})

	t.Run("lists in creation order and forgets deleted heroes", func(t *testing.T) {
		repo, reg, ctx := setup(t)
		names := []string{"Superman", "Batman", "Wonder Woman", "Flash"}
		for _, name := range names {
			require.NoError(t, repo.Create(ctx, reg.NewHero(name, "", 50, "Grit")))
		}

		require.NoError(t, repo.Delete(ctx, "hero-2"))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		var got []string
		for _, h := range list {
			got = append(got, h.Name())
		}
		assert.Equal(t, []string{"Superman", "Wonder Woman", "Flash"}, got)
		assert.Equal(t, 4, reg.Count(), "deleting does not uncount")
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		repo, _, ctx := setup(t)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}
