package uuid_test

import (
	"strings"
	"sync"
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/oop-showcase/internal/uuid"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	t.Run("bare ids parse as uuids", func(t *testing.T) {
		gen := uuid.NewGoogleUUIDGenerator()

		id := gen.New()
		_, err := googleuuid.Parse(id)
		require.NoError(t, err)
		assert.NotEqual(t, id, gen.New())
	})

	t.Run("prefixed ids", func(t *testing.T) {
		gen := uuid.NewPrefixedGenerator("hero")

		id := gen.New()
		require.True(t, strings.HasPrefix(id, "hero_"))
		_, err := googleuuid.Parse(strings.TrimPrefix(id, "hero_"))
		assert.NoError(t, err)
	})
}

func TestSequenceGenerator(t *testing.T) {
	gen := uuid.NewSequenceGenerator("vehicle")

	assert.Equal(t, "vehicle-1", gen.New())
	assert.Equal(t, "vehicle-2", gen.New())

	var wg sync.WaitGroup
	seen := sync.Map{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, loaded := seen.LoadOrStore(gen.New(), true)
			assert.False(t, loaded, "sequence ids must be unique")
		}()
	}
	wg.Wait()

	assert.Equal(t, "vehicle-53", gen.New())
}
