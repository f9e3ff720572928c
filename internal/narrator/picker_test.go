package narrator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/oop-showcase/internal/narrator"
	mocknarrator "github.com/KirkDiggler/oop-showcase/internal/narrator/mock"
)

var lines = []string{"Vroom vroom!", "Engine purring smoothly", "Tires gripping the asphalt"}

func TestRandomPicker_AlwaysPicksAnOption(t *testing.T) {
	picker := narrator.NewRandomPicker(0)

	for i := 0; i < 100; i++ {
		assert.Contains(t, lines, picker.Pick(lines))
	}
}

func TestRandomPicker_SeedIsReproducible(t *testing.T) {
	a := narrator.NewRandomPicker(42)
	b := narrator.NewRandomPicker(42)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Pick(lines), b.Pick(lines))
	}
}

func TestRandomPicker_EmptyOptions(t *testing.T) {
	picker := narrator.NewRandomPicker(7)

	assert.Equal(t, "", picker.Pick(nil))
	assert.Equal(t, "", picker.Pick([]string{}))
}

func TestManualMockPicker(t *testing.T) {
	tests := []struct {
		name  string
		picks []int
		want  []string
	}{
		{
			name:  "follows the script",
			picks: []int{2, 0, 1},
			want:  []string{"Tires gripping the asphalt", "Vroom vroom!", "Engine purring smoothly"},
		},
		{
			name:  "wraps out of range indices",
			picks: []int{4},
			want:  []string{"Engine purring smoothly"},
		},
		{
			name:  "falls back to the first option",
			picks: nil,
			want:  []string{"Vroom vroom!", "Vroom vroom!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			picker := mocknarrator.NewManualMockPicker(tt.picks...)

			var got []string
			for range tt.want {
				got = append(got, picker.Pick(lines))
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestManualMockPicker_SetPicksRewinds(t *testing.T) {
	picker := mocknarrator.NewManualMockPicker(1)
	assert.Equal(t, "Engine purring smoothly", picker.Pick(lines))
	assert.Equal(t, "Vroom vroom!", picker.Pick(lines), "script exhausted")

	picker.SetPicks([]int{2, 1})

	assert.Equal(t, "Tires gripping the asphalt", picker.Pick(lines))
	assert.Equal(t, "Engine purring smoothly", picker.Pick(lines))
	assert.Equal(t, "Vroom vroom!", picker.Pick(lines))
}
