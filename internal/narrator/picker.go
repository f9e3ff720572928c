package narrator

//go:generate mockgen -destination=mock/mock_picker.go -package=mocknarrator -source=picker.go

// Picker chooses one flavour line out of a fixed set.
// This allows us to inject deterministic implementations for testing
type Picker interface {
	// Pick returns one of options, or "" when options is empty
	Pick(options []string) string
}
