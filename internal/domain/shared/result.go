package shared

import "fmt"

// Result is the outcome of a hero or vehicle action. Failures are reported
// here, never as errors.
type Result struct {
	Success bool
	Message string
}

// Succeeded builds a successful result with a formatted narration
func Succeeded(format string, args ...any) *Result {
	return &Result{
		Success: true,
		Message: fmt.Sprintf(format, args...),
	}
}

// Failed builds a failed result with a formatted narration
func Failed(format string, args ...any) *Result {
	return &Result{
		Success: false,
		Message: fmt.Sprintf(format, args...),
	}
}

// String returns the narration
func (r *Result) String() string {
	if r == nil {
		return ""
	}
	return r.Message
}
