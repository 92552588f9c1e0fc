package course

// ValidationError carries the per-field messages for a rejected form. All
// violated rules are collected before returning, nothing short-circuits.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "course validation failed"
}
