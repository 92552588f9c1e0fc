package equipment

// ValidationError carries the per-field messages for a rejected form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "equipment validation failed"
}
