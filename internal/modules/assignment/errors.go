package assignment

// ValidationError carries the per-field messages for a rejected link form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "assignment validation failed"
}
