package mines

// AssertionError reports a broken invariant inside grid generation.
// It is recovered at the NewGame boundary and surfaced as a regular
// error.
type AssertionError struct {
	message string
}

func (e AssertionError) Error() string {
	return e.message
}
