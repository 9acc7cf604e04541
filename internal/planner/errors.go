package planner

// NotFoundError reports that none of the requested wish book entry IDs
// resolved to a stored entry.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string {
	return e.Reason
}

// ValidationError reports a staffing-rule violation. It is always returned
// before any schedule mutation happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ConflictError reports that the atomic schedule replacement lost a race:
// the store's uniqueness constraint rejected an insert that had passed
// validation.
type ConflictError struct {
	Err error
}

func (e *ConflictError) Error() string {
	return "schedule replacement conflict: " + e.Err.Error()
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}
