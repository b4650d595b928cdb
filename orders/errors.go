package orders

import "fmt"

// ValidationError reports the first checkout precondition that failed.
// Nothing is persisted when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// SubmissionError wraps a failed order-creation call. The cart is left
// untouched so the shopper can retry.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("order submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// InvalidStatusError reports a status outside the enumerated set, or a
// transition the strict lifecycle does not allow.
type InvalidStatusError struct {
	Status string
	Reason string
}

func (e *InvalidStatusError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid status %q: %s", e.Status, e.Reason)
	}
	return fmt.Sprintf("invalid status %q", e.Status)
}

// NotFoundError addresses a missing order id.
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("order %d not found", e.ID)
}
