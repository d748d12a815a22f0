package reconcile

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound marks a referenced record that does not exist for the owner.
// Stores wrap it; the engine treats it as an isolated per-operation failure
// on updates and deletes.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a create operation with bad input. It is
// batch-fatal: later phases depend on the id mapping the create would have
// produced, so the whole unit of work rolls back.
type ValidationError struct {
	Kind   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Kind, e.Field, e.Reason)
}

// LimitExceededError reports a per-owner record-count cap hit by a create.
// Like ValidationError it aborts the whole batch. Field-length caps are not
// errors; kinds clamp those silently.
type LimitExceededError struct {
	Kind  string
	Limit int64
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("%s: per-owner limit of %d records exceeded", e.Kind, e.Limit)
}

// StatusCode maps a Reconcile error to an HTTP status for the sync handlers:
// 400 for bad create input, 422 for a record cap, 500 otherwise.
func StatusCode(err error) int {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var le *LimitExceededError
	if errors.As(err, &le) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
