package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Pipeline-level errors. These are raised before any network call is made,
// so a submission failing on one of them has touched neither the blob store
// nor the document store.
var (
	// ErrNoImages is the submit-time precondition: it is reported as a
	// standalone message, not a field error.
	ErrNoImages = errors.New("at least one prize image must be attached")

	ErrSponsorNotFound = errors.New("selected sponsor does not exist")
	ErrSponsorInactive = errors.New("selected sponsor is not active")
)

// ValidationError reports per-field schema violations from the prize draft.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid prize draft: %s", strings.Join(names, ", "))
}
