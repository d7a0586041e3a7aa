package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownReference is returned when a session points at a room, speaker or
// category item missing from the same Sessionize snapshot.
var ErrUnknownReference = errors.New("unknown reference")

// UnknownReference wraps ErrUnknownReference with the kind and id that failed to resolve.
func UnknownReference(kind string, id any) error {
	return fmt.Errorf("%s %v: %w", kind, id, ErrUnknownReference)
}
