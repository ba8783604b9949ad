package composer

import "github.com/google/uuid"

// IDSource mints ephemeral identifiers for pending units. The ids exist
// only for list rendering and removal before submission; they are stripped
// before anything is sent to the backend. Wall-clock ids are deliberately
// avoided: they can collide under rapid successive additions.
type IDSource interface {
	Next() string
}

// UUIDSource mints random unique identifiers
type UUIDSource struct{}

// Next returns a fresh identifier
func (UUIDSource) Next() string {
	return uuid.NewString()
}
