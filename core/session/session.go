package session

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// DefaultTTL is the session lifetime when none is configured.
// Resolving a session never extends it.
const DefaultTTL = 24 * time.Hour

// ErrNotFound is reported when a token does not map to a live session,
// whether it never existed, was revoked, or expired.
var ErrNotFound = errors.New("session not found")

// Store maps opaque bearer tokens to teacher ids.
// Expiry is enforced by the backing store, not by callers; concurrent
// sessions for one teacher are independent entries.
type Store interface {
	// Create generates a unique random token mapped to teacherID for the
	// store's TTL and returns it.
	Create(ctx context.Context, teacherID int64) (string, error)

	// Resolve returns the teacher id a live token maps to, or ErrNotFound.
	Resolve(ctx context.Context, token string) (int64, error)

	// Revoke removes the mapping. Revoking an absent token is not an error.
	Revoke(ctx context.Context, token string) error
}
