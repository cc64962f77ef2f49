package session

import (
	"context"
	"time"
)

// StatusKind classifies the current session.
type StatusKind int

const (
	StatusAnonymous StatusKind = iota
	StatusExpired
	StatusAuthenticated
)

// String returns the diagnostic name of the status kind.
func (k StatusKind) String() string {
	switch k {
	case StatusExpired:
		return "EXPIRED"
	case StatusAuthenticated:
		return "AUTHENTICATED"
	default:
		return "ANONYMOUS"
	}
}

// Status is the point-in-time classification of the session. Claims is
// non-nil iff Kind is StatusAuthenticated.
type Status struct {
	Kind   StatusKind
	Claims *Claims
}

// DefaultExpiryWarnWindow is how far ahead of hard expiry IsExpiringSoon
// starts reporting true.
const DefaultExpiryWarnWindow = 5 * time.Minute

// Guard derives the session status from the credential store and the wall
// clock. The status is recomputed on every call; expiry is time-dependent so
// caching a result would be wrong.
type Guard struct {
	store Store
	now   func() time.Time
}

// NewGuard builds a Guard over the given store. A nil clock defaults to
// time.Now.
func NewGuard(store Store, clock func() time.Time) *Guard {
	if clock == nil {
		clock = time.Now
	}
	return &Guard{store: store, now: clock}
}

// Status classifies the current session. Expired and undecodable credentials
// are cleared from the store before returning, so the console never sticks
// in an authenticated-looking but broken state. Storage read errors classify
// as Anonymous.
func (g *Guard) Status(ctx context.Context) Status {
	cred, err := g.store.Load(ctx)
	if err != nil || cred == nil {
		return Status{Kind: StatusAnonymous}
	}

	if !g.now().Before(cred.ExpiresAt) {
		_ = g.store.Clear(ctx)
		return Status{Kind: StatusExpired}
	}

	claims, err := DecodeClaims(cred.Token)
	if err != nil {
		_ = g.store.Clear(ctx)
		return Status{Kind: StatusAnonymous}
	}
	return Status{Kind: StatusAuthenticated, Claims: claims}
}

// IsExpiringSoon reports whether the credential expires within window. With
// no credential it reports true, failing closed.
func (g *Guard) IsExpiringSoon(ctx context.Context, window time.Duration) bool {
	cred, err := g.store.Load(ctx)
	if err != nil || cred == nil {
		return true
	}
	return cred.ExpiresAt.Sub(g.now()) <= window
}
