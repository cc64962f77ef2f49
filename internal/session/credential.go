package session

import (
	"context"
	"sync"
	"time"
)

// Storage keys for the persisted credential. All three are written and
// cleared together; a credential missing its expiry entry is treated as
// absent.
const (
	KeyAuthToken   = "authToken"
	KeyTokenExpiry = "tokenExpiry"
	KeyUserData    = "userData"
)

// Credential is the opaque bearer token plus its expiry instant, as held by
// the console. ExpiresAt is a future instant at write time, not necessarily
// at read time; freshness is the Guard's job.
type Credential struct {
	Token     string
	ExpiresAt time.Time
}

// Store persists the current credential in the host's key-value storage.
// There is at most one credential at a time; Save overwrites any prior one.
type Store interface {
	Save(ctx context.Context, token string, ttl time.Duration) error
	Load(ctx context.Context) (*Credential, error)
	Clear(ctx context.Context) error
	SaveProfile(ctx context.Context, profile []byte) error
	LoadProfile(ctx context.Context) ([]byte, error)
}

// MemoryStore is an in-process Store used in tests and when no Redis is
// configured.
type MemoryStore struct {
	mu      sync.Mutex
	cred    *Credential
	profile []byte
	now     func() time.Time
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// Save stores the token with an expiry of now plus ttl, replacing any prior
// credential.
func (s *MemoryStore) Save(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = &Credential{Token: token, ExpiresAt: s.now().Add(ttl)}
	return nil
}

// Load returns the stored credential, or nil when none is present.
func (s *MemoryStore) Load(_ context.Context) (*Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil {
		return nil, nil
	}
	cred := *s.cred
	return &cred, nil
}

// Clear removes the credential and profile. Safe to call when already empty.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = nil
	s.profile = nil
	return nil
}

// SaveProfile stores the JSON-encoded display record for the signed-in
// operator.
func (s *MemoryStore) SaveProfile(_ context.Context, profile []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = append([]byte(nil), profile...)
	return nil
}

// LoadProfile returns the stored display record, or nil when absent.
func (s *MemoryStore) LoadProfile(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil, nil
	}
	return append([]byte(nil), s.profile...), nil
}
