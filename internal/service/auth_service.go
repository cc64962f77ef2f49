package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/billing-admin/internal/auth"
	"github.com/spec-kit/billing-admin/internal/config"
	"github.com/spec-kit/billing-admin/internal/events"
	"github.com/spec-kit/billing-admin/internal/repository"
	"github.com/spec-kit/billing-admin/internal/session"
)

// AuthService coordinates the sign-in flow: it is the sole producer of a
// credential. On success the issued token is saved into the credential
// store together with the decoded display record.
type AuthService struct {
	staff      repository.StaffRepository
	creds      session.Store
	guard      *session.Guard
	issuer     *auth.TokenIssuer
	dispatcher events.Dispatcher
	warnWindow time.Duration
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	StaffRepo       repository.StaffRepository
	CredentialStore session.Store
	Guard           *session.Guard
	Dispatcher      events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		staff:      deps.StaffRepo,
		creds:      deps.CredentialStore,
		guard:      deps.Guard,
		issuer:     auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		dispatcher: deps.Dispatcher,
		warnWindow: cfg.Session.ExpiryWarnWindow(),
	}
}

// SignIn authenticates an operator by email and password, issues a token and
// persists it as the current credential.
func (s *AuthService) SignIn(ctx context.Context, identifier, password string) (*session.Claims, string, time.Duration, error) {
	staff, err := s.staff.GetByEmail(ctx, identifier)
	if err != nil {
		return nil, "", 0, errors.New("invalid credentials")
	}
	if !staff.Active {
		return nil, "", 0, errors.New("account inactive")
	}
	if err := auth.ComparePassword(staff.PasswordHash, password); err != nil {
		return nil, "", 0, errors.New("invalid credentials")
	}

	token, ttl, err := s.issuer.Issue(staff)
	if err != nil {
		return nil, "", 0, err
	}
	if err := s.creds.Save(ctx, token, ttl); err != nil {
		return nil, "", 0, err
	}

	claims, err := session.DecodeClaims(token)
	if err != nil {
		// A token we just issued must decode; treat anything else as a
		// broken credential and clear it.
		_ = s.creds.Clear(ctx)
		return nil, "", 0, err
	}
	if profile, err := json.Marshal(claims); err == nil {
		_ = s.creds.SaveProfile(ctx, profile)
	}

	s.publish(ctx, events.EventStaffSignedIn, staff.ID, events.StaffSignedInPayload{
		Email:    staff.Email,
		RoleName: string(staff.Role),
	})
	return claims, token, ttl, nil
}

// SignOut clears the current credential. Safe to call without one.
func (s *AuthService) SignOut(ctx context.Context) error {
	status := s.guard.Status(ctx)
	if err := s.creds.Clear(ctx); err != nil {
		return err
	}
	if status.Kind == session.StatusAuthenticated {
		s.publish(ctx, events.EventStaffSignedOut, status.Claims.UserID, nil)
	}
	return nil
}

// Session reports the current session status, whether the credential is
// inside the expiry warning window, and the stored display record.
func (s *AuthService) Session(ctx context.Context) (session.Status, bool, []byte) {
	status := s.guard.Status(ctx)
	if status.Kind == session.StatusExpired {
		s.publish(ctx, events.EventSessionExpired, "", nil)
	}
	expiringSoon := s.guard.IsExpiringSoon(ctx, s.warnWindow)
	profile, _ := s.creds.LoadProfile(ctx)
	return status, expiringSoon, profile
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, subjectID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
