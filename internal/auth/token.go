package auth

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/billing-admin/internal/domain"
)

// TokenIssuer signs access tokens for console operators.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer builds an issuer. Non-positive TTLs fall back to 60
// minutes.
func NewTokenIssuer(secret string, ttlMinutes int) *TokenIssuer {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenIssuer{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// tokenClaims is the signed payload. The claim names match what the session
// layer's structural decoder reads back.
type tokenClaims struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	RoleName string `json:"role_name"`
	ShopID   string `json:"shop_id,omitempty"`
	jwt.RegisteredClaims
}

// Issue signs an HS256 token for the staff member and returns it with its
// time to live.
func (ti *TokenIssuer) Issue(staff *domain.StaffMember) (string, time.Duration, error) {
	now := time.Now()
	shopID := ""
	if staff.ShopID != nil {
		shopID = *staff.ShopID
	}
	claims := &tokenClaims{
		UserID:   staff.ID,
		FullName: staff.FullName,
		Email:    staff.Email,
		RoleName: string(staff.Role),
		ShopID:   shopID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staff.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", 0, err
	}
	return signed, ti.ttl, nil
}

// TTL returns the configured token lifetime.
func (ti *TokenIssuer) TTL() time.Duration {
	return ti.ttl
}
