package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/billing-admin/internal/domain"
	"github.com/spec-kit/billing-admin/internal/session"
)

func TestIssue_RoundTripsThroughStructuralDecode(t *testing.T) {
	shopID := "shop-9"
	staff := &domain.StaffMember{
		ID:       "staff-1",
		FullName: "Grácia Ürsula",
		Email:    "gracia@example.com",
		Role:     domain.StaffRoleAdmin,
		ShopID:   &shopID,
		Active:   true,
	}

	issuer := NewTokenIssuer("test-secret", 30)
	token, ttl, err := issuer.Issue(staff)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, ttl)

	claims, err := session.DecodeClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "staff-1", claims.UserID)
	assert.Equal(t, "Grácia Ürsula", claims.FullName)
	assert.Equal(t, "gracia@example.com", claims.Email)
	assert.Equal(t, "ROLE_ADMIN", claims.RoleName)
	assert.Equal(t, "shop-9", claims.ShopID)
	assert.NotZero(t, claims.IssuedAt)
}

func TestIssue_NoShop(t *testing.T) {
	staff := &domain.StaffMember{ID: "staff-2", FullName: "N", Email: "n@example.com", Role: domain.StaffRoleStaff}

	token, _, err := NewTokenIssuer("s", 10).Issue(staff)
	require.NoError(t, err)

	claims, err := session.DecodeClaims(token)
	require.NoError(t, err)
	assert.Empty(t, claims.ShopID)
}

func TestNewTokenIssuer_DefaultTTL(t *testing.T) {
	assert.Equal(t, 60*time.Minute, NewTokenIssuer("s", 0).TTL())
	assert.Equal(t, 60*time.Minute, NewTokenIssuer("s", -5).TTL())
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	require.NoError(t, err)
	require.NoError(t, ComparePassword(hash, "hunter2"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}
