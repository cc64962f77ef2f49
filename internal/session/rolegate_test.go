package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		claims   *Claims
		required string
		want     bool
	}{
		{"exact match", &Claims{RoleName: "ROLE_OWNER"}, "ROLE_OWNER", true},
		{"mismatch", &Claims{RoleName: "ROLE_STAFF"}, "ROLE_OWNER", false},
		{"no hierarchy: admin does not imply staff", &Claims{RoleName: "ROLE_ADMIN"}, "ROLE_STAFF", false},
		{"nil claims", nil, "ROLE_OWNER", false},
		{"empty role name", &Claims{}, "ROLE_OWNER", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.claims, tt.required))
		})
	}
}
