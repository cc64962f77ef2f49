package session

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeToken(t *testing.T, payload []byte) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString(payload)
	return header + "." + body + ".signature"
}

func TestDecodeClaims(t *testing.T) {
	token := makeToken(t, []byte(`{"user_id":"u-1","full_name":"Ada Lovelace","email":"ada@example.com","role_name":"ROLE_ADMIN","shop_id":"shop-7","iat":1700000000}`))

	claims, err := DecodeClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "Ada Lovelace", claims.FullName)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "ROLE_ADMIN", claims.RoleName)
	assert.Equal(t, "shop-7", claims.ShopID)
	assert.Equal(t, int64(1700000000), claims.IssuedAt)
}

func TestDecodeClaims_NonASCIIRoundTrip(t *testing.T) {
	token := makeToken(t, []byte(`{"user_id":"u-2","full_name":"Jürgen Müß 北京","email":"jürgen@münchen.de","role_name":"ROLE_OWNER"}`))

	claims, err := DecodeClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "Jürgen Müß 北京", claims.FullName)
	assert.Equal(t, "jürgen@münchen.de", claims.Email)
}

func TestDecodeClaims_MissingFieldsStayZero(t *testing.T) {
	token := makeToken(t, []byte(`{"user_id":"u-3"}`))

	claims, err := DecodeClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "u-3", claims.UserID)
	assert.Empty(t, claims.FullName)
	assert.Empty(t, claims.RoleName)
	assert.Empty(t, claims.ShopID)
	assert.Zero(t, claims.IssuedAt)
}

func TestDecodeClaims_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"one segment", "abc"},
		{"two segments", "abc.def"},
		{"four segments", "a.b.c.d"},
		{"invalid base64", "head.!!!not-base64!!!.sig"},
		{"invalid json", "head." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".sig"},
		{"invalid utf8", "head." + base64.RawURLEncoding.EncodeToString([]byte{0xff, 0xfe, 0xfd}) + ".sig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := DecodeClaims(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}

func TestDecodeClaims_Base64URLAlphabet(t *testing.T) {
	// "???" and ">>>" force '_' and '-' into the raw-url encoding, so this
	// exercises the alphabet normalization path.
	payload := []byte(`{"user_id":"???>>>","full_name":"a?b"}`)
	encoded := base64.RawURLEncoding.EncodeToString(payload)

	claims, err := DecodeClaims("h." + encoded + ".s")
	require.NoError(t, err)
	assert.Equal(t, "???>>>", claims.UserID)
}
