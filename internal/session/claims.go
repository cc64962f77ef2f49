package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrMalformedToken is returned for any token that cannot be structurally
// decoded.
var ErrMalformedToken = errors.New("session: malformed token")

// Claims is the structured projection of a token payload. Fields absent from
// the payload stay zero; nothing is fabricated. Claims are always recomputed
// from the current credential, never stored independently.
type Claims struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	RoleName string `json:"role_name"`
	ShopID   string `json:"shop_id,omitempty"`
	IssuedAt int64  `json:"iat,omitempty"`
}

// DecodeClaims structurally parses a compact three-segment token and returns
// the claims carried in its middle segment. It performs no signature
// verification; the server is the sole trust authority and the console only
// reads display and authorization hints from its own token. Malformed input
// of any kind yields an error, never a panic.
func DecodeClaims(token string) (*Claims, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(segments))
	}

	payload := strings.NewReplacer("-", "+", "_", "/").Replace(segments[1])
	if rem := len(payload) % 4; rem != 0 {
		payload += strings.Repeat("=", 4-rem)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: payload is not valid UTF-8", ErrMalformedToken)
	}

	var claims Claims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return &claims, nil
}
