package dto

// SignInRequest payload for operator sign-in.
type SignInRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// AuthResponse standard response for sign-in.
type AuthResponse struct {
	Token       string `json:"token"`
	ExpiresInMS int64  `json:"expires_in_ms"`
}

// SessionResponse reports the current session classification.
type SessionResponse struct {
	Status       string      `json:"status"`
	ExpiringSoon bool        `json:"expiring_soon"`
	Claims       interface{} `json:"claims,omitempty"`
	Profile      interface{} `json:"profile,omitempty"`
}
