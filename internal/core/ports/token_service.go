package ports

import "time"

// TokenClaims is the decoded content of a bearer token. It says nothing
// about current account state; pair it with AuthService.ValidateUser.
type TokenClaims struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and structurally validates signed bearer tokens.
type TokenService interface {
	Issue(userID string) (string, error)
	// Decode verifies signature and expiry only. It returns nil for a
	// malformed, unsigned, or expired token; it never performs a
	// directory lookup.
	Decode(token string) *TokenClaims
}
