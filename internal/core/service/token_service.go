package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nimbusid/identity-api/internal/core/ports"
)

const defaultTokenTTL = 4 * time.Hour

type tokenClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenService issues and decodes HS256-signed bearer tokens. The
// signing secret is read-only after construction.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a claim set binding userID with the configured lifetime.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Decode verifies signature and expiry and returns the claims, or nil
// when the token is malformed, unsigned, expired, or signed with an
// unexpected algorithm. It performs no directory lookup: a decoded
// token proves nothing about current account state.
func (s *TokenService) Decode(token string) *ports.TokenClaims {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid || claims.ID == "" {
		return nil
	}

	out := &ports.TokenClaims{UserID: claims.ID}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out
}

// TTL exposes the configured token lifetime so revocation entries can
// be sized to outlive outstanding tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}
