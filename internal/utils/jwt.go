package utils // package utils provides helper functions for session token creation

import (
	"time" // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionToken represents a signed HS256 JWT along with its expiry.  The
// Token field contains the serialized JWT string and Exp its UTC expiration
// time.  Session tokens carry only the reviewer role the caller picked; there
// is no account behind them, so there is no subject claim and no refresh
// flow.  A caller whose token expires simply picks a role again.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT for a reviewer role.  It
// takes the signing secret, the role string and a TTL in minutes, and
// returns a SessionToken containing the signed token and its expiration.
// The JWT includes the role claim plus standard exp and iat claims.
func NewSessionToken(secret, role string, ttlMin int) (SessionToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"role": role,
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}
