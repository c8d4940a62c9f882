package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether a bearer token is already past its exp
// claim. The token is parsed without signature verification (the
// backend remains the authority), so this is only a preflight that lets
// the client classify "session expired" without a round trip. Tokens
// that are not JWTs or carry no exp claim are assumed live.
func TokenExpired(token string, now time.Time) bool {
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
