// Package auth implements the access-control chain for management endpoints.
//
// Requests pass three gates in order:
//  1. RequireIdentity verifies the bearer JWT and extracts the caller's
//     email. Failure is 401.
//  2. RequireAuthor checks that email against the allow-list table and
//     attaches the resulting Actor (with its role) to the context.
//     An email that is not listed gets 403.
//  3. RequireAdmin additionally rejects non-admin actors with 403.
//
// Authorization is therefore decided per request from current database
// state: removing an allow-list entry locks the author out on their next
// request, without waiting for token expiry.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller as asserted by the JWT. It says who
// the caller is, not what they may do; the allow-list decides that.
type Identity struct {
	Email string
	Name  string
}

// ParseBearerToken validates the Authorization header value and extracts the
// caller identity. Only HS256 tokens are accepted; tokens without an exp
// claim or with an elapsed one are rejected.
func ParseBearerToken(authz string, secret []byte) (Identity, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return Identity{}, errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authz, prefix)

	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, errors.New("invalid token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid claims")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return Identity{}, errors.New("token expired")
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return Identity{}, errors.New("invalid email claim")
	}

	// The name claim is display-only and optional.
	name, _ := claims["name"].(string)

	return Identity{Email: email, Name: name}, nil
}
