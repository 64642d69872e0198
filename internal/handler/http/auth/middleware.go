package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"resort-cms/internal/domain/entity"
	"resort-cms/internal/handler/http/respond"
	"resort-cms/internal/repository"
)

// RequireIdentity verifies the bearer JWT on every request and attaches the
// caller identity to the context. Requests without a valid token get 401.
//
// The signing secret is read from JWT_SECRET once, when the middleware is
// constructed.
func RequireIdentity(next http.Handler) http.Handler {
	secret := []byte(os.Getenv("JWT_SECRET"))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := ParseBearerToken(r.Header.Get("Authorization"), secret)
		if err != nil {
			respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: invalid credentials: %w", err))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

// RequireAuthor resolves the authenticated email against the allow-list and
// attaches the resulting Actor to the context. Emails not on the list get
// 403. The lookup happens on every request so revocation takes effect
// immediately.
func RequireAuthor(authors repository.AuthorRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized: invalid credentials"))
				return
			}

			entry, err := authors.GetByEmail(r.Context(), id.Email)
			if err != nil {
				respond.SafeError(w, http.StatusInternalServerError, fmt.Errorf("resolve author: %w", err))
				return
			}
			if entry == nil {
				respond.SafeError(w, http.StatusForbidden, errors.New("email is not allowed to manage articles"))
				return
			}

			// Prefer the allow-list name over the token's display name:
			// the list is the source of truth for bylines.
			name := entry.Name
			if name == "" {
				name = id.Name
			}

			actor := entity.Actor{
				ID:    entry.ID,
				Email: entry.Email,
				Name:  name,
				Role:  entry.Role,
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// RequireAdmin rejects actors without the admin role. It must run after
// RequireAuthor in the middleware chain.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized: invalid credentials"))
			return
		}
		if !actor.Admin() {
			respond.SafeError(w, http.StatusForbidden, errors.New("admin role required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
