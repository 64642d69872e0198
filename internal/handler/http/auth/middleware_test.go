package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"resort-cms/internal/domain/entity"
	"resort-cms/internal/handler/http/auth"
)

const testSecret = "test-secret-value-at-least-32-chars"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func validClaims(email string) jwt.MapClaims {
	return jwt.MapClaims{
		"email": email,
		"name":  "Token Name",
		"exp":   float64(time.Now().Add(time.Hour).Unix()),
	}
}

type stubAuthors struct {
	entries map[string]*entity.AllowedAuthor
	err     error
}

func (s *stubAuthors) GetByEmail(_ context.Context, email string) (*entity.AllowedAuthor, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entries[email], nil
}

func (s *stubAuthors) List(context.Context) ([]*entity.AllowedAuthor, error) { return nil, nil }
func (s *stubAuthors) ExistsByEmail(context.Context, string) (bool, error)   { return false, nil }
func (s *stubAuthors) Create(context.Context, *entity.AllowedAuthor) error   { return nil }
func (s *stubAuthors) Delete(context.Context, int64) error                   { return nil }

func TestParseBearerToken(t *testing.T) {
	secret := []byte(testSecret)

	t.Run("valid", func(t *testing.T) {
		id, err := auth.ParseBearerToken("Bearer "+signToken(t, validClaims("a@example.com")), secret)
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		if id.Email != "a@example.com" || id.Name != "Token Name" {
			t.Fatalf("identity=%+v", id)
		}
	})

	t.Run("missing prefix", func(t *testing.T) {
		if _, err := auth.ParseBearerToken(signToken(t, validClaims("a@example.com")), secret); err == nil {
			t.Fatal("token without Bearer prefix must fail")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims("a@example.com"))
		s, _ := tok.SignedString([]byte("some-other-secret-of-enough-length"))
		if _, err := auth.ParseBearerToken("Bearer "+s, secret); err == nil {
			t.Fatal("token signed with wrong secret must fail")
		}
	})

	t.Run("expired", func(t *testing.T) {
		claims := validClaims("a@example.com")
		claims["exp"] = float64(time.Now().Add(-time.Minute).Unix())
		if _, err := auth.ParseBearerToken("Bearer "+signToken(t, claims), secret); err == nil {
			t.Fatal("expired token must fail")
		}
	})

	t.Run("missing email", func(t *testing.T) {
		claims := jwt.MapClaims{"exp": float64(time.Now().Add(time.Hour).Unix())}
		if _, err := auth.ParseBearerToken("Bearer "+signToken(t, claims), secret); err == nil {
			t.Fatal("token without email claim must fail")
		}
	})

	t.Run("unsigned algorithm", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims("a@example.com"))
		s, _ := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
		if _, err := auth.ParseBearerToken("Bearer "+s, secret); err == nil {
			t.Fatal("alg=none token must fail")
		}
	})
}

func TestRequireIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	var gotIdentity auth.Identity
	handler := auth.RequireIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIdentity, _ = auth.IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("no token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/articles", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status=%d, want 401", rec.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/articles", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims("a@example.com")))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status=%d, want 200", rec.Code)
		}
		if gotIdentity.Email != "a@example.com" {
			t.Fatalf("identity=%+v", gotIdentity)
		}
	})
}

func TestRequireAuthor(t *testing.T) {
	authors := &stubAuthors{entries: map[string]*entity.AllowedAuthor{
		"listed@example.com": {ID: 4, Email: "listed@example.com", Name: "List Name", Role: entity.RoleAuthor},
	}}

	var gotActor entity.Actor
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotActor, _ = auth.ActorFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := auth.RequireAuthor(authors)(next)

	withIdentity := func(email string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/admin/articles", nil)
		return req.WithContext(auth.WithIdentity(req.Context(), auth.Identity{Email: email, Name: "Token Name"}))
	}

	t.Run("not listed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, withIdentity("stranger@example.com"))
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status=%d, want 403", rec.Code)
		}
	})

	t.Run("listed attaches actor", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, withIdentity("listed@example.com"))
		if rec.Code != http.StatusOK {
			t.Fatalf("status=%d, want 200", rec.Code)
		}
		if gotActor.ID != 4 || gotActor.Role != entity.RoleAuthor {
			t.Fatalf("actor=%+v", gotActor)
		}
		// Allow-list name wins over the token's display name.
		if gotActor.Name != "List Name" {
			t.Fatalf("name=%q, want allow-list name", gotActor.Name)
		}
	})

	t.Run("no identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/articles", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status=%d, want 401", rec.Code)
		}
	})

	t.Run("lookup failure", func(t *testing.T) {
		failing := auth.RequireAuthor(&stubAuthors{err: errors.New("connection refused")})(next)
		rec := httptest.NewRecorder()
		failing.ServeHTTP(rec, withIdentity("listed@example.com"))
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status=%d, want 500", rec.Code)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := auth.RequireAdmin(next)

	withActor := func(role entity.AuthorRole) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/admin/tags", nil)
		actor := entity.Actor{ID: 1, Email: "x@example.com", Role: role}
		return req.WithContext(auth.WithActor(req.Context(), actor))
	}

	t.Run("admin passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, withActor(entity.RoleAdmin))
		if rec.Code != http.StatusOK {
			t.Fatalf("status=%d, want 200", rec.Code)
		}
	})

	t.Run("author rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, withActor(entity.RoleAuthor))
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status=%d, want 403", rec.Code)
		}
	})

	t.Run("no actor", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/tags", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status=%d, want 401", rec.Code)
		}
	})
}
