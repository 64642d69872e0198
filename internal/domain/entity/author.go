package entity

import "time"

// AuthorRole is the permission level of an allow-listed author.
type AuthorRole string

const (
	// RoleAuthor may manage only their own articles.
	RoleAuthor AuthorRole = "author"
	// RoleAdmin may manage all articles, tags, categories and the allow-list.
	RoleAdmin AuthorRole = "admin"
)

// Valid reports whether the role is one of the known author roles.
func (r AuthorRole) Valid() bool {
	return r == RoleAuthor || r == RoleAdmin
}

// AllowedAuthor is an entry in the authorization allow-list. Only identities
// whose email appears here may mutate articles.
type AllowedAuthor struct {
	ID        int64
	Email     string
	Name      string
	Role      AuthorRole
	AddedBy   *int64
	CreatedAt time.Time
}

// Actor is the resolved caller of a protected operation: the authenticated
// identity combined with the role found in the allow-list. It is attached to
// the request context by the access-control gate and consumed by the
// ownership checks in the use case layer.
type Actor struct {
	ID    int64
	Email string
	Name  string
	Role  AuthorRole
}

// Admin reports whether the actor holds the admin role.
func (a Actor) Admin() bool { return a.Role == RoleAdmin }

// Owns reports whether the actor is the snapshot author of the article.
func (a Actor) Owns(art *Article) bool { return art != nil && art.AuthorEmail == a.Email }
