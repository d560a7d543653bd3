// Package identity defines the behavior the business layer needs from the
// hosted identity provider that owns account credentials and invitation
// emails.
package identity

import (
	"context"
	"errors"
)

// MaxPageSize is the largest page the provider will return when listing
// users.
const MaxPageSize = 1000

// Set of errors the provider can report.
var (
	ErrEmailExists = errors.New("email already registered")
	ErrNotFound    = errors.New("identity user not found")
)

// User represents a user on the identity provider.
type User struct {
	ID    string
	Email string
}

// Client declares the behavior required to interact with the identity
// provider.
type Client interface {
	ListUsers(ctx context.Context, page int, perPage int) ([]User, error)
	InviteUserByEmail(ctx context.Context, email string, metadata map[string]any, redirectTo string) (User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// FindUserByEmail pages through the provider's users looking for the
// specified email. Page size is bounded by the provider; the loop stops when
// a page comes back short. Returns ErrNotFound when no user matches.
func FindUserByEmail(ctx context.Context, client Client, email string) (User, error) {
	const perPage = MaxPageSize

	for page := 1; ; page++ {
		users, err := client.ListUsers(ctx, page, perPage)
		if err != nil {
			return User{}, err
		}

		for _, usr := range users {
			if usr.Email == email {
				return usr, nil
			}
		}

		if len(users) < perPage {
			return User{}, ErrNotFound
		}
	}
}
