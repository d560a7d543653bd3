package userbus

import (
	"database/sql"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/types/name"
	"github.com/hudsor01/tenantflow/business/types/password"
	"github.com/hudsor01/tenantflow/business/types/phone"
	"github.com/hudsor01/tenantflow/business/types/role"
)

// User represents information about an individual user. Owners carry a
// Stripe connected account used to bill their tenants.
type User struct {
	ID                 uuid.UUID
	Name               name.Name
	Email              mail.Address
	Role               role.Role
	PasswordHash       []byte
	Phone              phone.Null
	StripeAccountID    sql.NullString
	OnboardingComplete bool
	Enabled            bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser contains information needed to create a new user.
type NewUser struct {
	Name     name.Name
	Email    mail.Address
	Phone    phone.Null
	Role     role.Role
	Password password.Password
}

// UpdateUser contains information needed to update a user.
type UpdateUser struct {
	Name               *name.Name
	Email              *mail.Address
	Role               *role.Role
	Phone              *phone.Null
	Password           *password.Password
	StripeAccountID    *sql.NullString
	OnboardingComplete *bool
	Enabled            *bool
}
