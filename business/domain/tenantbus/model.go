package tenantbus

import (
	"database/sql"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/types/invitestatus"
	"github.com/hudsor01/tenantflow/business/types/name"
	"github.com/hudsor01/tenantflow/business/types/phone"
	"github.com/hudsor01/tenantflow/business/types/tenantstatus"
)

// Tenant represents a person renting from a property owner.
type Tenant struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Email            mail.Address
	FirstName        name.Name
	LastName         name.Name
	Phone            phone.Null
	Status           tenantstatus.Status
	InvitationStatus invitestatus.Status
	InvitationSentAt sql.NullTime
	AuthUserID       sql.NullString
	StripeCustomerID sql.NullString
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewTenant contains information needed to create a new tenant.
type NewTenant struct {
	OwnerID   uuid.UUID
	Email     mail.Address
	FirstName name.Name
	LastName  name.Name
	Phone     phone.Null
}

// UpdateTenant contains information needed to update a tenant.
type UpdateTenant struct {
	Email     *mail.Address
	FirstName *name.Name
	LastName  *name.Name
	Phone     *phone.Null
	Status    *tenantstatus.Status
}
