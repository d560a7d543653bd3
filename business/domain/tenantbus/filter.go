package tenantbus

import (
	"net/mail"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/types/invitestatus"
	"github.com/hudsor01/tenantflow/business/types/tenantstatus"
)

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	ID               *uuid.UUID
	OwnerID          *uuid.UUID
	Email            *mail.Address
	Status           *tenantstatus.Status
	InvitationStatus *invitestatus.Status
}
