package leasebus

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/types/leasestatus"
	"github.com/hudsor01/tenantflow/business/types/money"
)

// Lease represents a rental agreement between a tenant and a property.
// Amounts are integer cents.
type Lease struct {
	ID                   uuid.UUID
	TenantID             uuid.UUID
	PropertyID           uuid.UUID
	UnitID               uuid.NullUUID
	RentAmount           money.Amount
	SecurityDeposit      money.Amount
	StartDate            time.Time
	EndDate              time.Time
	Status               leasestatus.Status
	StripeSubscriptionID sql.NullString
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewLease contains information needed to create a new lease.
type NewLease struct {
	TenantID        uuid.UUID
	PropertyID      uuid.UUID
	UnitID          uuid.NullUUID
	RentAmount      money.Amount
	SecurityDeposit money.Amount
	StartDate       time.Time
	EndDate         time.Time
}

// UpdateLease contains information needed to update a lease.
type UpdateLease struct {
	RentAmount      *money.Amount
	SecurityDeposit *money.Amount
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *leasestatus.Status
}
