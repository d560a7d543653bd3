package propertybus

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/types/name"
)

// Property represents information about an individual property.
type Property struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         name.Name
	AddressLine1 string
	AddressLine2 sql.NullString
	City         string
	State        string
	PostalCode   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProperty contains information needed to create a new property.
type NewProperty struct {
	OwnerID      uuid.UUID
	Name         name.Name
	AddressLine1 string
	AddressLine2 sql.NullString
	City         string
	State        string
	PostalCode   string
}

// UpdateProperty contains information needed to update a property.
type UpdateProperty struct {
	Name         *name.Name
	AddressLine1 *string
	AddressLine2 *sql.NullString
	City         *string
	State        *string
	PostalCode   *string
}
