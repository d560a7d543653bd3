package propertybus

import (
	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/types/name"
)

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	ID      *uuid.UUID
	OwnerID *uuid.UUID
	Name    *name.Name
	City    *string
}
