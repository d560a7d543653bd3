package leasebus

import (
	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/types/leasestatus"
)

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	ID         *uuid.UUID
	TenantID   *uuid.UUID
	PropertyID *uuid.UUID
	Status     *leasestatus.Status
}
