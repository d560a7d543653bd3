package maintenancebus

import (
	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/types/maintpriority"
	"github.com/hudsor01/tenantflow/business/types/maintstatus"
)

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	ID         *uuid.UUID
	PropertyID *uuid.UUID
	TenantID   *uuid.UUID
	Priority   *maintpriority.Priority
	Status     *maintstatus.Status
}
