package maintenancebus

import (
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/types/maintpriority"
	"github.com/hudsor01/tenantflow/business/types/maintstatus"
)

// Request represents a maintenance request raised against a property.
type Request struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	TenantID    uuid.NullUUID
	Title       string
	Description string
	Priority    maintpriority.Priority
	Status      maintstatus.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRequest contains information needed to create a new maintenance request.
type NewRequest struct {
	PropertyID  uuid.UUID
	TenantID    uuid.NullUUID
	Title       string
	Description string
	Priority    maintpriority.Priority
}

// UpdateRequest contains information needed to update a maintenance request.
type UpdateRequest struct {
	Title       *string
	Description *string
	Priority    *maintpriority.Priority
	Status      *maintstatus.Status
}
