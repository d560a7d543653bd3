package notificationbus

import (
	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/types/notifytype"
)

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	ID     *uuid.UUID
	UserID *uuid.UUID
	Type   *notifytype.Type
	IsRead *bool
}
