package tenantapp

import (
	"github.com/hudsor01/tenantflow/business/domain/tenantbus"
)

var orderByFields = map[string]string{
	"tenant_id":  tenantbus.OrderByID,
	"email":      tenantbus.OrderByEmail,
	"last_name":  tenantbus.OrderByLastName,
	"status":     tenantbus.OrderByStatus,
	"created_at": tenantbus.OrderByCreatedAt,
}
