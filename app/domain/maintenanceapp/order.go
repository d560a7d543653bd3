package maintenanceapp

import (
	"github.com/hudsor01/tenantflow/business/domain/maintenancebus"
)

var orderByFields = map[string]string{
	"request_id": maintenancebus.OrderByID,
	"priority":   maintenancebus.OrderByPriority,
	"status":     maintenancebus.OrderByStatus,
	"created_at": maintenancebus.OrderByCreatedAt,
}
