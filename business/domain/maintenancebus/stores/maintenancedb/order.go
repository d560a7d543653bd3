package maintenancedb

import (
	"fmt"

	"github.com/hudsor01/tenantflow/business/domain/maintenancebus"
	"github.com/hudsor01/tenantflow/business/sdk/order"
)

var orderByFields = map[string]string{
	maintenancebus.OrderByID:        "request_id",
	maintenancebus.OrderByPriority:  "priority",
	maintenancebus.OrderByStatus:    "status",
	maintenancebus.OrderByCreatedAt: "created_at",
}

func orderByClause(orderBy order.By) (string, error) {
	by, exists := orderByFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
