package tenantdb

import (
	"fmt"

	"github.com/hudsor01/tenantflow/business/domain/tenantbus"
	"github.com/hudsor01/tenantflow/business/sdk/order"
)

var orderByFields = map[string]string{
	tenantbus.OrderByID:        "tenant_id",
	tenantbus.OrderByEmail:     "email",
	tenantbus.OrderByLastName:  "last_name",
	tenantbus.OrderByStatus:    "status",
	tenantbus.OrderByCreatedAt: "created_at",
}

func orderByClause(orderBy order.By) (string, error) {
	by, exists := orderByFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
