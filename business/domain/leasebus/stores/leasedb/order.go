package leasedb

import (
	"fmt"

	"github.com/hudsor01/tenantflow/business/domain/leasebus"
	"github.com/hudsor01/tenantflow/business/sdk/order"
)

var orderByFields = map[string]string{
	leasebus.OrderByID:        "lease_id",
	leasebus.OrderByStartDate: "start_date",
	leasebus.OrderByEndDate:   "end_date",
	leasebus.OrderByStatus:    "status",
}

func orderByClause(orderBy order.By) (string, error) {
	by, exists := orderByFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
