package notificationdb

import (
	"fmt"

	"github.com/hudsor01/tenantflow/business/domain/notificationbus"
	"github.com/hudsor01/tenantflow/business/sdk/order"
)

var orderByFields = map[string]string{
	notificationbus.OrderByID:        "notification_id",
	notificationbus.OrderByType:      "ntype",
	notificationbus.OrderByCreatedAt: "created_at",
}

func orderByClause(orderBy order.By) (string, error) {
	by, exists := orderByFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
