package propertydb

import (
	"fmt"

	"github.com/hudsor01/tenantflow/business/domain/propertybus"
	"github.com/hudsor01/tenantflow/business/sdk/order"
)

var orderByFields = map[string]string{
	propertybus.OrderByID:   "property_id",
	propertybus.OrderByName: "name",
	propertybus.OrderByCity: "city",
}

func orderByClause(orderBy order.By) (string, error) {
	by, exists := orderByFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
