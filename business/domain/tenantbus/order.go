package tenantbus

import "github.com/hudsor01/tenantflow/business/sdk/order"

// DefaultOrderBy represents the default way we sort.
var DefaultOrderBy = order.NewBy(OrderByID, order.ASC)

// The set of fields the results can be ordered by.
const (
	OrderByID        = "tenant_id"
	OrderByEmail     = "email"
	OrderByLastName  = "last_name"
	OrderByStatus    = "status"
	OrderByCreatedAt = "created_at"
)
