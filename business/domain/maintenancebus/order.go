package maintenancebus

import "github.com/hudsor01/tenantflow/business/sdk/order"

// DefaultOrderBy represents the default way we sort.
var DefaultOrderBy = order.NewBy(OrderByCreatedAt, order.DESC)

// The set of fields the results can be ordered by.
const (
	OrderByID        = "request_id"
	OrderByPriority  = "priority"
	OrderByStatus    = "status"
	OrderByCreatedAt = "created_at"
)
