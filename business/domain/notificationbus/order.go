package notificationbus

import "github.com/hudsor01/tenantflow/business/sdk/order"

// DefaultOrderBy represents the default way we sort.
var DefaultOrderBy = order.NewBy(OrderByCreatedAt, order.DESC)

// The set of fields the results can be ordered by.
const (
	OrderByID        = "notification_id"
	OrderByType      = "ntype"
	OrderByCreatedAt = "created_at"
)
