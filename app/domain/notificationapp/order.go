package notificationapp

import (
	"github.com/hudsor01/tenantflow/business/domain/notificationbus"
)

var orderByFields = map[string]string{
	"notification_id": notificationbus.OrderByID,
	"type":            notificationbus.OrderByType,
	"created_at":      notificationbus.OrderByCreatedAt,
}
