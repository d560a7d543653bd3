package notificationbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/types/notifytype"
)

// Notification represents a message delivered to a user.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      notifytype.Type
	Title     string
	Body      string
	IsRead    bool
	CreatedAt time.Time
}

// NewNotification contains information needed to create a new notification.
type NewNotification struct {
	UserID uuid.UUID
	Type   notifytype.Type
	Title  string
	Body   string
}
