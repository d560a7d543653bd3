package notificationapp

import (
	"encoding/json"
	"time"

	"github.com/hudsor01/tenantflow/business/domain/notificationbus"
)

// Notification represents a message delivered to a user.
type Notification struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	IsRead      bool   `json:"isRead"`
	DateCreated string `json:"dateCreated"`
}

// Encode implements the web.Encoder interface.
func (n Notification) Encode() ([]byte, string, error) {
	data, err := json.Marshal(n)
	return data, "application/json", err
}

func toAppNotification(bus notificationbus.Notification) Notification {
	return Notification{
		ID:          bus.ID.String(),
		Type:        bus.Type.String(),
		Title:       bus.Title,
		Body:        bus.Body,
		IsRead:      bus.IsRead,
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
	}
}

func toAppNotifications(ntfs []notificationbus.Notification) []Notification {
	app := make([]Notification, len(ntfs))
	for i, ntf := range ntfs {
		app[i] = toAppNotification(ntf)
	}
	return app
}
