package notificationdb

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/domain/notificationbus"
	"github.com/hudsor01/tenantflow/business/types/notifytype"
)

type notificationDB struct {
	ID        uuid.UUID `db:"notification_id"`
	UserID    uuid.UUID `db:"user_id"`
	Type      string    `db:"ntype"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

func toDBNotification(bus notificationbus.Notification) notificationDB {
	return notificationDB{
		ID:        bus.ID,
		UserID:    bus.UserID,
		Type:      bus.Type.String(),
		Title:     bus.Title,
		Body:      bus.Body,
		IsRead:    bus.IsRead,
		CreatedAt: bus.CreatedAt.UTC(),
	}
}

func toBusNotification(db notificationDB) (notificationbus.Notification, error) {
	typ, err := notifytype.Parse(db.Type)
	if err != nil {
		return notificationbus.Notification{}, fmt.Errorf("parse type: %w", err)
	}

	bus := notificationbus.Notification{
		ID:        db.ID,
		UserID:    db.UserID,
		Type:      typ,
		Title:     db.Title,
		Body:      db.Body,
		IsRead:    db.IsRead,
		CreatedAt: db.CreatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusNotifications(dbs []notificationDB) ([]notificationbus.Notification, error) {
	bus := make([]notificationbus.Notification, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusNotification(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
