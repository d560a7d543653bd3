package maintenancedb

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/domain/maintenancebus"
	"github.com/hudsor01/tenantflow/business/types/maintpriority"
	"github.com/hudsor01/tenantflow/business/types/maintstatus"
)

type requestDB struct {
	ID          uuid.UUID     `db:"request_id"`
	PropertyID  uuid.UUID     `db:"property_id"`
	TenantID    uuid.NullUUID `db:"tenant_id"`
	Title       string        `db:"title"`
	Description string        `db:"description"`
	Priority    string        `db:"priority"`
	Status      string        `db:"status"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

func toDBRequest(bus maintenancebus.Request) requestDB {
	return requestDB{
		ID:          bus.ID,
		PropertyID:  bus.PropertyID,
		TenantID:    bus.TenantID,
		Title:       bus.Title,
		Description: bus.Description,
		Priority:    bus.Priority.String(),
		Status:      bus.Status.String(),
		CreatedAt:   bus.CreatedAt.UTC(),
		UpdatedAt:   bus.UpdatedAt.UTC(),
	}
}

func toBusRequest(db requestDB) (maintenancebus.Request, error) {
	priority, err := maintpriority.Parse(db.Priority)
	if err != nil {
		return maintenancebus.Request{}, fmt.Errorf("parse priority: %w", err)
	}

	status, err := maintstatus.Parse(db.Status)
	if err != nil {
		return maintenancebus.Request{}, fmt.Errorf("parse status: %w", err)
	}

	bus := maintenancebus.Request{
		ID:          db.ID,
		PropertyID:  db.PropertyID,
		TenantID:    db.TenantID,
		Title:       db.Title,
		Description: db.Description,
		Priority:    priority,
		Status:      status,
		CreatedAt:   db.CreatedAt.In(time.Local),
		UpdatedAt:   db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusRequests(dbs []requestDB) ([]maintenancebus.Request, error) {
	bus := make([]maintenancebus.Request, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusRequest(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
