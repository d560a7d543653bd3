package propertydb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/domain/propertybus"
	"github.com/hudsor01/tenantflow/business/types/name"
)

type propertyDB struct {
	ID           uuid.UUID      `db:"property_id"`
	OwnerID      uuid.UUID      `db:"owner_id"`
	Name         string         `db:"name"`
	AddressLine1 string         `db:"address_line1"`
	AddressLine2 sql.NullString `db:"address_line2"`
	City         string         `db:"city"`
	State        string         `db:"state"`
	PostalCode   string         `db:"postal_code"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func toDBProperty(bus propertybus.Property) propertyDB {
	return propertyDB{
		ID:           bus.ID,
		OwnerID:      bus.OwnerID,
		Name:         bus.Name.String(),
		AddressLine1: bus.AddressLine1,
		AddressLine2: bus.AddressLine2,
		City:         bus.City,
		State:        bus.State,
		PostalCode:   bus.PostalCode,
		CreatedAt:    bus.CreatedAt.UTC(),
		UpdatedAt:    bus.UpdatedAt.UTC(),
	}
}

func toBusProperty(db propertyDB) (propertybus.Property, error) {
	nme, err := name.Parse(db.Name)
	if err != nil {
		return propertybus.Property{}, fmt.Errorf("parse name: %w", err)
	}

	bus := propertybus.Property{
		ID:           db.ID,
		OwnerID:      db.OwnerID,
		Name:         nme,
		AddressLine1: db.AddressLine1,
		AddressLine2: db.AddressLine2,
		City:         db.City,
		State:        db.State,
		PostalCode:   db.PostalCode,
		CreatedAt:    db.CreatedAt.In(time.Local),
		UpdatedAt:    db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusProperties(dbs []propertyDB) ([]propertybus.Property, error) {
	bus := make([]propertybus.Property, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusProperty(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
