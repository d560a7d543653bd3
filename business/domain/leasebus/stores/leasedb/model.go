package leasedb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/domain/leasebus"
	"github.com/hudsor01/tenantflow/business/types/leasestatus"
	"github.com/hudsor01/tenantflow/business/types/money"
)

type leaseDB struct {
	ID                   uuid.UUID      `db:"lease_id"`
	TenantID             uuid.UUID      `db:"tenant_id"`
	PropertyID           uuid.UUID      `db:"property_id"`
	UnitID               uuid.NullUUID  `db:"unit_id"`
	RentAmount           int64          `db:"rent_amount"`
	SecurityDeposit      int64          `db:"security_deposit"`
	StartDate            time.Time      `db:"start_date"`
	EndDate              time.Time      `db:"end_date"`
	Status               string         `db:"status"`
	StripeSubscriptionID sql.NullString `db:"stripe_subscription_id"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"`
}

func toDBLease(bus leasebus.Lease) leaseDB {
	return leaseDB{
		ID:                   bus.ID,
		TenantID:             bus.TenantID,
		PropertyID:           bus.PropertyID,
		UnitID:               bus.UnitID,
		RentAmount:           bus.RentAmount.Value(),
		SecurityDeposit:      bus.SecurityDeposit.Value(),
		StartDate:            bus.StartDate.UTC(),
		EndDate:              bus.EndDate.UTC(),
		Status:               bus.Status.String(),
		StripeSubscriptionID: bus.StripeSubscriptionID,
		CreatedAt:            bus.CreatedAt.UTC(),
		UpdatedAt:            bus.UpdatedAt.UTC(),
	}
}

func toBusLease(db leaseDB) (leasebus.Lease, error) {
	status, err := leasestatus.Parse(db.Status)
	if err != nil {
		return leasebus.Lease{}, fmt.Errorf("parse status: %w", err)
	}

	rent, err := money.Parse(db.RentAmount)
	if err != nil {
		return leasebus.Lease{}, fmt.Errorf("parse rent amount: %w", err)
	}

	deposit, err := money.Parse(db.SecurityDeposit)
	if err != nil {
		return leasebus.Lease{}, fmt.Errorf("parse security deposit: %w", err)
	}

	bus := leasebus.Lease{
		ID:                   db.ID,
		TenantID:             db.TenantID,
		PropertyID:           db.PropertyID,
		UnitID:               db.UnitID,
		RentAmount:           rent,
		SecurityDeposit:      deposit,
		StartDate:            db.StartDate.In(time.Local),
		EndDate:              db.EndDate.In(time.Local),
		Status:               status,
		StripeSubscriptionID: db.StripeSubscriptionID,
		CreatedAt:            db.CreatedAt.In(time.Local),
		UpdatedAt:            db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusLeases(dbs []leaseDB) ([]leasebus.Lease, error) {
	bus := make([]leasebus.Lease, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusLease(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
