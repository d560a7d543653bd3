package tenantdb

import (
	"database/sql"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/domain/tenantbus"
	"github.com/hudsor01/tenantflow/business/types/invitestatus"
	"github.com/hudsor01/tenantflow/business/types/name"
	"github.com/hudsor01/tenantflow/business/types/phone"
	"github.com/hudsor01/tenantflow/business/types/tenantstatus"
)

type tenantDB struct {
	ID               uuid.UUID      `db:"tenant_id"`
	OwnerID          uuid.UUID      `db:"owner_id"`
	Email            string         `db:"email"`
	FirstName        string         `db:"first_name"`
	LastName         string         `db:"last_name"`
	Phone            sql.NullString `db:"phone"`
	Status           string         `db:"status"`
	InvitationStatus string         `db:"invitation_status"`
	InvitationSentAt sql.NullTime   `db:"invitation_sent_at"`
	AuthUserID       sql.NullString `db:"auth_user_id"`
	StripeCustomerID sql.NullString `db:"stripe_customer_id"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func toDBTenant(bus tenantbus.Tenant) tenantDB {
	return tenantDB{
		ID:               bus.ID,
		OwnerID:          bus.OwnerID,
		Email:            bus.Email.Address,
		FirstName:        bus.FirstName.String(),
		LastName:         bus.LastName.String(),
		Phone:            phone.ToSQLNullString(bus.Phone),
		Status:           bus.Status.String(),
		InvitationStatus: bus.InvitationStatus.String(),
		InvitationSentAt: bus.InvitationSentAt,
		AuthUserID:       bus.AuthUserID,
		StripeCustomerID: bus.StripeCustomerID,
		CreatedAt:        bus.CreatedAt.UTC(),
		UpdatedAt:        bus.UpdatedAt.UTC(),
	}
}

func toBusTenant(db tenantDB) (tenantbus.Tenant, error) {
	status, err := tenantstatus.Parse(db.Status)
	if err != nil {
		return tenantbus.Tenant{}, fmt.Errorf("parse status: %w", err)
	}

	invStatus, err := invitestatus.Parse(db.InvitationStatus)
	if err != nil {
		return tenantbus.Tenant{}, fmt.Errorf("parse invitation status: %w", err)
	}

	firstName, err := name.Parse(db.FirstName)
	if err != nil {
		return tenantbus.Tenant{}, fmt.Errorf("parse first name: %w", err)
	}

	lastName, err := name.Parse(db.LastName)
	if err != nil {
		return tenantbus.Tenant{}, fmt.Errorf("parse last name: %w", err)
	}

	phne, err := phone.ParseNull(db.Phone.String)
	if err != nil {
		return tenantbus.Tenant{}, fmt.Errorf("parse phone: %w", err)
	}

	bus := tenantbus.Tenant{
		ID:               db.ID,
		OwnerID:          db.OwnerID,
		Email:            mail.Address{Address: db.Email},
		FirstName:        firstName,
		LastName:         lastName,
		Phone:            phne,
		Status:           status,
		InvitationStatus: invStatus,
		InvitationSentAt: db.InvitationSentAt,
		AuthUserID:       db.AuthUserID,
		StripeCustomerID: db.StripeCustomerID,
		CreatedAt:        db.CreatedAt.In(time.Local),
		UpdatedAt:        db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusTenants(dbs []tenantDB) ([]tenantbus.Tenant, error) {
	bus := make([]tenantbus.Tenant, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusTenant(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
