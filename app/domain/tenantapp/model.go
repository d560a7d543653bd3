package tenantapp

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/business/domain/leasebus"
	"github.com/hudsor01/tenantflow/business/domain/provisionbus"
	"github.com/hudsor01/tenantflow/business/domain/tenantbus"
	"github.com/hudsor01/tenantflow/business/types/money"
	"github.com/hudsor01/tenantflow/business/types/name"
	"github.com/hudsor01/tenantflow/business/types/phone"
	"github.com/hudsor01/tenantflow/business/types/tenantstatus"
)

// Tenant represents information about an individual tenant.
type Tenant struct {
	ID               string `json:"id"`
	OwnerID          string `json:"ownerId"`
	Email            string `json:"email"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Phone            string `json:"phone"`
	Status           string `json:"status"`
	InvitationStatus string `json:"invitationStatus"`
	InvitationSentAt string `json:"invitationSentAt,omitempty"`
	AuthUserID       string `json:"authUserId,omitempty"`
	StripeCustomerID string `json:"stripeCustomerId,omitempty"`
	DateCreated      string `json:"dateCreated"`
	DateUpdated      string `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (t Tenant) Encode() ([]byte, string, error) {
	data, err := json.Marshal(t)
	return data, "application/json", err
}

func toAppTenant(bus tenantbus.Tenant) Tenant {
	app := Tenant{
		ID:               bus.ID.String(),
		OwnerID:          bus.OwnerID.String(),
		Email:            bus.Email.Address,
		FirstName:        bus.FirstName.String(),
		LastName:         bus.LastName.String(),
		Phone:            bus.Phone.String(),
		Status:           bus.Status.String(),
		InvitationStatus: bus.InvitationStatus.String(),
		AuthUserID:       bus.AuthUserID.String,
		StripeCustomerID: bus.StripeCustomerID.String,
		DateCreated:      bus.CreatedAt.Format(time.RFC3339),
		DateUpdated:      bus.UpdatedAt.Format(time.RFC3339),
	}

	if bus.InvitationSentAt.Valid {
		app.InvitationSentAt = bus.InvitationSentAt.Time.Format(time.RFC3339)
	}

	return app
}

func toAppTenants(tnts []tenantbus.Tenant) []Tenant {
	app := make([]Tenant, len(tnts))
	for i, tnt := range tnts {
		app[i] = toAppTenant(tnt)
	}
	return app
}

// =============================================================================

// InviteTenant defines the data needed to create a tenant with their lease
// and send the invitation.
type InviteTenant struct {
	Email           string `json:"email" validate:"required,email"`
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Phone           string `json:"phone"`
	PropertyID      string `json:"propertyId" validate:"required,uuid"`
	UnitID          string `json:"unitId" validate:"omitempty,uuid"`
	RentAmount      *int64 `json:"rentAmount" validate:"required,gte=0"`
	SecurityDeposit int64  `json:"securityDeposit" validate:"gte=0"`
	StartDate       string `json:"startDate" validate:"required"`
	EndDate         string `json:"endDate" validate:"required"`
}

// Decode implements the web.Decoder interface.
func (app *InviteTenant) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app InviteTenant) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusInvite(app InviteTenant) (tenantbus.NewTenant, leasebus.NewLease, error) {
	addr, err := mail.ParseAddress(app.Email)
	if err != nil {
		return tenantbus.NewTenant{}, leasebus.NewLease{}, fmt.Errorf("parse email: %w", err)
	}

	first, err := name.Parse(app.FirstName)
	if err != nil {
		return tenantbus.NewTenant{}, leasebus.NewLease{}, fmt.Errorf("parse first name: %w", err)
	}

	last, err := name.Parse(app.LastName)
	if err != nil {
		return tenantbus.NewTenant{}, leasebus.NewLease{}, fmt.Errorf("parse last name: %w", err)
	}

	ph, err := phone.ParseNull(app.Phone)
	if err != nil {
		return tenantbus.NewTenant{}, leasebus.NewLease{}, fmt.Errorf("parse phone: %w", err)
	}

	propertyID, err := uuid.Parse(app.PropertyID)
	if err != nil {
		return tenantbus.NewTenant{}, leasebus.NewLease{}, fmt.Errorf("parse property id: %w", err)
	}

	var unitID uuid.NullUUID
	if app.UnitID != "" {
		id, err := uuid.Parse(app.UnitID)
		if err != nil {
			return tenantbus.NewTenant{}, leasebus.NewLease{}, fmt.Errorf("parse unit id: %w", err)
		}
		unitID = uuid.NullUUID{UUID: id, Valid: true}
	}

	rent, err := money.Parse(*app.RentAmount)
	if err != nil {
		return tenantbus.NewTenant{}, leasebus.NewLease{}, fmt.Errorf("parse rent amount: %w", err)
	}

	deposit, err := money.Parse(app.SecurityDeposit)
	if err != nil {
		return tenantbus.NewTenant{}, leasebus.NewLease{}, fmt.Errorf("parse security deposit: %w", err)
	}

	start, err := time.Parse(time.DateOnly, app.StartDate)
	if err != nil {
		return tenantbus.NewTenant{}, leasebus.NewLease{}, fmt.Errorf("parse start date: %w", err)
	}

	end, err := time.Parse(time.DateOnly, app.EndDate)
	if err != nil {
		return tenantbus.NewTenant{}, leasebus.NewLease{}, fmt.Errorf("parse end date: %w", err)
	}

	nt := tenantbus.NewTenant{
		Email:     *addr,
		FirstName: first,
		LastName:  last,
		Phone:     ph,
	}

	nl := leasebus.NewLease{
		PropertyID:      propertyID,
		UnitID:          unitID,
		RentAmount:      rent,
		SecurityDeposit: deposit,
		StartDate:       start,
		EndDate:         end,
	}

	return nt, nl, nil
}

// =============================================================================

// Invited reports the outcome of a successful invite.
type Invited struct {
	TenantID   string `json:"tenantId"`
	LeaseID    string `json:"leaseId"`
	AuthUserID string `json:"authUserId"`
	Message    string `json:"message"`
}

// Encode implements the web.Encoder interface.
func (i Invited) Encode() ([]byte, string, error) {
	data, err := json.Marshal(i)
	return data, "application/json", err
}

func toAppInvited(bus provisionbus.Provisioned) Invited {
	return Invited{
		TenantID:   bus.TenantID.String(),
		LeaseID:    bus.LeaseID.String(),
		AuthUserID: bus.AuthUserID,
		Message:    bus.Message,
	}
}

// =============================================================================

// UpdateTenant defines the data needed to update a tenant.
type UpdateTenant struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Status    *string `json:"status"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateTenant) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateTenant) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateTenant(app UpdateTenant) (tenantbus.UpdateTenant, error) {
	var addr *mail.Address
	if app.Email != nil {
		var err error
		addr, err = mail.ParseAddress(*app.Email)
		if err != nil {
			return tenantbus.UpdateTenant{}, fmt.Errorf("parse email: %w", err)
		}
	}

	var first *name.Name
	if app.FirstName != nil {
		n, err := name.Parse(*app.FirstName)
		if err != nil {
			return tenantbus.UpdateTenant{}, fmt.Errorf("parse first name: %w", err)
		}
		first = &n
	}

	var last *name.Name
	if app.LastName != nil {
		n, err := name.Parse(*app.LastName)
		if err != nil {
			return tenantbus.UpdateTenant{}, fmt.Errorf("parse last name: %w", err)
		}
		last = &n
	}

	var ph *phone.Null
	if app.Phone != nil {
		p, err := phone.ParseNull(*app.Phone)
		if err != nil {
			return tenantbus.UpdateTenant{}, fmt.Errorf("parse phone: %w", err)
		}
		ph = &p
	}

	var status *tenantstatus.Status
	if app.Status != nil {
		st, err := tenantstatus.Parse(*app.Status)
		if err != nil {
			return tenantbus.UpdateTenant{}, fmt.Errorf("parse status: %w", err)
		}
		status = &st
	}

	bus := tenantbus.UpdateTenant{
		Email:     addr,
		FirstName: first,
		LastName:  last,
		Phone:     ph,
		Status:    status,
	}

	return bus, nil
}
