// Package tenantbus provides business access to tenant domain. A tenant is
// a person renting from a property owner, not to be confused with the owner
// account itself.
package tenantbus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/sdk/lifecycle"
	"github.com/hudsor01/tenantflow/business/sdk/order"
	"github.com/hudsor01/tenantflow/business/sdk/page"
	"github.com/hudsor01/tenantflow/business/sdk/sqldb"
	"github.com/hudsor01/tenantflow/business/types/invitestatus"
	"github.com/hudsor01/tenantflow/business/types/tenantstatus"
	"github.com/hudsor01/tenantflow/foundation/otel"
)

// The set of errors for the tenant api.
var (
	ErrNotFound          = errors.New("tenant not found")
	ErrUniqueEmail       = errors.New("email is not unique")
	ErrInvalidTransition = lifecycle.ErrInvalidTransition
)

// statusMachine declares the legal tenant status changes. A tenant only
// becomes ACTIVE once the invitation is accepted, and ARCHIVED is terminal.
var statusMachine = lifecycle.New([]lifecycle.Transition{
	{Src: tenantstatus.Pending.String(), Dst: tenantstatus.Active.String()},
	{Src: tenantstatus.Pending.String(), Dst: tenantstatus.Archived.String()},
	{Src: tenantstatus.Active.String(), Dst: tenantstatus.Inactive.String()},
	{Src: tenantstatus.Active.String(), Dst: tenantstatus.Evicted.String()},
	{Src: tenantstatus.Active.String(), Dst: tenantstatus.MovedOut.String()},
	{Src: tenantstatus.Inactive.String(), Dst: tenantstatus.Active.String()},
	{Src: tenantstatus.Inactive.String(), Dst: tenantstatus.Archived.String()},
	{Src: tenantstatus.Evicted.String(), Dst: tenantstatus.Archived.String()},
	{Src: tenantstatus.MovedOut.String(), Dst: tenantstatus.Archived.String()},
})

// Storer interface declares the behavior this package needs to persist and
// retrieve data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, tnt Tenant) error
	Update(ctx context.Context, tnt Tenant) error
	Delete(ctx context.Context, tnt Tenant) error
	Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Tenant, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, tenantID uuid.UUID) (Tenant, error)
	QueryByEmail(ctx context.Context, email mail.Address) (Tenant, error)
}

// Core manages the set of APIs for tenant access.
type Core struct {
	storer Storer
}

// NewCore constructs a tenant core API for use.
func NewCore(storer Storer) *Core {
	return &Core{
		storer: storer,
	}
}

// NewWithTx constructs a new core value that will use the specified
// transaction in any store related calls.
func (c *Core) NewWithTx(tx sqldb.CommitRollbacker) (*Core, error) {
	storer, err := c.storer.NewWithTx(tx)
	if err != nil {
		return nil, err
	}

	return NewCore(storer), nil
}

// Create adds a new tenant to the system. New tenants start PENDING with a
// PENDING invitation.
func (c *Core) Create(ctx context.Context, nt NewTenant) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.create")
	defer span.End()

	now := time.Now()

	tnt := Tenant{
		ID:               uuid.New(),
		OwnerID:          nt.OwnerID,
		Email:            nt.Email,
		FirstName:        nt.FirstName,
		LastName:         nt.LastName,
		Phone:            nt.Phone,
		Status:           tenantstatus.Pending,
		InvitationStatus: invitestatus.Pending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := c.storer.Create(ctx, tnt); err != nil {
		return Tenant{}, fmt.Errorf("create: %w", err)
	}

	return tnt, nil
}

// Update modifies information about a tenant. Status changes are validated
// against the tenant lifecycle.
func (c *Core) Update(ctx context.Context, tnt Tenant, ut UpdateTenant) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.update")
	defer span.End()

	if ut.Email != nil {
		tnt.Email = *ut.Email
	}

	if ut.FirstName != nil {
		tnt.FirstName = *ut.FirstName
	}

	if ut.LastName != nil {
		tnt.LastName = *ut.LastName
	}

	if ut.Phone != nil {
		tnt.Phone = *ut.Phone
	}

	if ut.Status != nil {
		if err := statusMachine.Check(ctx, tnt.Status.String(), ut.Status.String()); err != nil {
			return Tenant{}, fmt.Errorf("status: %w", err)
		}
		tnt.Status = *ut.Status
	}

	tnt.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, tnt); err != nil {
		return Tenant{}, fmt.Errorf("update: %w", err)
	}

	return tnt, nil
}

// Delete removes the specified tenant.
func (c *Core) Delete(ctx context.Context, tnt Tenant) error {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, tnt); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing tenants.
func (c *Core) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.query")
	defer span.End()

	tnts, err := c.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return tnts, nil
}

// Count returns the total number of tenants.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}

// QueryByID finds the tenant by the specified ID.
func (c *Core) QueryByID(ctx context.Context, tenantID uuid.UUID) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.querybyid")
	defer span.End()

	tnt, err := c.storer.QueryByID(ctx, tenantID)
	if err != nil {
		return Tenant{}, fmt.Errorf("query: tenantID[%s]: %w", tenantID, err)
	}

	return tnt, nil
}

// QueryByEmail finds the tenant by a specified email.
func (c *Core) QueryByEmail(ctx context.Context, email mail.Address) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.querybyemail")
	defer span.End()

	tnt, err := c.storer.QueryByEmail(ctx, email)
	if err != nil {
		return Tenant{}, fmt.Errorf("query: email[%s]: %w", email, err)
	}

	return tnt, nil
}

// SetStripeCustomer records the Stripe customer created for the tenant on
// the owner's connected account.
func (c *Core) SetStripeCustomer(ctx context.Context, tnt Tenant, customerID string) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.setstripecustomer")
	defer span.End()

	tnt.StripeCustomerID.String = customerID
	tnt.StripeCustomerID.Valid = customerID != ""
	tnt.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, tnt); err != nil {
		return Tenant{}, fmt.Errorf("update: %w", err)
	}

	return tnt, nil
}

// LinkAuthUser records the identity provider user for the tenant and marks
// the invitation SENT.
func (c *Core) LinkAuthUser(ctx context.Context, tnt Tenant, authUserID string) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.linkauthuser")
	defer span.End()

	now := time.Now()

	tnt.AuthUserID.String = authUserID
	tnt.AuthUserID.Valid = authUserID != ""
	tnt.InvitationStatus = invitestatus.Sent
	tnt.InvitationSentAt.Time = now
	tnt.InvitationSentAt.Valid = true
	tnt.UpdatedAt = now

	if err := c.storer.Update(ctx, tnt); err != nil {
		return Tenant{}, fmt.Errorf("update: %w", err)
	}

	return tnt, nil
}

// UnlinkAuthUser clears the identity provider reference and reverts the
// invitation to PENDING.
func (c *Core) UnlinkAuthUser(ctx context.Context, tnt Tenant) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.unlinkauthuser")
	defer span.End()

	tnt.AuthUserID = sql.NullString{}
	tnt.InvitationStatus = invitestatus.Pending
	tnt.InvitationSentAt = sql.NullTime{}
	tnt.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, tnt); err != nil {
		return Tenant{}, fmt.Errorf("update: %w", err)
	}

	return tnt, nil
}

// AcceptInvitation marks the invitation ACCEPTED and activates the tenant.
func (c *Core) AcceptInvitation(ctx context.Context, tnt Tenant) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.acceptinvitation")
	defer span.End()

	if !tnt.InvitationStatus.Equal(invitestatus.Sent) {
		return Tenant{}, fmt.Errorf("invitation: %w: %s -> %s", ErrInvalidTransition, tnt.InvitationStatus, invitestatus.Accepted)
	}

	if err := statusMachine.Check(ctx, tnt.Status.String(), tenantstatus.Active.String()); err != nil {
		return Tenant{}, fmt.Errorf("status: %w", err)
	}

	tnt.InvitationStatus = invitestatus.Accepted
	tnt.Status = tenantstatus.Active
	tnt.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, tnt); err != nil {
		return Tenant{}, fmt.Errorf("update: %w", err)
	}

	return tnt, nil
}
