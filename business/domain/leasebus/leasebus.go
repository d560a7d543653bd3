// Package leasebus provides business access to lease domain.
package leasebus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/sdk/lifecycle"
	"github.com/hudsor01/tenantflow/business/sdk/order"
	"github.com/hudsor01/tenantflow/business/sdk/page"
	"github.com/hudsor01/tenantflow/business/sdk/sqldb"
	"github.com/hudsor01/tenantflow/business/types/leasestatus"
	"github.com/hudsor01/tenantflow/foundation/otel"
)

// The set of errors for the lease api.
var (
	ErrNotFound          = errors.New("lease not found")
	ErrInvalidDates      = errors.New("lease start date must be before end date")
	ErrDateOverlap       = errors.New("an active lease already covers this period")
	ErrInvalidTransition = lifecycle.ErrInvalidTransition
)

// statusMachine declares the legal lease status changes. TERMINATED and
// EXPIRED are terminal.
var statusMachine = lifecycle.New([]lifecycle.Transition{
	{Src: leasestatus.Draft.String(), Dst: leasestatus.Active.String()},
	{Src: leasestatus.Draft.String(), Dst: leasestatus.Terminated.String()},
	{Src: leasestatus.Active.String(), Dst: leasestatus.Expired.String()},
	{Src: leasestatus.Active.String(), Dst: leasestatus.Terminated.String()},
})

// Storer interface declares the behavior this package needs to persist and
// retrieve data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, lse Lease) error
	Update(ctx context.Context, lse Lease) error
	Delete(ctx context.Context, lse Lease) error
	Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Lease, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, leaseID uuid.UUID) (Lease, error)
	QueryByStripeSubscription(ctx context.Context, subscriptionID string) (Lease, error)
}

// Core manages the set of APIs for lease access.
type Core struct {
	storer Storer
}

// NewCore constructs a lease core API for use.
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

// Create adds a new lease to the system in DRAFT status.
func (c *Core) Create(ctx context.Context, nl NewLease) (Lease, error) {
	ctx, span := otel.AddSpan(ctx, "business.leasebus.create")
	defer span.End()

	if !nl.StartDate.Before(nl.EndDate) {
		return Lease{}, ErrInvalidDates
	}

	now := time.Now()

	lse := Lease{
		ID:              uuid.New(),
		TenantID:        nl.TenantID,
		PropertyID:      nl.PropertyID,
		UnitID:          nl.UnitID,
		RentAmount:      nl.RentAmount,
		SecurityDeposit: nl.SecurityDeposit,
		StartDate:       nl.StartDate,
		EndDate:         nl.EndDate,
		Status:          leasestatus.Draft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := c.storer.Create(ctx, lse); err != nil {
		return Lease{}, fmt.Errorf("create: %w", err)
	}

	return lse, nil
}

// Update modifies information about a lease. Status changes are validated
// against the lease lifecycle.
func (c *Core) Update(ctx context.Context, lse Lease, ul UpdateLease) (Lease, error) {
	ctx, span := otel.AddSpan(ctx, "business.leasebus.update")
	defer span.End()

	if ul.RentAmount != nil {
		lse.RentAmount = *ul.RentAmount
	}

	if ul.SecurityDeposit != nil {
		lse.SecurityDeposit = *ul.SecurityDeposit
	}

	if ul.StartDate != nil {
		lse.StartDate = *ul.StartDate
	}

	if ul.EndDate != nil {
		lse.EndDate = *ul.EndDate
	}

	if !lse.StartDate.Before(lse.EndDate) {
		return Lease{}, ErrInvalidDates
	}

	if ul.Status != nil {
		if err := statusMachine.Check(ctx, lse.Status.String(), ul.Status.String()); err != nil {
			return Lease{}, fmt.Errorf("status: %w", err)
		}
		lse.Status = *ul.Status
	}

	lse.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, lse); err != nil {
		return Lease{}, fmt.Errorf("update: %w", err)
	}

	return lse, nil
}

// Delete removes the specified lease.
func (c *Core) Delete(ctx context.Context, lse Lease) error {
	ctx, span := otel.AddSpan(ctx, "business.leasebus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, lse); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing leases.
func (c *Core) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Lease, error) {
	ctx, span := otel.AddSpan(ctx, "business.leasebus.query")
	defer span.End()

	lses, err := c.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return lses, nil
}

// Count returns the total number of leases.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.leasebus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}

// QueryByID finds the lease by the specified ID.
func (c *Core) QueryByID(ctx context.Context, leaseID uuid.UUID) (Lease, error) {
	ctx, span := otel.AddSpan(ctx, "business.leasebus.querybyid")
	defer span.End()

	lse, err := c.storer.QueryByID(ctx, leaseID)
	if err != nil {
		return Lease{}, fmt.Errorf("query: leaseID[%s]: %w", leaseID, err)
	}

	return lse, nil
}

// QueryByStripeSubscription finds the lease carrying the specified Stripe
// subscription.
func (c *Core) QueryByStripeSubscription(ctx context.Context, subscriptionID string) (Lease, error) {
	ctx, span := otel.AddSpan(ctx, "business.leasebus.querybystripesubscription")
	defer span.End()

	lse, err := c.storer.QueryByStripeSubscription(ctx, subscriptionID)
	if err != nil {
		return Lease{}, fmt.Errorf("query: subscriptionID[%s]: %w", subscriptionID, err)
	}

	return lse, nil
}

// SetStripeSubscription records the Stripe subscription billing the lease.
func (c *Core) SetStripeSubscription(ctx context.Context, lse Lease, subscriptionID string) (Lease, error) {
	ctx, span := otel.AddSpan(ctx, "business.leasebus.setstripesubscription")
	defer span.End()

	lse.StripeSubscriptionID.String = subscriptionID
	lse.StripeSubscriptionID.Valid = subscriptionID != ""
	lse.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, lse); err != nil {
		return Lease{}, fmt.Errorf("update: %w", err)
	}

	return lse, nil
}

// Activate moves a DRAFT lease to ACTIVE. A lease cannot activate while
// another active lease on the same property and unit overlaps its dates.
func (c *Core) Activate(ctx context.Context, lse Lease) (Lease, error) {
	ctx, span := otel.AddSpan(ctx, "business.leasebus.activate")
	defer span.End()

	if err := statusMachine.Check(ctx, lse.Status.String(), leasestatus.Active.String()); err != nil {
		return Lease{}, fmt.Errorf("status: %w", err)
	}

	if err := c.checkOverlap(ctx, lse); err != nil {
		return Lease{}, err
	}

	lse.Status = leasestatus.Active
	lse.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, lse); err != nil {
		return Lease{}, fmt.Errorf("update: %w", err)
	}

	return lse, nil
}

// checkOverlap rejects activation when another active lease on the same
// property covers any of the candidate's date range. A lease with no unit
// covers the whole property, so it conflicts with every unit.
func (c *Core) checkOverlap(ctx context.Context, lse Lease) error {
	active := leasestatus.Active

	filter := QueryFilter{
		PropertyID: &lse.PropertyID,
		Status:     &active,
	}

	others, err := c.storer.Query(ctx, filter, DefaultOrderBy, page.MustParse("1", "100"))
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}

	for _, other := range others {
		if other.ID == lse.ID {
			continue
		}

		sameUnit := !lse.UnitID.Valid || !other.UnitID.Valid || lse.UnitID.UUID == other.UnitID.UUID
		overlaps := lse.StartDate.Before(other.EndDate) && other.StartDate.Before(lse.EndDate)

		if sameUnit && overlaps {
			return ErrDateOverlap
		}
	}

	return nil
}

// Terminate ends the lease ahead of its end date.
func (c *Core) Terminate(ctx context.Context, lse Lease) (Lease, error) {
	ctx, span := otel.AddSpan(ctx, "business.leasebus.terminate")
	defer span.End()

	if err := statusMachine.Check(ctx, lse.Status.String(), leasestatus.Terminated.String()); err != nil {
		return Lease{}, fmt.Errorf("status: %w", err)
	}

	lse.Status = leasestatus.Terminated
	lse.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, lse); err != nil {
		return Lease{}, fmt.Errorf("update: %w", err)
	}

	return lse, nil
}
