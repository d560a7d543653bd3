// Package maintenancebus provides business access to maintenance request
// domain.
package maintenancebus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/sdk/delegate"
	"github.com/hudsor01/tenantflow/business/sdk/lifecycle"
	"github.com/hudsor01/tenantflow/business/sdk/order"
	"github.com/hudsor01/tenantflow/business/sdk/page"
	"github.com/hudsor01/tenantflow/business/sdk/sqldb"
	"github.com/hudsor01/tenantflow/business/types/maintstatus"
	"github.com/hudsor01/tenantflow/foundation/otel"
)

// The set of errors for the maintenance api.
var (
	ErrNotFound          = errors.New("maintenance request not found")
	ErrInvalidTransition = lifecycle.ErrInvalidTransition
)

// statusMachine declares the legal maintenance request status changes.
// COMPLETED and CANCELED are terminal.
var statusMachine = lifecycle.New([]lifecycle.Transition{
	{Src: maintstatus.Open.String(), Dst: maintstatus.InProgress.String()},
	{Src: maintstatus.Open.String(), Dst: maintstatus.Canceled.String()},
	{Src: maintstatus.InProgress.String(), Dst: maintstatus.Completed.String()},
	{Src: maintstatus.InProgress.String(), Dst: maintstatus.Canceled.String()},
})

// Storer interface declares the behavior this package needs to persist and
// retrieve data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, req Request) error
	Update(ctx context.Context, req Request) error
	Delete(ctx context.Context, req Request) error
	Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Request, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, requestID uuid.UUID) (Request, error)
}

// Core manages the set of APIs for maintenance request access.
type Core struct {
	storer   Storer
	delegate *delegate.Delegate
}

// NewCore constructs a maintenance core API for use.
func NewCore(delegate *delegate.Delegate, storer Storer) *Core {
	return &Core{
		storer:   storer,
		delegate: delegate,
	}
}

// NewWithTx constructs a new core value that will use the specified
// transaction in any store related calls.
func (c *Core) NewWithTx(tx sqldb.CommitRollbacker) (*Core, error) {
	storer, err := c.storer.NewWithTx(tx)
	if err != nil {
		return nil, err
	}

	core := Core{
		storer:   storer,
		delegate: c.delegate,
	}

	return &core, nil
}

// Create adds a new maintenance request to the system in OPEN status and
// notifies interested domains.
func (c *Core) Create(ctx context.Context, nr NewRequest) (Request, error) {
	ctx, span := otel.AddSpan(ctx, "business.maintenancebus.create")
	defer span.End()

	now := time.Now()

	req := Request{
		ID:          uuid.New(),
		PropertyID:  nr.PropertyID,
		TenantID:    nr.TenantID,
		Title:       nr.Title,
		Description: nr.Description,
		Priority:    nr.Priority,
		Status:      maintstatus.Open,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storer.Create(ctx, req); err != nil {
		return Request{}, fmt.Errorf("create: %w", err)
	}

	if err := c.delegate.Call(ctx, ActionCreatedData(req)); err != nil {
		return Request{}, fmt.Errorf("delegate call: %w", err)
	}

	return req, nil
}

// Update modifies information about a maintenance request. Status changes
// are validated against the request lifecycle and broadcast on success.
func (c *Core) Update(ctx context.Context, req Request, ur UpdateRequest) (Request, error) {
	ctx, span := otel.AddSpan(ctx, "business.maintenancebus.update")
	defer span.End()

	statusChanged := false

	if ur.Title != nil {
		req.Title = *ur.Title
	}

	if ur.Description != nil {
		req.Description = *ur.Description
	}

	if ur.Priority != nil {
		req.Priority = *ur.Priority
	}

	if ur.Status != nil {
		if err := statusMachine.Check(ctx, req.Status.String(), ur.Status.String()); err != nil {
			return Request{}, fmt.Errorf("status: %w", err)
		}
		statusChanged = !req.Status.Equal(*ur.Status)
		req.Status = *ur.Status
	}

	req.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, req); err != nil {
		return Request{}, fmt.Errorf("update: %w", err)
	}

	if statusChanged {
		if err := c.delegate.Call(ctx, ActionStatusChangedData(req)); err != nil {
			return Request{}, fmt.Errorf("delegate call: %w", err)
		}
	}

	return req, nil
}

// Delete removes the specified maintenance request.
func (c *Core) Delete(ctx context.Context, req Request) error {
	ctx, span := otel.AddSpan(ctx, "business.maintenancebus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, req); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing maintenance requests.
func (c *Core) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Request, error) {
	ctx, span := otel.AddSpan(ctx, "business.maintenancebus.query")
	defer span.End()

	reqs, err := c.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return reqs, nil
}

// Count returns the total number of maintenance requests.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.maintenancebus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}

// QueryByID finds the maintenance request by the specified ID.
func (c *Core) QueryByID(ctx context.Context, requestID uuid.UUID) (Request, error) {
	ctx, span := otel.AddSpan(ctx, "business.maintenancebus.querybyid")
	defer span.End()

	req, err := c.storer.QueryByID(ctx, requestID)
	if err != nil {
		return Request{}, fmt.Errorf("query: requestID[%s]: %w", requestID, err)
	}

	return req, nil
}
