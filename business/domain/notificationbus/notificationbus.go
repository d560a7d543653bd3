// Package notificationbus provides business access to notification domain.
// Notifications are produced directly or by listening to events from other
// domains through the delegate.
package notificationbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/domain/maintenancebus"
	"github.com/hudsor01/tenantflow/business/sdk/delegate"
	"github.com/hudsor01/tenantflow/business/sdk/order"
	"github.com/hudsor01/tenantflow/business/sdk/page"
	"github.com/hudsor01/tenantflow/business/sdk/sqldb"
	"github.com/hudsor01/tenantflow/business/types/notifytype"
	"github.com/hudsor01/tenantflow/foundation/otel"
)

// ErrNotFound is returned when a notification is not found.
var ErrNotFound = errors.New("notification not found")

// Storer interface declares the behavior this package needs to persist and
// retrieve data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, ntf Notification) error
	Update(ctx context.Context, ntf Notification) error
	Delete(ctx context.Context, ntf Notification) error
	Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Notification, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, notificationID uuid.UUID) (Notification, error)
}

// OwnerLookup finds the owner that should receive a notification for a
// property.
type OwnerLookup interface {
	QueryOwnerID(ctx context.Context, propertyID uuid.UUID) (uuid.UUID, error)
}

// Core manages the set of APIs for notification access.
type Core struct {
	storer Storer
	owners OwnerLookup
}

// NewCore constructs a notification core API for use. It registers for the
// maintenance domain events so request activity produces notifications.
func NewCore(dlg *delegate.Delegate, owners OwnerLookup, storer Storer) *Core {
	c := Core{
		storer: storer,
		owners: owners,
	}

	dlg.Register(maintenancebus.DomainName, maintenancebus.ActionCreated, c.onMaintenanceEvent)
	dlg.Register(maintenancebus.DomainName, maintenancebus.ActionStatusChanged, c.onMaintenanceEvent)

	return &c
}

// NewWithTx constructs a new core value that will use the specified
// transaction in any store related calls.
func (c *Core) NewWithTx(tx sqldb.CommitRollbacker) (*Core, error) {
	storer, err := c.storer.NewWithTx(tx)
	if err != nil {
		return nil, err
	}

	core := Core{
		storer: storer,
		owners: c.owners,
	}

	return &core, nil
}

// Create adds a new notification to the system.
func (c *Core) Create(ctx context.Context, nn NewNotification) (Notification, error) {
	ctx, span := otel.AddSpan(ctx, "business.notificationbus.create")
	defer span.End()

	ntf := Notification{
		ID:        uuid.New(),
		UserID:    nn.UserID,
		Type:      nn.Type,
		Title:     nn.Title,
		Body:      nn.Body,
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	if err := c.storer.Create(ctx, ntf); err != nil {
		return Notification{}, fmt.Errorf("create: %w", err)
	}

	return ntf, nil
}

// MarkRead flags the notification as read.
func (c *Core) MarkRead(ctx context.Context, ntf Notification) (Notification, error) {
	ctx, span := otel.AddSpan(ctx, "business.notificationbus.markread")
	defer span.End()

	ntf.IsRead = true

	if err := c.storer.Update(ctx, ntf); err != nil {
		return Notification{}, fmt.Errorf("update: %w", err)
	}

	return ntf, nil
}

// Delete removes the specified notification.
func (c *Core) Delete(ctx context.Context, ntf Notification) error {
	ctx, span := otel.AddSpan(ctx, "business.notificationbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, ntf); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing notifications.
func (c *Core) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Notification, error) {
	ctx, span := otel.AddSpan(ctx, "business.notificationbus.query")
	defer span.End()

	ntfs, err := c.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return ntfs, nil
}

// Count returns the total number of notifications.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.notificationbus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}

// QueryByID finds the notification by the specified ID.
func (c *Core) QueryByID(ctx context.Context, notificationID uuid.UUID) (Notification, error) {
	ctx, span := otel.AddSpan(ctx, "business.notificationbus.querybyid")
	defer span.End()

	ntf, err := c.storer.QueryByID(ctx, notificationID)
	if err != nil {
		return Notification{}, fmt.Errorf("query: notificationID[%s]: %w", notificationID, err)
	}

	return ntf, nil
}

// onMaintenanceEvent turns maintenance request activity into a notification
// for the property owner.
func (c *Core) onMaintenanceEvent(ctx context.Context, data delegate.Data) error {
	var params maintenancebus.EventParams
	if err := json.Unmarshal(data.RawParams, &params); err != nil {
		return fmt.Errorf("expected an encoded %T: %w", params, err)
	}

	ownerID, err := c.owners.QueryOwnerID(ctx, params.PropertyID)
	if err != nil {
		return fmt.Errorf("query owner: propertyID[%s]: %w", params.PropertyID, err)
	}

	nn := NewNotification{
		UserID: ownerID,
		Type:   notifytype.Maintenance,
		Title:  fmt.Sprintf("Maintenance request %s", data.Action),
		Body:   fmt.Sprintf("%s is now %s (priority %s)", params.Title, params.Status, params.Priority),
	}

	if _, err := c.Create(ctx, nn); err != nil {
		return fmt.Errorf("create: %w", err)
	}

	return nil
}
