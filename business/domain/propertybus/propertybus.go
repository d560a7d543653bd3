// Package propertybus provides business access to property domain.
package propertybus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/sdk/order"
	"github.com/hudsor01/tenantflow/business/sdk/page"
	"github.com/hudsor01/tenantflow/business/sdk/sqldb"
	"github.com/hudsor01/tenantflow/foundation/otel"
)

// ErrNotFound is returned when a property is not found.
var ErrNotFound = errors.New("property not found")

// Storer interface declares the behavior this package needs to persist and
// retrieve data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, prp Property) error
	Update(ctx context.Context, prp Property) error
	Delete(ctx context.Context, prp Property) error
	Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Property, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, propertyID uuid.UUID) (Property, error)
}

// Core manages the set of APIs for property access.
type Core struct {
	storer Storer
}

// NewCore constructs a property core API for use.
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

// Create adds a new property to the system.
func (c *Core) Create(ctx context.Context, np NewProperty) (Property, error) {
	ctx, span := otel.AddSpan(ctx, "business.propertybus.create")
	defer span.End()

	now := time.Now()

	prp := Property{
		ID:           uuid.New(),
		OwnerID:      np.OwnerID,
		Name:         np.Name,
		AddressLine1: np.AddressLine1,
		AddressLine2: np.AddressLine2,
		City:         np.City,
		State:        np.State,
		PostalCode:   np.PostalCode,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := c.storer.Create(ctx, prp); err != nil {
		return Property{}, fmt.Errorf("create: %w", err)
	}

	return prp, nil
}

// Update modifies information about a property.
func (c *Core) Update(ctx context.Context, prp Property, up UpdateProperty) (Property, error) {
	ctx, span := otel.AddSpan(ctx, "business.propertybus.update")
	defer span.End()

	if up.Name != nil {
		prp.Name = *up.Name
	}

	if up.AddressLine1 != nil {
		prp.AddressLine1 = *up.AddressLine1
	}

	if up.AddressLine2 != nil {
		prp.AddressLine2 = *up.AddressLine2
	}

	if up.City != nil {
		prp.City = *up.City
	}

	if up.State != nil {
		prp.State = *up.State
	}

	if up.PostalCode != nil {
		prp.PostalCode = *up.PostalCode
	}

	prp.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, prp); err != nil {
		return Property{}, fmt.Errorf("update: %w", err)
	}

	return prp, nil
}

// Delete removes the specified property.
func (c *Core) Delete(ctx context.Context, prp Property) error {
	ctx, span := otel.AddSpan(ctx, "business.propertybus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, prp); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing properties.
func (c *Core) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Property, error) {
	ctx, span := otel.AddSpan(ctx, "business.propertybus.query")
	defer span.End()

	prps, err := c.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return prps, nil
}

// Count returns the total number of properties.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.propertybus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}

// QueryByID finds the property by the specified ID.
func (c *Core) QueryByID(ctx context.Context, propertyID uuid.UUID) (Property, error) {
	ctx, span := otel.AddSpan(ctx, "business.propertybus.querybyid")
	defer span.End()

	prp, err := c.storer.QueryByID(ctx, propertyID)
	if err != nil {
		return Property{}, fmt.Errorf("query: propertyID[%s]: %w", propertyID, err)
	}

	return prp, nil
}
