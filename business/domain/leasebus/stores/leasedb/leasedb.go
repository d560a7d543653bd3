// Package leasedb contains lease related CRUD functionality.
package leasedb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/domain/leasebus"
	"github.com/hudsor01/tenantflow/business/sdk/order"
	"github.com/hudsor01/tenantflow/business/sdk/page"
	"github.com/hudsor01/tenantflow/business/sdk/sqldb"
	"github.com/hudsor01/tenantflow/foundation/logger"
	"github.com/jmoiron/sqlx"
)

// Store manages the set of APIs for lease database access.
type Store struct {
	log *logger.Logger
	db  sqlx.ExtContext
}

// NewStore constructs the api for data access.
func NewStore(log *logger.Logger, db *sqlx.DB) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

// NewWithTx constructs a new Store value replacing the sqlx DB
// value with a sqlx DB value that is currently inside a transaction.
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (leasebus.Storer, error) {
	ec, err := sqldb.GetExtContext(tx)
	if err != nil {
		return nil, err
	}

	store := Store{
		log: s.log,
		db:  ec,
	}

	return &store, nil
}

// Create inserts a new lease into the database.
func (s *Store) Create(ctx context.Context, lse leasebus.Lease) error {
	const q = `
	INSERT INTO lease
		(lease_id, tenant_id, property_id, unit_id, rent_amount, security_deposit, start_date, end_date, status, stripe_subscription_id, created_at, updated_at)
	VALUES
		(:lease_id, :tenant_id, :property_id, :unit_id, :rent_amount, :security_deposit, :start_date, :end_date, :status, :stripe_subscription_id, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBLease(lse)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a lease document in the database.
func (s *Store) Update(ctx context.Context, lse leasebus.Lease) error {
	const q = `
	UPDATE
		lease
	SET
		rent_amount = :rent_amount,
		security_deposit = :security_deposit,
		start_date = :start_date,
		end_date = :end_date,
		status = :status,
		stripe_subscription_id = :stripe_subscription_id,
		updated_at = :updated_at
	WHERE
		lease_id = :lease_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBLease(lse)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes a lease from the database.
func (s *Store) Delete(ctx context.Context, lse leasebus.Lease) error {
	const q = `
	DELETE FROM
		lease
	WHERE
		lease_id = :lease_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBLease(lse)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves a list of existing leases from the database.
func (s *Store) Query(ctx context.Context, filter leasebus.QueryFilter, orderBy order.By, page page.Page) ([]leasebus.Lease, error) {
	data := map[string]any{
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		lease_id, tenant_id, property_id, unit_id, rent_amount, security_deposit, start_date, end_date, status, stripe_subscription_id, created_at, updated_at
	FROM
		lease`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)

	orderByClause, err := orderByClause(orderBy)
	if err != nil {
		return nil, err
	}

	buf.WriteString(orderByClause)
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbLses []leaseDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbLses); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusLeases(dbLses)
}

// Count returns the total number of leases in the DB.
func (s *Store) Count(ctx context.Context, filter leasebus.QueryFilter) (int, error) {
	data := map[string]any{}

	const q = `
	SELECT
		count(1)
	FROM
		lease`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)

	var count struct {
		Count int `db:"count"`
	}
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, buf.String(), data, &count); err != nil {
		return 0, fmt.Errorf("db: %w", err)
	}

	return count.Count, nil
}

// QueryByID gets the specified lease from the database.
func (s *Store) QueryByID(ctx context.Context, leaseID uuid.UUID) (leasebus.Lease, error) {
	data := struct {
		ID string `db:"lease_id"`
	}{
		ID: leaseID.String(),
	}

	const q = `
	SELECT
		lease_id, tenant_id, property_id, unit_id, rent_amount, security_deposit, start_date, end_date, status, stripe_subscription_id, created_at, updated_at
	FROM
		lease
	WHERE
		lease_id = :lease_id`

	var dbLse leaseDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbLse); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return leasebus.Lease{}, fmt.Errorf("db: %w", leasebus.ErrNotFound)
		}
		return leasebus.Lease{}, fmt.Errorf("db: %w", err)
	}

	return toBusLease(dbLse)
}

// QueryByStripeSubscription gets the lease carrying the specified Stripe
// subscription.
func (s *Store) QueryByStripeSubscription(ctx context.Context, subscriptionID string) (leasebus.Lease, error) {
	data := struct {
		ID string `db:"stripe_subscription_id"`
	}{
		ID: subscriptionID,
	}

	const q = `
	SELECT
		lease_id, tenant_id, property_id, unit_id, rent_amount, security_deposit, start_date, end_date, status, stripe_subscription_id, created_at, updated_at
	FROM
		lease
	WHERE
		stripe_subscription_id = :stripe_subscription_id`

	var dbLse leaseDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbLse); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return leasebus.Lease{}, fmt.Errorf("db: %w", leasebus.ErrNotFound)
		}
		return leasebus.Lease{}, fmt.Errorf("db: %w", err)
	}

	return toBusLease(dbLse)
}
