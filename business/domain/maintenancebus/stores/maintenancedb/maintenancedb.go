// Package maintenancedb contains maintenance request related CRUD
// functionality.
package maintenancedb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/domain/maintenancebus"
	"github.com/hudsor01/tenantflow/business/sdk/order"
	"github.com/hudsor01/tenantflow/business/sdk/page"
	"github.com/hudsor01/tenantflow/business/sdk/sqldb"
	"github.com/hudsor01/tenantflow/foundation/logger"
	"github.com/jmoiron/sqlx"
)

// Store manages the set of APIs for maintenance request database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (maintenancebus.Storer, error) {
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

// Create inserts a new maintenance request into the database.
func (s *Store) Create(ctx context.Context, req maintenancebus.Request) error {
	const q = `
	INSERT INTO maintenance_request
		(request_id, property_id, tenant_id, title, description, priority, status, created_at, updated_at)
	VALUES
		(:request_id, :property_id, :tenant_id, :title, :description, :priority, :status, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBRequest(req)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a maintenance request document in the database.
func (s *Store) Update(ctx context.Context, req maintenancebus.Request) error {
	const q = `
	UPDATE
		maintenance_request
	SET
		title = :title,
		description = :description,
		priority = :priority,
		status = :status,
		updated_at = :updated_at
	WHERE
		request_id = :request_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBRequest(req)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes a maintenance request from the database.
func (s *Store) Delete(ctx context.Context, req maintenancebus.Request) error {
	const q = `
	DELETE FROM
		maintenance_request
	WHERE
		request_id = :request_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBRequest(req)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves a list of existing maintenance requests from the database.
func (s *Store) Query(ctx context.Context, filter maintenancebus.QueryFilter, orderBy order.By, page page.Page) ([]maintenancebus.Request, error) {
	data := map[string]any{
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		request_id, property_id, tenant_id, title, description, priority, status, created_at, updated_at
	FROM
		maintenance_request`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)

	orderByClause, err := orderByClause(orderBy)
	if err != nil {
		return nil, err
	}

	buf.WriteString(orderByClause)
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbReqs []requestDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbReqs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusRequests(dbReqs)
}

// Count returns the total number of maintenance requests in the DB.
func (s *Store) Count(ctx context.Context, filter maintenancebus.QueryFilter) (int, error) {
	data := map[string]any{}

	const q = `
	SELECT
		count(1)
	FROM
		maintenance_request`

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

// QueryByID gets the specified maintenance request from the database.
func (s *Store) QueryByID(ctx context.Context, requestID uuid.UUID) (maintenancebus.Request, error) {
	data := struct {
		ID string `db:"request_id"`
	}{
		ID: requestID.String(),
	}

	const q = `
	SELECT
		request_id, property_id, tenant_id, title, description, priority, status, created_at, updated_at
	FROM
		maintenance_request
	WHERE
		request_id = :request_id`

	var dbReq requestDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbReq); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return maintenancebus.Request{}, fmt.Errorf("db: %w", maintenancebus.ErrNotFound)
		}
		return maintenancebus.Request{}, fmt.Errorf("db: %w", err)
	}

	return toBusRequest(dbReq)
}
