// Package tenantdb contains tenant related CRUD functionality.
package tenantdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/domain/tenantbus"
	"github.com/hudsor01/tenantflow/business/sdk/order"
	"github.com/hudsor01/tenantflow/business/sdk/page"
	"github.com/hudsor01/tenantflow/business/sdk/sqldb"
	"github.com/hudsor01/tenantflow/foundation/logger"
	"github.com/jmoiron/sqlx"
)

// Store manages the set of APIs for tenant database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (tenantbus.Storer, error) {
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

// Create inserts a new tenant into the database.
func (s *Store) Create(ctx context.Context, tnt tenantbus.Tenant) error {
	const q = `
	INSERT INTO tenant
		(tenant_id, owner_id, email, first_name, last_name, phone, status, invitation_status, invitation_sent_at, auth_user_id, stripe_customer_id, created_at, updated_at)
	VALUES
		(:tenant_id, :owner_id, :email, :first_name, :last_name, :phone, :status, :invitation_status, :invitation_sent_at, :auth_user_id, :stripe_customer_id, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBTenant(tnt)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", tenantbus.ErrUniqueEmail)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a tenant document in the database.
func (s *Store) Update(ctx context.Context, tnt tenantbus.Tenant) error {
	const q = `
	UPDATE
		tenant
	SET
		email = :email,
		first_name = :first_name,
		last_name = :last_name,
		phone = :phone,
		status = :status,
		invitation_status = :invitation_status,
		invitation_sent_at = :invitation_sent_at,
		auth_user_id = :auth_user_id,
		stripe_customer_id = :stripe_customer_id,
		updated_at = :updated_at
	WHERE
		tenant_id = :tenant_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBTenant(tnt)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return tenantbus.ErrUniqueEmail
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes a tenant from the database.
func (s *Store) Delete(ctx context.Context, tnt tenantbus.Tenant) error {
	const q = `
	DELETE FROM
		tenant
	WHERE
		tenant_id = :tenant_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBTenant(tnt)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves a list of existing tenants from the database.
func (s *Store) Query(ctx context.Context, filter tenantbus.QueryFilter, orderBy order.By, page page.Page) ([]tenantbus.Tenant, error) {
	data := map[string]any{
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		tenant_id, owner_id, email, first_name, last_name, phone, status, invitation_status, invitation_sent_at, auth_user_id, stripe_customer_id, created_at, updated_at
	FROM
		tenant`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)

	orderByClause, err := orderByClause(orderBy)
	if err != nil {
		return nil, err
	}

	buf.WriteString(orderByClause)
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbTnts []tenantDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbTnts); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusTenants(dbTnts)
}

// Count returns the total number of tenants in the DB.
func (s *Store) Count(ctx context.Context, filter tenantbus.QueryFilter) (int, error) {
	data := map[string]any{}

	const q = `
	SELECT
		count(1)
	FROM
		tenant`

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

// QueryByID gets the specified tenant from the database.
func (s *Store) QueryByID(ctx context.Context, tenantID uuid.UUID) (tenantbus.Tenant, error) {
	data := struct {
		ID string `db:"tenant_id"`
	}{
		ID: tenantID.String(),
	}

	const q = `
	SELECT
		tenant_id, owner_id, email, first_name, last_name, phone, status, invitation_status, invitation_sent_at, auth_user_id, stripe_customer_id, created_at, updated_at
	FROM
		tenant
	WHERE
		tenant_id = :tenant_id`

	var dbTnt tenantDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbTnt); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return tenantbus.Tenant{}, fmt.Errorf("db: %w", tenantbus.ErrNotFound)
		}
		return tenantbus.Tenant{}, fmt.Errorf("db: %w", err)
	}

	return toBusTenant(dbTnt)
}

// QueryByEmail gets the specified tenant from the database by email.
func (s *Store) QueryByEmail(ctx context.Context, email mail.Address) (tenantbus.Tenant, error) {
	data := struct {
		Email string `db:"email"`
	}{
		Email: email.Address,
	}

	const q = `
	SELECT
		tenant_id, owner_id, email, first_name, last_name, phone, status, invitation_status, invitation_sent_at, auth_user_id, stripe_customer_id, created_at, updated_at
	FROM
		tenant
	WHERE
		email = :email`

	var dbTnt tenantDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbTnt); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return tenantbus.Tenant{}, fmt.Errorf("db: %w", tenantbus.ErrNotFound)
		}
		return tenantbus.Tenant{}, fmt.Errorf("db: %w", err)
	}

	return toBusTenant(dbTnt)
}
