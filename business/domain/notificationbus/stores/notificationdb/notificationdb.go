// Package notificationdb contains notification related CRUD functionality.
package notificationdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/domain/notificationbus"
	"github.com/hudsor01/tenantflow/business/sdk/order"
	"github.com/hudsor01/tenantflow/business/sdk/page"
	"github.com/hudsor01/tenantflow/business/sdk/sqldb"
	"github.com/hudsor01/tenantflow/foundation/logger"
	"github.com/jmoiron/sqlx"
)

// Store manages the set of APIs for notification database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (notificationbus.Storer, error) {
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

// Create inserts a new notification into the database.
func (s *Store) Create(ctx context.Context, ntf notificationbus.Notification) error {
	const q = `
	INSERT INTO notification
		(notification_id, user_id, ntype, title, body, is_read, created_at)
	VALUES
		(:notification_id, :user_id, :ntype, :title, :body, :is_read, :created_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBNotification(ntf)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a notification document in the database.
func (s *Store) Update(ctx context.Context, ntf notificationbus.Notification) error {
	const q = `
	UPDATE
		notification
	SET
		is_read = :is_read
	WHERE
		notification_id = :notification_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBNotification(ntf)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes a notification from the database.
func (s *Store) Delete(ctx context.Context, ntf notificationbus.Notification) error {
	const q = `
	DELETE FROM
		notification
	WHERE
		notification_id = :notification_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBNotification(ntf)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves a list of existing notifications from the database.
func (s *Store) Query(ctx context.Context, filter notificationbus.QueryFilter, orderBy order.By, page page.Page) ([]notificationbus.Notification, error) {
	data := map[string]any{
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		notification_id, user_id, ntype, title, body, is_read, created_at
	FROM
		notification`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)

	orderByClause, err := orderByClause(orderBy)
	if err != nil {
		return nil, err
	}

	buf.WriteString(orderByClause)
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbNtfs []notificationDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbNtfs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusNotifications(dbNtfs)
}

// Count returns the total number of notifications in the DB.
func (s *Store) Count(ctx context.Context, filter notificationbus.QueryFilter) (int, error) {
	data := map[string]any{}

	const q = `
	SELECT
		count(1)
	FROM
		notification`

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

// QueryByID gets the specified notification from the database.
func (s *Store) QueryByID(ctx context.Context, notificationID uuid.UUID) (notificationbus.Notification, error) {
	data := struct {
		ID string `db:"notification_id"`
	}{
		ID: notificationID.String(),
	}

	const q = `
	SELECT
		notification_id, user_id, ntype, title, body, is_read, created_at
	FROM
		notification
	WHERE
		notification_id = :notification_id`

	var dbNtf notificationDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbNtf); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return notificationbus.Notification{}, fmt.Errorf("db: %w", notificationbus.ErrNotFound)
		}
		return notificationbus.Notification{}, fmt.Errorf("db: %w", err)
	}

	return toBusNotification(dbNtf)
}
