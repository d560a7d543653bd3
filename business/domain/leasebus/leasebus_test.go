package leasebus_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/domain/leasebus"
	"github.com/hudsor01/tenantflow/business/sdk/order"
	"github.com/hudsor01/tenantflow/business/sdk/page"
	"github.com/hudsor01/tenantflow/business/sdk/sqldb"
	"github.com/hudsor01/tenantflow/business/types/leasestatus"
	"github.com/hudsor01/tenantflow/business/types/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	leases map[uuid.UUID]leasebus.Lease
}

func newMemStore() *memStore {
	return &memStore{leases: make(map[uuid.UUID]leasebus.Lease)}
}

func (s *memStore) NewWithTx(tx sqldb.CommitRollbacker) (leasebus.Storer, error) {
	return s, nil
}

func (s *memStore) Create(_ context.Context, lse leasebus.Lease) error {
	s.leases[lse.ID] = lse
	return nil
}

func (s *memStore) Update(_ context.Context, lse leasebus.Lease) error {
	if _, exists := s.leases[lse.ID]; !exists {
		return leasebus.ErrNotFound
	}
	s.leases[lse.ID] = lse
	return nil
}

func (s *memStore) Delete(_ context.Context, lse leasebus.Lease) error {
	delete(s.leases, lse.ID)
	return nil
}

func (s *memStore) Query(_ context.Context, filter leasebus.QueryFilter, _ order.By, _ page.Page) ([]leasebus.Lease, error) {
	lses := make([]leasebus.Lease, 0, len(s.leases))
	for _, lse := range s.leases {
		if filter.PropertyID != nil && lse.PropertyID != *filter.PropertyID {
			continue
		}
		if filter.Status != nil && !lse.Status.Equal(*filter.Status) {
			continue
		}
		lses = append(lses, lse)
	}
	return lses, nil
}

func (s *memStore) Count(_ context.Context, _ leasebus.QueryFilter) (int, error) {
	return len(s.leases), nil
}

func (s *memStore) QueryByID(_ context.Context, leaseID uuid.UUID) (leasebus.Lease, error) {
	lse, exists := s.leases[leaseID]
	if !exists {
		return leasebus.Lease{}, leasebus.ErrNotFound
	}
	return lse, nil
}

func (s *memStore) QueryByStripeSubscription(_ context.Context, subscriptionID string) (leasebus.Lease, error) {
	for _, lse := range s.leases {
		if lse.StripeSubscriptionID.Valid && lse.StripeSubscriptionID.String == subscriptionID {
			return lse, nil
		}
	}
	return leasebus.Lease{}, leasebus.ErrNotFound
}

// =============================================================================

func newLease() leasebus.NewLease {
	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	return leasebus.NewLease{
		TenantID:        uuid.New(),
		PropertyID:      uuid.New(),
		RentAmount:      money.MustParse(185000),
		SecurityDeposit: money.MustParse(185000),
		StartDate:       start,
		EndDate:         start.AddDate(1, 0, 0),
	}
}

func Test_Create(t *testing.T) {
	core := leasebus.NewCore(newMemStore())

	lse, err := core.Create(context.Background(), newLease())
	require.NoError(t, err)

	assert.True(t, lse.Status.Equal(leasestatus.Draft))
	assert.False(t, lse.StripeSubscriptionID.Valid)
}

func Test_Create_InvalidDates(t *testing.T) {
	core := leasebus.NewCore(newMemStore())

	nl := newLease()
	nl.EndDate = nl.StartDate

	_, err := core.Create(context.Background(), nl)
	require.ErrorIs(t, err, leasebus.ErrInvalidDates)
}

func Test_StatusTransitions(t *testing.T) {
	core := leasebus.NewCore(newMemStore())
	ctx := context.Background()

	lse, err := core.Create(ctx, newLease())
	require.NoError(t, err)

	// DRAFT does not expire, it activates or terminates.
	expired := leasestatus.Expired
	_, err = core.Update(ctx, lse, leasebus.UpdateLease{Status: &expired})
	require.ErrorIs(t, err, leasebus.ErrInvalidTransition)

	lse, err = core.Activate(ctx, lse)
	require.NoError(t, err)
	assert.True(t, lse.Status.Equal(leasestatus.Active))

	lse, err = core.Terminate(ctx, lse)
	require.NoError(t, err)
	assert.True(t, lse.Status.Equal(leasestatus.Terminated))

	// Terminated is terminal.
	_, err = core.Activate(ctx, lse)
	require.ErrorIs(t, err, leasebus.ErrInvalidTransition)
}

func Test_Activate_RejectsOverlap(t *testing.T) {
	core := leasebus.NewCore(newMemStore())
	ctx := context.Background()

	nl := newLease()

	first, err := core.Create(ctx, nl)
	require.NoError(t, err)

	_, err = core.Activate(ctx, first)
	require.NoError(t, err)

	// Second lease on the same property, dates inside the first one's term.
	nl2 := nl
	nl2.TenantID = uuid.New()
	nl2.StartDate = nl.StartDate.AddDate(0, 3, 0)
	nl2.EndDate = nl.StartDate.AddDate(0, 9, 0)

	second, err := core.Create(ctx, nl2)
	require.NoError(t, err)

	_, err = core.Activate(ctx, second)
	require.ErrorIs(t, err, leasebus.ErrDateOverlap)

	// A lease starting after the first one ends activates fine.
	nl3 := nl
	nl3.TenantID = uuid.New()
	nl3.StartDate = nl.EndDate.AddDate(0, 0, 1)
	nl3.EndDate = nl3.StartDate.AddDate(1, 0, 0)

	third, err := core.Create(ctx, nl3)
	require.NoError(t, err)

	_, err = core.Activate(ctx, third)
	require.NoError(t, err)
}

func Test_QueryByStripeSubscription(t *testing.T) {
	core := leasebus.NewCore(newMemStore())
	ctx := context.Background()

	lse, err := core.Create(ctx, newLease())
	require.NoError(t, err)

	lse, err = core.SetStripeSubscription(ctx, lse, "sub_123")
	require.NoError(t, err)

	got, err := core.QueryByStripeSubscription(ctx, "sub_123")
	require.NoError(t, err)
	assert.Equal(t, lse.ID, got.ID)

	_, err = core.QueryByStripeSubscription(ctx, "sub_missing")
	require.ErrorIs(t, err, leasebus.ErrNotFound)
}

func Test_Update_DatesRevalidated(t *testing.T) {
	core := leasebus.NewCore(newMemStore())
	ctx := context.Background()

	lse, err := core.Create(ctx, newLease())
	require.NoError(t, err)

	badEnd := lse.StartDate.AddDate(0, 0, -1)
	_, err = core.Update(ctx, lse, leasebus.UpdateLease{EndDate: &badEnd})
	require.ErrorIs(t, err, leasebus.ErrInvalidDates)
}
