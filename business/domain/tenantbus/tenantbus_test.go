package tenantbus_test

import (
	"context"
	"net/mail"
	"testing"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/domain/tenantbus"
	"github.com/hudsor01/tenantflow/business/sdk/order"
	"github.com/hudsor01/tenantflow/business/sdk/page"
	"github.com/hudsor01/tenantflow/business/sdk/sqldb"
	"github.com/hudsor01/tenantflow/business/types/invitestatus"
	"github.com/hudsor01/tenantflow/business/types/name"
	"github.com/hudsor01/tenantflow/business/types/tenantstatus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	tenants map[uuid.UUID]tenantbus.Tenant
}

func newMemStore() *memStore {
	return &memStore{tenants: make(map[uuid.UUID]tenantbus.Tenant)}
}

func (s *memStore) NewWithTx(tx sqldb.CommitRollbacker) (tenantbus.Storer, error) {
	return s, nil
}

func (s *memStore) Create(_ context.Context, tnt tenantbus.Tenant) error {
	for _, existing := range s.tenants {
		if existing.Email.Address == tnt.Email.Address {
			return tenantbus.ErrUniqueEmail
		}
	}
	s.tenants[tnt.ID] = tnt
	return nil
}

func (s *memStore) Update(_ context.Context, tnt tenantbus.Tenant) error {
	if _, exists := s.tenants[tnt.ID]; !exists {
		return tenantbus.ErrNotFound
	}
	s.tenants[tnt.ID] = tnt
	return nil
}

func (s *memStore) Delete(_ context.Context, tnt tenantbus.Tenant) error {
	delete(s.tenants, tnt.ID)
	return nil
}

func (s *memStore) Query(_ context.Context, _ tenantbus.QueryFilter, _ order.By, _ page.Page) ([]tenantbus.Tenant, error) {
	tnts := make([]tenantbus.Tenant, 0, len(s.tenants))
	for _, tnt := range s.tenants {
		tnts = append(tnts, tnt)
	}
	return tnts, nil
}

func (s *memStore) Count(_ context.Context, _ tenantbus.QueryFilter) (int, error) {
	return len(s.tenants), nil
}

func (s *memStore) QueryByID(_ context.Context, tenantID uuid.UUID) (tenantbus.Tenant, error) {
	tnt, exists := s.tenants[tenantID]
	if !exists {
		return tenantbus.Tenant{}, tenantbus.ErrNotFound
	}
	return tnt, nil
}

func (s *memStore) QueryByEmail(_ context.Context, email mail.Address) (tenantbus.Tenant, error) {
	for _, tnt := range s.tenants {
		if tnt.Email.Address == email.Address {
			return tnt, nil
		}
	}
	return tenantbus.Tenant{}, tenantbus.ErrNotFound
}

// =============================================================================

func newTenant(email string) tenantbus.NewTenant {
	return tenantbus.NewTenant{
		OwnerID:   uuid.New(),
		Email:     mail.Address{Address: email},
		FirstName: name.MustParse("Jane"),
		LastName:  name.MustParse("Doe"),
	}
}

func Test_Create(t *testing.T) {
	core := tenantbus.NewCore(newMemStore())

	tnt, err := core.Create(context.Background(), newTenant("jane@example.com"))
	require.NoError(t, err)

	assert.True(t, tnt.Status.Equal(tenantstatus.Pending))
	assert.True(t, tnt.InvitationStatus.Equal(invitestatus.Pending))
	assert.False(t, tnt.AuthUserID.Valid)
	assert.False(t, tnt.InvitationSentAt.Valid)
}

func Test_Create_DuplicateEmail(t *testing.T) {
	core := tenantbus.NewCore(newMemStore())
	ctx := context.Background()

	_, err := core.Create(ctx, newTenant("jane@example.com"))
	require.NoError(t, err)

	_, err = core.Create(ctx, newTenant("jane@example.com"))
	require.ErrorIs(t, err, tenantbus.ErrUniqueEmail)
}

func Test_InvitationFlow(t *testing.T) {
	core := tenantbus.NewCore(newMemStore())
	ctx := context.Background()

	tnt, err := core.Create(ctx, newTenant("jane@example.com"))
	require.NoError(t, err)

	// Accepting before the invitation went out is rejected.
	_, err = core.AcceptInvitation(ctx, tnt)
	require.ErrorIs(t, err, tenantbus.ErrInvalidTransition)

	tnt, err = core.LinkAuthUser(ctx, tnt, "auth_user_1")
	require.NoError(t, err)
	assert.Equal(t, "auth_user_1", tnt.AuthUserID.String)
	assert.True(t, tnt.InvitationStatus.Equal(invitestatus.Sent))
	assert.True(t, tnt.InvitationSentAt.Valid)

	tnt, err = core.AcceptInvitation(ctx, tnt)
	require.NoError(t, err)
	assert.True(t, tnt.Status.Equal(tenantstatus.Active))
	assert.True(t, tnt.InvitationStatus.Equal(invitestatus.Accepted))
}

func Test_UnlinkAuthUser(t *testing.T) {
	core := tenantbus.NewCore(newMemStore())
	ctx := context.Background()

	tnt, err := core.Create(ctx, newTenant("jane@example.com"))
	require.NoError(t, err)

	tnt, err = core.LinkAuthUser(ctx, tnt, "auth_user_1")
	require.NoError(t, err)

	tnt, err = core.UnlinkAuthUser(ctx, tnt)
	require.NoError(t, err)
	assert.False(t, tnt.AuthUserID.Valid)
	assert.False(t, tnt.InvitationSentAt.Valid)
	assert.True(t, tnt.InvitationStatus.Equal(invitestatus.Pending))
}

func Test_StatusTransitions(t *testing.T) {
	core := tenantbus.NewCore(newMemStore())
	ctx := context.Background()

	tnt, err := core.Create(ctx, newTenant("jane@example.com"))
	require.NoError(t, err)

	// PENDING cannot be evicted.
	evicted := tenantstatus.Evicted
	_, err = core.Update(ctx, tnt, tenantbus.UpdateTenant{Status: &evicted})
	require.ErrorIs(t, err, tenantbus.ErrInvalidTransition)

	active := tenantstatus.Active
	tnt, err = core.Update(ctx, tnt, tenantbus.UpdateTenant{Status: &active})
	require.NoError(t, err)

	movedOut := tenantstatus.MovedOut
	tnt, err = core.Update(ctx, tnt, tenantbus.UpdateTenant{Status: &movedOut})
	require.NoError(t, err)

	archived := tenantstatus.Archived
	tnt, err = core.Update(ctx, tnt, tenantbus.UpdateTenant{Status: &archived})
	require.NoError(t, err)

	// Archived is terminal.
	_, err = core.Update(ctx, tnt, tenantbus.UpdateTenant{Status: &active})
	require.ErrorIs(t, err, tenantbus.ErrInvalidTransition)
}
