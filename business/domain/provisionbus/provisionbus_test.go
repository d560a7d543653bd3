package provisionbus_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net/mail"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/domain/leasebus"
	"github.com/hudsor01/tenantflow/business/domain/provisionbus"
	"github.com/hudsor01/tenantflow/business/domain/tenantbus"
	"github.com/hudsor01/tenantflow/business/domain/userbus"
	"github.com/hudsor01/tenantflow/business/sdk/billing"
	"github.com/hudsor01/tenantflow/business/sdk/identity"
	"github.com/hudsor01/tenantflow/business/types/invitestatus"
	"github.com/hudsor01/tenantflow/business/types/leasestatus"
	"github.com/hudsor01/tenantflow/business/types/money"
	"github.com/hudsor01/tenantflow/business/types/name"
	"github.com/hudsor01/tenantflow/business/types/tenantstatus"
	"github.com/hudsor01/tenantflow/foundation/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// calls records side effects across all fakes so tests can assert both the
// forward order and the rollback order of the workflow.
type calls struct {
	names []string
}

func (c *calls) add(name string) {
	c.names = append(c.names, name)
}

// =============================================================================

type fakeTenants struct {
	calls     *calls
	createErr error
	linkErr   error
}

func (f *fakeTenants) Create(_ context.Context, nt tenantbus.NewTenant) (tenantbus.Tenant, error) {
	f.calls.add("tenant.create")
	if f.createErr != nil {
		return tenantbus.Tenant{}, f.createErr
	}

	now := time.Now()
	return tenantbus.Tenant{
		ID:               uuid.New(),
		OwnerID:          nt.OwnerID,
		Email:            nt.Email,
		FirstName:        nt.FirstName,
		LastName:         nt.LastName,
		Phone:            nt.Phone,
		Status:           tenantstatus.Pending,
		InvitationStatus: invitestatus.Pending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

func (f *fakeTenants) Delete(_ context.Context, _ tenantbus.Tenant) error {
	f.calls.add("tenant.delete")
	return nil
}

func (f *fakeTenants) SetStripeCustomer(_ context.Context, tnt tenantbus.Tenant, customerID string) (tenantbus.Tenant, error) {
	f.calls.add("tenant.setstripecustomer")
	tnt.StripeCustomerID = sql.NullString{String: customerID, Valid: true}
	return tnt, nil
}

func (f *fakeTenants) LinkAuthUser(_ context.Context, tnt tenantbus.Tenant, authUserID string) (tenantbus.Tenant, error) {
	f.calls.add("tenant.linkauthuser")
	if f.linkErr != nil {
		return tenantbus.Tenant{}, f.linkErr
	}

	tnt.AuthUserID = sql.NullString{String: authUserID, Valid: true}
	tnt.InvitationStatus = invitestatus.Sent
	tnt.InvitationSentAt = sql.NullTime{Time: time.Now(), Valid: true}
	return tnt, nil
}

func (f *fakeTenants) UnlinkAuthUser(_ context.Context, tnt tenantbus.Tenant) (tenantbus.Tenant, error) {
	f.calls.add("tenant.unlinkauthuser")
	tnt.AuthUserID = sql.NullString{}
	tnt.InvitationStatus = invitestatus.Pending
	tnt.InvitationSentAt = sql.NullTime{}
	return tnt, nil
}

// =============================================================================

type fakeLeases struct {
	calls     *calls
	createErr error
}

func (f *fakeLeases) Create(_ context.Context, nl leasebus.NewLease) (leasebus.Lease, error) {
	f.calls.add("lease.create")
	if f.createErr != nil {
		return leasebus.Lease{}, f.createErr
	}

	now := time.Now()
	return leasebus.Lease{
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
	}, nil
}

func (f *fakeLeases) Delete(_ context.Context, _ leasebus.Lease) error {
	f.calls.add("lease.delete")
	return nil
}

func (f *fakeLeases) SetStripeSubscription(_ context.Context, lse leasebus.Lease, subscriptionID string) (leasebus.Lease, error) {
	f.calls.add("lease.setstripesubscription")
	lse.StripeSubscriptionID = sql.NullString{String: subscriptionID, Valid: true}
	return lse, nil
}

// =============================================================================

type fakeOwners struct {
	calls *calls
	owner userbus.User
	err   error
}

func (f *fakeOwners) QueryByID(_ context.Context, _ uuid.UUID) (userbus.User, error) {
	f.calls.add("owner.querybyid")
	if f.err != nil {
		return userbus.User{}, f.err
	}
	return f.owner, nil
}

// =============================================================================

type fakeBilling struct {
	calls              *calls
	account            billing.Account
	createCustomerErr  error
	createPriceErr     error
	createSubErr       error
	lastCustomerMeta   map[string]string
	lastSubscriptionID string
}

func (f *fakeBilling) CreateCustomer(_ context.Context, _ string, nc billing.NewCustomer) (billing.Customer, error) {
	f.calls.add("billing.createcustomer")
	if f.createCustomerErr != nil {
		return billing.Customer{}, f.createCustomerErr
	}
	f.lastCustomerMeta = nc.Metadata
	return billing.Customer{ID: "cus_test_1", Email: nc.Email}, nil
}

func (f *fakeBilling) DeleteCustomer(_ context.Context, _ string, _ string) error {
	f.calls.add("billing.deletecustomer")
	return nil
}

func (f *fakeBilling) CreateRecurringPrice(_ context.Context, _ string, _ billing.NewPrice) (billing.Price, error) {
	f.calls.add("billing.createprice")
	if f.createPriceErr != nil {
		return billing.Price{}, f.createPriceErr
	}
	return billing.Price{ID: "price_test_1"}, nil
}

func (f *fakeBilling) CreateSubscription(_ context.Context, _ string, _ billing.NewSubscription) (billing.Subscription, error) {
	f.calls.add("billing.createsubscription")
	if f.createSubErr != nil {
		return billing.Subscription{}, f.createSubErr
	}
	return billing.Subscription{ID: "sub_test_1", Status: "active"}, nil
}

func (f *fakeBilling) CancelSubscription(_ context.Context, _ string, subscriptionID string) error {
	f.calls.add("billing.cancelsubscription")
	f.lastSubscriptionID = subscriptionID
	return nil
}

func (f *fakeBilling) RetrieveAccount(_ context.Context, account string) (billing.Account, error) {
	f.calls.add("billing.retrieveaccount")
	acct := f.account
	acct.ID = account
	return acct, nil
}

// =============================================================================

type fakeIdentity struct {
	calls         *calls
	existingUsers []identity.User
	inviteErr     error
}

func (f *fakeIdentity) ListUsers(_ context.Context, page int, perPage int) ([]identity.User, error) {
	f.calls.add("identity.listusers")
	if page > 1 {
		return nil, nil
	}
	return f.existingUsers, nil
}

func (f *fakeIdentity) InviteUserByEmail(_ context.Context, email string, _ map[string]any, _ string) (identity.User, error) {
	f.calls.add("identity.invite")
	if f.inviteErr != nil {
		return identity.User{}, f.inviteErr
	}
	return identity.User{ID: "auth_user_1", Email: email}, nil
}

func (f *fakeIdentity) DeleteUser(_ context.Context, _ string) error {
	f.calls.add("identity.deleteuser")
	return nil
}

// =============================================================================

type fixture struct {
	core     *provisionbus.Core
	calls    *calls
	tenants  *fakeTenants
	leases   *fakeLeases
	owners   *fakeOwners
	billing  *fakeBilling
	identity *fakeIdentity
	ownerID  uuid.UUID
}

func newFixture() *fixture {
	cl := &calls{}

	ownerID := uuid.New()

	tenants := &fakeTenants{calls: cl}
	leases := &fakeLeases{calls: cl}
	owners := &fakeOwners{
		calls: cl,
		owner: userbus.User{
			ID:                 ownerID,
			StripeAccountID:    sql.NullString{String: "acct_test_1", Valid: true},
			OnboardingComplete: true,
		},
	}
	bil := &fakeBilling{
		calls:   cl,
		account: billing.Account{ChargesEnabled: true, DetailsSubmitted: true},
	}
	idn := &fakeIdentity{calls: cl}

	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)

	core := provisionbus.NewCore(provisionbus.Config{
		Log:               log,
		Tenants:           tenants,
		Leases:            leases,
		Owners:            owners,
		Billing:           bil,
		Identity:          idn,
		InviteRedirectURL: "https://app.test/welcome",
	})

	return &fixture{
		core:     core,
		calls:    cl,
		tenants:  tenants,
		leases:   leases,
		owners:   owners,
		billing:  bil,
		identity: idn,
		ownerID:  ownerID,
	}
}

func newTenantInput(email string) tenantbus.NewTenant {
	return tenantbus.NewTenant{
		Email:     mail.Address{Address: email},
		FirstName: name.MustParse("Jane"),
		LastName:  name.MustParse("Doe"),
	}
}

func newLeaseInput() leasebus.NewLease {
	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	return leasebus.NewLease{
		PropertyID:      uuid.New(),
		RentAmount:      money.MustParse(150000),
		SecurityDeposit: money.MustParse(150000),
		StartDate:       start,
		EndDate:         start.AddDate(1, 0, 0),
	}
}

func Test_InviteTenantWithLease_Success(t *testing.T) {
	f := newFixture()

	prv, err := f.core.InviteTenantWithLease(context.Background(), f.ownerID, newTenantInput("jane@example.com"), newLeaseInput())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, prv.TenantID)
	assert.NotEqual(t, uuid.Nil, prv.LeaseID)
	assert.Equal(t, "auth_user_1", prv.AuthUserID)
	assert.Equal(t, "Tenant created and invitation sent successfully", prv.Message)

	assert.Equal(t, []string{
		"identity.listusers",
		"tenant.create",
		"lease.create",
		"owner.querybyid",
		"billing.retrieveaccount",
		"billing.createcustomer",
		"tenant.setstripecustomer",
		"billing.createprice",
		"billing.createsubscription",
		"lease.setstripesubscription",
		"identity.invite",
		"tenant.linkauthuser",
	}, f.calls.names)

	assert.Equal(t, prv.TenantID.String(), f.billing.lastCustomerMeta["tenant_id"])
	assert.Equal(t, prv.LeaseID.String(), f.billing.lastCustomerMeta["lease_id"])
}

func Test_InviteTenantWithLease_EmailAlreadyRegistered(t *testing.T) {
	f := newFixture()
	f.identity.existingUsers = []identity.User{{ID: "auth_user_0", Email: "jane@example.com"}}

	_, err := f.core.InviteTenantWithLease(context.Background(), f.ownerID, newTenantInput("jane@example.com"), newLeaseInput())
	require.ErrorIs(t, err, provisionbus.ErrEmailExists)

	// The check runs before any writes, so nothing to roll back.
	assert.Equal(t, []string{"identity.listusers"}, f.calls.names)
}

func Test_InviteTenantWithLease_OwnerNotOnboarded(t *testing.T) {
	f := newFixture()
	f.owners.owner.OnboardingComplete = false

	_, err := f.core.InviteTenantWithLease(context.Background(), f.ownerID, newTenantInput("jane@example.com"), newLeaseInput())
	require.ErrorIs(t, err, provisionbus.ErrOwnerNotOnboarded)

	assert.Equal(t, []string{
		"identity.listusers",
		"tenant.create",
		"lease.create",
		"owner.querybyid",
		"lease.delete",
		"tenant.delete",
	}, f.calls.names)
}

func Test_InviteTenantWithLease_SubscriptionFailureRollsBack(t *testing.T) {
	f := newFixture()
	boom := errors.New("card network is down")
	f.billing.createSubErr = boom

	_, err := f.core.InviteTenantWithLease(context.Background(), f.ownerID, newTenantInput("jane@example.com"), newLeaseInput())
	require.ErrorIs(t, err, boom)

	assert.Equal(t, []string{
		"identity.listusers",
		"tenant.create",
		"lease.create",
		"owner.querybyid",
		"billing.retrieveaccount",
		"billing.createcustomer",
		"tenant.setstripecustomer",
		"billing.createprice",
		"billing.createsubscription",
		"billing.deletecustomer",
		"lease.delete",
		"tenant.delete",
	}, f.calls.names)
}

func Test_InviteTenantWithLease_InviteConflictRollsBackBilling(t *testing.T) {
	f := newFixture()
	f.identity.inviteErr = identity.ErrEmailExists

	_, err := f.core.InviteTenantWithLease(context.Background(), f.ownerID, newTenantInput("jane@example.com"), newLeaseInput())
	require.ErrorIs(t, err, provisionbus.ErrEmailExists)

	assert.Equal(t, []string{
		"identity.listusers",
		"tenant.create",
		"lease.create",
		"owner.querybyid",
		"billing.retrieveaccount",
		"billing.createcustomer",
		"tenant.setstripecustomer",
		"billing.createprice",
		"billing.createsubscription",
		"lease.setstripesubscription",
		"identity.invite",
		"billing.cancelsubscription",
		"billing.deletecustomer",
		"lease.delete",
		"tenant.delete",
	}, f.calls.names)
	assert.Equal(t, "sub_test_1", f.billing.lastSubscriptionID)
}

func Test_InviteTenantWithLease_LinkFailureDeletesIdentityUser(t *testing.T) {
	f := newFixture()
	boom := errors.New("tenant row gone")
	f.tenants.linkErr = boom

	_, err := f.core.InviteTenantWithLease(context.Background(), f.ownerID, newTenantInput("jane@example.com"), newLeaseInput())
	require.ErrorIs(t, err, boom)

	assert.Equal(t, []string{
		"identity.listusers",
		"tenant.create",
		"lease.create",
		"owner.querybyid",
		"billing.retrieveaccount",
		"billing.createcustomer",
		"tenant.setstripecustomer",
		"billing.createprice",
		"billing.createsubscription",
		"lease.setstripesubscription",
		"identity.invite",
		"tenant.linkauthuser",
		"identity.deleteuser",
		"billing.cancelsubscription",
		"billing.deletecustomer",
		"lease.delete",
		"tenant.delete",
	}, f.calls.names)
}
