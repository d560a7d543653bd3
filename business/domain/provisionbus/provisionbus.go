// Package provisionbus implements the tenant provisioning workflow: create a
// tenant and lease, provision recurring rent billing on the owner's
// connected account and invite the tenant, as one logical operation with
// automatic rollback of already applied side effects when a later step
// fails.
package provisionbus

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/domain/leasebus"
	"github.com/hudsor01/tenantflow/business/domain/tenantbus"
	"github.com/hudsor01/tenantflow/business/domain/userbus"
	"github.com/hudsor01/tenantflow/business/sdk/billing"
	"github.com/hudsor01/tenantflow/business/sdk/identity"
	"github.com/hudsor01/tenantflow/business/sdk/saga"
	"github.com/hudsor01/tenantflow/foundation/logger"
	"github.com/hudsor01/tenantflow/foundation/otel"
)

// The set of errors for the provisioning api.
var (
	ErrEmailExists       = errors.New("an account already exists for this email")
	ErrOwnerNotOnboarded = errors.New("owner has not completed billing onboarding")
)

// successMessage is returned to the caller when the whole workflow applies.
const successMessage = "Tenant created and invitation sent successfully"

// TenantStore declares the tenant operations the workflow needs.
type TenantStore interface {
	Create(ctx context.Context, nt tenantbus.NewTenant) (tenantbus.Tenant, error)
	Delete(ctx context.Context, tnt tenantbus.Tenant) error
	SetStripeCustomer(ctx context.Context, tnt tenantbus.Tenant, customerID string) (tenantbus.Tenant, error)
	LinkAuthUser(ctx context.Context, tnt tenantbus.Tenant, authUserID string) (tenantbus.Tenant, error)
	UnlinkAuthUser(ctx context.Context, tnt tenantbus.Tenant) (tenantbus.Tenant, error)
}

// LeaseStore declares the lease operations the workflow needs.
type LeaseStore interface {
	Create(ctx context.Context, nl leasebus.NewLease) (leasebus.Lease, error)
	Delete(ctx context.Context, lse leasebus.Lease) error
	SetStripeSubscription(ctx context.Context, lse leasebus.Lease, subscriptionID string) (leasebus.Lease, error)
}

// OwnerStore declares the owner lookup the workflow needs.
type OwnerStore interface {
	QueryByID(ctx context.Context, userID uuid.UUID) (userbus.User, error)
}

// Provisioned reports the outcome of a successful workflow run.
type Provisioned struct {
	TenantID   uuid.UUID
	LeaseID    uuid.UUID
	AuthUserID string
	Message    string
}

// Core manages the tenant provisioning workflow.
type Core struct {
	log               *logger.Logger
	tenants           TenantStore
	leases            LeaseStore
	owners            OwnerStore
	billing           billing.Client
	identity          identity.Client
	inviteRedirectURL string
}

// Config holds the collaborators required to construct a Core.
type Config struct {
	Log               *logger.Logger
	Tenants           TenantStore
	Leases            LeaseStore
	Owners            OwnerStore
	Billing           billing.Client
	Identity          identity.Client
	InviteRedirectURL string
}

// NewCore constructs a provisioning core API for use.
func NewCore(cfg Config) *Core {
	return &Core{
		log:               cfg.Log,
		tenants:           cfg.Tenants,
		leases:            cfg.Leases,
		owners:            cfg.Owners,
		billing:           cfg.Billing,
		identity:          cfg.Identity,
		inviteRedirectURL: cfg.InviteRedirectURL,
	}
}

// InviteTenantWithLease runs the eight step provisioning workflow. On any
// failure the already completed steps are compensated in reverse order and
// the triggering error is returned unchanged.
func (c *Core) InviteTenantWithLease(ctx context.Context, ownerID uuid.UUID, nt tenantbus.NewTenant, nl leasebus.NewLease) (Provisioned, error) {
	ctx, span := otel.AddSpan(ctx, "business.provisionbus.invitetenantwithlease")
	defer span.End()

	nt.OwnerID = ownerID

	// Step results shared across step closures. Each step only reads state
	// produced by earlier steps; the saga guarantees strict ordering.
	var (
		owner      userbus.User
		tenant     tenantbus.Tenant
		lease      leasebus.Lease
		authUserID string
	)

	s := saga.New(c.log)

	s.AddStep(saga.NewStep("check-existing-identity",
		func(ctx context.Context) (struct{}, error) {
			_, err := identity.FindUserByEmail(ctx, c.identity, nt.Email.Address)
			switch {
			case err == nil:
				return struct{}{}, fmt.Errorf("%w: %s", ErrEmailExists, nt.Email.Address)
			case errors.Is(err, identity.ErrNotFound):
				return struct{}{}, nil
			default:
				return struct{}{}, fmt.Errorf("find user: %w", err)
			}
		},
		nil,
	))

	s.AddStep(saga.NewStep("create-tenant",
		func(ctx context.Context) (tenantbus.Tenant, error) {
			tnt, err := c.tenants.Create(ctx, nt)
			if err != nil {
				return tenantbus.Tenant{}, fmt.Errorf("create tenant: %w", err)
			}
			tenant = tnt
			return tnt, nil
		},
		func(ctx context.Context, tnt tenantbus.Tenant) error {
			return c.tenants.Delete(ctx, tnt)
		},
	))

	s.AddStep(saga.NewStep("create-lease",
		func(ctx context.Context) (leasebus.Lease, error) {
			nl.TenantID = tenant.ID
			lse, err := c.leases.Create(ctx, nl)
			if err != nil {
				return leasebus.Lease{}, fmt.Errorf("create lease: %w", err)
			}
			lease = lse
			return lse, nil
		},
		func(ctx context.Context, lse leasebus.Lease) error {
			return c.leases.Delete(ctx, lse)
		},
	))

	s.AddStep(saga.NewStep("verify-owner-billing",
		func(ctx context.Context) (struct{}, error) {
			usr, err := c.owners.QueryByID(ctx, ownerID)
			if err != nil {
				return struct{}{}, fmt.Errorf("query owner: %w", err)
			}

			if !usr.StripeAccountID.Valid || usr.StripeAccountID.String == "" || !usr.OnboardingComplete {
				return struct{}{}, ErrOwnerNotOnboarded
			}

			acct, err := c.billing.RetrieveAccount(ctx, usr.StripeAccountID.String)
			if err != nil {
				return struct{}{}, fmt.Errorf("retrieve account: %w", err)
			}

			if !acct.ChargesEnabled || !acct.DetailsSubmitted {
				return struct{}{}, ErrOwnerNotOnboarded
			}

			owner = usr
			return struct{}{}, nil
		},
		nil,
	))

	s.AddStep(saga.NewStep("create-billing-customer",
		func(ctx context.Context) (billing.Customer, error) {
			nc := billing.NewCustomer{
				Email: tenant.Email.Address,
				Name:  fmt.Sprintf("%s %s", tenant.FirstName, tenant.LastName),
				Metadata: map[string]string{
					"tenant_id": tenant.ID.String(),
					"lease_id":  lease.ID.String(),
				},
			}

			cus, err := c.billing.CreateCustomer(ctx, owner.StripeAccountID.String, nc)
			if err != nil {
				return billing.Customer{}, fmt.Errorf("create customer: %w", err)
			}

			tnt, err := c.tenants.SetStripeCustomer(ctx, tenant, cus.ID)
			if err != nil {
				return billing.Customer{}, fmt.Errorf("persist customer id: %w", err)
			}
			tenant = tnt

			return cus, nil
		},
		func(ctx context.Context, cus billing.Customer) error {
			return c.billing.DeleteCustomer(ctx, owner.StripeAccountID.String, cus.ID)
		},
	))

	s.AddStep(saga.NewStep("create-billing-subscription",
		func(ctx context.Context) (billing.Subscription, error) {
			np := billing.NewPrice{
				Currency:    "usd",
				UnitAmount:  lease.RentAmount.Value(),
				ProductName: fmt.Sprintf("Rent lease %s", lease.ID),
			}

			price, err := c.billing.CreateRecurringPrice(ctx, owner.StripeAccountID.String, np)
			if err != nil {
				return billing.Subscription{}, fmt.Errorf("create price: %w", err)
			}

			ns := billing.NewSubscription{
				CustomerID: tenant.StripeCustomerID.String,
				PriceID:    price.ID,
				Metadata: map[string]string{
					"tenant_id": tenant.ID.String(),
					"lease_id":  lease.ID.String(),
				},
			}

			sub, err := c.billing.CreateSubscription(ctx, owner.StripeAccountID.String, ns)
			if err != nil {
				return billing.Subscription{}, fmt.Errorf("create subscription: %w", err)
			}

			lse, err := c.leases.SetStripeSubscription(ctx, lease, sub.ID)
			if err != nil {
				return billing.Subscription{}, fmt.Errorf("persist subscription id: %w", err)
			}
			lease = lse

			return sub, nil
		},
		func(ctx context.Context, sub billing.Subscription) error {
			return c.billing.CancelSubscription(ctx, owner.StripeAccountID.String, sub.ID)
		},
	))

	s.AddStep(saga.NewStep("send-invitation",
		func(ctx context.Context) (identity.User, error) {
			metadata := map[string]any{
				"tenant_id":   tenant.ID.String(),
				"lease_id":    lease.ID.String(),
				"property_id": lease.PropertyID.String(),
				"role":        "TENANT",
			}

			usr, err := c.identity.InviteUserByEmail(ctx, tenant.Email.Address, metadata, c.inviteRedirectURL)
			if err != nil {
				if errors.Is(err, identity.ErrEmailExists) {
					return identity.User{}, fmt.Errorf("%w: %s", ErrEmailExists, tenant.Email.Address)
				}
				return identity.User{}, fmt.Errorf("invite user: %w", err)
			}

			authUserID = usr.ID
			return usr, nil
		},
		func(ctx context.Context, usr identity.User) error {
			return c.identity.DeleteUser(ctx, usr.ID)
		},
	))

	s.AddStep(saga.NewStep("link-tenant-identity",
		func(ctx context.Context) (tenantbus.Tenant, error) {
			tnt, err := c.tenants.LinkAuthUser(ctx, tenant, authUserID)
			if err != nil {
				return tenantbus.Tenant{}, fmt.Errorf("link auth user: %w", err)
			}
			tenant = tnt
			return tnt, nil
		},
		func(ctx context.Context, tnt tenantbus.Tenant) error {
			_, err := c.tenants.UnlinkAuthUser(ctx, tnt)
			return err
		},
	))

	result := s.Execute(ctx)
	if !result.Success {
		return Provisioned{}, result.Err
	}

	return Provisioned{
		TenantID:   tenant.ID,
		LeaseID:    lease.ID,
		AuthUserID: authUserID,
		Message:    successMessage,
	}, nil
}
