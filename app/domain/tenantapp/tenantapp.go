// Package tenantapp maintains the app layer api for the tenant domain,
// including the combined invite endpoint that creates a tenant with a lease,
// provisions rent billing and sends the invitation in one request.
package tenantapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/app/sdk/mid"
	"github.com/hudsor01/tenantflow/app/sdk/query"
	"github.com/hudsor01/tenantflow/business/domain/provisionbus"
	"github.com/hudsor01/tenantflow/business/domain/tenantbus"
	"github.com/hudsor01/tenantflow/business/sdk/order"
	"github.com/hudsor01/tenantflow/business/sdk/page"
	"github.com/hudsor01/tenantflow/business/sdk/web"
	"github.com/hudsor01/tenantflow/business/types/role"
)

type app struct {
	tenantBus    *tenantbus.Core
	provisionBus *provisionbus.Core
}

// newApp constructs a tenant app API for use.
func newApp(tenantBus *tenantbus.Core, provisionBus *provisionbus.Core) *app {
	return &app{
		tenantBus:    tenantBus,
		provisionBus: provisionBus,
	}
}

// invite creates a tenant and a draft lease, provisions recurring rent
// billing on the owner's connected account and emails the invitation. On
// any failure every side effect already applied is rolled back.
func (a *app) invite(ctx context.Context, r *http.Request) web.Encoder {
	var app InviteTenant
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	ownerID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "userID missing in context: %s", err)
	}

	nt, nl, err := toBusInvite(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	prv, err := a.provisionBus.InviteTenantWithLease(ctx, ownerID, nt, nl)
	if err != nil {
		switch {
		case errors.Is(err, provisionbus.ErrEmailExists):
			return errs.New(errs.Aborted, provisionbus.ErrEmailExists)
		case errors.Is(err, tenantbus.ErrUniqueEmail):
			return errs.New(errs.Aborted, tenantbus.ErrUniqueEmail)
		case errors.Is(err, provisionbus.ErrOwnerNotOnboarded):
			return errs.New(errs.FailedPrecondition, provisionbus.ErrOwnerNotOnboarded)
		default:
			return errs.Errorf(errs.InternalOnlyLog, "invite: ownerID[%s]: %s", ownerID, err)
		}
	}

	return toAppInvited(prv)
}

// update modifies an existing tenant.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateTenant
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tnt, errResp := a.tenantFromRequest(ctx, r)
	if errResp != nil {
		return errResp
	}

	ut, err := toBusUpdateTenant(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updTnt, err := a.tenantBus.Update(ctx, tnt, ut)
	if err != nil {
		if errors.Is(err, tenantbus.ErrInvalidTransition) {
			return errs.New(errs.FailedPrecondition, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "update: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppTenant(updTnt)
}

// acceptInvitation marks a sent invitation accepted and activates the
// tenant. Called by the onboarding flow after the identity provider confirms
// the account.
func (a *app) acceptInvitation(ctx context.Context, r *http.Request) web.Encoder {
	tnt, errResp := a.tenantFromRequest(ctx, r)
	if errResp != nil {
		return errResp
	}

	updTnt, err := a.tenantBus.AcceptInvitation(ctx, tnt)
	if err != nil {
		if errors.Is(err, tenantbus.ErrInvalidTransition) {
			return errs.New(errs.FailedPrecondition, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "accept: tenantID[%s]: %s", tnt.ID, err)
	}

	return toAppTenant(updTnt)
}

// delete removes a tenant from the system.
func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	tnt, errResp := a.tenantFromRequest(ctx, r)
	if errResp != nil {
		return errResp
	}

	if err := a.tenantBus.Delete(ctx, tnt); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: tenantID[%s]: %s", tnt.ID, err)
	}

	return nil
}

// query returns a list of tenants with paging. Owners only see their own.
func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	page, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	filter, err := parseFilter(qp)
	if err != nil {
		if v, ok := err.(*errs.Error); ok {
			return v
		}
		return errs.NewFieldErrors("filter", err)
	}

	claims := mid.GetClaims(ctx)
	if claims.Role != role.Admin.String() {
		ownerID, err := mid.GetUserID(ctx)
		if err != nil {
			return errs.Errorf(errs.Internal, "userID missing in context: %s", err)
		}
		filter.OwnerID = &ownerID
	}

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, tenantbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	tnts, err := a.tenantBus.Query(ctx, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.tenantBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppTenants(tnts), total, page)
}

// queryByID returns a tenant by its ID.
func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	tnt, errResp := a.tenantFromRequest(ctx, r)
	if errResp != nil {
		return errResp
	}

	return toAppTenant(tnt)
}

// tenantFromRequest loads the tenant addressed by the route and checks the
// acting user can see them. Admins see everything, owners only their own.
func (a *app) tenantFromRequest(ctx context.Context, r *http.Request) (tenantbus.Tenant, web.Encoder) {
	id := web.Param(r, "tenant_id")
	tenantID, err := uuid.Parse(id)
	if err != nil {
		return tenantbus.Tenant{}, errs.NewFieldErrors("tenant_id", err)
	}

	tnt, err := a.tenantBus.QueryByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, tenantbus.ErrNotFound) {
			return tenantbus.Tenant{}, errs.New(errs.NotFound, err)
		}
		return tenantbus.Tenant{}, errs.Errorf(errs.InternalOnlyLog, "query: tenantID[%s]: %s", tenantID, err)
	}

	claims := mid.GetClaims(ctx)
	if claims.Role != role.Admin.String() && tnt.OwnerID.String() != claims.Subject {
		return tenantbus.Tenant{}, errs.New(errs.PermissionDenied, errors.New("not the tenant's owner"))
	}

	return tnt, nil
}
