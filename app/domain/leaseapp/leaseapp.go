// Package leaseapp maintains the app layer api for the lease domain. Leases
// are created through the tenant invite workflow; this api covers reading
// and managing them afterwards.
package leaseapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/app/sdk/query"
	"github.com/hudsor01/tenantflow/business/domain/leasebus"
	"github.com/hudsor01/tenantflow/business/sdk/order"
	"github.com/hudsor01/tenantflow/business/sdk/page"
	"github.com/hudsor01/tenantflow/business/sdk/web"
)

type app struct {
	leaseBus *leasebus.Core
}

// newApp constructs a lease app API for use.
func newApp(leaseBus *leasebus.Core) *app {
	return &app{
		leaseBus: leaseBus,
	}
}

// update modifies an existing lease.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateLease
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	lse, errResp := a.leaseFromRequest(ctx, r)
	if errResp != nil {
		return errResp
	}

	ul, err := toBusUpdateLease(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updLse, err := a.leaseBus.Update(ctx, lse, ul)
	if err != nil {
		switch {
		case errors.Is(err, leasebus.ErrInvalidDates):
			return errs.New(errs.InvalidArgument, err)
		case errors.Is(err, leasebus.ErrInvalidTransition):
			return errs.New(errs.FailedPrecondition, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "update: leaseID[%s]: %s", lse.ID, err)
	}

	return toAppLease(updLse)
}

// activate moves a draft lease to active.
func (a *app) activate(ctx context.Context, r *http.Request) web.Encoder {
	lse, errResp := a.leaseFromRequest(ctx, r)
	if errResp != nil {
		return errResp
	}

	updLse, err := a.leaseBus.Activate(ctx, lse)
	if err != nil {
		switch {
		case errors.Is(err, leasebus.ErrInvalidTransition):
			return errs.New(errs.FailedPrecondition, err)
		case errors.Is(err, leasebus.ErrDateOverlap):
			return errs.New(errs.Aborted, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "activate: leaseID[%s]: %s", lse.ID, err)
	}

	return toAppLease(updLse)
}

// terminate ends a lease ahead of its end date.
func (a *app) terminate(ctx context.Context, r *http.Request) web.Encoder {
	lse, errResp := a.leaseFromRequest(ctx, r)
	if errResp != nil {
		return errResp
	}

	updLse, err := a.leaseBus.Terminate(ctx, lse)
	if err != nil {
		if errors.Is(err, leasebus.ErrInvalidTransition) {
			return errs.New(errs.FailedPrecondition, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "terminate: leaseID[%s]: %s", lse.ID, err)
	}

	return toAppLease(updLse)
}

// query returns a list of leases with paging.
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

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, leasebus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	lses, err := a.leaseBus.Query(ctx, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.leaseBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppLeases(lses), total, page)
}

// queryByID returns a lease by its ID.
func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	lse, errResp := a.leaseFromRequest(ctx, r)
	if errResp != nil {
		return errResp
	}

	return toAppLease(lse)
}

func (a *app) leaseFromRequest(ctx context.Context, r *http.Request) (leasebus.Lease, web.Encoder) {
	id := web.Param(r, "lease_id")
	leaseID, err := uuid.Parse(id)
	if err != nil {
		return leasebus.Lease{}, errs.NewFieldErrors("lease_id", err)
	}

	lse, err := a.leaseBus.QueryByID(ctx, leaseID)
	if err != nil {
		if errors.Is(err, leasebus.ErrNotFound) {
			return leasebus.Lease{}, errs.New(errs.NotFound, err)
		}
		return leasebus.Lease{}, errs.Errorf(errs.InternalOnlyLog, "query: leaseID[%s]: %s", leaseID, err)
	}

	return lse, nil
}
