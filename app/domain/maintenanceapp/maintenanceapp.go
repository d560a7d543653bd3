// Package maintenanceapp maintains the app layer api for the maintenance
// request domain.
package maintenanceapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/app/sdk/query"
	"github.com/hudsor01/tenantflow/business/domain/maintenancebus"
	"github.com/hudsor01/tenantflow/business/sdk/order"
	"github.com/hudsor01/tenantflow/business/sdk/page"
	"github.com/hudsor01/tenantflow/business/sdk/web"
)

type app struct {
	maintenanceBus *maintenancebus.Core
}

// newApp constructs a maintenance app API for use.
func newApp(maintenanceBus *maintenancebus.Core) *app {
	return &app{
		maintenanceBus: maintenanceBus,
	}
}

// create adds a new maintenance request.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewRequest
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	nr, err := toBusNewRequest(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	req, err := a.maintenanceBus.Create(ctx, nr)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "create: req[%+v]: %s", app, err)
	}

	return toAppRequest(req)
}

// update modifies an existing maintenance request.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateRequest
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	req, errResp := a.requestFromRequest(ctx, r)
	if errResp != nil {
		return errResp
	}

	ur, err := toBusUpdateRequest(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updReq, err := a.maintenanceBus.Update(ctx, req, ur)
	if err != nil {
		if errors.Is(err, maintenancebus.ErrInvalidTransition) {
			return errs.New(errs.FailedPrecondition, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "update: requestID[%s]: %s", req.ID, err)
	}

	return toAppRequest(updReq)
}

// query returns a list of maintenance requests with paging.
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

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, maintenancebus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	reqs, err := a.maintenanceBus.Query(ctx, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.maintenanceBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppRequests(reqs), total, page)
}

// queryByID returns a maintenance request by its ID.
func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	req, errResp := a.requestFromRequest(ctx, r)
	if errResp != nil {
		return errResp
	}

	return toAppRequest(req)
}

func (a *app) requestFromRequest(ctx context.Context, r *http.Request) (maintenancebus.Request, web.Encoder) {
	id := web.Param(r, "request_id")
	requestID, err := uuid.Parse(id)
	if err != nil {
		return maintenancebus.Request{}, errs.NewFieldErrors("request_id", err)
	}

	req, err := a.maintenanceBus.QueryByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, maintenancebus.ErrNotFound) {
			return maintenancebus.Request{}, errs.New(errs.NotFound, err)
		}
		return maintenancebus.Request{}, errs.Errorf(errs.InternalOnlyLog, "query: requestID[%s]: %s", requestID, err)
	}

	return req, nil
}
