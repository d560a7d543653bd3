// Package propertyapp maintains the app layer api for the property domain.
package propertyapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/app/sdk/mid"
	"github.com/hudsor01/tenantflow/app/sdk/query"
	"github.com/hudsor01/tenantflow/business/domain/propertybus"
	"github.com/hudsor01/tenantflow/business/sdk/order"
	"github.com/hudsor01/tenantflow/business/sdk/page"
	"github.com/hudsor01/tenantflow/business/sdk/web"
	"github.com/hudsor01/tenantflow/business/types/role"
)

type app struct {
	propertyBus *propertybus.Core
}

// newApp constructs a property app API for use.
func newApp(propertyBus *propertybus.Core) *app {
	return &app{
		propertyBus: propertyBus,
	}
}

// create adds a new property owned by the authenticated user.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewProperty
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	ownerID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "userID missing in context: %s", err)
	}

	np, err := toBusNewProperty(app, ownerID)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	prp, err := a.propertyBus.Create(ctx, np)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "create: prp[%+v]: %s", app, err)
	}

	return toAppProperty(prp)
}

// update modifies an existing property.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateProperty
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	prp, errResp := a.propertyFromRequest(ctx, r)
	if errResp != nil {
		return errResp
	}

	up, err := toBusUpdateProperty(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updPrp, err := a.propertyBus.Update(ctx, prp, up)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "update: propertyID[%s]: %s", prp.ID, err)
	}

	return toAppProperty(updPrp)
}

// delete removes a property from the system.
func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	prp, errResp := a.propertyFromRequest(ctx, r)
	if errResp != nil {
		return errResp
	}

	if err := a.propertyBus.Delete(ctx, prp); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: propertyID[%s]: %s", prp.ID, err)
	}

	return nil
}

// query returns a list of properties with paging. Owners only see their own.
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

	if scopeErr := a.scopeToOwner(ctx, &filter); scopeErr != nil {
		return scopeErr
	}

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, propertybus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	prps, err := a.propertyBus.Query(ctx, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.propertyBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppProperties(prps), total, page)
}

// queryByID returns a property by its ID.
func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	prp, errResp := a.propertyFromRequest(ctx, r)
	if errResp != nil {
		return errResp
	}

	return toAppProperty(prp)
}

// propertyFromRequest loads the property addressed by the route and checks
// the acting user can see it. Admins see everything, owners only their own.
func (a *app) propertyFromRequest(ctx context.Context, r *http.Request) (propertybus.Property, web.Encoder) {
	id := web.Param(r, "property_id")
	propertyID, err := uuid.Parse(id)
	if err != nil {
		return propertybus.Property{}, errs.NewFieldErrors("property_id", err)
	}

	prp, err := a.propertyBus.QueryByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertybus.ErrNotFound) {
			return propertybus.Property{}, errs.New(errs.NotFound, err)
		}
		return propertybus.Property{}, errs.Errorf(errs.InternalOnlyLog, "query: propertyID[%s]: %s", propertyID, err)
	}

	claims := mid.GetClaims(ctx)
	if claims.Role != role.Admin.String() && prp.OwnerID.String() != claims.Subject {
		return propertybus.Property{}, errs.New(errs.PermissionDenied, errors.New("not the property owner"))
	}

	return prp, nil
}

// scopeToOwner pins the query filter to the acting owner unless the caller
// is an admin.
func (a *app) scopeToOwner(ctx context.Context, filter *propertybus.QueryFilter) web.Encoder {
	claims := mid.GetClaims(ctx)
	if claims.Role == role.Admin.String() {
		return nil
	}

	ownerID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "userID missing in context: %s", err)
	}
	filter.OwnerID = &ownerID

	return nil
}
