package leaseapp

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/business/domain/leasebus"
	"github.com/hudsor01/tenantflow/business/types/leasestatus"
)

type queryParams struct {
	Page       string
	Rows       string
	OrderBy    string
	ID         string
	TenantID   string
	PropertyID string
	Status     string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:       values.Get("page"),
		Rows:       values.Get("rows"),
		OrderBy:    values.Get("orderBy"),
		ID:         values.Get("lease_id"),
		TenantID:   values.Get("tenant_id"),
		PropertyID: values.Get("property_id"),
		Status:     values.Get("status"),
	}
}

func parseFilter(qp queryParams) (leasebus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter leasebus.QueryFilter

	if qp.ID != "" {
		id, err := uuid.Parse(qp.ID)
		switch err {
		case nil:
			filter.ID = &id
		default:
			fieldErrors.Add("lease_id", err)
		}
	}

	if qp.TenantID != "" {
		id, err := uuid.Parse(qp.TenantID)
		switch err {
		case nil:
			filter.TenantID = &id
		default:
			fieldErrors.Add("tenant_id", err)
		}
	}

	if qp.PropertyID != "" {
		id, err := uuid.Parse(qp.PropertyID)
		switch err {
		case nil:
			filter.PropertyID = &id
		default:
			fieldErrors.Add("property_id", err)
		}
	}

	if qp.Status != "" {
		st, err := leasestatus.Parse(qp.Status)
		switch err {
		case nil:
			filter.Status = &st
		default:
			fieldErrors.Add("status", err)
		}
	}

	if fieldErrors != nil {
		return leasebus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
