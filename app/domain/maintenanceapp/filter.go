package maintenanceapp

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/business/domain/maintenancebus"
	"github.com/hudsor01/tenantflow/business/types/maintpriority"
	"github.com/hudsor01/tenantflow/business/types/maintstatus"
)

type queryParams struct {
	Page       string
	Rows       string
	OrderBy    string
	ID         string
	PropertyID string
	TenantID   string
	Priority   string
	Status     string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:       values.Get("page"),
		Rows:       values.Get("rows"),
		OrderBy:    values.Get("orderBy"),
		ID:         values.Get("request_id"),
		PropertyID: values.Get("property_id"),
		TenantID:   values.Get("tenant_id"),
		Priority:   values.Get("priority"),
		Status:     values.Get("status"),
	}
}

func parseFilter(qp queryParams) (maintenancebus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter maintenancebus.QueryFilter

	if qp.ID != "" {
		id, err := uuid.Parse(qp.ID)
		switch err {
		case nil:
			filter.ID = &id
		default:
			fieldErrors.Add("request_id", err)
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

	if qp.TenantID != "" {
		id, err := uuid.Parse(qp.TenantID)
		switch err {
		case nil:
			filter.TenantID = &id
		default:
			fieldErrors.Add("tenant_id", err)
		}
	}

	if qp.Priority != "" {
		p, err := maintpriority.Parse(qp.Priority)
		switch err {
		case nil:
			filter.Priority = &p
		default:
			fieldErrors.Add("priority", err)
		}
	}

	if qp.Status != "" {
		st, err := maintstatus.Parse(qp.Status)
		switch err {
		case nil:
			filter.Status = &st
		default:
			fieldErrors.Add("status", err)
		}
	}

	if fieldErrors != nil {
		return maintenancebus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
