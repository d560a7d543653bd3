package propertyapp

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/business/domain/propertybus"
	"github.com/hudsor01/tenantflow/business/types/name"
)

type queryParams struct {
	Page    string
	Rows    string
	OrderBy string
	ID      string
	Name    string
	City    string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:    values.Get("page"),
		Rows:    values.Get("rows"),
		OrderBy: values.Get("orderBy"),
		ID:      values.Get("property_id"),
		Name:    values.Get("name"),
		City:    values.Get("city"),
	}
}

func parseFilter(qp queryParams) (propertybus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter propertybus.QueryFilter

	if qp.ID != "" {
		id, err := uuid.Parse(qp.ID)
		switch err {
		case nil:
			filter.ID = &id
		default:
			fieldErrors.Add("property_id", err)
		}
	}

	if qp.Name != "" {
		nme, err := name.Parse(qp.Name)
		switch err {
		case nil:
			filter.Name = &nme
		default:
			fieldErrors.Add("name", err)
		}
	}

	if qp.City != "" {
		city := qp.City
		filter.City = &city
	}

	if fieldErrors != nil {
		return propertybus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
