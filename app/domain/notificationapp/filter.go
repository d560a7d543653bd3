package notificationapp

import (
	"net/http"
	"strconv"

	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/business/domain/notificationbus"
	"github.com/hudsor01/tenantflow/business/types/notifytype"
)

type queryParams struct {
	Page    string
	Rows    string
	OrderBy string
	Type    string
	IsRead  string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:    values.Get("page"),
		Rows:    values.Get("rows"),
		OrderBy: values.Get("orderBy"),
		Type:    values.Get("type"),
		IsRead:  values.Get("is_read"),
	}
}

func parseFilter(qp queryParams) (notificationbus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter notificationbus.QueryFilter

	if qp.Type != "" {
		typ, err := notifytype.Parse(qp.Type)
		switch err {
		case nil:
			filter.Type = &typ
		default:
			fieldErrors.Add("type", err)
		}
	}

	if qp.IsRead != "" {
		isRead, err := strconv.ParseBool(qp.IsRead)
		switch err {
		case nil:
			filter.IsRead = &isRead
		default:
			fieldErrors.Add("is_read", err)
		}
	}

	if fieldErrors != nil {
		return notificationbus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
