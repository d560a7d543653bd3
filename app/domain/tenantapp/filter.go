package tenantapp

import (
	"net/http"
	"net/mail"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/business/domain/tenantbus"
	"github.com/hudsor01/tenantflow/business/types/invitestatus"
	"github.com/hudsor01/tenantflow/business/types/tenantstatus"
)

type queryParams struct {
	Page             string
	Rows             string
	OrderBy          string
	ID               string
	Email            string
	Status           string
	InvitationStatus string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:             values.Get("page"),
		Rows:             values.Get("rows"),
		OrderBy:          values.Get("orderBy"),
		ID:               values.Get("tenant_id"),
		Email:            values.Get("email"),
		Status:           values.Get("status"),
		InvitationStatus: values.Get("invitation_status"),
	}
}

func parseFilter(qp queryParams) (tenantbus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter tenantbus.QueryFilter

	if qp.ID != "" {
		id, err := uuid.Parse(qp.ID)
		switch err {
		case nil:
			filter.ID = &id
		default:
			fieldErrors.Add("tenant_id", err)
		}
	}

	if qp.Email != "" {
		addr, err := mail.ParseAddress(qp.Email)
		switch err {
		case nil:
			filter.Email = addr
		default:
			fieldErrors.Add("email", err)
		}
	}

	if qp.Status != "" {
		st, err := tenantstatus.Parse(qp.Status)
		switch err {
		case nil:
			filter.Status = &st
		default:
			fieldErrors.Add("status", err)
		}
	}

	if qp.InvitationStatus != "" {
		st, err := invitestatus.Parse(qp.InvitationStatus)
		switch err {
		case nil:
			filter.InvitationStatus = &st
		default:
			fieldErrors.Add("invitation_status", err)
		}
	}

	if fieldErrors != nil {
		return tenantbus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
