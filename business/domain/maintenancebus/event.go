package maintenancebus

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/business/sdk/delegate"
)

// DomainName represents the name of this domain for delegate registration.
const DomainName = "maintenance"

// The set of actions this domain broadcasts.
const (
	ActionCreated       = "created"
	ActionStatusChanged = "status_changed"
)

// EventParams is the information carried with maintenance events.
type EventParams struct {
	RequestID  uuid.UUID `json:"requestID"`
	PropertyID uuid.UUID `json:"propertyID"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	Priority   string    `json:"priority"`
}

// ActionCreatedData constructs the data for the created action.
func ActionCreatedData(req Request) delegate.Data {
	params := EventParams{
		RequestID:  req.ID,
		PropertyID: req.PropertyID,
		Title:      req.Title,
		Status:     req.Status.String(),
		Priority:   req.Priority.String(),
	}

	rawParams, err := json.Marshal(params)
	if err != nil {
		panic(err)
	}

	return delegate.Data{
		Domain:    DomainName,
		Action:    ActionCreated,
		RawParams: rawParams,
	}
}

// ActionStatusChangedData constructs the data for the status changed action.
func ActionStatusChangedData(req Request) delegate.Data {
	params := EventParams{
		RequestID:  req.ID,
		PropertyID: req.PropertyID,
		Title:      req.Title,
		Status:     req.Status.String(),
		Priority:   req.Priority.String(),
	}

	rawParams, err := json.Marshal(params)
	if err != nil {
		panic(err)
	}

	return delegate.Data{
		Domain:    DomainName,
		Action:    ActionStatusChanged,
		RawParams: rawParams,
	}
}
