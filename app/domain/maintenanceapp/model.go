package maintenanceapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/business/domain/maintenancebus"
	"github.com/hudsor01/tenantflow/business/types/maintpriority"
	"github.com/hudsor01/tenantflow/business/types/maintstatus"
)

// Request represents information about an individual maintenance request.
type Request struct {
	ID          string `json:"id"`
	PropertyID  string `json:"propertyId"`
	TenantID    string `json:"tenantId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (r Request) Encode() ([]byte, string, error) {
	data, err := json.Marshal(r)
	return data, "application/json", err
}

func toAppRequest(bus maintenancebus.Request) Request {
	app := Request{
		ID:          bus.ID.String(),
		PropertyID:  bus.PropertyID.String(),
		Title:       bus.Title,
		Description: bus.Description,
		Priority:    bus.Priority.String(),
		Status:      bus.Status.String(),
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}

	if bus.TenantID.Valid {
		app.TenantID = bus.TenantID.UUID.String()
	}

	return app
}

func toAppRequests(reqs []maintenancebus.Request) []Request {
	app := make([]Request, len(reqs))
	for i, req := range reqs {
		app[i] = toAppRequest(req)
	}
	return app
}

// =============================================================================

// NewRequest defines the data needed to add a new maintenance request.
type NewRequest struct {
	PropertyID  string `json:"propertyId" validate:"required,uuid"`
	TenantID    string `json:"tenantId" validate:"omitempty,uuid"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority" validate:"required"`
}

// Decode implements the web.Decoder interface.
func (app *NewRequest) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewRequest) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewRequest(app NewRequest) (maintenancebus.NewRequest, error) {
	propertyID, err := uuid.Parse(app.PropertyID)
	if err != nil {
		return maintenancebus.NewRequest{}, fmt.Errorf("parse property id: %w", err)
	}

	var tenantID uuid.NullUUID
	if app.TenantID != "" {
		id, err := uuid.Parse(app.TenantID)
		if err != nil {
			return maintenancebus.NewRequest{}, fmt.Errorf("parse tenant id: %w", err)
		}
		tenantID = uuid.NullUUID{UUID: id, Valid: true}
	}

	priority, err := maintpriority.Parse(app.Priority)
	if err != nil {
		return maintenancebus.NewRequest{}, fmt.Errorf("parse priority: %w", err)
	}

	bus := maintenancebus.NewRequest{
		PropertyID:  propertyID,
		TenantID:    tenantID,
		Title:       app.Title,
		Description: app.Description,
		Priority:    priority,
	}

	return bus, nil
}

// =============================================================================

// UpdateRequest defines the data needed to update a maintenance request.
type UpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateRequest) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateRequest) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateRequest(app UpdateRequest) (maintenancebus.UpdateRequest, error) {
	var priority *maintpriority.Priority
	if app.Priority != nil {
		p, err := maintpriority.Parse(*app.Priority)
		if err != nil {
			return maintenancebus.UpdateRequest{}, fmt.Errorf("parse priority: %w", err)
		}
		priority = &p
	}

	var status *maintstatus.Status
	if app.Status != nil {
		st, err := maintstatus.Parse(*app.Status)
		if err != nil {
			return maintenancebus.UpdateRequest{}, fmt.Errorf("parse status: %w", err)
		}
		status = &st
	}

	bus := maintenancebus.UpdateRequest{
		Title:       app.Title,
		Description: app.Description,
		Priority:    priority,
		Status:      status,
	}

	return bus, nil
}
