package propertyapp

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/business/domain/propertybus"
	"github.com/hudsor01/tenantflow/business/types/name"
)

// Property represents information about an individual property.
type Property struct {
	ID           string `json:"id"`
	OwnerID      string `json:"ownerId"`
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	DateCreated  string `json:"dateCreated"`
	DateUpdated  string `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (p Property) Encode() ([]byte, string, error) {
	data, err := json.Marshal(p)
	return data, "application/json", err
}

func toAppProperty(bus propertybus.Property) Property {
	return Property{
		ID:           bus.ID.String(),
		OwnerID:      bus.OwnerID.String(),
		Name:         bus.Name.String(),
		AddressLine1: bus.AddressLine1,
		AddressLine2: bus.AddressLine2.String,
		City:         bus.City,
		State:        bus.State,
		PostalCode:   bus.PostalCode,
		DateCreated:  bus.CreatedAt.Format(time.RFC3339),
		DateUpdated:  bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppProperties(prps []propertybus.Property) []Property {
	app := make([]Property, len(prps))
	for i, prp := range prps {
		app[i] = toAppProperty(prp)
	}
	return app
}

// =============================================================================

// NewProperty defines the data needed to add a new property.
type NewProperty struct {
	Name         string `json:"name" validate:"required"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	PostalCode   string `json:"postalCode" validate:"required"`
}

// Decode implements the web.Decoder interface.
func (app *NewProperty) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewProperty) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewProperty(app NewProperty, ownerID uuid.UUID) (propertybus.NewProperty, error) {
	nme, err := name.Parse(app.Name)
	if err != nil {
		return propertybus.NewProperty{}, fmt.Errorf("parse name: %w", err)
	}

	bus := propertybus.NewProperty{
		OwnerID:      ownerID,
		Name:         nme,
		AddressLine1: app.AddressLine1,
		AddressLine2: sql.NullString{String: app.AddressLine2, Valid: app.AddressLine2 != ""},
		City:         app.City,
		State:        app.State,
		PostalCode:   app.PostalCode,
	}

	return bus, nil
}

// =============================================================================

// UpdateProperty defines the data needed to update a property.
type UpdateProperty struct {
	Name         *string `json:"name"`
	AddressLine1 *string `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PostalCode   *string `json:"postalCode"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateProperty) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateProperty) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateProperty(app UpdateProperty) (propertybus.UpdateProperty, error) {
	var nme *name.Name
	if app.Name != nil {
		nm, err := name.Parse(*app.Name)
		if err != nil {
			return propertybus.UpdateProperty{}, fmt.Errorf("parse name: %w", err)
		}
		nme = &nm
	}

	var addr2 *sql.NullString
	if app.AddressLine2 != nil {
		addr2 = &sql.NullString{String: *app.AddressLine2, Valid: *app.AddressLine2 != ""}
	}

	bus := propertybus.UpdateProperty{
		Name:         nme,
		AddressLine1: app.AddressLine1,
		AddressLine2: addr2,
		City:         app.City,
		State:        app.State,
		PostalCode:   app.PostalCode,
	}

	return bus, nil
}
