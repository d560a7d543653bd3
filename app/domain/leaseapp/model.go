package leaseapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/business/domain/leasebus"
	"github.com/hudsor01/tenantflow/business/types/leasestatus"
	"github.com/hudsor01/tenantflow/business/types/money"
)

// Lease represents information about an individual lease. Amounts are
// integer cents.
type Lease struct {
	ID                   string `json:"id"`
	TenantID             string `json:"tenantId"`
	PropertyID           string `json:"propertyId"`
	UnitID               string `json:"unitId,omitempty"`
	RentAmount           int64  `json:"rentAmount"`
	SecurityDeposit      int64  `json:"securityDeposit"`
	StartDate            string `json:"startDate"`
	EndDate              string `json:"endDate"`
	Status               string `json:"status"`
	StripeSubscriptionID string `json:"stripeSubscriptionId,omitempty"`
	DateCreated          string `json:"dateCreated"`
	DateUpdated          string `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (l Lease) Encode() ([]byte, string, error) {
	data, err := json.Marshal(l)
	return data, "application/json", err
}

func toAppLease(bus leasebus.Lease) Lease {
	app := Lease{
		ID:                   bus.ID.String(),
		TenantID:             bus.TenantID.String(),
		PropertyID:           bus.PropertyID.String(),
		RentAmount:           bus.RentAmount.Value(),
		SecurityDeposit:      bus.SecurityDeposit.Value(),
		StartDate:            bus.StartDate.Format(time.DateOnly),
		EndDate:              bus.EndDate.Format(time.DateOnly),
		Status:               bus.Status.String(),
		StripeSubscriptionID: bus.StripeSubscriptionID.String,
		DateCreated:          bus.CreatedAt.Format(time.RFC3339),
		DateUpdated:          bus.UpdatedAt.Format(time.RFC3339),
	}

	if bus.UnitID.Valid {
		app.UnitID = bus.UnitID.UUID.String()
	}

	return app
}

func toAppLeases(lses []leasebus.Lease) []Lease {
	app := make([]Lease, len(lses))
	for i, lse := range lses {
		app[i] = toAppLease(lse)
	}
	return app
}

// =============================================================================

// UpdateLease defines the data needed to update a lease.
type UpdateLease struct {
	RentAmount      *int64  `json:"rentAmount" validate:"omitempty,gt=0"`
	SecurityDeposit *int64  `json:"securityDeposit" validate:"omitempty,gte=0"`
	StartDate       *string `json:"startDate"`
	EndDate         *string `json:"endDate"`
	Status          *string `json:"status"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateLease) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateLease) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateLease(app UpdateLease) (leasebus.UpdateLease, error) {
	var rent *money.Amount
	if app.RentAmount != nil {
		amt, err := money.Parse(*app.RentAmount)
		if err != nil {
			return leasebus.UpdateLease{}, fmt.Errorf("parse rent amount: %w", err)
		}
		rent = &amt
	}

	var deposit *money.Amount
	if app.SecurityDeposit != nil {
		amt, err := money.Parse(*app.SecurityDeposit)
		if err != nil {
			return leasebus.UpdateLease{}, fmt.Errorf("parse security deposit: %w", err)
		}
		deposit = &amt
	}

	var start *time.Time
	if app.StartDate != nil {
		t, err := time.Parse(time.DateOnly, *app.StartDate)
		if err != nil {
			return leasebus.UpdateLease{}, fmt.Errorf("parse start date: %w", err)
		}
		start = &t
	}

	var end *time.Time
	if app.EndDate != nil {
		t, err := time.Parse(time.DateOnly, *app.EndDate)
		if err != nil {
			return leasebus.UpdateLease{}, fmt.Errorf("parse end date: %w", err)
		}
		end = &t
	}

	var status *leasestatus.Status
	if app.Status != nil {
		st, err := leasestatus.Parse(*app.Status)
		if err != nil {
			return leasebus.UpdateLease{}, fmt.Errorf("parse status: %w", err)
		}
		status = &st
	}

	bus := leasebus.UpdateLease{
		RentAmount:      rent,
		SecurityDeposit: deposit,
		StartDate:       start,
		EndDate:         end,
		Status:          status,
	}

	return bus, nil
}
