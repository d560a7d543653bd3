package billingapp

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/business/domain/userbus"
	"github.com/hudsor01/tenantflow/business/sdk/billing"
)

// Onboarding reports the owner's connected account state.
type Onboarding struct {
	StripeAccountID    string `json:"stripeAccountId,omitempty"`
	OnboardingComplete bool   `json:"onboardingComplete"`
	ChargesEnabled     bool   `json:"chargesEnabled"`
	DetailsSubmitted   bool   `json:"detailsSubmitted"`
}

// Encode implements the web.Encoder interface.
func (o Onboarding) Encode() ([]byte, string, error) {
	data, err := json.Marshal(o)
	return data, "application/json", err
}

func toAppOnboarding(usr userbus.User, acct billing.Account) Onboarding {
	return Onboarding{
		StripeAccountID:    usr.StripeAccountID.String,
		OnboardingComplete: usr.OnboardingComplete,
		ChargesEnabled:     acct.ChargesEnabled,
		DetailsSubmitted:   acct.DetailsSubmitted,
	}
}

// =============================================================================

// LinkAccount defines the data needed to link a Stripe connected account.
type LinkAccount struct {
	StripeAccountID string `json:"stripeAccountId" validate:"required,startswith=acct_"`
}

// Decode implements the web.Decoder interface.
func (app *LinkAccount) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app LinkAccount) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusLinkAccount(app LinkAccount) userbus.UpdateUser {
	return userbus.UpdateUser{
		StripeAccountID: &sql.NullString{String: app.StripeAccountID, Valid: true},
	}
}
