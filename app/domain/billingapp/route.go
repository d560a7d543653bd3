package billingapp

import (
	"net/http"

	"github.com/hudsor01/tenantflow/app/sdk/auth"
	"github.com/hudsor01/tenantflow/app/sdk/mid"
	"github.com/hudsor01/tenantflow/business/domain/leasebus"
	"github.com/hudsor01/tenantflow/business/domain/userbus"
	"github.com/hudsor01/tenantflow/business/sdk/billing"
	"github.com/hudsor01/tenantflow/business/sdk/web"
	"github.com/hudsor01/tenantflow/business/types/role"
	"github.com/hudsor01/tenantflow/foundation/logger"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log           *logger.Logger
	Auth          *auth.Auth
	UserBus       *userbus.Core
	LeaseBus      *leasebus.Core
	Billing       billing.Client
	WebhookSecret string
}

// Routes adds specific routes for this group. The webhook authenticates via
// the Stripe signature header, not a bearer token.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	ownerOnly := mid.Authorize(cfg.Auth, role.Admin, role.Owner)

	api := newApp(cfg.Log, cfg.UserBus, cfg.LeaseBus, cfg.Billing, cfg.WebhookSecret)

	app.HandlerFunc(http.MethodGet, version, "/billing/onboarding", api.onboardingStatus, authen, ownerOnly)
	app.HandlerFunc(http.MethodPost, version, "/billing/account", api.linkAccount, authen, ownerOnly)
	app.HandlerFunc(http.MethodPost, version, "/billing/webhook", api.stripeWebhook)
}
