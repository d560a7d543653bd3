package tenantapp

import (
	"net/http"

	"github.com/hudsor01/tenantflow/app/sdk/auth"
	"github.com/hudsor01/tenantflow/app/sdk/mid"
	"github.com/hudsor01/tenantflow/business/domain/provisionbus"
	"github.com/hudsor01/tenantflow/business/domain/tenantbus"
	"github.com/hudsor01/tenantflow/business/sdk/web"
	"github.com/hudsor01/tenantflow/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth         *auth.Auth
	TenantBus    *tenantbus.Core
	ProvisionBus *provisionbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	ownerOnly := mid.Authorize(cfg.Auth, role.Admin, role.Owner)

	api := newApp(cfg.TenantBus, cfg.ProvisionBus)

	app.HandlerFunc(http.MethodGet, version, "/tenants", api.query, authen, ownerOnly)
	app.HandlerFunc(http.MethodGet, version, "/tenants/{tenant_id}", api.queryByID, authen, ownerOnly)
	app.HandlerFunc(http.MethodPost, version, "/tenants/invite", api.invite, authen, ownerOnly)
	app.HandlerFunc(http.MethodPut, version, "/tenants/{tenant_id}", api.update, authen, ownerOnly)
	app.HandlerFunc(http.MethodPut, version, "/tenants/{tenant_id}/accept", api.acceptInvitation, authen, ownerOnly)
	app.HandlerFunc(http.MethodDelete, version, "/tenants/{tenant_id}", api.delete, authen, ownerOnly)
}
