package leaseapp

import (
	"net/http"

	"github.com/hudsor01/tenantflow/app/sdk/auth"
	"github.com/hudsor01/tenantflow/app/sdk/mid"
	"github.com/hudsor01/tenantflow/business/domain/leasebus"
	"github.com/hudsor01/tenantflow/business/sdk/web"
	"github.com/hudsor01/tenantflow/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth     *auth.Auth
	LeaseBus *leasebus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	ownerOnly := mid.Authorize(cfg.Auth, role.Admin, role.Owner)

	api := newApp(cfg.LeaseBus)

	app.HandlerFunc(http.MethodGet, version, "/leases", api.query, authen, ownerOnly)
	app.HandlerFunc(http.MethodGet, version, "/leases/{lease_id}", api.queryByID, authen, ownerOnly)
	app.HandlerFunc(http.MethodPut, version, "/leases/{lease_id}", api.update, authen, ownerOnly)
	app.HandlerFunc(http.MethodPut, version, "/leases/{lease_id}/activate", api.activate, authen, ownerOnly)
	app.HandlerFunc(http.MethodPut, version, "/leases/{lease_id}/terminate", api.terminate, authen, ownerOnly)
}
