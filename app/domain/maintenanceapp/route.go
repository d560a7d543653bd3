package maintenanceapp

import (
	"net/http"

	"github.com/hudsor01/tenantflow/app/sdk/auth"
	"github.com/hudsor01/tenantflow/app/sdk/mid"
	"github.com/hudsor01/tenantflow/business/domain/maintenancebus"
	"github.com/hudsor01/tenantflow/business/sdk/web"
	"github.com/hudsor01/tenantflow/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth           *auth.Auth
	MaintenanceBus *maintenancebus.Core
}

// Routes adds specific routes for this group. Tenants can raise and read
// requests; only admins and owners move them through the workflow.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	anyRole := mid.Authorize(cfg.Auth, role.Admin, role.Owner, role.Tenant)
	ownerOnly := mid.Authorize(cfg.Auth, role.Admin, role.Owner)

	api := newApp(cfg.MaintenanceBus)

	app.HandlerFunc(http.MethodGet, version, "/maintenance", api.query, authen, anyRole)
	app.HandlerFunc(http.MethodGet, version, "/maintenance/{request_id}", api.queryByID, authen, anyRole)
	app.HandlerFunc(http.MethodPost, version, "/maintenance", api.create, authen, anyRole)
	app.HandlerFunc(http.MethodPut, version, "/maintenance/{request_id}", api.update, authen, ownerOnly)
}
