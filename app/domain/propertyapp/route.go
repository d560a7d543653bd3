package propertyapp

import (
	"net/http"

	"github.com/hudsor01/tenantflow/app/sdk/auth"
	"github.com/hudsor01/tenantflow/app/sdk/mid"
	"github.com/hudsor01/tenantflow/business/domain/propertybus"
	"github.com/hudsor01/tenantflow/business/sdk/web"
	"github.com/hudsor01/tenantflow/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth        *auth.Auth
	PropertyBus *propertybus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	ownerOnly := mid.Authorize(cfg.Auth, role.Admin, role.Owner)

	api := newApp(cfg.PropertyBus)

	app.HandlerFunc(http.MethodGet, version, "/properties", api.query, authen, ownerOnly)
	app.HandlerFunc(http.MethodGet, version, "/properties/{property_id}", api.queryByID, authen, ownerOnly)
	app.HandlerFunc(http.MethodPost, version, "/properties", api.create, authen, ownerOnly)
	app.HandlerFunc(http.MethodPut, version, "/properties/{property_id}", api.update, authen, ownerOnly)
	app.HandlerFunc(http.MethodDelete, version, "/properties/{property_id}", api.delete, authen, ownerOnly)
}
