package userapp

import (
	"net/http"

	"github.com/hudsor01/tenantflow/app/sdk/auth"
	"github.com/hudsor01/tenantflow/app/sdk/mid"
	"github.com/hudsor01/tenantflow/business/domain/userbus"
	"github.com/hudsor01/tenantflow/business/sdk/web"
	"github.com/hudsor01/tenantflow/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth    *auth.Auth
	UserBus *userbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)

	api := newApp(cfg.UserBus)

	app.HandlerFunc(http.MethodGet, version, "/users", api.query, authen, mid.Authorize(cfg.Auth, role.Admin))
	app.HandlerFunc(http.MethodGet, version, "/users/{user_id}", api.queryByID, authen, mid.AuthorizeUser(cfg.Auth, cfg.UserBus))
	app.HandlerFunc(http.MethodPost, version, "/users", api.create, authen, mid.Authorize(cfg.Auth, role.Admin))
	app.HandlerFunc(http.MethodPut, version, "/users/{user_id}/role", api.updateRole, authen, mid.Authorize(cfg.Auth, role.Admin))
	app.HandlerFunc(http.MethodPut, version, "/me", api.update, authen)
	app.HandlerFunc(http.MethodDelete, version, "/me", api.delete, authen)
}
