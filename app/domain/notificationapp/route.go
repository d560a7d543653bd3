package notificationapp

import (
	"net/http"

	"github.com/hudsor01/tenantflow/app/sdk/auth"
	"github.com/hudsor01/tenantflow/app/sdk/mid"
	"github.com/hudsor01/tenantflow/business/domain/notificationbus"
	"github.com/hudsor01/tenantflow/business/sdk/web"
	"github.com/hudsor01/tenantflow/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth            *auth.Auth
	NotificationBus *notificationbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	anyRole := mid.Authorize(cfg.Auth, role.Admin, role.Owner, role.Tenant)

	api := newApp(cfg.NotificationBus)

	app.HandlerFunc(http.MethodGet, version, "/notifications", api.query, authen, anyRole)
	app.HandlerFunc(http.MethodPut, version, "/notifications/{notification_id}/read", api.markRead, authen, anyRole)
	app.HandlerFunc(http.MethodDelete, version, "/notifications/{notification_id}", api.delete, authen, anyRole)
}
