// Package all binds all the routes into the specified app.
package all

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/app/domain/authapp"
	"github.com/hudsor01/tenantflow/app/domain/billingapp"
	"github.com/hudsor01/tenantflow/app/domain/checkapp"
	"github.com/hudsor01/tenantflow/app/domain/leaseapp"
	"github.com/hudsor01/tenantflow/app/domain/maintenanceapp"
	"github.com/hudsor01/tenantflow/app/domain/notificationapp"
	"github.com/hudsor01/tenantflow/app/domain/propertyapp"
	"github.com/hudsor01/tenantflow/app/domain/tenantapp"
	"github.com/hudsor01/tenantflow/app/domain/userapp"
	"github.com/hudsor01/tenantflow/app/sdk/auth"
	"github.com/hudsor01/tenantflow/app/sdk/mux"
	"github.com/hudsor01/tenantflow/business/domain/leasebus"
	"github.com/hudsor01/tenantflow/business/domain/leasebus/stores/leasedb"
	"github.com/hudsor01/tenantflow/business/domain/maintenancebus"
	"github.com/hudsor01/tenantflow/business/domain/maintenancebus/stores/maintenancedb"
	"github.com/hudsor01/tenantflow/business/domain/notificationbus"
	"github.com/hudsor01/tenantflow/business/domain/notificationbus/stores/notificationdb"
	"github.com/hudsor01/tenantflow/business/domain/propertybus"
	"github.com/hudsor01/tenantflow/business/domain/propertybus/stores/propertydb"
	"github.com/hudsor01/tenantflow/business/domain/provisionbus"
	"github.com/hudsor01/tenantflow/business/domain/tenantbus"
	"github.com/hudsor01/tenantflow/business/domain/tenantbus/stores/tenantdb"
	"github.com/hudsor01/tenantflow/business/domain/userbus"
	"github.com/hudsor01/tenantflow/business/domain/userbus/stores/usercache"
	"github.com/hudsor01/tenantflow/business/domain/userbus/stores/userdb"
	"github.com/hudsor01/tenantflow/business/sdk/billing/stripeclient"
	"github.com/hudsor01/tenantflow/business/sdk/delegate"
	"github.com/hudsor01/tenantflow/business/sdk/identity/supabase"
	"github.com/hudsor01/tenantflow/business/sdk/web"
)

// Routes constructs the add value which provides the implementation of
// of RouteAdder for specifying what routes to bind to this instance.
func Routes() add {
	return add{}
}

type add struct{}

func (add) Add(app *web.App, cfg mux.Config) {
	dlg := delegate.New(cfg.Log)

	userBus := userbus.NewCore(usercache.NewStore(cfg.Log, userdb.NewStore(cfg.Log, cfg.DB), time.Minute*5))
	propertyBus := propertybus.NewCore(propertydb.NewStore(cfg.Log, cfg.DB))
	tenantBus := tenantbus.NewCore(tenantdb.NewStore(cfg.Log, cfg.DB))
	leaseBus := leasebus.NewCore(leasedb.NewStore(cfg.Log, cfg.DB))
	maintenanceBus := maintenancebus.NewCore(dlg, maintenancedb.NewStore(cfg.Log, cfg.DB))
	notificationBus := notificationbus.NewCore(dlg, propertyOwners{propertyBus}, notificationdb.NewStore(cfg.Log, cfg.DB))

	stripeClient := stripeclient.New(cfg.Log, cfg.StripeConfig.APIKey)
	identityClient := supabase.New(cfg.Log, cfg.SupabaseConfig.URL, cfg.SupabaseConfig.ServiceKey)

	provisionBus := provisionbus.NewCore(provisionbus.Config{
		Log:               cfg.Log,
		Tenants:           tenantBus,
		Leases:            leaseBus,
		Owners:            userBus,
		Billing:           stripeClient,
		Identity:          identityClient,
		InviteRedirectURL: cfg.SupabaseConfig.InviteRedirectURL,
	})

	authClient := auth.New(auth.Config{
		Log:       cfg.Log,
		UserBus:   userBus,
		KeyLookup: cfg.AuthConfig.KeyLookup,
		Issuer:    cfg.AuthConfig.Issuer,
	})

	checkapp.Routes(app, checkapp.Config{
		Build: cfg.Build,
		Log:   cfg.Log,
		DB:    cfg.DB,
	})

	authapp.Routes(app, authapp.Config{
		Auth:      authClient,
		ActiveKID: cfg.AuthConfig.ActiveKID,
	})

	userapp.Routes(app, userapp.Config{
		Auth:    authClient,
		UserBus: userBus,
	})

	propertyapp.Routes(app, propertyapp.Config{
		Auth:        authClient,
		PropertyBus: propertyBus,
	})

	tenantapp.Routes(app, tenantapp.Config{
		Auth:         authClient,
		TenantBus:    tenantBus,
		ProvisionBus: provisionBus,
	})

	leaseapp.Routes(app, leaseapp.Config{
		Auth:     authClient,
		LeaseBus: leaseBus,
	})

	maintenanceapp.Routes(app, maintenanceapp.Config{
		Auth:           authClient,
		MaintenanceBus: maintenanceBus,
	})

	notificationapp.Routes(app, notificationapp.Config{
		Auth:            authClient,
		NotificationBus: notificationBus,
	})

	billingapp.Routes(app, billingapp.Config{
		Log:           cfg.Log,
		Auth:          authClient,
		UserBus:       userBus,
		LeaseBus:      leaseBus,
		Billing:       stripeClient,
		WebhookSecret: cfg.StripeConfig.WebhookSecret,
	})
}

// propertyOwners resolves the owning user for a property so notifications
// raised against a property reach the right inbox.
type propertyOwners struct {
	bus *propertybus.Core
}

func (p propertyOwners) QueryOwnerID(ctx context.Context, propertyID uuid.UUID) (uuid.UUID, error) {
	prp, err := p.bus.QueryByID(ctx, propertyID)
	if err != nil {
		return uuid.UUID{}, err
	}

	return prp.OwnerID, nil
}
