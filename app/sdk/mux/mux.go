// Package mux provides support to bind domain level routes
// to the application mux.
package mux

import (
	"net/http"

	"github.com/hudsor01/tenantflow/app/sdk/auth"
	"github.com/hudsor01/tenantflow/app/sdk/mid"
	"github.com/hudsor01/tenantflow/business/sdk/web"
	"github.com/hudsor01/tenantflow/foundation/logger"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/trace"
)

// Options represent optional parameters.
type Options struct {
	corsOrigin []string
}

// WithCORS provides configuration options for CORS.
func WithCORS(origins []string) func(opts *Options) {
	return func(opts *Options) {
		opts.corsOrigin = origins
	}
}

// AuthConfig contains auth specific config.
type AuthConfig struct {
	KeyLookup auth.KeyLookup
	Issuer    string
	ActiveKID string
}

// StripeConfig contains Stripe specific config.
type StripeConfig struct {
	APIKey        string
	WebhookSecret string
}

// SupabaseConfig contains the identity provider specific config.
type SupabaseConfig struct {
	URL               string
	ServiceKey        string
	InviteRedirectURL string
}

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Build          string
	Log            *logger.Logger
	DB             *sqlx.DB
	Tracer         trace.Tracer
	AuthConfig     AuthConfig
	StripeConfig   StripeConfig
	SupabaseConfig SupabaseConfig
}

// RouteAdder defines behavior that sets the routes to bind for an instance
// of the service.
type RouteAdder interface {
	Add(app *web.App, cfg Config)
}

// WebAPI constructs a http.Handler with all application routes bound.
func WebAPI(cfg Config, routeAdder RouteAdder, options ...func(opts *Options)) http.Handler {
	app := web.NewApp(
		cfg.Log.Info,
		cfg.Tracer,
		mid.Otel(cfg.Tracer),
		mid.Logger(cfg.Log),
		mid.Errors(cfg.Log),
		mid.Metrics(),
		mid.Panics(),
	)

	var opts Options
	for _, option := range options {
		option(&opts)
	}

	if len(opts.corsOrigin) > 0 {
		app.EnableCORS(opts.corsOrigin)
	}

	routeAdder.Add(app, cfg)

	return app
}
