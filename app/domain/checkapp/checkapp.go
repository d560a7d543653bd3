// Package checkapp provides the liveness and readiness endpoints used by
// orchestration probes.
package checkapp

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/business/sdk/sqldb"
	"github.com/hudsor01/tenantflow/business/sdk/web"
	"github.com/hudsor01/tenantflow/foundation/logger"
	"github.com/jmoiron/sqlx"
)

type app struct {
	build string
	log   *logger.Logger
	db    *sqlx.DB
}

func newApp(build string, log *logger.Logger, db *sqlx.DB) *app {
	return &app{
		build: build,
		log:   log,
		db:    db,
	}
}

// readiness checks if the database is ready and will fail the probe if not.
func (a *app) readiness(ctx context.Context, _ *http.Request) web.Encoder {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if err := sqldb.StatusCheck(ctx, a.db); err != nil {
		a.log.Info(ctx, "readiness failure", "err", err)
		return errs.New(errs.Internal, err)
	}

	return nil
}

// liveness returns status info if the service is alive. Failing this probe
// means the orchestrator should restart the service.
func (a *app) liveness(_ context.Context, _ *http.Request) web.Encoder {
	host, err := os.Hostname()
	if err != nil {
		host = "unavailable"
	}

	info := Info{
		Status:     "up",
		Build:      a.build,
		Host:       host,
		GoMaxProcs: runtime.GOMAXPROCS(0),
	}

	return info
}
