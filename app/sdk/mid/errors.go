package mid

import (
	"context"
	"net/http"

	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/app/sdk/metrics"
	"github.com/hudsor01/tenantflow/business/sdk/web"
	"github.com/hudsor01/tenantflow/foundation/logger"
)

// Errors handles errors coming out of the call chain. It detects normal
// application errors which are used to respond to the client in a uniform way.
// Unexpected errors (status >= 500) are logged.
func Errors(log *logger.Logger) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			resp := next(ctx, r)

			err := checkIsError(resp)
			if err == nil {
				return resp
			}

			_ = metrics.AddErrors(ctx)

			var appErr *errs.Error

			switch v := err.(type) {
			case *errs.Error:
				appErr = v

			case errs.FieldErrors:
				return v

			default:
				appErr = errs.Newf(errs.Internal, "%s", err)
			}

			log.Error(ctx, "handled error during request",
				"err", appErr.Message,
				"source_err_file", appErr.FileName,
				"source_err_func", appErr.FuncName)

			if appErr.Code == errs.InternalOnlyLog {
				appErr = errs.Newf(errs.Internal, "internal server error")
			}

			return appErr
		}

		return h
	}

	return m
}
