package mid

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/app/sdk/auth"
	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/business/domain/userbus"
	"github.com/hudsor01/tenantflow/business/sdk/web"
	"github.com/hudsor01/tenantflow/business/types/role"
)

// ErrInvalidID represents a condition where the id is not in a valid form.
var ErrInvalidID = errors.New("ID is not in its proper form")

// AuthorizeUser loads the user identified by the user_id path parameter
// into the context. Admins can access any user, everyone else only
// themselves.
func AuthorizeUser(ath *auth.Auth, userBus *userbus.Core) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			id := web.Param(r, "user_id")

			userID, err := uuid.Parse(id)
			if err != nil {
				return errs.New(errs.Unauthenticated, ErrInvalidID)
			}

			usr, err := userBus.QueryByID(ctx, userID)
			if err != nil {
				switch {
				case errors.Is(err, userbus.ErrNotFound):
					return errs.New(errs.Unauthenticated, err)
				default:
					return errs.Errorf(errs.Unauthenticated, "querybyid: userID[%s]: %s", userID, err)
				}
			}

			claims := GetClaims(ctx)
			if claims.Role != role.Admin.String() && claims.Subject != userID.String() {
				return errs.New(errs.PermissionDenied, auth.ErrForbidden)
			}

			ctx = setUser(ctx, usr)

			return next(ctx, r)
		}

		return h
	}

	return m
}
