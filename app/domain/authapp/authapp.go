// Package authapp provides the login endpoint that exchanges credentials
// for a signed token.
package authapp

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"

	"github.com/hudsor01/tenantflow/app/sdk/auth"
	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/business/sdk/web"
)

type app struct {
	auth      *auth.Auth
	activeKID string
}

// newApp constructs an auth app API for use.
func newApp(auth *auth.Auth, activeKID string) *app {
	return &app{
		auth:      auth,
		activeKID: activeKID,
	}
}

func (a *app) login(ctx context.Context, r *http.Request) web.Encoder {
	var req Login

	if err := web.Decode(r, &req); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	addr, err := mail.ParseAddress(req.Email)
	if err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("parsing email: %w", err))
	}

	usr, err := a.auth.Login(ctx, *addr, req.Password)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	tokenStr, err := a.auth.GenerateToken(a.activeKID, usr.ID, usr.Role)
	if err != nil {
		return errs.New(errs.Internal, err)
	}

	return toAppToken(tokenStr)
}
