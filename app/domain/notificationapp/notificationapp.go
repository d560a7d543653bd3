// Package notificationapp maintains the app layer api for the notification
// domain. Users only ever see their own notifications.
package notificationapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/app/sdk/mid"
	"github.com/hudsor01/tenantflow/app/sdk/query"
	"github.com/hudsor01/tenantflow/business/domain/notificationbus"
	"github.com/hudsor01/tenantflow/business/sdk/order"
	"github.com/hudsor01/tenantflow/business/sdk/page"
	"github.com/hudsor01/tenantflow/business/sdk/web"
)

type app struct {
	notificationBus *notificationbus.Core
}

// newApp constructs a notification app API for use.
func newApp(notificationBus *notificationbus.Core) *app {
	return &app{
		notificationBus: notificationBus,
	}
}

// query returns the authenticated user's notifications with paging.
func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	page, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	filter, err := parseFilter(qp)
	if err != nil {
		if v, ok := err.(*errs.Error); ok {
			return v
		}
		return errs.NewFieldErrors("filter", err)
	}

	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "userID missing in context: %s", err)
	}
	filter.UserID = &userID

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, notificationbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	ntfs, err := a.notificationBus.Query(ctx, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.notificationBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppNotifications(ntfs), total, page)
}

// markRead marks one of the authenticated user's notifications read.
func (a *app) markRead(ctx context.Context, r *http.Request) web.Encoder {
	ntf, errResp := a.notificationFromRequest(ctx, r)
	if errResp != nil {
		return errResp
	}

	updNtf, err := a.notificationBus.MarkRead(ctx, ntf)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "markread: notificationID[%s]: %s", ntf.ID, err)
	}

	return toAppNotification(updNtf)
}

// delete removes one of the authenticated user's notifications.
func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	ntf, errResp := a.notificationFromRequest(ctx, r)
	if errResp != nil {
		return errResp
	}

	if err := a.notificationBus.Delete(ctx, ntf); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: notificationID[%s]: %s", ntf.ID, err)
	}

	return nil
}

func (a *app) notificationFromRequest(ctx context.Context, r *http.Request) (notificationbus.Notification, web.Encoder) {
	id := web.Param(r, "notification_id")
	notificationID, err := uuid.Parse(id)
	if err != nil {
		return notificationbus.Notification{}, errs.NewFieldErrors("notification_id", err)
	}

	ntf, err := a.notificationBus.QueryByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, notificationbus.ErrNotFound) {
			return notificationbus.Notification{}, errs.New(errs.NotFound, err)
		}
		return notificationbus.Notification{}, errs.Errorf(errs.InternalOnlyLog, "query: notificationID[%s]: %s", notificationID, err)
	}

	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return notificationbus.Notification{}, errs.Errorf(errs.Internal, "userID missing in context: %s", err)
	}

	if ntf.UserID != userID {
		return notificationbus.Notification{}, errs.New(errs.PermissionDenied, errors.New("not the notification owner"))
	}

	return ntf, nil
}
