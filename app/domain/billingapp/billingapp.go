// Package billingapp maintains the app layer api for billing onboarding and
// the Stripe webhook.
package billingapp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/hudsor01/tenantflow/app/sdk/errs"
	"github.com/hudsor01/tenantflow/app/sdk/mid"
	"github.com/hudsor01/tenantflow/business/domain/leasebus"
	"github.com/hudsor01/tenantflow/business/domain/userbus"
	"github.com/hudsor01/tenantflow/business/sdk/billing"
	"github.com/hudsor01/tenantflow/business/sdk/web"
	"github.com/hudsor01/tenantflow/foundation/logger"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Stripe caps webhook payloads well below this; larger bodies are rejected
// before signature verification.
const maxWebhookBody = 1 << 16

type app struct {
	log           *logger.Logger
	userBus       *userbus.Core
	leaseBus      *leasebus.Core
	billing       billing.Client
	webhookSecret string
}

// newApp constructs a billing app API for use.
func newApp(log *logger.Logger, userBus *userbus.Core, leaseBus *leasebus.Core, billingClient billing.Client, webhookSecret string) *app {
	return &app{
		log:           log,
		userBus:       userBus,
		leaseBus:      leaseBus,
		billing:       billingClient,
		webhookSecret: webhookSecret,
	}
}

// linkAccount records the acting owner's Stripe connected account.
func (a *app) linkAccount(ctx context.Context, r *http.Request) web.Encoder {
	var app LinkAccount
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	usr, errResp := a.ownerFromContext(ctx)
	if errResp != nil {
		return errResp
	}

	uu := toBusLinkAccount(app)

	updUsr, err := a.userBus.Update(ctx, usr, uu)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "link account: userID[%s]: %s", usr.ID, err)
	}

	return toAppOnboarding(updUsr, billing.Account{})
}

// onboardingStatus reports the acting owner's connected account state. When
// Stripe reports the account fully onboarded the user record is updated so
// the invite workflow can verify without another remote call.
func (a *app) onboardingStatus(ctx context.Context, _ *http.Request) web.Encoder {
	usr, errResp := a.ownerFromContext(ctx)
	if errResp != nil {
		return errResp
	}

	if !usr.StripeAccountID.Valid || usr.StripeAccountID.String == "" {
		return toAppOnboarding(usr, billing.Account{})
	}

	acct, err := a.billing.RetrieveAccount(ctx, usr.StripeAccountID.String)
	if err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "retrieve account: userID[%s]: %s", usr.ID, err)
	}

	complete := acct.ChargesEnabled && acct.DetailsSubmitted
	if complete != usr.OnboardingComplete {
		updUsr, err := a.userBus.Update(ctx, usr, userbus.UpdateUser{OnboardingComplete: &complete})
		if err != nil {
			return errs.Errorf(errs.InternalOnlyLog, "update onboarding: userID[%s]: %s", usr.ID, err)
		}
		usr = updUsr
	}

	return toAppOnboarding(usr, acct)
}

// stripeWebhook receives events from Stripe. The signature is verified
// before anything is parsed. Unhandled event types are acknowledged so
// Stripe stops retrying them.
func (a *app) stripeWebhook(ctx context.Context, r *http.Request) web.Encoder {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), a.webhookSecret)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	switch event.Type {
	case "customer.subscription.deleted":
		return a.handleSubscriptionDeleted(ctx, event)
	default:
		a.log.Info(ctx, "stripe.webhook", "status", "ignored", "type", event.Type)
	}

	return nil
}

// handleSubscriptionDeleted terminates the lease billed by the deleted
// subscription. A subscription with no matching lease is acknowledged; the
// rollback path of the invite workflow cancels subscriptions whose lease is
// already gone.
func (a *app) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) web.Encoder {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	lse, err := a.leaseBus.QueryByStripeSubscription(ctx, sub.ID)
	if err != nil {
		if errors.Is(err, leasebus.ErrNotFound) {
			a.log.Info(ctx, "stripe.webhook", "status", "no lease", "subscription", sub.ID)
			return nil
		}
		return errs.Errorf(errs.InternalOnlyLog, "query lease: subscription[%s]: %s", sub.ID, err)
	}

	if _, err := a.leaseBus.Terminate(ctx, lse); err != nil {
		if errors.Is(err, leasebus.ErrInvalidTransition) {
			a.log.Info(ctx, "stripe.webhook", "status", "lease already closed", "leaseID", lse.ID)
			return nil
		}
		return errs.Errorf(errs.InternalOnlyLog, "terminate lease: leaseID[%s]: %s", lse.ID, err)
	}

	a.log.Info(ctx, "stripe.webhook", "status", "lease terminated", "leaseID", lse.ID, "subscription", sub.ID)

	return nil
}

func (a *app) ownerFromContext(ctx context.Context) (userbus.User, web.Encoder) {
	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return userbus.User{}, errs.Errorf(errs.Internal, "userID missing in context: %s", err)
	}

	usr, err := a.userBus.QueryByID(ctx, userID)
	if err != nil {
		return userbus.User{}, errs.Errorf(errs.InternalOnlyLog, "query user: userID[%s]: %s", userID, err)
	}

	return usr, nil
}
