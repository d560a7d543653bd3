// Package stripeclient implements the billing.Client interface against the
// Stripe API using connected accounts.
package stripeclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/hudsor01/tenantflow/business/sdk/billing"
	"github.com/hudsor01/tenantflow/foundation/logger"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// Stripe bills subscriptions on the 1st of the month.
const billingCycleAnchorDay = 1

// Client provides access to the Stripe API scoped per call to a connected
// account.
type Client struct {
	log *logger.Logger
	sc  *client.API
}

// New constructs a stripe client with the specified secret key.
func New(log *logger.Logger, apiKey string) *Client {
	sc := &client.API{}
	sc.Init(apiKey, nil)

	return &Client{
		log: log,
		sc:  sc,
	}
}

// CreateCustomer creates a customer under the specified connected account.
func (c *Client) CreateCustomer(ctx context.Context, account string, nc billing.NewCustomer) (billing.Customer, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(nc.Email),
		Name:  stripe.String(nc.Name),
	}
	params.Context = ctx
	params.SetStripeAccount(account)

	for k, v := range nc.Metadata {
		params.AddMetadata(k, v)
	}

	cus, err := c.sc.Customers.New(params)
	if err != nil {
		return billing.Customer{}, fmt.Errorf("stripe: create customer: %w", toBillingError(err))
	}

	return billing.Customer{
		ID:    cus.ID,
		Email: cus.Email,
	}, nil
}

// DeleteCustomer deletes a customer from the specified connected account.
func (c *Client) DeleteCustomer(ctx context.Context, account string, customerID string) error {
	params := &stripe.CustomerParams{}
	params.Context = ctx
	params.SetStripeAccount(account)

	if _, err := c.sc.Customers.Del(customerID, params); err != nil {
		return fmt.Errorf("stripe: delete customer[%s]: %w", customerID, toBillingError(err))
	}

	return nil
}

// CreateRecurringPrice creates a monthly recurring price under the specified
// connected account. The unit amount is in cents.
func (c *Client) CreateRecurringPrice(ctx context.Context, account string, np billing.NewPrice) (billing.Price, error) {
	params := &stripe.PriceParams{
		Currency:   stripe.String(np.Currency),
		UnitAmount: stripe.Int64(np.UnitAmount),
		Recurring: &stripe.PriceRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		},
		ProductData: &stripe.PriceProductDataParams{
			Name: stripe.String(np.ProductName),
		},
	}
	params.Context = ctx
	params.SetStripeAccount(account)

	price, err := c.sc.Prices.New(params)
	if err != nil {
		return billing.Price{}, fmt.Errorf("stripe: create price: %w", toBillingError(err))
	}

	return billing.Price{
		ID: price.ID,
	}, nil
}

// CreateSubscription creates a subscription for a customer/price pair under
// the specified connected account, anchored to bill on the 1st of the month.
// No application fee is applied.
func (c *Client) CreateSubscription(ctx context.Context, account string, ns billing.NewSubscription) (billing.Subscription, error) {
	params := &stripe.SubscriptionParams{
		Customer: stripe.String(ns.CustomerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(ns.PriceID)},
		},
		BillingCycleAnchorConfig: &stripe.SubscriptionBillingCycleAnchorConfigParams{
			DayOfMonth: stripe.Int64(billingCycleAnchorDay),
		},
		ProrationBehavior: stripe.String("none"),
	}
	params.Context = ctx
	params.SetStripeAccount(account)

	for k, v := range ns.Metadata {
		params.AddMetadata(k, v)
	}

	sub, err := c.sc.Subscriptions.New(params)
	if err != nil {
		return billing.Subscription{}, fmt.Errorf("stripe: create subscription: %w", toBillingError(err))
	}

	return billing.Subscription{
		ID:     sub.ID,
		Status: string(sub.Status),
	}, nil
}

// CancelSubscription cancels a subscription on the specified connected
// account.
func (c *Client) CancelSubscription(ctx context.Context, account string, subscriptionID string) error {
	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx
	params.SetStripeAccount(account)

	if _, err := c.sc.Subscriptions.Cancel(subscriptionID, params); err != nil {
		return fmt.Errorf("stripe: cancel subscription[%s]: %w", subscriptionID, toBillingError(err))
	}

	return nil
}

// RetrieveAccount reads the state of a connected account.
func (c *Client) RetrieveAccount(ctx context.Context, account string) (billing.Account, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	acct, err := c.sc.Accounts.GetByID(account, params)
	if err != nil {
		return billing.Account{}, fmt.Errorf("stripe: retrieve account[%s]: %w", account, toBillingError(err))
	}

	return billing.Account{
		ID:               acct.ID,
		ChargesEnabled:   acct.ChargesEnabled,
		DetailsSubmitted: acct.DetailsSubmitted,
	}, nil
}

// toBillingError maps stripe errors into the billing package error set where
// a mapping exists.
func toBillingError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return fmt.Errorf("%w: %s", billing.ErrNotFound, stripeErr.Msg)
		}
	}

	return err
}
