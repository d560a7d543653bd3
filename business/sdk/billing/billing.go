// Package billing defines the behavior the business layer needs from the
// remote billing provider. Customers, prices and subscriptions are always
// scoped to the property owner's connected account.
package billing

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the provider reports the referenced remote
// object does not exist.
var ErrNotFound = errors.New("billing object not found")

// Customer represents a remote billing customer.
type Customer struct {
	ID    string
	Email string
}

// NewCustomer contains the information needed to create a remote customer.
type NewCustomer struct {
	Email    string
	Name     string
	Metadata map[string]string
}

// Price represents a remote recurring price.
type Price struct {
	ID string
}

// NewPrice contains the information needed to create a monthly recurring
// price. UnitAmount is in the smallest currency unit (cents).
type NewPrice struct {
	Currency    string
	UnitAmount  int64
	ProductName string
}

// Subscription represents a remote recurring subscription.
type Subscription struct {
	ID     string
	Status string
}

// NewSubscription contains the information needed to create a subscription
// for a customer/price pair. Billing is anchored to the 1st of the month and
// no platform fee is applied.
type NewSubscription struct {
	CustomerID string
	PriceID    string
	Metadata   map[string]string
}

// Account reports the state of an owner's connected account.
type Account struct {
	ID               string
	ChargesEnabled   bool
	DetailsSubmitted bool
}

// Client declares the behavior required to interact with the billing
// provider. All calls are scoped to a connected account.
type Client interface {
	CreateCustomer(ctx context.Context, account string, nc NewCustomer) (Customer, error)
	DeleteCustomer(ctx context.Context, account string, customerID string) error
	CreateRecurringPrice(ctx context.Context, account string, np NewPrice) (Price, error)
	CreateSubscription(ctx context.Context, account string, ns NewSubscription) (Subscription, error)
	CancelSubscription(ctx context.Context, account string, subscriptionID string) error
	RetrieveAccount(ctx context.Context, account string) (Account, error)
}
