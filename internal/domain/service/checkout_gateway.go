// Package service defines interfaces for domain services provided by
// the infrastructure layer.
package service

import "context"

// CheckoutSessionInput carries the data needed to open a gateway
// checkout session for a parcel.
type CheckoutSessionInput struct {
	ParcelID    string
	ParcelName  string
	Cost        int64 // Major currency units; converted to minor units at the gateway.
	SenderEmail string
}

// CheckoutSession is the gateway's view of a created session.
type CheckoutSession struct {
	ID  string
	URL string
}

// SessionDetails is the authoritative session state fetched back from
// the gateway. The reconciler trusts only this, never the client's
// success redirect.
type SessionDetails struct {
	TransactionID string // The gateway's payment intent reference.
	PaymentStatus string // "paid" once money has actually moved.
	AmountTotal   int64  // Minor currency units.
	Currency      string
	CustomerEmail string
	ParcelID      string // From session metadata.
	ParcelName    string // From session metadata.
}

// Paid reports whether the gateway considers the session settled.
func (d *SessionDetails) Paid() bool {
	return d.PaymentStatus == "paid"
}

// CheckoutGateway abstracts the external payment gateway's session
// lifecycle.
type CheckoutGateway interface {
	// CreateSession opens a checkout session carrying the parcel
	// reference as metadata and returns the hosted payment URL.
	CreateSession(ctx context.Context, input CheckoutSessionInput) (*CheckoutSession, error)

	// RetrieveSession fetches the authoritative state of a previously
	// created session.
	RetrieveSession(ctx context.Context, sessionID string) (*SessionDetails, error)
}
