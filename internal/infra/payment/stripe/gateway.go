// Package stripe adapts the Stripe Checkout API to the domain's
// CheckoutGateway interface.
package stripe

import (
	"context"
	"log/slog"

	"zapshift/config"
	"zapshift/internal/domain/service"

	"github.com/pkg/errors"
	stripego "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
)

type checkoutGateway struct {
	cfg    *config.StripeConfig
	logger *slog.Logger
}

// NewCheckoutGateway is the constructor for the Stripe checkout gateway.
// It configures the package-level Stripe client with the secret key.
func NewCheckoutGateway(cfg *config.Config, logger *slog.Logger) (service.CheckoutGateway, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key is not configured")
	}

	stripego.Key = cfg.Stripe.SecretKey

	return &checkoutGateway{
		cfg:    cfg.Stripe,
		logger: logger,
	}, nil
}

// CreateSession opens a hosted checkout session for a parcel. The parcel
// id and name travel as session metadata so the reconciler can resolve
// the parcel when the session is confirmed.
func (g *checkoutGateway) CreateSession(ctx context.Context, input service.CheckoutSessionInput) (*service.CheckoutSession, error) {
	params := &stripego.CheckoutSessionParams{
		LineItems: []*stripego.CheckoutSessionLineItemParams{
			{
				PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
					Currency: stripego.String(g.cfg.Currency),
					// Gateway amounts are minor currency units.
					UnitAmount: stripego.Int64(input.Cost * 100),
					ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripego.String("Delivery payment for: " + input.ParcelName),
					},
				},
				Quantity: stripego.Int64(1),
			},
		},
		CustomerEmail: stripego.String(input.SenderEmail),
		Mode:          stripego.String(string(stripego.CheckoutSessionModePayment)),
		SuccessURL:    stripego.String(g.cfg.SuccessURL),
		CancelURL:     stripego.String(g.cfg.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("parcelId", input.ParcelID)
	params.AddMetadata("parcelName", input.ParcelName)

	checkoutSession, err := session.New(params)
	if err != nil {
		g.logger.Error("Failed to create checkout session",
			slog.String("parcelID", input.ParcelID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create checkout session")
	}

	g.logger.Info("Created checkout session",
		slog.String("sessionID", checkoutSession.ID),
		slog.String("parcelID", input.ParcelID))

	return &service.CheckoutSession{
		ID:  checkoutSession.ID,
		URL: checkoutSession.URL,
	}, nil
}

// RetrieveSession fetches the authoritative session state. The returned
// details are the single source of truth on whether money has moved.
func (g *checkoutGateway) RetrieveSession(ctx context.Context, sessionID string) (*service.SessionDetails, error) {
	params := &stripego.CheckoutSessionParams{}
	params.Context = ctx

	checkoutSession, err := session.Get(sessionID, params)
	if err != nil {
		g.logger.Error("Failed to retrieve checkout session",
			slog.String("sessionID", sessionID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to retrieve checkout session")
	}

	details := &service.SessionDetails{
		PaymentStatus: string(checkoutSession.PaymentStatus),
		AmountTotal:   checkoutSession.AmountTotal,
		Currency:      string(checkoutSession.Currency),
		CustomerEmail: checkoutSession.CustomerEmail,
		ParcelID:      checkoutSession.Metadata["parcelId"],
		ParcelName:    checkoutSession.Metadata["parcelName"],
	}
	if checkoutSession.PaymentIntent != nil {
		details.TransactionID = checkoutSession.PaymentIntent.ID
	}

	return details, nil
}
