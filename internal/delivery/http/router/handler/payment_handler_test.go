package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "zapshift/internal/delivery/context"
	"zapshift/internal/delivery/http/validator"
	"zapshift/internal/domain/entity"
	mockUsecase "zapshift/internal/mocks/usecase"
	"zapshift/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaymentTestContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPaymentHandler_ConfirmPayment_RecordsPayment(t *testing.T) {
	uc := mockUsecase.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(uc, slog.New(slog.DiscardHandler))

	uc.EXPECT().
		ConfirmPayment(
			mock.Anything, &usecase.ConfirmPaymentInput{SessionID: "cs_test_123"},
		).
		Return(&usecase.ConfirmPaymentOutput{
			Paid:       true,
			TrackingID: "ZAP-20250101-ABCDEF",
			Payment:    &entity.Payment{TransactionID: "pi_1"},
		}, nil)

	c, rec := newPaymentTestContext(t, http.MethodPatch, "/payments/confirm?session_id=cs_test_123", "")

	require.NoError(t, h.ConfirmPayment(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "ZAP-20250101-ABCDEF")
}

func TestPaymentHandler_ConfirmPayment_AlreadyRecorded(t *testing.T) {
	uc := mockUsecase.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(uc, slog.New(slog.DiscardHandler))

	uc.EXPECT().
		ConfirmPayment(
			mock.Anything, &usecase.ConfirmPaymentInput{SessionID: "cs_test_123"},
		).
		Return(&usecase.ConfirmPaymentOutput{
			Paid:              true,
			AlreadyReconciled: true,
			TrackingID:        "ZAP-20250101-ABCDEF",
			Payment:           &entity.Payment{TransactionID: "pi_1"},
		}, nil)

	c, rec := newPaymentTestContext(t, http.MethodPatch, "/payments/confirm?session_id=cs_test_123", "")

	require.NoError(t, h.ConfirmPayment(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "already recorded")
}

func TestPaymentHandler_ConfirmPayment_MissingSessionID(t *testing.T) {
	uc := mockUsecase.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(uc, slog.New(slog.DiscardHandler))

	c, rec := newPaymentTestContext(t, http.MethodPatch, "/payments/confirm", "")

	require.NoError(t, h.ConfirmPayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentHandler_CreateCheckoutSession(t *testing.T) {
	uc := mockUsecase.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(uc, slog.New(slog.DiscardHandler))

	uc.EXPECT().
		CreateCheckoutSession(
			mock.Anything,
			&usecase.CreateCheckoutSessionInput{ParcelID: "7e46f3a4-5ee6-44b4-9bbf-2f8a2c2e3a01"},
		).
		Return(&usecase.CheckoutSessionOutput{
			SessionID: "cs_test_123",
			URL:       "https://checkout.stripe.com/c/pay/cs_test_123",
		}, nil)

	c, rec := newPaymentTestContext(t, http.MethodPost, "/payments/checkout-session",
		`{"parcelId":"7e46f3a4-5ee6-44b4-9bbf-2f8a2c2e3a01"}`)

	require.NoError(t, h.CreateCheckoutSession(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "cs_test_123")
}

func TestPaymentHandler_CreateCheckoutSession_EmptyBody(t *testing.T) {
	uc := mockUsecase.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(uc, slog.New(slog.DiscardHandler))

	c, rec := newPaymentTestContext(t, http.MethodPost, "/payments/checkout-session", `{}`)

	require.NoError(t, h.CreateCheckoutSession(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentHandler_ListPayments_UsesVerifiedEmail(t *testing.T) {
	uc := mockUsecase.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(uc, slog.New(slog.DiscardHandler))

	uc.EXPECT().
		ListPayments(mock.Anything, &usecase.ListPaymentsInput{
			Email:          "me@example.com",
			RequesterEmail: "me@example.com",
		}).
		Return([]*entity.Payment{{TransactionID: "pi_1", CustomerEmail: "me@example.com"}}, nil)

	c, rec := newPaymentTestContext(t, http.MethodGet, "/payments?email=me@example.com", "")
	ctx := deliverycontext.WithVerifiedEmail(c.Request().Context(), "me@example.com")
	c.SetRequest(c.Request().WithContext(ctx))

	require.NoError(t, h.ListPayments(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pi_1")
}
