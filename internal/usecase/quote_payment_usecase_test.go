package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"carrozzeria/internal/domain/entities"
	mock_interfaces "carrozzeria/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	repo    *mock_interfaces.MockIQuotePaymentRepository
	quotes  *mock_interfaces.MockIQuoteRepository
	gateway *mock_interfaces.MockIPaymentGateway
}

func newQuotePaymentUseCase(t *testing.T) (*QuotePaymentUseCase, paymentMocks) {
	return newQuotePaymentUseCaseWith(t, PaymentSettings{})
}

func newQuotePaymentUseCaseWith(t *testing.T, settings PaymentSettings) (*QuotePaymentUseCase, paymentMocks) {
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		repo:    mock_interfaces.NewMockIQuotePaymentRepository(ctrl),
		quotes:  mock_interfaces.NewMockIQuoteRepository(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	return NewQuotePaymentUseCase(m.repo, m.quotes, m.gateway, settings), m
}

var acceptedQuote = entities.Quote{ID: "q-1", Number: "PRV-2026-001", Status: entities.QuoteStatusAccepted, Total: 85.4}

func TestQuotePaymentUseCase_Pay_Validations(t *testing.T) {
	t.Run("empty quote id", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil, PaymentSettings{})
		if _, err := uc.Pay(context.Background(), " ", nil); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil, PaymentSettings{})
		if _, err := uc.Pay(context.Background(), "q-1", json.RawMessage(`{`)); !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewQuotePaymentUseCase(nil, nil, nil, PaymentSettings{})
		if _, err := uc.Pay(context.Background(), "q-1", nil); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		uc, m := newQuotePaymentUseCase(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		if _, err := uc.Pay(context.Background(), "q-1", nil); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("quote not accepted", func(t *testing.T) {
		uc, m := newQuotePaymentUseCase(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil)

		if _, err := uc.Pay(context.Background(), "q-1", nil); !errors.Is(err, ErrQuoteNotAccepted) {
			t.Fatalf("expected ErrQuoteNotAccepted, got %v", err)
		}
	})

	t.Run("missing payment_method_id", func(t *testing.T) {
		uc, m := newQuotePaymentUseCase(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(acceptedQuote, nil)

		if _, err := uc.Pay(context.Background(), "q-1", json.RawMessage(`{"payer":{"email":"x@test.com"}}`)); !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("missing payer", func(t *testing.T) {
		uc, m := newQuotePaymentUseCase(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(acceptedQuote, nil)

		if _, err := uc.Pay(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"visa"}`)); !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})
}

func TestQuotePaymentUseCase_Pay_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newQuotePaymentUseCase(t)
			m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(acceptedQuote, nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.Pay(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestQuotePaymentUseCase_Pay_Success(t *testing.T) {
	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusApproved},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusRejected},
		{name: "pending default", providerStatus: "in_process", want: entities.PaymentStatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newQuotePaymentUseCase(t)
			m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(acceptedQuote, nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "PRV-2026-001" || body["description"] != "Quote PRV-2026-001" {
						t.Fatalf("quote references not set: %v", body)
					}
					if body["transaction_amount"] != 85.4 {
						t.Fatalf("transaction_amount should come from the quote, got %v", body["transaction_amount"])
					}
					return "pay-1", tc.providerStatus, json.RawMessage(`{"id":1}`), nil
				},
			)
			m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuotePayment{})).DoAndReturn(
				func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
					if p.ID != "pay-1" || p.QuoteID != "q-1" || p.Amount != 85.4 || p.Date.IsZero() {
						t.Fatalf("unexpected payment: %+v", p)
					}
					return p, nil
				},
			)

			res, err := uc.Pay(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"x@test.com"},"transaction_amount":1}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("mock mode skips payer checks", func(t *testing.T) {
		uc, m := newQuotePaymentUseCaseWith(t, PaymentSettings{MockMode: true})
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(acceptedQuote, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mock-1", "approved", json.RawMessage(`{}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) { return p, nil },
		)

		res, err := uc.Pay(context.Background(), "q-1", nil)
		if err != nil || res.ID != "mock-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		uc, m := newQuotePaymentUseCase(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(acceptedQuote, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuotePayment{}, errors.New("db-create"))

		_, err := uc.Pay(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"visa","payer":{"id":"42"}}`))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})
}

func TestQuotePaymentUseCase_Pay_SettingsOverEnvironment(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "env@test.com")

	t.Run("environment does not enable mock mode", func(t *testing.T) {
		uc, m := newQuotePaymentUseCase(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(acceptedQuote, nil)

		if _, err := uc.Pay(context.Background(), "q-1", nil); !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("configured test payer email is used", func(t *testing.T) {
		uc, m := newQuotePaymentUseCaseWith(t, PaymentSettings{TestPayerEmail: " sandbox@test.com "})
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(acceptedQuote, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var body struct {
					Payer struct {
						Email string `json:"email"`
					} `json:"payer"`
				}
				if err := json.Unmarshal(payload, &body); err != nil {
					t.Fatalf("payload should be valid json: %v", err)
				}
				if body.Payer.Email != "sandbox@test.com" {
					t.Fatalf("expected configured payer email, got %q", body.Payer.Email)
				}
				return "pay-1", "approved", json.RawMessage(`{}`), nil
			},
		)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) { return p, nil },
		)

		if _, err := uc.Pay(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"visa"}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuotePaymentUseCase_ListByQuote(t *testing.T) {
	uc, m := newQuotePaymentUseCase(t)
	m.repo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.QuotePayment{
		{ID: "old", Date: t0},
		{ID: "new", Date: t0.Add(time.Hour)},
	}, nil)

	res, err := uc.ListByQuote(context.Background(), " q-1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 || res[0].ID != "new" {
		t.Fatalf("expected newest first, got %+v", res)
	}
}

func TestQuotePaymentUseCase_Helpers(t *testing.T) {
	if !hasPayer(map[string]any{"payer": map[string]any{"id": 10}}) {
		t.Fatalf("expected payer with id")
	}
	if hasPayer(map[string]any{"payer": "x"}) {
		t.Fatalf("expected false for non-object payer")
	}

	m := map[string]any{}
	ensurePayerDefaults(m, "sandbox@test.com")
	payer := m["payer"].(map[string]any)
	if payer["type"] != "customer" || payer["email"] != "sandbox@test.com" {
		t.Fatalf("unexpected payer defaults: %+v", payer)
	}

	if got := classifyGatewayError(errors.New("boom")); got.Error() != "boom" {
		t.Fatalf("unknown errors must pass through, got %v", got)
	}
}
