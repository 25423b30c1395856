package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"carrozzeria/internal/adapter/http/handlers/mocks"
	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_GenerateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := newTestRouter(adminPrincipal)
		r.POST("/v1/work-orders/:id/quote", h.GenerateQuote)

		uc.EXPECT().GenerateFromOrder(gomock.Any(), "ord-9").Return(entities.Quote{}, usecase.ErrWorkOrderNotFound)

		w := serve(r, http.MethodPost, "/v1/work-orders/ord-9/quote", "")
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("generated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := newTestRouter(adminPrincipal)
		r.POST("/v1/work-orders/:id/quote", h.GenerateQuote)

		issue := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().GenerateFromOrder(gomock.Any(), "ord-1").Return(entities.Quote{
			ID:         "q-1",
			Number:     "PRV-2026-001",
			OrderID:    "ord-1",
			Status:     entities.QuoteStatusDraft,
			IssueDate:  issue,
			ExpiryDate: issue.AddDate(0, 0, 30),
			Items:      []entities.QuoteItem{{Description: "Labor – 3.00 hours", Quantity: 3, UnitPrice: 70.0 / 3.0, Total: 70}},
			Subtotal:   70,
			TaxRate:    22,
			TaxAmount:  15.4,
			Total:      85.4,
		}, nil)

		w := serve(r, http.MethodPost, "/v1/work-orders/ord-1/quote", "")
		expectStatus(t, w, http.StatusCreated)

		var body struct {
			Number string `json:"number"`
			Status string `json:"status"`
			Items  []struct {
				Description string  `json:"description"`
				UnitPrice   float64 `json:"unit_price"`
			} `json:"items"`
			Total float64 `json:"total"`
		}
		decodeBody(t, w, &body)
		if body.Number != "PRV-2026-001" || body.Status != "draft" || body.Total != 85.4 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if len(body.Items) != 1 || body.Items[0].Description != "Labor – 3.00 hours" || body.Items[0].UnitPrice != 23.33 {
			t.Fatalf("unexpected items: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := newTestRouter(adminPrincipal)
		r.PATCH("/v1/quotes/:id/send", h.SendQuote)

		uc.EXPECT().Send(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil)

		w := serve(r, http.MethodPatch, "/v1/quotes/q-1/send", "")
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("accept not allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := newTestRouter(adminPrincipal)
		r.PATCH("/v1/quotes/:id/accept", h.AcceptQuote)

		uc.EXPECT().Accept(gomock.Any(), "q-1").Return(entities.Quote{}, usecase.ErrInvalidQuoteTransition)

		w := serve(r, http.MethodPatch, "/v1/quotes/q-1/accept", "")
		expectStatus(t, w, http.StatusConflict)
	})

	t.Run("reject missing quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := newTestRouter(adminPrincipal)
		r.PATCH("/v1/quotes/:id/reject", h.RejectQuote)

		uc.EXPECT().Reject(gomock.Any(), "q-9").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := serve(r, http.MethodPatch, "/v1/quotes/q-9/reject", "")
		expectStatus(t, w, http.StatusNotFound)
	})
}

func TestQuoteHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := newTestRouter(employeePrincipal)
	r.GET("/v1/quotes/:id", h.GetQuote)
	r.GET("/v1/work-orders/:id/quotes", h.ListOrderQuotes)

	uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil)
	uc.EXPECT().ListByOrder(gomock.Any(), "ord-1").Return(nil, nil)

	w := serve(r, http.MethodGet, "/v1/quotes/q-1", "")
	expectStatus(t, w, http.StatusOK)

	w = serve(r, http.MethodGet, "/v1/work-orders/ord-1/quotes", "")
	expectStatus(t, w, http.StatusOK)
	if w.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %s", w.Body.String())
	}
}

func TestMapQuoteError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidQuoteID, http.StatusBadRequest},
		{usecase.ErrInvalidOrderID, http.StatusBadRequest},
		{usecase.ErrWorkOrderNotFound, http.StatusNotFound},
		{usecase.ErrQuoteNotFound, http.StatusNotFound},
		{usecase.ErrInvalidQuoteTransition, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapQuoteError(tc.err); got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
