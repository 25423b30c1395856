package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"carrozzeria/internal/adapter/http/handlers/mocks"
	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/domain/labor"
	"carrozzeria/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var timerT0 = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func TestTimerHandler_StartTimer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewTimerHandler(mocks.NewMockITimerUseCase(ctrl))

		r := newTestRouter(adminPrincipal)
		r.POST("/v1/timers/start", h.StartTimer)

		w := serve(r, http.MethodPost, "/v1/timers/start", "{")
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("missing order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewTimerHandler(mocks.NewMockITimerUseCase(ctrl))

		r := newTestRouter(adminPrincipal)
		r.POST("/v1/timers/start", h.StartTimer)

		w := serve(r, http.MethodPost, "/v1/timers/start", `{"employee_id":"emp-1","order_id":"  "}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("admin without employee id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewTimerHandler(mocks.NewMockITimerUseCase(ctrl))

		r := newTestRouter(adminPrincipal)
		r.POST("/v1/timers/start", h.StartTimer)

		w := serve(r, http.MethodPost, "/v1/timers/start", `{"order_id":"ord-1"}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("employee cannot start for someone else", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewTimerHandler(mocks.NewMockITimerUseCase(ctrl))

		r := newTestRouter(employeePrincipal)
		r.POST("/v1/timers/start", h.StartTimer)

		w := serve(r, http.MethodPost, "/v1/timers/start", `{"employee_id":"emp-2","order_id":"ord-1"}`)
		expectStatus(t, w, http.StatusForbidden)
		if code := errorCode(t, w); code != "FORBIDDEN" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("employee starts own timer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimerUseCase(ctrl)
		h := NewTimerHandler(uc)

		r := newTestRouter(employeePrincipal)
		r.POST("/v1/timers/start", h.StartTimer)

		uc.EXPECT().Start(gomock.Any(), "emp-1", "ord-1").Return(entities.WorkSession{ID: "s-1", EmployeeID: "emp-1", OrderID: "ord-1", StartTime: timerT0}, nil)

		w := serve(r, http.MethodPost, "/v1/timers/start", `{"order_id":"ord-1"}`)
		expectStatus(t, w, http.StatusCreated)

		var body map[string]any
		decodeBody(t, w, &body)
		if body["id"] != "s-1" || body["open"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("second start conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimerUseCase(ctrl)
		h := NewTimerHandler(uc)

		r := newTestRouter(adminPrincipal)
		r.POST("/v1/timers/start", h.StartTimer)

		uc.EXPECT().Start(gomock.Any(), "emp-1", "ord-1").Return(entities.WorkSession{}, usecase.ErrOpenSessionExists)

		w := serve(r, http.MethodPost, "/v1/timers/start", `{"employee_id":"emp-1","order_id":"ord-1"}`)
		expectStatus(t, w, http.StatusConflict)
		if code := errorCode(t, w); code != "SESSION_ALREADY_OPEN" {
			t.Fatalf("unexpected code %s", code)
		}
	})
}

func TestTimerHandler_StopTimer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no open session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimerUseCase(ctrl)
		h := NewTimerHandler(uc)

		r := newTestRouter(employeePrincipal)
		r.POST("/v1/timers/stop", h.StopTimer)

		uc.EXPECT().Stop(gomock.Any(), "emp-1", "ord-1").Return(usecase.StopResult{}, usecase.ErrOpenSessionNotFound)

		w := serve(r, http.MethodPost, "/v1/timers/stop", `{"employee_id":"emp-1","order_id":"ord-1"}`)
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("returns priced session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimerUseCase(ctrl)
		h := NewTimerHandler(uc)

		r := newTestRouter(employeePrincipal)
		r.POST("/v1/timers/stop", h.StopTimer)

		end := timerT0.Add(90 * time.Minute)
		minutes := 90
		uc.EXPECT().Stop(gomock.Any(), "emp-1", "ord-1").Return(usecase.StopResult{
			Session: entities.WorkSession{ID: "s-1", EmployeeID: "emp-1", OrderID: "ord-1", StartTime: timerT0, EndTime: &end, DurationMinutes: &minutes},
			Summary: labor.Summarize(90, 20),
		}, nil)

		w := serve(r, http.MethodPost, "/v1/timers/stop", `{"order_id":"ord-1"}`)
		expectStatus(t, w, http.StatusOK)

		var body struct {
			Session struct {
				DurationMinutes int  `json:"duration_minutes"`
				Open            bool `json:"open"`
			} `json:"session"`
			Cost struct {
				DurationMinutes int     `json:"duration_minutes"`
				DurationHours   float64 `json:"duration_hours"`
				HourlyRate      float64 `json:"hourly_rate"`
				TotalCost       float64 `json:"total_cost"`
			} `json:"cost"`
		}
		decodeBody(t, w, &body)
		if body.Session.Open || body.Session.DurationMinutes != 90 {
			t.Fatalf("unexpected session: %s", w.Body.String())
		}
		if body.Cost.DurationHours != 1.5 || body.Cost.HourlyRate != 20 || body.Cost.TotalCost != 30 {
			t.Fatalf("unexpected cost: %s", w.Body.String())
		}
	})
}

func TestTimerHandler_ListActive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("employee defaults to own sessions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimerUseCase(ctrl)
		h := NewTimerHandler(uc)

		r := newTestRouter(employeePrincipal)
		r.GET("/v1/timers/active", h.ListActive)

		uc.EXPECT().Active(gomock.Any(), "emp-1", "").Return([]usecase.ActiveSession{
			{Session: entities.WorkSession{ID: "s-1", EmployeeID: "emp-1", StartTime: timerT0}, Summary: labor.Summarize(45, 20)},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/timers/active", "")
		expectStatus(t, w, http.StatusOK)
		var body []map[string]any
		decodeBody(t, w, &body)
		if len(body) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("employee cannot read another employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewTimerHandler(mocks.NewMockITimerUseCase(ctrl))

		r := newTestRouter(employeePrincipal)
		r.GET("/v1/timers/active", h.ListActive)

		w := serve(r, http.MethodGet, "/v1/timers/active?employee_id=emp-2", "")
		expectStatus(t, w, http.StatusForbidden)
	})

	t.Run("admin sees everyone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimerUseCase(ctrl)
		h := NewTimerHandler(uc)

		r := newTestRouter(adminPrincipal)
		r.GET("/v1/timers/active", h.ListActive)

		uc.EXPECT().Active(gomock.Any(), "", "ord-1").Return(nil, nil)

		w := serve(r, http.MethodGet, "/v1/timers/active?order_id=ord-1", "")
		expectStatus(t, w, http.StatusOK)
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimerUseCase(ctrl)
		h := NewTimerHandler(uc)

		r := newTestRouter(adminPrincipal)
		r.GET("/v1/timers/active", h.ListActive)

		uc.EXPECT().Active(gomock.Any(), "", "").Return(nil, errors.New("boom"))

		w := serve(r, http.MethodGet, "/v1/timers/active", "")
		expectStatus(t, w, http.StatusInternalServerError)
	})
}

func TestMapTimerError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidEmployeeID, http.StatusBadRequest},
		{usecase.ErrInvalidOrderID, http.StatusBadRequest},
		{usecase.ErrEmployeeNotFound, http.StatusNotFound},
		{usecase.ErrWorkOrderNotFound, http.StatusNotFound},
		{usecase.ErrOpenSessionNotFound, http.StatusNotFound},
		{usecase.ErrOpenSessionExists, http.StatusConflict},
		{usecase.ErrSessionAlreadyClosed, http.StatusConflict},
		{usecase.ErrEmployeeInactive, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapTimerError(tc.err); got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
