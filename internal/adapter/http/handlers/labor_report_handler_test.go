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

var reportNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newLaborReportHandler(uc usecase.ILaborReportUseCase) *LaborReportHandler {
	h := NewLaborReportHandler(uc)
	h.now = func() time.Time { return reportNow }
	return h
}

func TestLaborReportHandler_GetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILaborReportUseCase(ctrl)
	h := newLaborReportHandler(uc)

	r := newTestRouter(employeePrincipal)
	r.GET("/v1/dashboard", h.GetDashboard)

	uc.EXPECT().Snapshot(gomock.Any()).Return(usecase.DashboardSnapshot{
		GeneratedAt: reportNow,
		Employees: []usecase.DashboardEntry{
			{Employee: entities.Employee{ID: "emp-1", LastName: "Bianchi"}, Status: usecase.EmployeeStatusWorking, Summary: labor.Summarize(90, 20)},
		},
		Totals: usecase.DashboardTotals{EmployeesWorking: 1, ActiveSessions: 1, InProgressMinutes: 90, InProgressHours: 1.5, InProgressCost: 30},
	}, nil)

	w := serve(r, http.MethodGet, "/v1/dashboard", "")
	expectStatus(t, w, http.StatusOK)

	var body struct {
		Employees []struct {
			EmployeeID string `json:"employee_id"`
			Status     string `json:"status"`
		} `json:"employees"`
		Totals struct {
			EmployeesWorking int     `json:"employees_working"`
			TotalCost        float64 `json:"total_cost"`
		} `json:"totals"`
	}
	decodeBody(t, w, &body)
	if len(body.Employees) != 1 || body.Employees[0].Status != "working" || body.Totals.TotalCost != 30 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestLaborReportHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to current month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILaborReportUseCase(ctrl)
		h := newLaborReportHandler(uc)

		r := newTestRouter(adminPrincipal)
		r.GET("/v1/stats", h.GetStats)

		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
		uc.EXPECT().StatsForPeriod(gomock.Any(), "", from, to).Return(usecase.PeriodStats{
			From: from,
			To:   to,
			Employees: []labor.EmployeeTotals{
				{EmployeeID: "emp-1", TotalMinutes: 165, TotalHours: 2.75, TotalCost: 55, SessionCount: 2, ActiveSessions: 1, CompletedSessions: 1},
			},
			Summary: labor.Summary{EmployeeCount: 1, TotalMinutes: 165, TotalHours: 2.75, TotalCost: 55},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/stats", "")
		expectStatus(t, w, http.StatusOK)

		var body struct {
			Employees []struct {
				DurationMinutes int     `json:"duration_minutes"`
				DurationHours   float64 `json:"duration_hours"`
			} `json:"employees"`
		}
		decodeBody(t, w, &body)
		if len(body.Employees) != 1 || body.Employees[0].DurationMinutes != 165 || body.Employees[0].DurationHours != 2.75 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("employee is scoped to self", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILaborReportUseCase(ctrl)
		h := newLaborReportHandler(uc)

		r := newTestRouter(employeePrincipal)
		r.GET("/v1/stats", h.GetStats)

		uc.EXPECT().StatsForPeriod(gomock.Any(), "emp-1", gomock.Any(), gomock.Any()).Return(usecase.PeriodStats{}, nil)

		w := serve(r, http.MethodGet, "/v1/stats?start=2026-03-01&end=2026-03-07", "")
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("employee cannot read another employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := newLaborReportHandler(mocks.NewMockILaborReportUseCase(ctrl))

		r := newTestRouter(employeePrincipal)
		r.GET("/v1/stats", h.GetStats)

		w := serve(r, http.MethodGet, "/v1/stats?employee_id=emp-2", "")
		expectStatus(t, w, http.StatusForbidden)
	})

	t.Run("unparseable bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := newLaborReportHandler(mocks.NewMockILaborReportUseCase(ctrl))

		r := newTestRouter(adminPrincipal)
		r.GET("/v1/stats", h.GetStats)

		w := serve(r, http.MethodGet, "/v1/stats?start=01-03-2026", "")
		expectStatus(t, w, http.StatusBadRequest)
		if code := errorCode(t, w); code != "INVALID_PERIOD" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("inverted period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILaborReportUseCase(ctrl)
		h := newLaborReportHandler(uc)

		r := newTestRouter(adminPrincipal)
		r.GET("/v1/stats", h.GetStats)

		uc.EXPECT().StatsForPeriod(gomock.Any(), "", gomock.Any(), gomock.Any()).Return(usecase.PeriodStats{}, usecase.ErrInvalidPeriod)

		w := serve(r, http.MethodGet, "/v1/stats?start=2026-03-10&end=2026-03-01", "")
		expectStatus(t, w, http.StatusBadRequest)
	})
}

func TestLaborReportHandler_ExportStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILaborReportUseCase(ctrl)
	h := newLaborReportHandler(uc)

	r := newTestRouter(adminPrincipal)
	r.GET("/v1/stats/export", h.ExportStats)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	uc.EXPECT().StatsForPeriod(gomock.Any(), "", gomock.Any(), gomock.Any()).Return(usecase.PeriodStats{
		From:      from,
		To:        to,
		Employees: []labor.EmployeeTotals{{EmployeeID: "emp-1", FirstName: "Mario", LastName: "Rossi", TotalMinutes: 120, TotalHours: 2, TotalCost: 40}},
		Summary:   labor.Summary{EmployeeCount: 1, TotalMinutes: 120, TotalHours: 2, TotalCost: 40},
	}, nil)

	w := serve(r, http.MethodGet, "/v1/stats/export", "")
	expectStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="labor-stats-20260301-20260331.xlsx"` {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	if body := w.Body.Bytes(); len(body) < 4 || string(body[:2]) != "PK" {
		t.Fatalf("expected a zip container")
	}
}

func TestLaborReportHandler_GetOrderLabor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILaborReportUseCase(ctrl)
		h := newLaborReportHandler(uc)

		r := newTestRouter(adminPrincipal)
		r.GET("/v1/work-orders/:id/labor", h.GetOrderLabor)

		uc.EXPECT().OrderLabor(gomock.Any(), "ord-9").Return(usecase.OrderLabor{}, usecase.ErrWorkOrderNotFound)

		w := serve(r, http.MethodGet, "/v1/work-orders/ord-9/labor", "")
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILaborReportUseCase(ctrl)
		h := newLaborReportHandler(uc)

		r := newTestRouter(adminPrincipal)
		r.GET("/v1/work-orders/:id/labor", h.GetOrderLabor)

		uc.EXPECT().OrderLabor(gomock.Any(), "ord-1").Return(usecase.OrderLabor{
			Order: entities.WorkOrder{ID: "ord-1", Number: "OdL-2026-001"},
			Employees: []labor.EmployeeTotals{
				{EmployeeID: "emp-1", TotalMinutes: 120, TotalHours: 2, HourlyRate: 20, TotalCost: 40},
				{EmployeeID: "emp-2", TotalMinutes: 60, TotalHours: 1, HourlyRate: 30, TotalCost: 30},
			},
			Totals: labor.OrderTotals{OrderID: "ord-1", TotalMinutes: 180, TotalHours: 3, TotalCost: 70, EmployeeCount: 2},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/work-orders/ord-1/labor", "")
		expectStatus(t, w, http.StatusOK)

		var body struct {
			Totals struct {
				Number        string  `json:"number"`
				DurationHours float64 `json:"duration_hours"`
				TotalCost     float64 `json:"total_cost"`
			} `json:"totals"`
			Employees []map[string]any `json:"employees"`
		}
		decodeBody(t, w, &body)
		if body.Totals.Number != "OdL-2026-001" || body.Totals.DurationHours != 3 || body.Totals.TotalCost != 70 || len(body.Employees) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapLaborReportError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPeriod, http.StatusBadRequest},
		{usecase.ErrInvalidOrderID, http.StatusBadRequest},
		{usecase.ErrWorkOrderNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapLaborReportError(tc.err); got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
