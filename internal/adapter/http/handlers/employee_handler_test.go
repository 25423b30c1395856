package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"carrozzeria/internal/adapter/http/handlers/mocks"
	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEmployeeHandler_CreateEmployee(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing last name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewEmployeeHandler(mocks.NewMockIEmployeeUseCase(ctrl))

		r := newTestRouter(adminPrincipal)
		r.POST("/v1/employees", h.CreateEmployee)

		w := serve(r, http.MethodPost, "/v1/employees", `{"first_name":"Mario","hourly_rate":20}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("negative rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewEmployeeHandler(mocks.NewMockIEmployeeUseCase(ctrl))

		r := newTestRouter(adminPrincipal)
		r.POST("/v1/employees", h.CreateEmployee)

		w := serve(r, http.MethodPost, "/v1/employees", `{"first_name":"Mario","last_name":"Rossi","hourly_rate":-1}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEmployeeUseCase(ctrl)
		h := NewEmployeeHandler(uc)

		r := newTestRouter(adminPrincipal)
		r.POST("/v1/employees", h.CreateEmployee)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateEmployeeInput{
			FirstName:  "Mario",
			LastName:   "Rossi",
			Role:       entities.EmployeeRolePainter,
			HourlyRate: 22.5,
		}).Return(entities.Employee{ID: "emp-1", FirstName: "Mario", LastName: "Rossi", Role: entities.EmployeeRolePainter, HourlyRate: 22.5, Active: true}, nil)

		w := serve(r, http.MethodPost, "/v1/employees", `{"first_name":"Mario","last_name":"Rossi","role":"Painter","hourly_rate":22.5}`)
		expectStatus(t, w, http.StatusCreated)

		var body map[string]any
		decodeBody(t, w, &body)
		if body["id"] != "emp-1" || body["full_name"] != "Mario Rossi" || body["hourly_rate"] != 22.5 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestEmployeeHandler_GetAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEmployeeUseCase(ctrl)
		h := NewEmployeeHandler(uc)

		r := newTestRouter(employeePrincipal)
		r.GET("/v1/employees/:id", h.GetEmployee)

		uc.EXPECT().GetByID(gomock.Any(), "emp-9").Return(entities.Employee{}, usecase.ErrEmployeeNotFound)

		w := serve(r, http.MethodGet, "/v1/employees/emp-9", "")
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("list active only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEmployeeUseCase(ctrl)
		h := NewEmployeeHandler(uc)

		r := newTestRouter(employeePrincipal)
		r.GET("/v1/employees", h.ListEmployees)

		uc.EXPECT().List(gomock.Any(), true).Return([]entities.Employee{{ID: "emp-1"}, {ID: "emp-2"}}, nil)

		w := serve(r, http.MethodGet, "/v1/employees?active=true", "")
		expectStatus(t, w, http.StatusOK)
		var body []map[string]any
		decodeBody(t, w, &body)
		if len(body) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("list bad flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewEmployeeHandler(mocks.NewMockIEmployeeUseCase(ctrl))

		r := newTestRouter(employeePrincipal)
		r.GET("/v1/employees", h.ListEmployees)

		w := serve(r, http.MethodGet, "/v1/employees?active=maybe", "")
		expectStatus(t, w, http.StatusBadRequest)
	})
}

func TestEmployeeHandler_UpdateEmployee(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEmployeeUseCase(ctrl)
	h := NewEmployeeHandler(uc)

	r := newTestRouter(adminPrincipal)
	r.PATCH("/v1/employees/:id", h.UpdateEmployee)

	uc.EXPECT().Update(gomock.Any(), "emp-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, in usecase.UpdateEmployeeInput) (entities.Employee, error) {
		if in.Active == nil || *in.Active || in.HourlyRate != nil {
			t.Fatalf("unexpected input: %+v", in)
		}
		return entities.Employee{ID: "emp-1", FirstName: "Mario", LastName: "Rossi", Active: false}, nil
	})

	w := serve(r, http.MethodPatch, "/v1/employees/emp-1", `{"active":false}`)
	expectStatus(t, w, http.StatusOK)
}

func TestMapEmployeeError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidEmployeeID, http.StatusBadRequest},
		{usecase.ErrInvalidEmployee, http.StatusBadRequest},
		{usecase.ErrEmployeeNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapEmployeeError(tc.err); got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
