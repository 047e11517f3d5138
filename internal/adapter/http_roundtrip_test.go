// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http/httptest"
	"testing"

	myhttp "github.com/MKhiriev/go-employee-keeper/internal/handler/http"
	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/MKhiriev/go-employee-keeper/internal/mock"
	"github.com/MKhiriev/go-employee-keeper/internal/service"
	"github.com/MKhiriev/go-employee-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newRoundTripAdapter serves the real router over mocked services and
// returns an authenticated adapter pointed at it.
func newRoundTripAdapter(t *testing.T) (*httpServerAdapter, *mock.MockEmployeeService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	auth := mock.NewMockAuthService(ctrl)
	employees := mock.NewMockEmployeeService(ctrl)
	auth.EXPECT().ResolveCurrentUser(gomock.Any(), "round-trip-token").
		Return(models.PublicUser{UserID: 1, Username: "alice"}, nil).
		AnyTimes()

	h := myhttp.NewHandler(&service.Services{AuthService: auth, EmployeeService: employees}, nil, nil, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	a := newTestAdapter(t, srv.URL)
	a.SetToken("round-trip-token")
	return a, employees
}

func TestRoundTrip_PathParametersSurviveEncoding(t *testing.T) {
	ctx := context.Background()

	t.Run("average salary", func(t *testing.T) {
		a, employees := newRoundTripAdapter(t)
		want := models.DepartmentSalary{Department: "Sales, EMEA", AverageSalary: 50000, Count: 2}
		employees.EXPECT().AverageSalary(gomock.Any(), "Sales, EMEA").Return(want, nil)

		got, err := a.AverageSalary(ctx, "Sales, EMEA")

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("list by department", func(t *testing.T) {
		a, employees := newRoundTripAdapter(t)
		filter := models.EmployeeFilter{Department: "R&D/Ops"}
		employees.EXPECT().ListEmployees(gomock.Any(), filter, models.Pagination{Page: 1, PageSize: 10}).
			Return(models.EmployeePage{Page: 1, PageSize: 10}, nil)

		_, err := a.ListEmployees(ctx, filter, models.Pagination{Page: 1, PageSize: 10})

		require.NoError(t, err)
	})

	t.Run("list by skill", func(t *testing.T) {
		a, employees := newRoundTripAdapter(t)
		filter := models.EmployeeFilter{Skill: "C++"}
		employees.EXPECT().ListEmployees(gomock.Any(), filter, models.Pagination{Page: 1, PageSize: 10}).
			Return(models.EmployeePage{Page: 1, PageSize: 10}, nil)

		_, err := a.ListEmployees(ctx, filter, models.Pagination{Page: 1, PageSize: 10})

		require.NoError(t, err)
	})

	t.Run("get by employee id", func(t *testing.T) {
		a, employees := newRoundTripAdapter(t)
		want := models.Employee{EmployeeID: "E 1?x=1", Name: "Ann"}
		employees.EXPECT().GetEmployee(gomock.Any(), "E 1?x=1").Return(want, nil)

		got, err := a.GetEmployee(ctx, "E 1?x=1")

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
