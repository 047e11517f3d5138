package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/MKhiriev/go-employee-keeper/internal/service"
	"github.com/MKhiriev/go-employee-keeper/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/employees"},
		{http.MethodGet, "/employees"},
		{http.MethodGet, "/employees/department/Engineering"},
		{http.MethodGet, "/employees/skills/Go"},
		{http.MethodGet, "/employees/avg-salary/Engineering"},
		{http.MethodGet, "/employees/E1"},
		{http.MethodPut, "/employees/E1"},
		{http.MethodDelete, "/employees/E1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := env.do(httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			assert.Equal(t, "Not authenticated", detailOf(t, rr))
		})
	}
}

func TestInit_UnknownRouteIs404(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_WrongMethodIs405(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(httptest.NewRequest(http.MethodGet, "/auth/login", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_MetricsEndpoint(t *testing.T) {
	t.Run("served when configured", func(t *testing.T) {
		metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("# metrics"))
		})
		router := NewHandler(&service.Services{}, nil, metricsHandler, logger.Nop()).Init()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "# metrics", rr.Body.String())
	})

	t.Run("absent otherwise", func(t *testing.T) {
		router := NewHandler(&service.Services{}, nil, nil, logger.Nop()).Init()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestInit_RecordsRoutePattern(t *testing.T) {
	env := newTestEnv(t)
	env.expectAuthenticated()
	env.employees.EXPECT().GetEmployee(gomock.Any(), "E42").Return(models.Employee{EmployeeID: "E42"}, nil)

	env.do(authorized(httptest.NewRequest(http.MethodGet, "/employees/E42", nil)))

	if assert.Len(t, env.metrics.requests, 1) {
		got := env.metrics.requests[0]
		assert.Equal(t, http.MethodGet, got.method)
		assert.Equal(t, "/employees/{employee_id}", got.route)
		assert.Equal(t, http.StatusOK, got.status)
	}
}
