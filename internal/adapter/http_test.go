// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/MKhiriev/go-employee-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(serverURL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func strPtr(s string) *string { return &s }

// ── Construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://api.example.com/", want: "https://api.example.com"},
		{raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Signup / Login ──────────────────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/signup", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "alice@example.com", body["email"])
		assert.Equal(t, "pw", body["password"])

		writeJSON(t, w, http.StatusCreated, models.MessageResponse{Message: "User created successfully"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Signup(context.Background(), models.User{Username: "alice", Email: "alice@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Empty(t, a.Token())
}

func TestSignup_Duplicate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Detail: "Username already exists"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Signup(context.Background(), models.User{Username: "alice"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Username already exists")
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "alice", r.PostForm.Get("username"))
		assert.Equal(t, "pw", r.PostForm.Get("password"))

		writeJSON(t, w, http.StatusOK, models.AccessToken{AccessToken: "jwt", TokenType: "bearer"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), "alice", "pw")

	require.NoError(t, err)
	assert.Equal(t, "jwt", token.AccessToken)
	assert.Equal(t, "jwt", a.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Detail: "Invalid credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "alice", "bad")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

// ── Employees ───────────────────────────────────────────────────────────────

var testEmployee = models.Employee{
	ID:          "1",
	EmployeeID:  "E 1",
	Name:        "Ann",
	Department:  "Engineering",
	Salary:      75000,
	JoiningDate: "2023-01-15",
	Skills:      []string{"Go"},
}

func TestCreateEmployee_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/employees", r.URL.Path)
		assert.Equal(t, "Bearer jwt", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusCreated, models.EmployeeResponse{Message: "Employee created", Employee: testEmployee})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("jwt")

	got, err := a.CreateEmployee(context.Background(), models.EmployeeRequest{EmployeeID: strPtr("E 1")})

	require.NoError(t, err)
	assert.Equal(t, testEmployee, got)
}

func TestCreateEmployee_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Detail: "Employee with this employee_id already exists"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateEmployee(context.Background(), models.EmployeeRequest{})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestGetEmployee_EscapesPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employees/E%201", r.URL.EscapedPath())
		writeJSON(t, w, http.StatusOK, testEmployee)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetEmployee(context.Background(), "E 1")

	require.NoError(t, err)
	assert.Equal(t, testEmployee, got)
}

func TestGetEmployee_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Detail: "Employee not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetEmployee(context.Background(), "E9")

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Employee not found")
}

func TestUpdateEmployee(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"salary": float64(1)}, body)

		writeJSON(t, w, http.StatusOK, models.EmployeeResponse{Message: "Employee updated", Employee: testEmployee})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).UpdateEmployee(context.Background(), "E1", models.EmployeeUpdate{"salary": 1})

	require.NoError(t, err)
	assert.Equal(t, testEmployee, got)
}

func TestDeleteEmployee(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/employees/E1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Employee deleted"})
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL).DeleteEmployee(context.Background(), "E1"))
}

func TestListEmployees_Paths(t *testing.T) {
	tests := []struct {
		name     string
		filter   models.EmployeeFilter
		paging   models.Pagination
		wantPath string
		wantRaw  string
	}{
		{name: "all", wantPath: "/employees"},
		{name: "paged", paging: models.Pagination{Page: 2, PageSize: 5}, wantPath: "/employees", wantRaw: "page=2&page_size=5"},
		{name: "department", filter: models.EmployeeFilter{Department: "Engineering"}, wantPath: "/employees/department/Engineering"},
		{name: "skill", filter: models.EmployeeFilter{Skill: "Go"}, wantPath: "/employees/skills/Go"},
		{name: "department wins", filter: models.EmployeeFilter{Department: "HR", Skill: "Go"}, wantPath: "/employees/department/HR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := models.EmployeePage{Page: 1, PageSize: 10, Total: 1, Items: []models.Employee{testEmployee}}
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, tt.wantRaw, r.URL.RawQuery)
				writeJSON(t, w, http.StatusOK, page)
			}))
			defer srv.Close()

			got, err := newTestAdapter(t, srv.URL).ListEmployees(context.Background(), tt.filter, tt.paging)

			require.NoError(t, err)
			assert.Equal(t, page, got)
		})
	}
}

func TestAverageSalary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employees/avg-salary/Engineering", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.DepartmentSalary{Department: "Engineering", AverageSalary: 80000, Count: 2})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).AverageSalary(context.Background(), "Engineering")

	require.NoError(t, err)
	assert.Equal(t, 80000.0, got.AverageSalary)
	assert.Equal(t, int64(2), got.Count)
}

// ── Error mapping ───────────────────────────────────────────────────────────

func TestMapHTTPError_StatusCodes(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusUnprocessableEntity, ErrUnprocessable},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, models.ErrorResponse{Detail: "boom"})
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).DeleteEmployee(context.Background(), "E1")

			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteEmployee(context.Background(), "E1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestErrorDetail_PlainBody(t *testing.T) {
	assert.Equal(t, "plain text", errorDetail([]byte(" plain text \n")))
	assert.Equal(t, "x", errorDetail([]byte(`{"detail":"x"}`)))
}
