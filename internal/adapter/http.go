package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/MKhiriev/go-employee-keeper/internal/utils"
	"github.com/MKhiriev/go-employee-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] talking to address. A scheme-less address is treated as
// plain http.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{client: utils.NewHTTPClient(baseURL, timeout), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [ServerAdapter] via POST /auth/signup.
func (h *httpServerAdapter) Signup(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/auth/signup")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter] via a form-encoded POST /auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.AccessToken, error) {
	var token models.AccessToken

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		SetResult(&token).
		Post("/auth/login")
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessToken{}, err
	}
	if token.AccessToken == "" {
		return models.AccessToken{}, fmt.Errorf("login response carries no access token")
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("username", username).Msg("logged in")
	return token, nil
}

func (h *httpServerAdapter) CreateEmployee(ctx context.Context, request models.EmployeeRequest) (models.Employee, error) {
	var created models.EmployeeResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&created).
		Post("/employees")
	if err != nil {
		return models.Employee{}, fmt.Errorf("create employee request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return created.Employee, nil
}

func (h *httpServerAdapter) GetEmployee(ctx context.Context, employeeID string) (models.Employee, error) {
	var employee models.Employee

	resp, err := h.authedRequest(ctx).
		SetPathParam("employee_id", employeeID).
		SetResult(&employee).
		Get("/employees/{employee_id}")
	if err != nil {
		return models.Employee{}, fmt.Errorf("get employee request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return employee, nil
}

func (h *httpServerAdapter) UpdateEmployee(ctx context.Context, employeeID string, update models.EmployeeUpdate) (models.Employee, error) {
	var updated models.EmployeeResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("employee_id", employeeID).
		SetBody(update).
		SetResult(&updated).
		Put("/employees/{employee_id}")
	if err != nil {
		return models.Employee{}, fmt.Errorf("update employee request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return updated.Employee, nil
}

func (h *httpServerAdapter) DeleteEmployee(ctx context.Context, employeeID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("employee_id", employeeID).
		Delete("/employees/{employee_id}")
	if err != nil {
		return fmt.Errorf("delete employee request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListEmployees(ctx context.Context, filter models.EmployeeFilter, pagination models.Pagination) (models.EmployeePage, error) {
	var page models.EmployeePage

	req := h.authedRequest(ctx).SetResult(&page)
	if pagination.Page > 0 {
		req.SetQueryParam("page", strconv.FormatInt(pagination.Page, 10))
	}
	if pagination.PageSize > 0 {
		req.SetQueryParam("page_size", strconv.FormatInt(pagination.PageSize, 10))
	}

	path := "/employees"
	switch {
	case filter.Department != "":
		req.SetPathParam("department", filter.Department)
		path = "/employees/department/{department}"
	case filter.Skill != "":
		req.SetPathParam("skill", filter.Skill)
		path = "/employees/skills/{skill}"
	}

	resp, err := req.Get(path)
	if err != nil {
		return models.EmployeePage{}, fmt.Errorf("list employees request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EmployeePage{}, err
	}

	return page, nil
}

func (h *httpServerAdapter) AverageSalary(ctx context.Context, department string) (models.DepartmentSalary, error) {
	var result models.DepartmentSalary

	resp, err := h.authedRequest(ctx).
		SetPathParam("department", department).
		SetResult(&result).
		Get("/employees/avg-salary/{department}")
	if err != nil {
		return models.DepartmentSalary{}, fmt.Errorf("average salary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DepartmentSalary{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
