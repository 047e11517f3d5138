// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the employee keeper REST API.
//
// [ServerAdapter] hides the transport from callers such as the command-line
// client. Non-2xx responses are mapped by mapHTTPError onto the sentinel
// errors in errors.go, so callers can use [errors.Is] (e.g. [ErrConflict]
// for 409, [ErrUnauthorized] for 401) and still see the server's detail
// message in the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-employee-keeper/models"
)

// ServerAdapter defines communication with the employee keeper server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every employee request.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Signup registers a new account. It does not log in.
	Signup(ctx context.Context, user models.User) error

	// Login exchanges username and password for an access token and stores
	// it via SetToken.
	Login(ctx context.Context, username, password string) (models.AccessToken, error)

	CreateEmployee(ctx context.Context, request models.EmployeeRequest) (models.Employee, error)
	GetEmployee(ctx context.Context, employeeID string) (models.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, update models.EmployeeUpdate) (models.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error

	// ListEmployees returns one page of employees. At most one of the filter
	// fields is honoured: Department takes precedence over Skill.
	ListEmployees(ctx context.Context, filter models.EmployeeFilter, pagination models.Pagination) (models.EmployeePage, error)

	AverageSalary(ctx context.Context, department string) (models.DepartmentSalary, error)
}
