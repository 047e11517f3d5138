package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-employee-keeper/models"
)

// UserRepository persists user documents.
type UserRepository interface {
	// CreateUser stores a new user and returns it with UserID set.
	// Returns [ErrUsernameAlreadyExists] if the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns [ErrNoUserWasFound] when absent.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// EmployeeRepository persists employee documents.
type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	ListEmployees(ctx context.Context, filter models.EmployeeFilter, pagination models.Pagination) (models.EmployeePage, error)
	FindEmployeeByEmployeeID(ctx context.Context, employeeID string) (models.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, fields models.EmployeeUpdate) (models.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) (bool, error)
	AverageSalaryByDepartment(ctx context.Context, department string) (models.DepartmentSalary, error)
}
