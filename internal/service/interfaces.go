package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=EmployeeServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-employee-keeper/models"
)

// AuthService covers signup, login and bearer token handling.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.PublicUser, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ResolveCurrentUser(ctx context.Context, tokenString string) (models.PublicUser, error)
}

// EmployeeService covers the employee records operations.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, request models.EmployeeRequest) (models.Employee, error)
	ListEmployees(ctx context.Context, filter models.EmployeeFilter, pagination models.Pagination) (models.EmployeePage, error)
	GetEmployee(ctx context.Context, employeeID string) (models.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, update models.EmployeeUpdate) (models.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
	AverageSalary(ctx context.Context, department string) (models.DepartmentSalary, error)
}

// EmployeeServiceWrapper defines middleware composition for EmployeeService.
// Implementations wrap an existing EmployeeService to add behavior such as
// logging or validating.
type EmployeeServiceWrapper interface {
	Wrap(EmployeeService) EmployeeService // returns a decorated EmployeeService applying additional behavior
}
