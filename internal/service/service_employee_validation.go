package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-employee-keeper/internal/validators"
	"github.com/MKhiriev/go-employee-keeper/models"
)

// EmployeeValidationService validates request bodies before handing them to
// the wrapped EmployeeService. Read and delete calls pass straight through.
type EmployeeValidationService struct {
	inner     EmployeeService
	validator validators.Validator
}

func NewEmployeeValidationService() EmployeeServiceWrapper {
	return &EmployeeValidationService{
		validator: validators.NewEmployeeValidator(),
	}
}

func (v *EmployeeValidationService) CreateEmployee(ctx context.Context, request models.EmployeeRequest) (models.Employee, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateEmployee(ctx, request)
}

func (v *EmployeeValidationService) ListEmployees(ctx context.Context, filter models.EmployeeFilter, pagination models.Pagination) (models.EmployeePage, error) {
	return v.inner.ListEmployees(ctx, filter, pagination)
}

func (v *EmployeeValidationService) GetEmployee(ctx context.Context, employeeID string) (models.Employee, error) {
	return v.inner.GetEmployee(ctx, employeeID)
}

func (v *EmployeeValidationService) UpdateEmployee(ctx context.Context, employeeID string, update models.EmployeeUpdate) (models.Employee, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateEmployee(ctx, employeeID, update)
}

func (v *EmployeeValidationService) DeleteEmployee(ctx context.Context, employeeID string) error {
	return v.inner.DeleteEmployee(ctx, employeeID)
}

func (v *EmployeeValidationService) AverageSalary(ctx context.Context, department string) (models.DepartmentSalary, error) {
	return v.inner.AverageSalary(ctx, department)
}

func (v *EmployeeValidationService) Wrap(wrapper EmployeeService) EmployeeService {
	v.inner = wrapper
	return v
}
