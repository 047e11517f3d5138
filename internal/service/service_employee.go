// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"

	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/MKhiriev/go-employee-keeper/internal/store"
	"github.com/MKhiriev/go-employee-keeper/models"
)

// employeeService is the concrete implementation of EmployeeService.
// It normalizes input and delegates persistence to an EmployeeRepository.
// Input validation is layered on top by [EmployeeValidationService].
type employeeService struct {
	employeeRepository store.EmployeeRepository
	logger             *logger.Logger
}

// NewEmployeeService constructs an EmployeeService over the given repository.
func NewEmployeeService(employeeRepository store.EmployeeRepository, logger *logger.Logger) EmployeeService {
	return &employeeService{
		employeeRepository: employeeRepository,
		logger:             logger,
	}
}

// CreateEmployee stores a new employee. The joining date is normalized to
// YYYY-MM-DD and a missing skills list becomes an empty one.
func (s *employeeService) CreateEmployee(ctx context.Context, request models.EmployeeRequest) (models.Employee, error) {
	employee := request.Employee()

	joiningDate, err := models.NormalizeJoiningDate(employee.JoiningDate)
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	employee.JoiningDate = joiningDate

	if employee.Skills == nil {
		employee.Skills = []string{}
	}

	created, err := s.employeeRepository.CreateEmployee(ctx, employee)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("employee_id", employee.EmployeeID).Msg("employee creation failed")
		return models.Employee{}, fmt.Errorf("employee creation failed: %w", err)
	}

	return created, nil
}

// ListEmployees returns one page of employees matching filter.
func (s *employeeService) ListEmployees(ctx context.Context, filter models.EmployeeFilter, pagination models.Pagination) (models.EmployeePage, error) {
	page, err := s.employeeRepository.ListEmployees(ctx, filter, pagination.Normalize())
	if err != nil {
		return models.EmployeePage{}, fmt.Errorf("listing employees: %w", err)
	}
	return page, nil
}

// GetEmployee returns store.ErrEmployeeNotFound when absent.
func (s *employeeService) GetEmployee(ctx context.Context, employeeID string) (models.Employee, error) {
	employee, err := s.employeeRepository.FindEmployeeByEmployeeID(ctx, employeeID)
	if err != nil {
		return models.Employee{}, fmt.Errorf("getting employee %q: %w", employeeID, err)
	}
	return employee, nil
}

// UpdateEmployee merges update into the stored employee and returns the
// result. A joining_date in update is normalized first; the caller's map is
// not modified.
func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, update models.EmployeeUpdate) (models.Employee, error) {
	fields := maps.Clone(update)

	if raw, ok := fields[models.FieldJoiningDate].(string); ok {
		joiningDate, err := models.NormalizeJoiningDate(raw)
		if err != nil {
			return models.Employee{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		fields[models.FieldJoiningDate] = joiningDate
	}

	employee, err := s.employeeRepository.UpdateEmployee(ctx, employeeID, fields)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("employee_id", employeeID).Msg("employee update failed")
		return models.Employee{}, fmt.Errorf("updating employee %q: %w", employeeID, err)
	}

	return employee, nil
}

// DeleteEmployee removes the employee or returns store.ErrEmployeeNotFound.
func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	deleted, err := s.employeeRepository.DeleteEmployee(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("deleting employee %q: %w", employeeID, err)
	}
	if !deleted {
		return store.ErrEmployeeNotFound
	}
	return nil
}

// AverageSalary returns store.ErrDepartmentNotFound for an empty department.
func (s *employeeService) AverageSalary(ctx context.Context, department string) (models.DepartmentSalary, error) {
	result, err := s.employeeRepository.AverageSalaryByDepartment(ctx, department)
	if err != nil {
		return models.DepartmentSalary{}, fmt.Errorf("average salary of %q: %w", department, err)
	}
	return result, nil
}
