// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/MKhiriev/go-employee-keeper/models"
)

// employeeRepository is the PostgreSQL-backed implementation of
// [EmployeeRepository]. Employees are JSONB documents in the "employees"
// collection; the employee_id inside the document is the lookup key.
type employeeRepository struct {
	*DB
	logger *logger.Logger
}

// NewEmployeeRepository constructs an [EmployeeRepository] backed by the
// provided database connection and logger.
func NewEmployeeRepository(db *DB, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating employee repository")
	return &employeeRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanEmployee reads an (id, doc) row. The store-assigned id becomes
// Employee.ID.
func scanEmployee(row rowScanner) (models.Employee, error) {
	var (
		id  int64
		raw []byte
	)
	if err := row.Scan(&id, &raw); err != nil {
		return models.Employee{}, err
	}

	var employee models.Employee
	if err := json.Unmarshal(raw, &employee); err != nil {
		return models.Employee{}, fmt.Errorf("%w: document %d: %w", ErrScanningRow, id, err)
	}
	employee.ID = strconv.FormatInt(id, 10)

	return employee, nil
}

// CreateEmployee inserts the employee document and reads it back.
//
// The insert and the read are two separate statements; the returned record
// is whatever the store holds for the new identifier.
//
// Error handling:
//   - unique_violation on employee_id → [ErrEmployeeAlreadyExists].
//   - check_violation → [ErrDocumentRejected].
func (e *employeeRepository) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	employee.ID = ""
	doc, err := json.Marshal(employee)
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := buildInsertDocumentQuery(employeesTable, doc)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.CreateEmployee").Msg("failed to build query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = e.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).
			Str("func", "*employeeRepository.CreateEmployee").
			Str("employee_id", employee.EmployeeID).
			Msg("error inserting employee")
		return models.Employee{}, mapWriteError(err, ErrEmployeeAlreadyExists)
	}

	query, args, err = buildSelectDocumentByIDQuery(employeesTable, id)
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanEmployee(e.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.CreateEmployee").Int64("id", id).Msg("error reading back employee")
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// ListEmployees returns one page of the employees matching filter, in
// insertion order, together with the total number of matches.
// The pagination is normalized first.
func (e *employeeRepository) ListEmployees(ctx context.Context, filter models.EmployeeFilter, pagination models.Pagination) (models.EmployeePage, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*employeeRepository.ListEmployees").
		Str("department", filter.Department).
		Str("skill", filter.Skill).
		Logger()

	pagination = pagination.Normalize()

	countQuery, countArgs, err := buildCountEmployeesQuery(filter)
	if err != nil {
		return models.EmployeePage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = e.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Msg("failed to count employees")
		return models.EmployeePage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildListEmployeesQuery(filter, pagination)
	if err != nil {
		return models.EmployeePage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := e.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("failed to list employees")
		return models.EmployeePage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Employee, 0, pagination.PageSize)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			log.Err(err).Int("iteration", len(items)).Msg("failed to scan employee")
			return models.EmployeePage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, employee)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Msg("error iterating employee rows")
		return models.EmployeePage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return models.EmployeePage{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		Total:    total,
		Items:    items,
	}, nil
}

// FindEmployeeByEmployeeID returns [ErrEmployeeNotFound] when absent.
func (e *employeeRepository) FindEmployeeByEmployeeID(ctx context.Context, employeeID string) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEmployeeByEmployeeIDQuery(employeeID)
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	employee, err := scanEmployee(e.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Employee{}, ErrEmployeeNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*employeeRepository.FindEmployeeByEmployeeID").
			Str("employee_id", employeeID).
			Msg("error querying employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return employee, nil
}

// UpdateEmployee merges fields into the stored document and returns the
// updated record. Keys absent from fields are left unchanged.
//
// When fields changes employee_id the record is read back under the new
// value. Returns [ErrEmployeeNotFound] if no document matched.
func (e *employeeRepository) UpdateEmployee(ctx context.Context, employeeID string, fields models.EmployeeUpdate) (models.Employee, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*employeeRepository.UpdateEmployee").
		Str("employee_id", employeeID).
		Logger()

	patch, err := json.Marshal(fields)
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := buildUpdateEmployeeQuery(employeeID, patch)
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := e.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error updating employee")
		return models.Employee{}, mapWriteError(err, ErrEmployeeAlreadyExists)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Employee{}, ErrEmployeeNotFound
	}

	lookupID := employeeID
	if newID, ok := fields[models.FieldEmployeeID].(string); ok {
		lookupID = newID
	}

	return e.FindEmployeeByEmployeeID(ctx, lookupID)
}

// DeleteEmployee removes the employee and reports whether exactly one
// record was deleted.
func (e *employeeRepository) DeleteEmployee(ctx context.Context, employeeID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEmployeeQuery(employeeID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := e.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*employeeRepository.DeleteEmployee").
			Str("employee_id", employeeID).
			Msg("error deleting employee")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected == 1, nil
}

// AverageSalaryByDepartment aggregates the salaries of one department.
// Returns [ErrDepartmentNotFound] when the department has no employees.
// When no salary in the department is numeric the average is 0.
func (e *employeeRepository) AverageSalaryByDepartment(ctx context.Context, department string) (models.DepartmentSalary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAverageSalaryQuery(department)
	if err != nil {
		return models.DepartmentSalary{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		result  models.DepartmentSalary
		average sql.NullFloat64
	)
	err = e.DB.QueryRowContext(ctx, query, args...).Scan(&result.Department, &average, &result.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DepartmentSalary{}, ErrDepartmentNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*employeeRepository.AverageSalaryByDepartment").
			Str("department", department).
			Msg("error aggregating salaries")
		return models.DepartmentSalary{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	result.AverageSalary = average.Float64

	return result, nil
}
