// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
	"time"
)

// JoiningDateLayout is the canonical representation of Employee.JoiningDate.
const JoiningDateLayout = time.DateOnly

// ErrInvalidJoiningDate is returned by [NormalizeJoiningDate] when the value
// is neither a YYYY-MM-DD date nor an RFC 3339 timestamp.
var ErrInvalidJoiningDate = errors.New("joining_date must be a date in YYYY-MM-DD form")

// Employee is a single record of the "employees" collection.
//
// ID is the store-assigned internal identifier; it is immutable and only
// informative. EmployeeID is assigned by the caller and is the external key
// used by every lookup, update and delete.
type Employee struct {
	ID          string   `json:"id,omitempty"`
	EmployeeID  string   `json:"employee_id"`
	Name        string   `json:"name"`
	Department  string   `json:"department"`
	Salary      float64  `json:"salary"`
	JoiningDate string   `json:"joining_date"`
	Skills      []string `json:"skills"`
}

// EmployeeRequest is the body of an employee creation request.
// Pointer fields let validation tell a missing field from a zero value.
type EmployeeRequest struct {
	EmployeeID  *string   `json:"employee_id"`
	Name        *string   `json:"name"`
	Department  *string   `json:"department"`
	Salary      *float64  `json:"salary"`
	JoiningDate *string   `json:"joining_date"`
	Skills      *[]string `json:"skills"`
}

// Employee converts a validated request into an [Employee].
// Missing fields are left at their zero values.
func (r EmployeeRequest) Employee() Employee {
	var e Employee
	if r.EmployeeID != nil {
		e.EmployeeID = *r.EmployeeID
	}
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Department != nil {
		e.Department = *r.Department
	}
	if r.Salary != nil {
		e.Salary = *r.Salary
	}
	if r.JoiningDate != nil {
		e.JoiningDate = *r.JoiningDate
	}
	if r.Skills != nil {
		e.Skills = *r.Skills
	}
	return e
}

// EmployeeUpdate is a loosely typed partial update: every key present is
// merged into the stored document, keys not present are left untouched.
type EmployeeUpdate map[string]any

// Field names of an employee document.
const (
	FieldEmployeeID  = "employee_id"
	FieldName        = "name"
	FieldDepartment  = "department"
	FieldSalary      = "salary"
	FieldJoiningDate = "joining_date"
	FieldSkills      = "skills"
)

// NormalizeJoiningDate returns the canonical YYYY-MM-DD form of value.
// Both plain dates and RFC 3339 timestamps are accepted; for timestamps
// only the calendar date is kept.
func NormalizeJoiningDate(value string) (string, error) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(JoiningDateLayout, value); err == nil {
		return t.Format(JoiningDateLayout), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Format(JoiningDateLayout), nil
	}

	return "", ErrInvalidJoiningDate
}
