// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-employee-keeper/models"
)

// EmployeeValidator checks employee creation and update bodies.
type EmployeeValidator struct{}

func NewEmployeeValidator() Validator {
	return &EmployeeValidator{}
}

// Validate accepts models.EmployeeRequest and models.EmployeeUpdate (or
// pointers to them).
//
// A request must carry every field; with no fields given all six are
// checked. An update must be non-empty, must not touch the store-assigned
// id, and every known field it carries must have the right JSON type.
// Unknown keys in an update are allowed.
func (v *EmployeeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EmployeeRequest:
		return v.validateRequest(value, fields...)
	case *models.EmployeeRequest:
		return v.validateRequest(*value, fields...)

	case models.EmployeeUpdate:
		return v.validateUpdate(value)
	case *models.EmployeeUpdate:
		return v.validateUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *EmployeeValidator) validateRequest(request models.EmployeeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = employeeFields
	}

	for _, f := range fields {
		var present bool
		switch f {
		case FieldEmployeeID:
			present = request.EmployeeID != nil
		case FieldName:
			present = request.Name != nil
		case FieldDepartment:
			present = request.Department != nil
		case FieldSalary:
			present = request.Salary != nil
		case FieldJoiningDate:
			present = request.JoiningDate != nil
			if present {
				if _, err := models.NormalizeJoiningDate(*request.JoiningDate); err != nil {
					return ErrInvalidJoiningDate
				}
			}
		case FieldSkills:
			present = request.Skills != nil
		default:
			return ErrUnknownField
		}

		if !present {
			return fmt.Errorf("%w: %s", ErrMissingField, f)
		}
	}

	if request.EmployeeID != nil && *request.EmployeeID == "" {
		return ErrEmptyEmployeeID
	}

	return nil
}

func (v *EmployeeValidator) validateUpdate(update models.EmployeeUpdate) error {
	if len(update) == 0 {
		return ErrNoFieldsToUpdate
	}

	for key, value := range update {
		if slices.Contains(immutableEmployeeKeys, key) {
			return fmt.Errorf("%w: %s", ErrImmutableField, key)
		}

		if err := validateUpdateValue(key, value); err != nil {
			return err
		}
	}

	return nil
}

// validateUpdateValue checks a decoded JSON value against the type of the
// named employee field.
func validateUpdateValue(key string, value any) error {
	switch key {
	case FieldEmployeeID:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s", ErrInvalidFieldType, key)
		}
		if s == "" {
			return ErrEmptyEmployeeID
		}
	case FieldName, FieldDepartment:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%w: %s", ErrInvalidFieldType, key)
		}
	case FieldSalary:
		switch value.(type) {
		case float64, float32, int, int64:
		default:
			return fmt.Errorf("%w: %s", ErrInvalidFieldType, key)
		}
	case FieldJoiningDate:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s", ErrInvalidFieldType, key)
		}
		if _, err := models.NormalizeJoiningDate(s); err != nil {
			return ErrInvalidJoiningDate
		}
	case FieldSkills:
		if !isStringList(value) {
			return fmt.Errorf("%w: %s", ErrInvalidFieldType, key)
		}
	}

	return nil
}

func isStringList(value any) bool {
	switch list := value.(type) {
	case []string:
		return true
	case []any:
		for _, item := range list {
			if _, ok := item.(string); !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}
