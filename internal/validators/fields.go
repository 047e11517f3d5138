package validators

import "github.com/MKhiriev/go-employee-keeper/models"

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"

	FieldEmployeeID  = models.FieldEmployeeID
	FieldName        = models.FieldName
	FieldDepartment  = models.FieldDepartment
	FieldSalary      = models.FieldSalary
	FieldJoiningDate = models.FieldJoiningDate
	FieldSkills      = models.FieldSkills
)

var employeeFields = []string{
	FieldEmployeeID,
	FieldName,
	FieldDepartment,
	FieldSalary,
	FieldJoiningDate,
	FieldSkills,
}

// immutableEmployeeKeys name the store-assigned identifier under both the
// API name and the document-store convention.
var immutableEmployeeKeys = []string{"id", "_id"}
