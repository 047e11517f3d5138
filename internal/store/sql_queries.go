package store

import (
	"encoding/json"

	"github.com/MKhiriev/go-employee-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// Every collection is a table of JSONB documents keyed by a store-assigned
// identity column.
const (
	usersTable     = "users"
	employeesTable = "employees"

	idColumn  = "id"
	docColumn = "doc"

	usernameExpr   = "doc->>'username'"
	employeeIDExpr = "doc->>'employee_id'"
	departmentExpr = "doc->>'department'"

	skillsContainExpr = "doc->'skills' @> ?::jsonb"
	averageSalaryExpr = "AVG(CASE WHEN jsonb_typeof(doc->'salary') = 'number' THEN (doc->>'salary')::float8 END)"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildInsertDocumentQuery(table string, doc []byte) (string, []any, error) {
	return psql.Insert(table).
		Columns(docColumn).
		Values(sq.Expr("?::jsonb", string(doc))).
		Suffix("RETURNING " + idColumn).
		ToSql()
}

func buildSelectDocumentByIDQuery(table string, id int64) (string, []any, error) {
	return psql.Select(idColumn, docColumn).
		From(table).
		Where(sq.Eq{idColumn: id}).
		ToSql()
}

func buildSelectUserByUsernameQuery(username string) (string, []any, error) {
	return psql.Select(idColumn, docColumn).
		From(usersTable).
		Where(sq.Eq{usernameExpr: username}).
		Limit(1).
		ToSql()
}

func buildSelectEmployeeByEmployeeIDQuery(employeeID string) (string, []any, error) {
	return psql.Select(idColumn, docColumn).
		From(employeesTable).
		Where(sq.Eq{employeeIDExpr: employeeID}).
		OrderBy(idColumn).
		Limit(1).
		ToSql()
}

// buildListEmployeesQuery selects one page of the filtered employees in
// insertion order.
func buildListEmployeesQuery(filter models.EmployeeFilter, pagination models.Pagination) (string, []any, error) {
	pagination = pagination.Normalize()

	builder, err := withEmployeeFilter(psql.Select(idColumn, docColumn).From(employeesTable), filter)
	if err != nil {
		return "", nil, err
	}

	return builder.
		OrderBy(idColumn).
		Limit(uint64(pagination.PageSize)).
		Offset(pagination.Offset()).
		ToSql()
}

func buildCountEmployeesQuery(filter models.EmployeeFilter) (string, []any, error) {
	builder, err := withEmployeeFilter(psql.Select("COUNT(*)").From(employeesTable), filter)
	if err != nil {
		return "", nil, err
	}
	return builder.ToSql()
}

// withEmployeeFilter adds one condition per non-empty filter field.
// The skill condition is JSONB containment, so only an exact element of the
// skills array matches.
func withEmployeeFilter(builder sq.SelectBuilder, filter models.EmployeeFilter) (sq.SelectBuilder, error) {
	if filter.Department != "" {
		builder = builder.Where(sq.Eq{departmentExpr: filter.Department})
	}
	if filter.Skill != "" {
		skill, err := json.Marshal([]string{filter.Skill})
		if err != nil {
			return builder, err
		}
		builder = builder.Where(sq.Expr(skillsContainExpr, string(skill)))
	}
	return builder, nil
}

// buildUpdateEmployeeQuery shallow-merges patch into the stored document:
// keys present in patch replace the stored ones, other keys are kept.
func buildUpdateEmployeeQuery(employeeID string, patch []byte) (string, []any, error) {
	return psql.Update(employeesTable).
		Set(docColumn, sq.Expr("doc || ?::jsonb", string(patch))).
		Where(sq.Eq{employeeIDExpr: employeeID}).
		ToSql()
}

func buildDeleteEmployeeQuery(employeeID string) (string, []any, error) {
	return psql.Delete(employeesTable).
		Where(sq.Eq{employeeIDExpr: employeeID}).
		ToSql()
}

// buildAverageSalaryQuery averages the numeric salaries of a department.
// Non-numeric salaries are ignored by the average but still counted.
func buildAverageSalaryQuery(department string) (string, []any, error) {
	return psql.Select(departmentExpr, averageSalaryExpr, "COUNT(*)").
		From(employeesTable).
		Where(sq.Eq{departmentExpr: department}).
		GroupBy(departmentExpr).
		ToSql()
}
