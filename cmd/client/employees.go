package main

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-employee-keeper/internal/adapter"
	"github.com/MKhiriev/go-employee-keeper/models"
	"github.com/spf13/cobra"
)

func newEmployeeCmd(opts *clientOptions) *cobra.Command {
	employeeCmd := &cobra.Command{
		Use:     "employee",
		Aliases: []string{"employees"},
		Short:   "Manage employee records",
		Long: `Manage employee records.

Available subcommands:
  create - Create an employee
  get    - Show one employee
  list   - List employees, optionally by department or skill
  update - Change fields of an employee
  delete - Delete an employee`,
	}

	employeeCmd.AddCommand(
		newEmployeeCreateCmd(opts),
		newEmployeeGetCmd(opts),
		newEmployeeListCmd(opts),
		newEmployeeUpdateCmd(opts),
		newEmployeeDeleteCmd(opts),
	)

	return employeeCmd
}

func newEmployeeCreateCmd(opts *clientOptions) *cobra.Command {
	var (
		employee models.Employee
		skills   []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if skills == nil {
				skills = []string{}
			}
			request := models.EmployeeRequest{
				EmployeeID:  &employee.EmployeeID,
				Name:        &employee.Name,
				Department:  &employee.Department,
				Salary:      &employee.Salary,
				JoiningDate: &employee.JoiningDate,
				Skills:      &skills,
			}

			return opts.run(cmd, func(ctx context.Context, a adapter.ServerAdapter) (any, error) {
				created, err := a.CreateEmployee(ctx, request)
				if err != nil {
					return nil, err
				}
				return models.EmployeeResponse{Message: "Employee created", Employee: created}, nil
			})
		},
	}

	cmd.Flags().StringVar(&employee.EmployeeID, "id", "", "External employee ID")
	cmd.Flags().StringVar(&employee.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&employee.Department, "department", "", "Department")
	cmd.Flags().Float64Var(&employee.Salary, "salary", 0, "Salary")
	cmd.Flags().StringVar(&employee.JoiningDate, "joining-date", "", "Joining date (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&skills, "skills", nil, "Comma-separated skills")
	for _, name := range []string{"id", "name", "department", "salary", "joining-date"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newEmployeeGetCmd(opts *clientOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <employee_id>",
		Short: "Show one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, a adapter.ServerAdapter) (any, error) {
				return a.GetEmployee(ctx, args[0])
			})
		},
	}
}

func newEmployeeListCmd(opts *clientOptions) *cobra.Command {
	var (
		filter     models.EmployeeFilter
		pagination models.Pagination
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if filter.Department != "" && filter.Skill != "" {
				return errors.New("--department and --skill cannot be combined")
			}
			return opts.run(cmd, func(ctx context.Context, a adapter.ServerAdapter) (any, error) {
				return a.ListEmployees(ctx, filter, pagination)
			})
		},
	}

	cmd.Flags().StringVar(&filter.Department, "department", "", "Only employees of this department")
	cmd.Flags().StringVar(&filter.Skill, "skill", "", "Only employees with this skill")
	cmd.Flags().Int64Var(&pagination.Page, "page", models.DefaultPage, "Page number")
	cmd.Flags().Int64Var(&pagination.PageSize, "page-size", models.DefaultPageSize, "Page size (max 100)")

	return cmd
}

func newEmployeeUpdateCmd(opts *clientOptions) *cobra.Command {
	var assignments []string

	cmd := &cobra.Command{
		Use:     "update <employee_id>",
		Short:   "Change fields of an employee",
		Example: `  go-employee-client employee update E1 --set salary=90000 --set 'skills=["Go","SQL"]'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update, err := parseAssignments(assignments)
			if err != nil {
				return err
			}
			return opts.run(cmd, func(ctx context.Context, a adapter.ServerAdapter) (any, error) {
				updated, err := a.UpdateEmployee(ctx, args[0], update)
				if err != nil {
					return nil, err
				}
				return models.EmployeeResponse{Message: "Employee updated", Employee: updated}, nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&assignments, "set", nil, "Field assignment key=value, repeatable")
	_ = cmd.MarkFlagRequired("set")

	return cmd
}

func newEmployeeDeleteCmd(opts *clientOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <employee_id>",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, a adapter.ServerAdapter) (any, error) {
				if err := a.DeleteEmployee(ctx, args[0]); err != nil {
					return nil, err
				}
				return models.MessageResponse{Message: "Employee deleted"}, nil
			})
		},
	}
}
