package cli

import (
	"github.com/spf13/cobra"

	"employee-tracker/internal/output"
	"employee-tracker/internal/service"
)

func newViewCmd(a *app) *cobra.Command {
	var format string

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "List departments, roles or employees",
	}
	viewCmd.PersistentFlags().StringVarP(&format, "output", "o", "table", "Output format: table, json, yaml")

	viewCmd.AddCommand(&cobra.Command{
		Use:     "departments",
		Aliases: []string{"department", "dept"},
		Short:   "List all departments ordered by id",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			return a.withService(func(svc *service.TrackerService) error {
				departments, err := svc.ListDepartments(cmd.Context())
				if err != nil {
					return err
				}
				return a.printer(cmd).Departments(f, departments)
			})
		},
	})

	viewCmd.AddCommand(&cobra.Command{
		Use:     "roles",
		Aliases: []string{"role"},
		Short:   "List all roles ordered by id",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			return a.withService(func(svc *service.TrackerService) error {
				roles, err := svc.ListRoles(cmd.Context())
				if err != nil {
					return err
				}
				return a.printer(cmd).Roles(f, roles)
			})
		},
	})

	viewCmd.AddCommand(&cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee", "emp"},
		Short:   "List all employees with title, department, salary and manager",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			return a.withService(func(svc *service.TrackerService) error {
				employees, err := svc.ListEmployees(cmd.Context())
				if err != nil {
					return err
				}
				return a.printer(cmd).Employees(f, employees)
			})
		},
	})

	return viewCmd
}
