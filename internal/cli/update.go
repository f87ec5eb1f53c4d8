package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"employee-tracker/internal/service"
)

func newUpdateCmd(a *app) *cobra.Command {
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update employee records",
	}

	var employeeID, roleID uint
	roleCmd := &cobra.Command{
		Use:     "employee-role",
		Short:   "Assign a new role to an employee",
		Example: `  emptrack update employee-role --employee-id 4 --role-id 2`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(func(svc *service.TrackerService) error {
				if err := svc.UpdateEmployeeRole(cmd.Context(), employeeID, roleID); err != nil {
					return fmt.Errorf("updating employee role: %w", err)
				}
				a.printer(cmd).Success("Employee role updated successfully.")
				return nil
			})
		},
	}
	roleCmd.Flags().UintVar(&employeeID, "employee-id", 0, "Employee ID (required)")
	roleCmd.Flags().UintVar(&roleID, "role-id", 0, "Role ID (required)")
	_ = roleCmd.MarkFlagRequired("employee-id")
	_ = roleCmd.MarkFlagRequired("role-id")

	updateCmd.AddCommand(roleCmd)
	return updateCmd
}
