package main

import (
	"errors"
	"fmt"
	"strings"

	"worklog/database"
	"worklog/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	employeeFirstName string
	employeeLastName  string
	employeeSalary    float64
)

// employeeCmd groups directory maintenance. The web application only reads
// employees, so this is how they get there.
var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Manage the employee directory",
}

var employeeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an employee",
	Long: `Adds an employee who can then sign in by first name.

Example:
  worklog employee add --first-name Alice --last-name Reyes --salary 800`,
	RunE: runEmployeeAdd,
}

func init() {
	employeeAddCmd.Flags().StringVar(&employeeFirstName, "first-name", "", "first name, used to sign in")
	employeeAddCmd.Flags().StringVar(&employeeLastName, "last-name", "", "last name")
	employeeAddCmd.Flags().Float64Var(&employeeSalary, "salary", 0, "daily rate for an 8-hour day; omit if unknown")
	_ = employeeAddCmd.MarkFlagRequired("first-name")

	employeeCmd.AddCommand(employeeAddCmd)
}

func newEmployee(firstName, lastName string, salary *float64) (*models.Employee, error) {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return nil, errors.New("first name is required")
	}
	if salary != nil && *salary < 0 {
		return nil, errors.New("salary must not be negative")
	}
	return &models.Employee{
		FirstName: firstName,
		LastName:  strings.TrimSpace(lastName),
		Salary:    salary,
	}, nil
}

func runEmployeeAdd(cmd *cobra.Command, args []string) error {
	var salary *float64
	if cmd.Flags().Changed("salary") {
		salary = &employeeSalary
	}

	e, err := newEmployee(employeeFirstName, employeeLastName, salary)
	if err != nil {
		return err
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	if err := database.NewRepository(db).AddEmployee(cmd.Context(), e); err != nil {
		return err
	}

	logger.Info("employee added", zap.String("employee_id", e.ID))
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.ID, e.DisplayName())
	return nil
}
