package cli

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"carrozzeria/internal/adapter/http/dto/request"
	"carrozzeria/internal/infrastructure/reports"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

type employeeAddOptions struct {
	api     apiFlags
	first   string
	last    string
	role    string
	rate    string
	noInput bool
}

func newEmployeeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage workshop employees",
	}
	cmd.AddCommand(newEmployeeAddCmd())
	cmd.AddCommand(newEmployeeImportCmd())
	return cmd
}

func newEmployeeAddCmd() *cobra.Command {
	opts := employeeAddOptions{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register an employee (prompts for missing fields on a terminal)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmployeeAdd(cmd, &opts)
		},
	}

	f := cmd.Flags()
	opts.api.bind(f)
	f.StringVar(&opts.first, "first", "", "first name")
	f.StringVar(&opts.last, "last", "", "last name")
	f.StringVar(&opts.role, "role", "employee", "employee or admin")
	f.StringVar(&opts.rate, "rate", "", "hourly rate in euro")
	f.BoolVar(&opts.noInput, "no-input", false, "never prompt, fail on missing fields")
	return cmd
}

func runEmployeeAdd(cmd *cobra.Command, opts *employeeAddOptions) error {
	missing := strings.TrimSpace(opts.first) == "" || strings.TrimSpace(opts.last) == "" || strings.TrimSpace(opts.rate) == ""
	if missing && !opts.noInput && isTerminal(cmd.InOrStdin()) {
		if err := employeeForm(opts).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}

	req, err := opts.request()
	if err != nil {
		return err
	}
	created, err := opts.api.client(cmd.Context()).CreateEmployee(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created employee %s (%s) at € %.2f/h\n", created.ID, created.FullName, created.HourlyRate)
	return nil
}

func employeeForm(opts *employeeAddOptions) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First name").Value(&opts.first).Validate(validateRequired("first name")),
			huh.NewInput().Title("Last name").Value(&opts.last).Validate(validateRequired("last name")),
			huh.NewSelect[string]().
				Title("Role").
				Options(
					huh.NewOption("Employee", "employee"),
					huh.NewOption("Admin", "admin"),
				).
				Value(&opts.role),
			huh.NewInput().Title("Hourly rate (€)").Placeholder("30.00").Value(&opts.rate).Validate(validateRate),
		),
	).WithShowHelp(false)
}

func (o employeeAddOptions) request() (request.CreateEmployeeRequest, error) {
	if err := validateRequired("first name")(o.first); err != nil {
		return request.CreateEmployeeRequest{}, err
	}
	if err := validateRequired("last name")(o.last); err != nil {
		return request.CreateEmployeeRequest{}, err
	}
	role := strings.ToLower(strings.TrimSpace(o.role))
	if role != "employee" && role != "admin" {
		return request.CreateEmployeeRequest{}, fmt.Errorf("role must be employee or admin, got %q", o.role)
	}
	if err := validateRate(o.rate); err != nil {
		return request.CreateEmployeeRequest{}, err
	}
	rate, _ := strconv.ParseFloat(strings.TrimSpace(o.rate), 64)
	return request.CreateEmployeeRequest{
		FirstName:  strings.TrimSpace(o.first),
		LastName:   strings.TrimSpace(o.last),
		Role:       role,
		HourlyRate: rate,
	}, nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateRate(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("hourly rate must be a number")
	}
	if v < 0 {
		return fmt.Errorf("hourly rate must be zero or positive")
	}
	return nil
}

func newEmployeeImportCmd() *cobra.Command {
	var (
		api    apiFlags
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Register every employee listed in an .xls or .xlsx roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			entries, err := reports.ReadRoster(f, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				for _, e := range entries {
					fmt.Fprintf(out, "row %d: %s %s (%s) € %.2f/h\n", e.Row, e.FirstName, e.LastName, e.Role, e.HourlyRate)
				}
				return nil
			}

			client := api.client(cmd.Context())
			var failed int
			for _, e := range entries {
				created, err := client.CreateEmployee(cmd.Context(), request.CreateEmployeeRequest{
					FirstName:  e.FirstName,
					LastName:   e.LastName,
					Role:       e.Role,
					HourlyRate: e.HourlyRate,
				})
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "row %d: %v\n", e.Row, err)
					continue
				}
				fmt.Fprintf(out, "row %d: created %s (%s)\n", e.Row, created.ID, created.FullName)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d employees not imported", failed, len(entries))
			}
			return nil
		},
	}
	api.bind(cmd.Flags())
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse the roster and print it without calling the API")
	return cmd
}
