// Package output renders query results and user-facing messages.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"employee-tracker/internal/service"
)

// Format selects how listings are written.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case FormatTable, FormatJSON, FormatYAML:
		return Format(raw), nil
	case "":
		return FormatTable, nil
	}
	return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", raw)
}

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// Printer writes to a pair of streams. The zero value is not usable; see New.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

func New(out io.Writer, errOut io.Writer) *Printer {
	return &Printer{Out: out, Err: errOut}
}

// Stdio prints to the process streams.
func Stdio() *Printer {
	return New(os.Stdout, os.Stderr)
}

// Table always prints the header row, even with no rows.
func (p *Printer) Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(p.Out, t.Render())
}

func (p *Printer) JSON(data any) error {
	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (p *Printer) YAML(data any) error {
	enc := yaml.NewEncoder(p.Out)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}

func (p *Printer) Message(msg string) {
	fmt.Fprintln(p.Out, msg)
}

func (p *Printer) Success(msg string) {
	successColor.Fprintln(p.Out, msg)
}

func (p *Printer) Error(err error) {
	errorColor.Fprintf(p.Err, "Error: %v\n", err)
}

func (p *Printer) render(format Format, data any, headers []string, rows [][]string) error {
	switch format {
	case FormatJSON:
		return p.JSON(data)
	case FormatYAML:
		return p.YAML(data)
	default:
		p.Table(headers, rows)
		return nil
	}
}

func (p *Printer) Departments(format Format, departments []service.DepartmentDTO) error {
	rows := make([][]string, 0, len(departments))
	for _, d := range departments {
		rows = append(rows, []string{formatID(d.ID), d.Name})
	}
	return p.render(format, departments, []string{"id", "name"}, rows)
}

func (p *Printer) Roles(format Format, roles []service.RoleDTO) error {
	rows := make([][]string, 0, len(roles))
	for _, r := range roles {
		rows = append(rows, []string{formatID(r.ID), r.Title, FormatSalary(r.Salary), formatID(r.DepartmentID)})
	}
	return p.render(format, roles, []string{"id", "title", "salary", "department_id"}, rows)
}

func (p *Printer) Employees(format Format, employees []service.EmployeeDTO) error {
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{
			formatID(e.ID),
			e.FirstName,
			e.LastName,
			e.Title,
			e.Department,
			FormatSalary(e.Salary),
			e.Manager,
		})
	}
	headers := []string{"id", "first_name", "last_name", "title", "department", "salary", "manager"}
	return p.render(format, employees, headers, rows)
}

// FormatSalary prints two decimals, matching the column's scale.
func FormatSalary(salary float64) string {
	return strconv.FormatFloat(salary, 'f', 2, 64)
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
