package reports

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

const maxRosterRows = 10000

var ErrRosterEmpty = errors.New("roster has no employee rows")

// RosterEntry is one employee row of an imported roster. Row is the
// 1-based spreadsheet row it came from.
type RosterEntry struct {
	Row        int
	FirstName  string
	LastName   string
	Role       string
	HourlyRate float64
}

type rosterColumns struct {
	first, last, name, role, rate int
}

var rosterHeaders = map[string]string{
	"first name": "first", "first_name": "first", "firstname": "first", "nome": "first",
	"last name": "last", "last_name": "last", "lastname": "last", "surname": "last", "cognome": "last",
	"name": "name", "employee": "name", "full name": "name",
	"role": "role", "ruolo": "role",
	"rate": "rate", "hourly rate": "rate", "hourly_rate": "rate", "tariffa": "rate", "€/h": "rate",
}

// ReadRoster parses an employee roster from an .xls or .xlsx workbook. The
// first sheet must start with a header row naming the first and last name
// columns (or a single "name" column holding "Last, First" or "First Last")
// and a rate column. A missing role defaults to employee.
func ReadRoster(r io.Reader, filename string) ([]RosterEntry, error) {
	rows, err := readRows(r, filename)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrRosterEmpty
	}

	cols, err := locateColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var out []RosterEntry
	for i, row := range rows[1:] {
		rowNum := i + 2
		entry, ok, err := parseRosterRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		if !ok {
			continue
		}
		entry.Row = rowNum
		out = append(out, entry)
	}
	if len(out) == 0 {
		return nil, ErrRosterEmpty
	}
	return out, nil
}

func readRows(r io.Reader, filename string) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, fmt.Errorf("reading xls: %w", err)
		}
		sheet := wb.GetSheet(0)
		if sheet == nil {
			return nil, fmt.Errorf("no worksheet found")
		}
		rows := 0
		if sheet.MaxRow != 0 {
			rows = int(sheet.MaxRow) + 1
		}
		return firstSheet(wb.ReadAllCells(maxRosterRows), rows), nil
	case ".xlsx":
		f, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("reading xlsx: %w", err)
		}
		defer func() { _ = f.Close() }()

		sheet := f.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("no worksheet found")
		}
		return f.GetRows(sheet)
	default:
		return nil, fmt.Errorf("unsupported roster file %q, expected .xls or .xlsx", filename)
	}
}

// firstSheet trims ReadAllCells output, which concatenates every sheet in
// workbook order, down to the first sheet's rows.
func firstSheet(all [][]string, rows int) [][]string {
	if rows < len(all) {
		return all[:rows]
	}
	return all
}

func locateColumns(header []string) (rosterColumns, error) {
	cols := rosterColumns{first: -1, last: -1, name: -1, role: -1, rate: -1}
	for i, h := range header {
		switch rosterHeaders[strings.ToLower(strings.TrimSpace(h))] {
		case "first":
			cols.first = i
		case "last":
			cols.last = i
		case "name":
			cols.name = i
		case "role":
			cols.role = i
		case "rate":
			cols.rate = i
		}
	}
	if (cols.first < 0 || cols.last < 0) && cols.name < 0 {
		return cols, fmt.Errorf("roster header needs first and last name columns or a name column")
	}
	if cols.rate < 0 {
		return cols, fmt.Errorf("roster header needs a rate column")
	}
	return cols, nil
}

// parseRosterRow reports ok=false for blank rows.
func parseRosterRow(row []string, cols rosterColumns) (RosterEntry, bool, error) {
	var first, last string
	if cols.first >= 0 && cols.last >= 0 {
		first, last = cell(row, cols.first), cell(row, cols.last)
	} else {
		first, last = splitName(cell(row, cols.name))
	}
	rawRate := cell(row, cols.rate)
	if first == "" && last == "" && rawRate == "" {
		return RosterEntry{}, false, nil
	}
	if first == "" || last == "" {
		return RosterEntry{}, false, fmt.Errorf("first and last name are required")
	}

	rate, err := parseRate(rawRate)
	if err != nil {
		return RosterEntry{}, false, err
	}

	role := strings.ToLower(cell(row, cols.role))
	switch role {
	case "":
		role = "employee"
	case "employee", "admin":
	default:
		return RosterEntry{}, false, fmt.Errorf("unknown role %q", role)
	}

	return RosterEntry{FirstName: first, LastName: last, Role: role, HourlyRate: rate}, true, nil
}

// parseRate accepts "32.5", "32,50" and "€ 32,50".
func parseRate(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "€"))
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hourly rate %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid hourly rate %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("hourly rate must be zero or positive")
	}
	return v, nil
}

func splitName(name string) (string, string) {
	if last, first, ok := strings.Cut(name, ","); ok {
		return strings.TrimSpace(first), strings.TrimSpace(last)
	}
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return strings.TrimSpace(name), ""
	}
	return strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1]
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
