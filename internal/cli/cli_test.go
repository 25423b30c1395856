package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"carrozzeria/internal/adapter/http/dto/request"
	"carrozzeria/internal/infrastructure/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestMigrate_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop", "carrozzeria.db")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", path)

	out, _, err := execute(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlite schema ready")

	db, err := database.OpenSQLite(path, false)
	require.NoError(t, err)
	defer database.CloseSQLite(db)
	for _, table := range []string{"employees", "work_orders", "work_sessions", "quotes", "quote_payments"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestDashboard_Once(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer adm", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"generated_at":"2026-03-15T10:00:00Z","employees":[{"employee_id":"emp-1","first_name":"Mario","last_name":"Rossi","role":"employee","status":"available","sessions":[]}],"totals":{"employees_available":1}}`))
	}))
	defer srv.Close()

	out, _, err := execute(t, "dashboard", "--url", srv.URL, "--token", "adm", "--once")
	require.NoError(t, err)
	assert.Contains(t, out, "Mario Rossi")
	assert.Contains(t, out, "available 1")
}

func TestDashboard_OnceReportsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":"FORBIDDEN","message":"nope"}}`))
	}))
	defer srv.Close()

	_, stderr, err := execute(t, "dashboard", "--url", srv.URL, "--interval", "1s", "--once")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FORBIDDEN")
	assert.Contains(t, stderr, "using 5s")
}

func TestDashboard_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "dashboard", "extra")
	require.Error(t, err)
}

func TestEmployeeAdd_Flags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/employees", r.URL.Path)
		var body request.CreateEmployeeRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, request.CreateEmployeeRequest{FirstName: "Giulia", LastName: "Verdi", Role: "admin", HourlyRate: 41.5}, body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"emp-42","full_name":"Giulia Verdi","hourly_rate":41.5}`))
	}))
	defer srv.Close()

	out, _, err := execute(t, "employee", "add", "--url", srv.URL, "--token", "adm",
		"--first", " Giulia ", "--last", "Verdi", "--role", "Admin", "--rate", "41.5")
	require.NoError(t, err)
	assert.Contains(t, out, "created employee emp-42 (Giulia Verdi) at € 41.50/h")
}

func TestEmployeeAdd_MissingFieldsWithoutTerminal(t *testing.T) {
	_, _, err := execute(t, "employee", "add", "--url", "http://127.0.0.1:1", "--first", "Giulia", "--rate", "30")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "last name is required")
}

func TestEmployeeAddOptions_Request(t *testing.T) {
	cases := []struct {
		name string
		opts employeeAddOptions
		err  string
	}{
		{"bad role", employeeAddOptions{first: "a", last: "b", role: "owner", rate: "10"}, "role must be"},
		{"negative rate", employeeAddOptions{first: "a", last: "b", role: "employee", rate: "-1"}, "zero or positive"},
		{"not a number", employeeAddOptions{first: "a", last: "b", role: "employee", rate: "ten"}, "must be a number"},
		{"NaN rate", employeeAddOptions{first: "a", last: "b", role: "employee", rate: "NaN"}, "must be a number"},
		{"infinite rate", employeeAddOptions{first: "a", last: "b", role: "employee", rate: "Inf"}, "must be a number"},
		{"ok", employeeAddOptions{first: "a", last: "b", role: "employee", rate: "0"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.opts.request()
			if tc.err == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.err)
		})
	}
}

func writeRoster(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"First name", "Last name", "Role", "Rate"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Mario", "Rossi", "employee", 30}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"Giulia", "Verdi", "admin", 45}))

	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestEmployeeImport(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		var body request.CreateEmployeeRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.LastName == "Verdi" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"code":"FORBIDDEN","message":"Operation requires the admin role"}}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"emp-1","full_name":"Mario Rossi"}`))
	}))
	defer srv.Close()

	out, stderr, err := execute(t, "employee", "import", writeRoster(t), "--url", srv.URL)
	require.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.Contains(t, out, "row 2: created emp-1 (Mario Rossi)")
	assert.Contains(t, stderr, "row 3:")
	assert.Contains(t, err.Error(), "1 of 2 employees not imported")
}

func TestEmployeeImport_DryRun(t *testing.T) {
	out, _, err := execute(t, "employee", "import", writeRoster(t), "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "row 2: Mario Rossi (employee) € 30.00/h")
	assert.Contains(t, out, "row 3: Giulia Verdi (admin) € 45.00/h")
}

func TestEmployeeImport_DryRunXLS(t *testing.T) {
	out, _, err := execute(t, "employee", "import", filepath.Join("..", "infrastructure", "reports", "testdata", "roster.xls"), "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "row 2: Mario Rossi (employee) € 32.50/h")
	assert.Contains(t, out, "row 3: Giulia Verdi (admin) € 41.00/h")
	assert.NotContains(t, out, "Neri")
}
