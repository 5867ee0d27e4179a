package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/contacts/internal/codec"
	"github.com/mesh-intelligence/contacts/pkg/contacts"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// env holds the directories one test's commands run against.
type env struct {
	configDir string
	dataFile  string
	backend   string
}

func newEnv(t *testing.T, backend, file string) env {
	t.Helper()
	t.Setenv(envBackend, "")
	dir := t.TempDir()
	return env{
		configDir: filepath.Join(dir, "config"),
		dataFile:  filepath.Join(dir, file),
		backend:   backend,
	}
}

// run executes one command line and returns stdout, stderr and the error.
func (e env) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	full := append([]string{"--config-dir", e.configDir, "--data-file", e.dataFile, "--backend", e.backend}, args...)
	root.SetArgs(full)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func (e env) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, _, err := e.run(t, args...)
	require.NoError(t, err, "contacts %s", strings.Join(args, " "))
	return out
}

func addSamples(t *testing.T, e env) {
	t.Helper()
	e.mustRun(t, "add", "person", "--name", "John", "--surname", "Smith",
		"--birth", "1990-05-17", "--gender", "M", "--number", "+1 (555) 0100")
	e.mustRun(t, "add", "org", "--name", "Pizza Shop", "--address", "Main St. 1", "--number", "555 0199")
}

func TestVersion(t *testing.T) {
	e := newEnv(t, types.BackendJSON, "contacts.json")
	out := e.mustRun(t, "version")
	assert.Contains(t, out, "contacts v"+contacts.Version)
	assert.Contains(t, out, modulePath)
}

func TestInit(t *testing.T) {
	for _, tt := range []struct{ backend, file string }{
		{types.BackendJSON, "contacts.json"},
		{types.BackendSQLite, "contacts.db"},
	} {
		t.Run(tt.backend, func(t *testing.T) {
			e := newEnv(t, tt.backend, tt.file)
			out := e.mustRun(t, "init")
			assert.Contains(t, out, "initialized successfully")
			assert.Contains(t, out, "Data file: "+e.dataFile+"\n")

			data, err := os.ReadFile(filepath.Join(e.configDir, configFileExt))
			require.NoError(t, err)
			var cfg configFile
			require.NoError(t, yaml.Unmarshal(data, &cfg))
			assert.Equal(t, tt.backend, cfg.Backend)
			assert.Equal(t, e.dataFile, cfg.DataFile)

			_, err = os.Stat(e.dataFile)
			assert.NoError(t, err, "data file created")

			// A second init keeps the existing config.
			require.NoError(t, os.WriteFile(filepath.Join(e.configDir, configFileExt), []byte("backend: "+tt.backend+"\n"), 0o644))
			e.mustRun(t, "init")
			data, err = os.ReadFile(filepath.Join(e.configDir, configFileExt))
			require.NoError(t, err)
			assert.Equal(t, "backend: "+tt.backend+"\n", string(data))
		})
	}
}

func TestAddListInfo(t *testing.T) {
	for _, tt := range []struct{ backend, file string }{
		{types.BackendJSON, "contacts.json"},
		{types.BackendSQLite, "contacts.db"},
	} {
		t.Run(tt.backend, func(t *testing.T) {
			e := newEnv(t, tt.backend, tt.file)
			addSamples(t, e)

			assert.Equal(t, "1. John Smith\n2. Pizza Shop\n", e.mustRun(t, "list"))

			info := e.mustRun(t, "info", "1")
			assert.Contains(t, info, "Name: John\n")
			assert.Contains(t, info, "Birth date: 1990-05-17\n")
			assert.Contains(t, info, "Number: +1 (555) 0100\n")
			assert.Contains(t, info, "Time last edit: ")

			info = e.mustRun(t, "info", "2")
			assert.Contains(t, info, "Organization name: Pizza Shop\n")
			assert.Contains(t, info, "Address: Main St. 1\n")

			assert.Equal(t, "The catalog has 2 records (1 person, 1 company).\n", e.mustRun(t, "count"))
		})
	}
}

func TestAddReportsInvalidInput(t *testing.T) {
	e := newEnv(t, types.BackendJSON, "contacts.json")
	_, stderr, err := e.run(t, "add", "person", "--name", "Ann", "--surname", "Lee",
		"--birth", "17.05.1990", "--gender", "X", "--number", "12")
	require.NoError(t, err, "invalid values are coerced, not rejected")

	assert.Contains(t, stderr, "warning: person birth")
	assert.Contains(t, stderr, "warning: person gender")
	assert.Contains(t, stderr, "warning: person number")

	info := e.mustRun(t, "info", "1")
	assert.Contains(t, info, "Birth date: "+types.SentinelNoData)
	assert.Contains(t, info, "Gender: "+types.SentinelNoData)
	assert.Contains(t, info, "Number: "+types.SentinelNoNumber)
}

func TestReadCommandsDoNotRepeatWarnings(t *testing.T) {
	for _, tt := range []struct{ backend, file string }{
		{types.BackendJSON, "contacts.json"},
		{types.BackendSQLite, "contacts.db"},
	} {
		t.Run(tt.backend, func(t *testing.T) {
			e := newEnv(t, tt.backend, tt.file)
			_, stderr, err := e.run(t, "add", "person", "--name", "Ann", "--surname", "Lee",
				"--gender", "F", "--number", "12 34")
			require.NoError(t, err)
			assert.Equal(t, 1, strings.Count(stderr, "warning:"), "missing birth date is reported once: %q", stderr)

			for _, args := range [][]string{{"list"}, {"count"}, {"info", "1"}, {"search", "ann"}} {
				_, stderr, err := e.run(t, args...)
				require.NoError(t, err)
				assert.Empty(t, stderr, "contacts %s", strings.Join(args, " "))
			}
		})
	}
}

func TestCountJSON(t *testing.T) {
	for _, tt := range []struct{ backend, file string }{
		{types.BackendJSON, "contacts.json"},
		{types.BackendSQLite, "contacts.db"},
	} {
		t.Run(tt.backend, func(t *testing.T) {
			e := newEnv(t, tt.backend, tt.file)
			assert.JSONEq(t, `{"count":0,"kinds":{"person":0,"company":0}}`, e.mustRun(t, "--json", "count"))

			addSamples(t, e)
			e.mustRun(t, "add", "org", "--name", "Depot", "--address", "Dock 2", "--number", "44 55")
			assert.JSONEq(t, `{"count":3,"kinds":{"person":1,"company":2}}`, e.mustRun(t, "--json", "count"))
		})
	}
}

func TestAddPersonGenderHelp(t *testing.T) {
	e := newEnv(t, types.BackendJSON, "contacts.json")
	out := e.mustRun(t, "add", "person", "--help")
	assert.Contains(t, out, "gender (M or F)")
}

func TestEdit(t *testing.T) {
	e := newEnv(t, types.BackendJSON, "contacts.json")
	addSamples(t, e)

	out := e.mustRun(t, "edit", "1", "surname", "Doe")
	assert.Equal(t, "Set surname of 1 to Doe\n", out)
	assert.Contains(t, e.mustRun(t, "list"), "1. John Doe")

	out = e.mustRun(t, "edit", "2", "number", "not a phone!")
	assert.Equal(t, "Set number of 2 to "+types.SentinelNoNumber+"\n", out)

	_, _, err := e.run(t, "edit", "2", "surname", "Doe")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
	assert.Contains(t, err.Error(), "valid: name, address, number")
}

func TestRemove(t *testing.T) {
	e := newEnv(t, types.BackendSQLite, "contacts.db")
	addSamples(t, e)

	assert.Equal(t, "Removed John Smith\n", e.mustRun(t, "remove", "1"))
	assert.Equal(t, "1. Pizza Shop\n", e.mustRun(t, "list"))
	assert.Equal(t, "The catalog has 1 records (0 person, 1 company).\n", e.mustRun(t, "count"))
}

func TestSearch(t *testing.T) {
	e := newEnv(t, types.BackendJSON, "contacts.json")
	addSamples(t, e)

	assert.Equal(t, "Found 1 results:\n2. Pizza Shop\n", e.mustRun(t, "search", "main st"))
	assert.Equal(t, "Found 1 results:\n1. John Smith\n", e.mustRun(t, "search", "JOHN"))
	assert.Equal(t, "No results found.\n", e.mustRun(t, "search", "nobody"))
}

func TestJSONOutput(t *testing.T) {
	e := newEnv(t, types.BackendJSON, "contacts.json")
	addSamples(t, e)

	out := e.mustRun(t, "--json", "list")
	records, err := codec.Decode([]byte(out), nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, types.KindPerson, records[0].Kind())
	assert.Equal(t, types.KindOrganization, records[1].Kind())

	out = e.mustRun(t, "--json", "search", "nobody")
	assert.Equal(t, "[]\n", out)

	out = e.mustRun(t, "--json", "info", "2")
	r, err := codec.DecodeRecord([]byte(out), nil)
	require.NoError(t, err)
	assert.Equal(t, "Pizza Shop", r.Describe())
}

func TestIndexErrors(t *testing.T) {
	e := newEnv(t, types.BackendJSON, "contacts.json")
	addSamples(t, e)

	for _, args := range [][]string{
		{"info", "0"},
		{"info", "3"},
		{"info", "two"},
		{"remove", "-1"},
		{"edit", "9", "name", "X"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, _, err := e.run(t, args...)
			require.Error(t, err)
			assert.Equal(t, exitUserError, exitCode(err))
		})
	}
	assert.Equal(t, "The catalog has 2 records (1 person, 1 company).\n", e.mustRun(t, "count"))
}

func TestMalformedDocumentIsUserError(t *testing.T) {
	e := newEnv(t, types.BackendJSON, "contacts.json")
	require.NoError(t, os.WriteFile(e.dataFile, []byte(`[{"type":"robot"}]`), 0o644))

	_, _, err := e.run(t, "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrMalformedDocument)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestUnknownBackend(t *testing.T) {
	e := newEnv(t, "csv", "contacts.csv")
	_, _, err := e.run(t, "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestBackendFromConfigFile(t *testing.T) {
	e := newEnv(t, "", "contacts.db")
	require.NoError(t, os.MkdirAll(e.configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(e.configDir, configFileExt), []byte("backend: sqlite\n"), 0o644))

	addSamples(t, e)

	data, err := os.ReadFile(e.dataFile)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("SQLite format 3")), "data file is a sqlite database")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(userError("bad")))
	assert.Equal(t, exitSysError, exitCode(sysError("disk")))
	assert.Equal(t, exitUserError, exitCode(assert.AnError))
}
