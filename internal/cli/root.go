// Package cli implements the contacts command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/contacts/internal/catalog"
	"github.com/mesh-intelligence/contacts/internal/logging"
	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataFile  string
	backend   string
	jsonMode  bool
}

// app is the state shared by the subcommands of one root command.
type app struct {
	flags     rootFlags
	configDir string
	dataFile  string // Set by openCatalog.
	cfg       *viper.Viper
}

// NewRootCmd creates the top-level "contacts" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "contacts",
		Short: "A phone book for people and organizations",
		Long:  "Contacts keeps a catalog of people and organizations with validated\nphone numbers, dates and genders, stored as JSON or SQLite.",
		// Errors are printed once by Execute.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.ConfigureRuntime()
			return a.loadConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (env "+paths.EnvConfigDir+")")
	root.PersistentFlags().StringVar(&a.flags.dataFile, "data-file", "", "catalog data file (env "+paths.EnvDataFile+")")
	root.PersistentFlags().StringVar(&a.flags.backend, "backend", "", "storage backend: json or sqlite (default: json)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newInfoCmd(a))
	root.AddCommand(newEditCmd(a))
	root.AddCommand(newRemoveCmd(a))
	root.AddCommand(newCountCmd(a))
	root.AddCommand(newSearchCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(format string, args ...any) error {
	return &exitError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

func sysError(format string, args ...any) error {
	return &exitError{code: exitSysError, err: fmt.Errorf(format, args...)}
}

// exitCode maps err to a process exit code. Errors that carry no code
// (cobra argument and flag errors) are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// backend returns the backend from flag, then config (and its env binding).
func (a *app) backend() string {
	if a.flags.backend != "" {
		return a.flags.backend
	}
	return a.cfg.GetString(cfgKeyBackend)
}

// openCatalog resolves the data file and opens the catalog. Diagnostics
// are printed to the command's stderr.
func (a *app) openCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	backend := a.backend()
	dataFile, err := paths.ResolveDataFile(a.flags.dataFile, a.cfg.GetString(cfgKeyDataFile), backend)
	if err != nil {
		return nil, sysError("resolve data file: %w", err)
	}

	a.dataFile = dataFile
	cfg := types.Config{Backend: backend, DataFile: dataFile}
	if err := cfg.Validate(); err != nil {
		return nil, userError("invalid config: %w", err)
	}

	c, err := catalog.Open(cfg,
		catalog.WithLogger(logging.Logger()),
		catalog.WithDiagnostics(func(d types.Diagnostic) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", d)
		}),
	)
	if err != nil {
		if errors.Is(err, types.ErrMalformedDocument) {
			return nil, userError("open catalog %s: %w", dataFile, err)
		}
		return nil, sysError("open catalog %s: %w", dataFile, err)
	}
	return c, nil
}

// save writes the catalog and maps a failure to a system error.
func save(c *catalog.Catalog) error {
	if err := c.Save(); err != nil {
		return sysError("%w", err)
	}
	return nil
}

// parseIndex converts a 1-based record number into a catalog index.
func parseIndex(arg string, c *catalog.Catalog) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, userError("invalid record number %q", arg)
	}
	if n < 1 || n > c.Size() {
		return 0, userError("record %d does not exist (catalog has %d records)", n, c.Size())
	}
	return n - 1, nil
}
