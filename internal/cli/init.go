package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend  string `yaml:"backend"`
	DataFile string `yaml:"data_file,omitempty"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize contacts configuration and storage",
		Long:  "Create the configuration directory and config.yaml, then open the\nconfigured storage backend once so its data file is ready.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return sysError("create config directory: %w", err)
	}

	if err := writeConfigIfMissing(a.configPath(), a.backend(), a.flags.dataFile); err != nil {
		return sysError("write config: %w", err)
	}

	c, err := a.openCatalog(cmd)
	if err != nil {
		return err
	}
	defer c.Close()
	if err := save(c); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Contacts initialized successfully")
	if c.Persistent() {
		fmt.Fprintf(cmd.OutOrStdout(), "Data file: %s\n", a.dataFile)
	}
	return nil
}

// writeConfigIfMissing creates config.yaml if the file does not exist. An
// existing file is left untouched.
func writeConfigIfMissing(path, backend, dataFile string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	data, err := yaml.Marshal(&configFile{Backend: backend, DataFile: dataFile})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
