package cli

import (
	"errors"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend  = "backend"
	cfgKeyDataFile = "data_file"

	envBackend = "CONTACTS_BACKEND"
)

// loadConfig resolves the config directory and reads config.yaml from it.
// A missing config.yaml is not an error; defaults apply.
func (a *app) loadConfig() error {
	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError("resolve config dir: %w", err)
	}
	a.configDir = dir

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendJSON)
	if err := v.BindEnv(cfgKeyBackend, envBackend); err != nil {
		return sysError("bind env: %w", err)
	}
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return userError("read config: %w", err)
		}
	}
	a.cfg = v
	return nil
}

// configPath returns the path of config.yaml in the resolved config directory.
func (a *app) configPath() string {
	return filepath.Join(a.configDir, configFileExt)
}
