package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory for configs, saves and databases.
const AppDir = ".mousetrap"

// Load loads the game configuration.
// Search order: customPath -> ~/.mousetrap/configs/mousetrap.yaml ->
// ./configs/mousetrap.yaml -> embedded default -> hardcoded default.
// Only a custom path that cannot be read or parsed is an error; broken
// files further down the chain are skipped.
func Load(customPath string) (MousetrapConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MousetrapConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return MousetrapConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("mousetrap.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "mousetrap.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultMousetrapYAML); err == nil {
		return cfg, nil
	}
	return DefaultConfig(), nil
}

// parse decodes data over the hardcoded defaults so omitted sections keep
// their default values.
func parse(data []byte) (MousetrapConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MousetrapConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MousetrapConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}
