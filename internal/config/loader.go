package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/kubechat"
	projectConfigDir = ".kubechat"
	configFileName   = "config.yaml"
)

// Load builds the kubechat configuration by layering default, user, and
// project settings. Missing files are skipped; unreadable or malformed files
// abort the load.
func Load() (Config, error) {
	config := DefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional; warn and continue with defaults.
		fmt.Fprintf(os.Stderr, "Warning: could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Only fields the
// overlay actually sets override the base.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Model.Endpoint != "" {
		merged.Model.Endpoint = overlay.Model.Endpoint
	}
	if overlay.Model.Name != "" {
		merged.Model.Name = overlay.Model.Name
	}
	if overlay.Model.APIKey != "" {
		merged.Model.APIKey = overlay.Model.APIKey
	}
	if overlay.Model.TimeoutSeconds > 0 {
		merged.Model.TimeoutSeconds = overlay.Model.TimeoutSeconds
	}

	if len(overlay.Server.Command) > 0 {
		merged.Server.Command = overlay.Server.Command
	}
	if len(overlay.Server.Env) > 0 {
		if merged.Server.Env == nil {
			merged.Server.Env = make(map[string]string, len(overlay.Server.Env))
		}
		for k, v := range overlay.Server.Env {
			merged.Server.Env[k] = v
		}
	}
	if overlay.Server.ConnectTimeoutSeconds > 0 {
		merged.Server.ConnectTimeoutSeconds = overlay.Server.ConnectTimeoutSeconds
	}
	if overlay.Server.RequestTimeoutSeconds > 0 {
		merged.Server.RequestTimeoutSeconds = overlay.Server.RequestTimeoutSeconds
	}
	if overlay.Server.CallTimeoutSeconds > 0 {
		merged.Server.CallTimeoutSeconds = overlay.Server.CallTimeoutSeconds
	}

	if overlay.Kubectl.Path != "" {
		merged.Kubectl.Path = overlay.Kubectl.Path
	}
	if overlay.Kubectl.Context != "" {
		merged.Kubectl.Context = overlay.Kubectl.Context
	}
	if overlay.Kubectl.TimeoutSeconds > 0 {
		merged.Kubectl.TimeoutSeconds = overlay.Kubectl.TimeoutSeconds
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path.
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
