// Package config manages the watson CLI configuration from config files and
// the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/watson-developer-cloud/watson-go/internal/format"
	"github.com/watson-developer-cloud/watson-go/option"
)

// ServiceConfig overrides the connection settings of one service. Empty
// fields fall back to the credentials the SDK discovers on its own.
type ServiceConfig struct {
	URL         string `json:"url,omitempty"`
	APIKey      string `json:"apikey,omitempty"`
	BearerToken string `json:"bearerToken,omitempty"`
	Version     string `json:"version,omitempty"`
}

// Config is the main configuration structure for the CLI.
type Config struct {
	WorkingDir   string                   `json:"wd,omitempty"`
	Debug        bool                     `json:"debug,omitempty"`
	OutputFormat format.OutputFormat      `json:"outputFormat,omitempty"`
	Services     map[string]ServiceConfig `json:"services,omitempty"`

	configFile string
}

const appName = "watson"

var cfg *Config

// Load reads the global config file and merges a local one found in
// workingDir. Environment variables prefixed with WATSON_ override both.
func Load(workingDir string, debug bool) (*Config, error) {
	cfg = &Config{WorkingDir: workingDir}

	v := viper.New()
	configureViper(v)
	setDefaults(v, debug)

	if err := readConfig(v.ReadInConfig()); err != nil {
		return cfg, err
	}
	mergeLocalConfig(v, workingDir)

	if err := v.Unmarshal(cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.WorkingDir = workingDir
	if debug {
		cfg.Debug = true
	}
	cfg.configFile = v.ConfigFileUsed()

	if err := Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func configureViper(v *viper.Viper) {
	v.SetConfigName(fmt.Sprintf(".%s", appName))
	v.SetConfigType("json")
	v.AddConfigPath("$HOME")
	v.AddConfigPath(fmt.Sprintf("$XDG_CONFIG_HOME/%s", appName))
	v.AddConfigPath(fmt.Sprintf("$HOME/.config/%s", appName))
	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func setDefaults(v *viper.Viper, debug bool) {
	v.SetDefault("debug", debug)
	v.SetDefault("outputFormat", string(format.TextFormat))
}

func readConfig(err error) error {
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("failed to read config: %w", err)
}

func mergeLocalConfig(v *viper.Viper, workingDir string) {
	if workingDir == "" {
		return
	}
	local := viper.New()
	local.SetConfigName(fmt.Sprintf(".%s", appName))
	local.SetConfigType("json")
	local.AddConfigPath(workingDir)

	if err := local.ReadInConfig(); err == nil {
		v.MergeConfigMap(local.AllSettings())
	}
}

// Validate checks the loaded configuration.
func Validate() error {
	if cfg == nil {
		return fmt.Errorf("config not loaded")
	}
	if !cfg.OutputFormat.IsValid() {
		return fmt.Errorf("invalid output format: %s", cfg.OutputFormat)
	}
	for name, svc := range cfg.Services {
		if svc.APIKey != "" && svc.BearerToken != "" {
			return fmt.Errorf("services.%s: apikey and bearerToken are mutually exclusive", name)
		}
	}
	return nil
}

// Get returns the current configuration.
func Get() *Config {
	return cfg
}

// ServiceOptions returns the request options configured for the service
// named name. They are meant to be passed after the service defaults.
func (c *Config) ServiceOptions(name string) []option.RequestOption {
	if c == nil {
		return nil
	}
	svc, ok := c.Services[strings.ToLower(name)]
	if !ok {
		return nil
	}
	var opts []option.RequestOption
	if svc.URL != "" {
		opts = append(opts, option.WithBaseURL(svc.URL))
	}
	switch {
	case svc.APIKey != "":
		opts = append(opts, option.WithAPIKey(svc.APIKey))
	case svc.BearerToken != "":
		opts = append(opts, option.WithBearerToken(svc.BearerToken))
	}
	if svc.Version != "" {
		opts = append(opts, option.WithVersion(svc.Version))
	}
	return opts
}

func updateCfgFile(updateCfg func(config *Config)) error {
	if cfg == nil {
		return fmt.Errorf("config not loaded")
	}

	configFile := cfg.configFile
	var configData []byte
	if configFile == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configFile = filepath.Join(homeDir, fmt.Sprintf(".%s.json", appName))
		slog.Info("config file not found, creating new one", "path", configFile)
		configData = []byte(`{}`)
	} else {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		configData = data
	}

	var userCfg *Config
	if err := json.Unmarshal(configData, &userCfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	updateCfg(userCfg)

	updatedData, err := json.MarshalIndent(userCfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file may hold credentials.
	if err := os.WriteFile(configFile, updatedData, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	cfg.configFile = configFile
	return nil
}

// SetService stores the settings of one service in memory and in the
// global config file.
func SetService(name string, svc ServiceConfig) error {
	if cfg == nil {
		return fmt.Errorf("config not loaded")
	}
	name = strings.ToLower(name)

	if cfg.Services == nil {
		cfg.Services = map[string]ServiceConfig{}
	}
	cfg.Services[name] = svc

	return updateCfgFile(func(config *Config) {
		if config.Services == nil {
			config.Services = map[string]ServiceConfig{}
		}
		config.Services[name] = svc
	})
}
