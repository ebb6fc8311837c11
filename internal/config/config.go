package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderGenerate = "generate"
	ProviderOpenAI   = "openai"

	DefaultBackendURL = "https://ai-tool-backend.onrender.com"
	DefaultDataURL    = "http://localhost:5000/api/data"
	DefaultModel      = "gpt-4o-mini"
	DefaultTheme      = "light"
	DefaultLogLevel   = "info"

	envPrefix = "RORIGEN"
)

type Profile struct {
	Provider   string `json:"provider" mapstructure:"provider"`
	BackendURL string `json:"backend_url,omitempty" mapstructure:"backend_url"`
	APIKey     string `json:"api_key,omitempty" mapstructure:"api_key"`
	Model      string `json:"model,omitempty" mapstructure:"model"`
	// Timeout is in seconds; 0 waits indefinitely.
	Timeout int `json:"timeout,omitempty" mapstructure:"timeout"`
}

type Config struct {
	Profiles      map[string]Profile `json:"profiles" mapstructure:"profiles"`
	ActiveProfile string             `json:"active_profile" mapstructure:"active_profile"`
	Theme         string             `json:"theme,omitempty" mapstructure:"theme"`
	DataURL       string             `json:"data_url,omitempty" mapstructure:"data_url"`
	ExportDir     string             `json:"export_dir,omitempty" mapstructure:"export_dir"`
	LogLevel      string             `json:"log_level,omitempty" mapstructure:"log_level"`
	ExportFont    string             `json:"export_font,omitempty" mapstructure:"export_font"`

	// Environment values win over the file but are never saved.
	overrides      overrides
	currentProfile *Profile
}

type overrides struct {
	BackendURL string `mapstructure:"backend_url"`
	Theme      string `mapstructure:"theme"`
	DataURL    string `mapstructure:"data_url"`
	ExportDir  string `mapstructure:"export_dir"`
	ExportFont string `mapstructure:"export_font"`
	LogLevel   string `mapstructure:"log_level"`
}

var overrideKeys = []string{"backend_url", "theme", "data_url", "export_dir", "export_font", "log_level"}

// NormalizeProfileName folds a name to the form it has after a load; the
// config reader lowercases map keys.
func NormalizeProfileName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

// IsValid reports whether the active profile can issue generation requests.
func (c *Config) IsValid() bool {
	if c.currentProfile == nil {
		return false
	}
	switch c.GetProvider() {
	case ProviderOpenAI:
		return c.currentProfile.APIKey != ""
	case ProviderGenerate:
		return c.GetBackendURL() != ""
	}
	return false
}

func (c *Config) GetProvider() string {
	if c.currentProfile == nil || c.currentProfile.Provider == "" {
		return ProviderGenerate
	}
	return strings.ToLower(c.currentProfile.Provider)
}

// GetBackendURL resolves the base URL: environment, then profile, then the
// built-in default.
func (c *Config) GetBackendURL() string {
	if c.overrides.BackendURL != "" {
		return strings.TrimRight(c.overrides.BackendURL, "/")
	}
	if c.currentProfile != nil && c.currentProfile.BackendURL != "" {
		return strings.TrimRight(c.currentProfile.BackendURL, "/")
	}
	if c.GetProvider() == ProviderOpenAI {
		return ""
	}
	return DefaultBackendURL
}

func (c *Config) GetAPIKey() string {
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.APIKey
}

func (c *Config) GetModel() string {
	if c.currentProfile == nil || c.currentProfile.Model == "" {
		return DefaultModel
	}
	return c.currentProfile.Model
}

func (c *Config) GetTimeout() time.Duration {
	if c.currentProfile == nil || c.currentProfile.Timeout <= 0 {
		return 0
	}
	return time.Duration(c.currentProfile.Timeout) * time.Second
}

func (c *Config) GetDataURL() string {
	return firstNonEmpty(c.overrides.DataURL, c.DataURL, DefaultDataURL)
}

func (c *Config) GetTheme() string {
	if strings.EqualFold(firstNonEmpty(c.overrides.Theme, c.Theme), "dark") {
		return "dark"
	}
	return DefaultTheme
}

func (c *Config) GetExportDir() string {
	return firstNonEmpty(c.overrides.ExportDir, c.ExportDir, ".")
}

// GetExportFont returns the TrueType/OpenType file used for PDF export, or
// "" for the built-in face.
func (c *Config) GetExportFont() string {
	return firstNonEmpty(c.overrides.ExportFont, c.ExportFont)
}

func (c *Config) GetLogLevel() string {
	return firstNonEmpty(c.overrides.LogLevel, c.LogLevel, DefaultLogLevel)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// GetLogPath returns the log file location next to the config file.
func GetLogPath() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(configPath), "rorigen.log"), nil
}

func getConfigPath() (string, error) {
	var configDir string

	// Use RORIGEN_HOME if set, otherwise use user's home directory
	if home := os.Getenv("RORIGEN_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".rorigen", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

// newViper reads the file only; environment overrides go through envViper
// so they never reach the saved config.
func newViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("json")
	return v
}

func envViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	for _, key := range overrideKeys {
		_ = v.BindEnv(key)
	}
	return v
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := saveConfig(defaultConfig(), configPath); err != nil {
			return nil, err
		}
	}

	v := newViper(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := envViper().Unmarshal(&config.overrides); err != nil {
		return nil, err
	}

	return &config, nil
}

func defaultConfig() *Config {
	return &Config{
		Profiles: map[string]Profile{
			"default": {
				Provider:   ProviderGenerate,
				BackendURL: DefaultBackendURL,
			},
		},
		ActiveProfile: "default",
		Theme:         DefaultTheme,
	}
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	if err := c.UseProfile(c.ActiveProfile); err == nil {
		return nil
	}

	// Fall back to the first profile by name
	return c.UseProfile(c.ProfileNames()[0])
}

// ProfileNames returns the profile names in sorted order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetProfile stores p under the normalized name and returns that name.
func (c *Config) SetProfile(name string, p Profile) string {
	name = NormalizeProfileName(name)
	if c.Profiles == nil {
		c.Profiles = make(map[string]Profile)
	}
	c.Profiles[name] = p
	return name
}

// UseProfile switches the active profile for this process without saving.
func (c *Config) UseProfile(name string) error {
	name = NormalizeProfileName(name)
	profile, exists := c.Profiles[name]
	if !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.ActiveProfile = name
	c.currentProfile = &profile
	return nil
}
