package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	pserrors "github.com/zhubert/switchboard/internal/errors"
)

// Routing modes
const (
	RoutingPrefix  = "prefix"
	RoutingKeyword = "keyword"
)

// Defaults applied before the config file and environment are read
const (
	DefaultBaseURL          = "http://127.0.0.1:5000"
	DefaultRenderDelayMS    = 500
	DefaultTypingIntervalMS = 40
)

// Config holds the application configuration
type Config struct {
	BaseURL              string            `json:"base_url" env:"SWITCHBOARD_BASE_URL"`
	StorePath            string            `json:"store_path,omitempty" env:"SWITCHBOARD_STORE_PATH"`
	RoutingMode          string            `json:"routing_mode,omitempty" env:"SWITCHBOARD_ROUTING_MODE"`
	RenderDelayMS        int               `json:"render_delay_ms" env:"SWITCHBOARD_RENDER_DELAY_MS"`
	TypingEffect         bool              `json:"typing_effect" env:"SWITCHBOARD_TYPING_EFFECT"`
	TypingIntervalMS     int               `json:"typing_interval_ms" env:"SWITCHBOARD_TYPING_INTERVAL_MS"`
	NotificationsEnabled bool              `json:"notifications_enabled,omitempty" env:"SWITCHBOARD_NOTIFICATIONS"`
	Headers              map[string]string `json:"headers,omitempty"` // Extra headers sent with every backend request

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".switchboard"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Default returns a config populated with default values and no backing file.
func Default() *Config {
	return &Config{
		BaseURL:          DefaultBaseURL,
		RoutingMode:      RoutingPrefix,
		RenderDelayMS:    DefaultRenderDelayMS,
		TypingEffect:     true,
		TypingIntervalMS: DefaultTypingIntervalMS,
		Headers:          make(map[string]string),
	}
}

// Load reads the config from ~/.switchboard/config.json, then applies a .env
// file from the working directory and SWITCHBOARD_* environment overrides.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom is Load with an explicit config file path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only
	case err != nil:
		return nil, pserrors.ConfigLoadFailed(path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, pserrors.ConfigLoadFailed(path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, pserrors.ConfigLoadFailed(".env", err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, pserrors.ConfigLoadFailed(path, err)
	}

	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized fills zero values left by a partial config file.
//
// Thread-safety: only call during single-threaded initialization.
func (c *Config) ensureInitialized() {
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	if c.RoutingMode == "" {
		c.RoutingMode = RoutingPrefix
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return pserrors.ConfigInvalid(fmt.Sprintf("base_url %q is not an absolute URL", c.BaseURL))
	}
	if c.RoutingMode != RoutingPrefix && c.RoutingMode != RoutingKeyword {
		return pserrors.ConfigInvalid(fmt.Sprintf("unknown routing_mode %q", c.RoutingMode))
	}
	if c.RenderDelayMS < 0 {
		return pserrors.ConfigInvalid("render_delay_ms must not be negative")
	}
	if c.TypingIntervalMS <= 0 {
		return pserrors.ConfigInvalid("typing_interval_ms must be positive")
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return pserrors.ConfigSaveFailed("", fmt.Errorf("no config file path set"))
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return pserrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return pserrors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return pserrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// SetFilePath sets the file the config is saved to.
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// FilePath returns the file the config is saved to
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetBaseURL returns the backend base URL
func (c *Config) GetBaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.BaseURL
}

// SetBaseURL sets the backend base URL
func (c *Config) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.BaseURL = baseURL
}

// GetStorePath returns the bbolt store location, falling back to
// ~/.switchboard/store.db when unset.
func (c *Config) GetStorePath() (string, error) {
	c.mu.RLock()
	p := c.StorePath
	c.mu.RUnlock()

	if p != "" {
		return p, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "store.db"), nil
}

// GetRoutingMode returns the routing mode
func (c *Config) GetRoutingMode() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.RoutingMode
}

// SetRoutingMode sets the routing mode
func (c *Config) SetRoutingMode(mode string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.RoutingMode = mode
}

// GetRenderDelay returns the delay before the loading placeholder appears
func (c *Config) GetRenderDelay() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.RenderDelayMS) * time.Millisecond
}

// GetTypingEffect returns whether responses are revealed word by word
func (c *Config) GetTypingEffect() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.TypingEffect
}

// SetTypingEffect sets whether responses are revealed word by word
func (c *Config) SetTypingEffect(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.TypingEffect = enabled
}

// GetTypingInterval returns the delay between revealed words
func (c *Config) GetTypingInterval() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.TypingIntervalMS) * time.Millisecond
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetHeaders returns a copy of the extra request headers
func (c *Config) GetHeaders() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	headers := make(map[string]string, len(c.Headers))
	for k, v := range c.Headers {
		headers[k] = v
	}
	return headers
}

// SetHeader adds or replaces an extra request header
func (c *Config) SetHeader(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	c.Headers[key] = value
}
