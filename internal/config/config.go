package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	defaultNetwork  = "mainnet"
	defaultTimeout  = 15
	defaultLimit    = 10
	defaultInterval = 6
	defaultLogLevel = "warn"
	defaultCurrency = "usd"

	configFile = "config.json"

	// EnvConfigDir overrides the --config flag.
	EnvConfigDir = "TIASCAN_CONFIG_DIR"
)

// ErrUnknownKey is returned by Set for keys that are not part of Config.
var ErrUnknownKey = errors.New("unknown config key")

// Load reads config from dir (or creates defaults). dir defaults to ~/.tiascan.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".tiascan")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.configDir = dir

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// BaseURL returns the explorer API address: APIURL when set, otherwise the
// address of the configured network.
func (c *Config) BaseURL() (string, error) {
	if c.APIURL != "" {
		return strings.TrimRight(c.APIURL, "/"), nil
	}
	u, ok := networkURLs[c.Network]
	if !ok {
		return "", fmt.Errorf("unknown network %q (known: %s)", c.Network, strings.Join(Networks(), ", "))
	}
	return u, nil
}

// Timeout returns the per-request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Interval returns the watch polling interval, never below MinWatchInterval.
func (c *Config) Interval() time.Duration {
	d := time.Duration(c.WatchInterval) * time.Second
	if d < MinWatchInterval {
		return MinWatchInterval
	}
	return d
}

// Validate checks field ranges and the API address.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		if _, ok := networkURLs[c.Network]; !ok {
			return fmt.Errorf("unknown network %q", c.Network)
		}
	} else {
		u, err := url.Parse(c.APIURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("api_url %q is not an absolute URL", c.APIURL)
		}
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	if c.PageLimit <= 0 || c.PageLimit > MaxPageLimit {
		return fmt.Errorf("page_limit must be within 1..%d, got %d", MaxPageLimit, c.PageLimit)
	}
	return nil
}

// Keys lists the names accepted by Set.
func Keys() []string {
	return []string{"network", "api_url", "timeout_seconds", "page_limit", "watch_interval", "log_level", "price_currency"}
}

// Set assigns a single field by its JSON name and validates the result.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "network":
		if !slices.Contains(Networks(), value) {
			return fmt.Errorf("unknown network %q (known: %s)", value, strings.Join(Networks(), ", "))
		}
		next.Network = value
	case "api_url":
		next.APIURL = value
	case "timeout_seconds", "page_limit", "watch_interval":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", key, value)
		}
		switch key {
		case "timeout_seconds":
			next.TimeoutSeconds = n
		case "page_limit":
			next.PageLimit = n
		default:
			next.WatchInterval = n
		}
	case "log_level":
		next.LogLevel = strings.ToLower(value)
	case "price_currency":
		next.PriceCurrency = strings.ToLower(value)
	default:
		return fmt.Errorf("%w %q (known: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// --- helpers ---

func defaults(dir string) *Config {
	return &Config{
		Network:        defaultNetwork,
		TimeoutSeconds: defaultTimeout,
		PageLimit:      defaultLimit,
		WatchInterval:  defaultInterval,
		LogLevel:       defaultLogLevel,
		PriceCurrency:  defaultCurrency,
		configDir:      dir,
	}
}
