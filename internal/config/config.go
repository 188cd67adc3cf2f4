package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides. Nested keys are
// separated by a double underscore: SECONDOPINION_GATE__SECRET -> gate.secret.
const EnvPrefix = "SECONDOPINION_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SECONDOPINION_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	// The file may carry the gate secret.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validSessionBackends = map[SessionBackend]bool{
	SessionMemory: true,
	SessionSQLite: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	if c.Gate.Enforce && c.Gate.Secret == "" {
		return fmt.Errorf("gate.secret is required when gate.enforce is true")
	}

	if !validSessionBackends[c.Session.Backend] {
		return fmt.Errorf("invalid session.backend %q: must be one of memory, sqlite", c.Session.Backend)
	}
	if c.Session.Backend == SessionSQLite && c.Server.DataDir == "" {
		return fmt.Errorf("server.data_dir is required for the sqlite session backend")
	}
	if c.Session.MaxIdleHours < 0 {
		return fmt.Errorf("session.max_idle_hours must be non-negative")
	}

	if c.Initiative.Endpoint == "" {
		return fmt.Errorf("initiative.endpoint is required")
	}
	u, err := url.Parse(c.Initiative.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid initiative.endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid initiative.endpoint %q: scheme must be http or https", c.Initiative.Endpoint)
	}
	if c.Initiative.TimeoutSeconds < 0 {
		return fmt.Errorf("initiative.timeout_seconds must be non-negative")
	}

	return nil
}

// InitiativeTimeout returns the relay timeout, defaulting to ten seconds.
func (c *Config) InitiativeTimeout() time.Duration {
	if c.Initiative.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Initiative.TimeoutSeconds) * time.Second
}

// SessionMaxIdle returns how long an untouched session is kept. Zero keeps
// sessions forever.
func (c *Config) SessionMaxIdle() time.Duration {
	return time.Duration(c.Session.MaxIdleHours) * time.Hour
}
