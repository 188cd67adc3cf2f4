package config

// SessionBackend selects where per-browser session values are kept.
type SessionBackend string

const (
	SessionMemory SessionBackend = "memory"
	SessionSQLite SessionBackend = "sqlite"
)

// Config is the top-level site configuration, corresponding to .secondopinion.yml.
type Config struct {
	Site       SiteConfig       `yaml:"site" koanf:"site"`
	Server     ServerConfig     `yaml:"server" koanf:"server"`
	Gate       GateConfig       `yaml:"gate" koanf:"gate"`
	Session    SessionConfig    `yaml:"session" koanf:"session"`
	Initiative InitiativeConfig `yaml:"initiative" koanf:"initiative"`
}

// SiteConfig holds presentation settings shared by every page.
type SiteConfig struct {
	Name    string `yaml:"name" koanf:"name"`
	BaseURL string `yaml:"base_url" koanf:"base_url"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int    `yaml:"port" koanf:"port"`
	DataDir         string `yaml:"data_dir" koanf:"data_dir"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// GateConfig controls the preview password gate. Enforce is set per
// deployment; preview deployments turn it on.
type GateConfig struct {
	Enforce bool   `yaml:"enforce" koanf:"enforce"`
	Secret  string `yaml:"secret" koanf:"secret"`
}

// SessionConfig controls session storage.
type SessionConfig struct {
	Backend      SessionBackend `yaml:"backend" koanf:"backend"`
	MaxIdleHours int            `yaml:"max_idle_hours" koanf:"max_idle_hours"`
}

// InitiativeConfig configures the "join the initiative" relay.
type InitiativeConfig struct {
	Endpoint       string `yaml:"endpoint" koanf:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}
