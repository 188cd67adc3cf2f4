package config

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".secondopinion.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Name:    "Second Opinion",
			BaseURL: "http://localhost:8080",
		},
		Server: ServerConfig{
			Port:    8080,
			DataDir: "data",
		},
		Gate: GateConfig{
			Enforce: false,
		},
		Session: SessionConfig{
			Backend:      SessionSQLite,
			MaxIdleHours: 24 * 7,
		},
		Initiative: InitiativeConfig{
			Endpoint:       "https://api.secondopinion.health/v1/initiative/join",
			TimeoutSeconds: 10,
		},
	}
}
