package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and saves the
// resulting Config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Let's configure the Second Opinion site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.Site.Name,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.Site.Name = name

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 3. Deployment kind decides the gate.
	kindPrompt := promptui.Select{
		Label: "Deployment kind",
		Items: []string{
			"production: site is public",
			"preview: site is behind a shared password",
		},
	}
	kindIdx, _, err := kindPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("deployment kind: %w", err)
	}
	cfg.Gate.Enforce = kindIdx == 1

	if cfg.Gate.Enforce {
		secretPrompt := promptui.Prompt{
			Label: "Preview password",
			Mask:  '*',
			Validate: func(s string) error {
				if s == "" {
					return errors.New("password is required")
				}
				return nil
			},
		}
		secret, err := secretPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("preview password: %w", err)
		}
		cfg.Gate.Secret = secret
	}

	// 4. Initiative endpoint.
	endpointPrompt := promptui.Prompt{
		Label:   "Join-the-initiative endpoint",
		Default: cfg.Initiative.Endpoint,
	}
	endpoint, err := endpointPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("initiative endpoint: %w", err)
	}
	cfg.Initiative.Endpoint = endpoint

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("port must be a number")
	}
	if n < 1 || n > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}
