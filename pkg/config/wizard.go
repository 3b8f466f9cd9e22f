package config

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// RunWizard asks for the default settings, starting from current, and
// returns the answers.
func RunWizard(current Config) (Config, error) {
	cfg := current

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Group requests by").
				Options(
					huh.NewOption("Tags (one folder per tag)", "tags"),
					huh.NewOption("Path (nested folders per URL segment)", "path"),
				).
				Value(&cfg.GroupBy),

			huh.NewSelect[string]().
				Title("Default output format").
				Options(
					huh.NewOption("Single JSON file", FormatJSON),
					huh.NewOption("Single YAML file", FormatYAML),
					huh.NewOption("Directory tree (one file per request)", FormatDir),
				).
				Value(&cfg.Format),

			huh.NewConfirm().
				Title("Validate collections after conversion?").
				Value(&cfg.Validate),

			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&cfg.LogLevel),
		),
	)

	if err := form.Run(); err != nil {
		return current, fmt.Errorf("setup cancelled: %w", err)
	}
	return cfg, nil
}
