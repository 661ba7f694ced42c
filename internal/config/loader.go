package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "dinorun.yaml"

// Load loads the Dino Run configuration and validates it.
// Search order: customPath -> ~/.dinorun/configs/dinorun.yaml -> ./configs/dinorun.yaml -> embedded default
//
// Every file is decoded on top of DefaultConfig, so a partial file only
// overrides the keys it names.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{
		userConfigPath(fileName),
		filepath.Join("configs", fileName),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		cfg = DefaultConfig() // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dinorun", "configs", filename)
}
