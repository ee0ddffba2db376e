package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// contentFile is the file name searched for in the user and local config dirs.
const contentFile = "content.yaml"

// LoadContent loads and validates the mini-game content.
// Search order: customPath -> ~/.mysteries/configs/content.yaml -> ./configs/content.yaml -> embedded default
func LoadContent(customPath string) (Content, error) {
	var cfg Content

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read content %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse content %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(contentFile); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", contentFile)); ok {
		return c, nil
	}

	// Use embedded default YAML
	return ParseContent(defaultContentYAML)
}

// ParseContent decodes and validates content YAML. Broken embedded data
// falls back to DefaultContent.
func ParseContent(data []byte) (Content, error) {
	var cfg Content
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultContent(), nil // Fallback to hardcoded if embed fails
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// tryLoad reads an optional content file. Missing or invalid files are skipped.
func tryLoad(path string) (Content, bool) {
	var cfg Content
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mysteries", "configs", filename)
}
