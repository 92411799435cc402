package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const memoryConfigFile = "memory.yaml"

// LoadMemory loads the memory game configuration.
// Search order: customPath -> ~/.memoriku/configs/memory.yaml -> ./configs/memory.yaml -> embedded default
func LoadMemory(customPath string) (MemoryConfig, error) {
	var cfg MemoryConfig

	// A custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User and local files are optional; unreadable ones fall through
	for _, path := range []string{userConfigPath(memoryConfigFile), filepath.Join("configs", memoryConfigFile)} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	if err := yaml.Unmarshal(defaultMemoryYAML, &cfg); err != nil {
		return DefaultMemoryConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads and parses a config file, reporting false on any failure.
func tryLoad(path string) (MemoryConfig, bool) {
	var cfg MemoryConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
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
	return filepath.Join(home, ".memoriku", "configs", filename)
}

// ApplyMemoryPreset overrides the reveal delay with the preset's value.
// An empty preset leaves the config untouched.
func ApplyMemoryPreset(cfg *MemoryConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	delay, ok := RevealDelayForPreset(preset)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", preset)
	}
	cfg.RevealDelayMS = delay
	return nil
}
