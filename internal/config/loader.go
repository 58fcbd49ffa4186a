package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the Jetty Boot configuration.
// Search order: customPath -> ~/.jettyboot/config.{yaml,toml} -> ./configs/jettyboot.yaml -> embedded default.
// Values missing from a file keep their defaults. Only a broken customPath is an error;
// broken files further down the search order are skipped.
func Load(customPath string) (JettyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultJettyConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(customPath, data)
		if err != nil {
			return DefaultJettyConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, name := range []string{"config.yaml", "config.toml"} {
		if userCfgPath := userConfigPath(name); userCfgPath != "" {
			if data, err := os.ReadFile(userCfgPath); err == nil {
				if cfg, err := Parse(userCfgPath, data); err == nil {
					return cfg, nil
				}
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "jettyboot.yaml")); err == nil {
		if cfg, err := Parse("jettyboot.yaml", data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse("jettyboot.yaml", defaultJettyYAML)
	if err != nil {
		return DefaultJettyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes data on top of the defaults. The format is chosen by the
// extension of name: ".toml" is TOML, anything else is YAML. Unknown keys
// are rejected in both formats.
func Parse(name string, data []byte) (JettyConfig, error) {
	cfg := DefaultJettyConfig()

	if strings.EqualFold(filepath.Ext(name), ".toml") {
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("unknown keys: %v", undecoded)
		}
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, err
	}
	return cfg, nil
}

// Dump renders the configuration as YAML.
func Dump(cfg JettyConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jettyboot", filename)
}
