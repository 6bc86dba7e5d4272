// file: bintree/config/option.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Option is a functional config initializer.
type Option func(*Config) error

// New builds a config from the defaults and opts, in order, and validates it.
func New(opts ...Option) (*Config, error) {
	cfg := Default()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromMap overlays raw values keyed like the JSON tags.
func FromMap(raw map[string]any) Option {
	return func(c *Config) error {
		return decode(raw, c)
	}
}

// FromJSON loads config from a JSON file.
func FromJSON(path string) Option {
	return func(c *Config) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
		data = ReplaceEnvVars(data)

		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse config json: %w", err)
		}
		lowered := make(map[string]any, len(raw))
		for k, v := range raw {
			lowered[strings.ToLower(k)] = v
		}
		return decode(lowered, c)
	}
}

// FromEnv loads config values from environment variables with prefix.
func FromEnv(prefix string) Option {
	return func(c *Config) error {
		raw := map[string]any{}
		for _, e := range os.Environ() {
			if !strings.HasPrefix(e, prefix) {
				continue
			}
			kv := strings.SplitN(e, "=", 2)
			if len(kv) == 2 {
				key := strings.ToLower(strings.TrimPrefix(kv[0], prefix))
				raw[key] = ParseEnvValue(kv[1])
			}
		}
		return decode(raw, c)
	}
}

// decode copies raw onto c. Durations may be given as "500ms" strings and
// numbers may arrive as strings or floats.
func decode(raw map[string]any, c *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           c,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// ParseEnvValue tries to interpret strings like "true", "123", etc.
func ParseEnvValue(v string) any {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "true") {
		return true
	}
	if strings.EqualFold(v, "false") {
		return false
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return v
}

// ReplaceEnvVars replaces ${ENV_VAR} in raw JSON string.
func ReplaceEnvVars(data []byte) []byte {
	return []byte(os.Expand(string(data), func(key string) string {
		return os.Getenv(key)
	}))
}
