// file: bintree/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rskv-p/bintree/constant"
	"github.com/rskv-p/bintree/pkg/x_tree"
)

// Config holds the tree shape and session settings. A zero Level, Nodes or
// Traversal means the value is asked for interactively.
type Config struct {
	Level     int           `json:"level" mapstructure:"level"`
	Nodes     int           `json:"nodes" mapstructure:"nodes"`
	Traversal string        `json:"traversal" mapstructure:"traversal"`
	Seed      int64         `json:"seed" mapstructure:"seed"`
	ValueMin  int           `json:"value_min" mapstructure:"value_min"`
	ValueMax  int           `json:"value_max" mapstructure:"value_max"`
	Delay     time.Duration `json:"delay" mapstructure:"delay"`
	Theme     string        `json:"theme" mapstructure:"theme"`
	NoColor   bool          `json:"no_color" mapstructure:"no_color"`
	LogLevel  string        `json:"log_level" mapstructure:"log_level"`
}

// Default returns a default config.
func Default() *Config {
	return &Config{
		ValueMin: constant.DefaultValueMin,
		ValueMax: constant.DefaultValueMax,
		Delay:    constant.DefaultDelay,
		Theme:    constant.DefaultTheme,
		NoColor:  GetEnvBool("NO_COLOR", false),
	}
}

// LoadWithFallback loads the JSON file at path, falling back to TREE_CONFIG
// and then to bintree.json when present. TREE_* variables are applied on top,
// followed by extra.
func LoadWithFallback(path string, extra ...Option) (*Config, error) {
	var opts []Option
	if path == "" {
		path = GetEnvStr(constant.EnvConfigPath, "")
	}
	if path == "" {
		if _, err := os.Stat(constant.DefaultConfigFile); err == nil {
			path = constant.DefaultConfigFile
		}
	}
	if path != "" {
		opts = append(opts, FromJSON(path))
	}
	opts = append(opts, FromEnv(constant.EnvPrefix))
	return New(append(opts, extra...)...)
}

// Complete reports whether no value has to be asked for.
func (cfg *Config) Complete() bool {
	return cfg.Level != 0 && cfg.Nodes != 0 && cfg.Traversal != ""
}

// Validate checks every value that is set.
func (cfg *Config) Validate() error {
	var problems []error

	if cfg.Level != 0 && (cfg.Level < constant.MinLevel || cfg.Level > constant.MaxLevelLimit) {
		problems = append(problems, fmt.Errorf("level %d not in [%d, %d]",
			cfg.Level, constant.MinLevel, constant.MaxLevelLimit))
	}
	if cfg.Nodes != 0 {
		if cfg.Level == 0 {
			problems = append(problems, errors.New("nodes set without level"))
		} else if err := x_tree.Validate(cfg.Level, cfg.Nodes); err != nil {
			problems = append(problems, err)
		}
	}
	if cfg.Traversal != "" {
		if _, err := x_tree.ParseTraversal(cfg.Traversal); err != nil {
			problems = append(problems, err)
		}
	}

	span := cfg.ValueMax - cfg.ValueMin + 1
	need := 1<<(constant.MaxLevelLimit+1) - 1
	if cfg.Nodes != 0 {
		need = cfg.Nodes
	}
	if span < need {
		problems = append(problems, fmt.Errorf("%w: value range [%d, %d] holds %d values, need %d",
			x_tree.ErrRangeExhausted, cfg.ValueMin, cfg.ValueMax, max(span, 0), need))
	}
	// values wider than a cell would run into their neighbours on the last row
	if w := max(len(strconv.Itoa(cfg.ValueMin)), len(strconv.Itoa(cfg.ValueMax))); w > constant.CellWidth {
		problems = append(problems, fmt.Errorf("value range [%d, %d] needs %d columns per node, %d fit",
			cfg.ValueMin, cfg.ValueMax, w, constant.CellWidth))
	}
	if cfg.Delay < 0 {
		problems = append(problems, fmt.Errorf("delay %s < 0", cfg.Delay))
	}
	switch strings.ToLower(cfg.Theme) {
	case "dark", "light":
	default:
		problems = append(problems, fmt.Errorf("theme %q not dark or light", cfg.Theme))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", constant.ErrInvalidConfig, errors.Join(problems...))
	}
	return nil
}

func (cfg *Config) String() string {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	return string(data)
}

// Dump writes the indented JSON form of cfg to w.
func (cfg *Config) Dump(w io.Writer) {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	_, _ = w.Write(data)
}
