package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Service struct {
	URL string `mapstructure:"url" yaml:"url"`
}
type Services struct {
	Inference     Service `mapstructure:"inference" yaml:"inference"`
	Visualization Service `mapstructure:"visualization" yaml:"visualization"`
}

// Stabilizer holds the numeric knobs of the smoothing pipeline.
type Stabilizer struct {
	NeutralIndex int     `mapstructure:"neutral_index" yaml:"neutral_index"`
	BoostFactor  float64 `mapstructure:"boost_factor" yaml:"boost_factor"`
	Alpha        float64 `mapstructure:"alpha" yaml:"alpha"`
	History      int     `mapstructure:"history" yaml:"history"`
}

// Detector carries the file inputs of the external face-detector service.
// They come from the CLI, not the config file.
type Detector struct {
	Cascade string `mapstructure:"cascade" yaml:"cascade"`
	Model   string `mapstructure:"model" yaml:"model"`
}

type Root struct {
	Pipeline struct {
		Name    string `mapstructure:"name" yaml:"name"`
		Version string `mapstructure:"version" yaml:"version"`
		LogLvl  string `mapstructure:"log_level" yaml:"log_level"`
	} `mapstructure:"pipeline" yaml:"pipeline"`
	Classes    []string   `mapstructure:"classes" yaml:"classes"`
	Stabilizer Stabilizer `mapstructure:"stabilizer" yaml:"stabilizer"`
	Services   Services   `mapstructure:"services" yaml:"services"`
	Paths      struct {
		Outputs string `mapstructure:"outputs" yaml:"outputs"`
	} `mapstructure:"paths" yaml:"paths"`
	Detector Detector `mapstructure:"-" yaml:"detector"`
}

// Load reads the configuration from path, or when path is empty from
// config/$CONFIG_ENV/config.yaml with src/shared/config.yaml as fallback.
// FERSTAB_* environment variables override file values.
func Load(path string) (*Root, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		env := os.Getenv("CONFIG_ENV")
		if env == "" {
			env = "dev"
		}
		v.SetConfigName("config")
		v.AddConfigPath(filepath.Join("config", env))
		v.AddConfigPath(filepath.Join("src", "shared"))
	}
	v.SetEnvPrefix("FERSTAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("stabilizer.neutral_index", -1)
	v.SetDefault("stabilizer.boost_factor", 1.5)
	v.SetDefault("stabilizer.alpha", 0.1)
	v.SetDefault("stabilizer.history", 60)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if len(cfg.Classes) == 0 {
		return nil, fmt.Errorf("config: classes must not be empty")
	}
	if cfg.Stabilizer.NeutralIndex < 0 {
		i := indexOf(cfg.Classes, "neutral")
		if i < 0 {
			return nil, fmt.Errorf("config: stabilizer.neutral_index not set and no %q class", "neutral")
		}
		cfg.Stabilizer.NeutralIndex = i
	}
	return &cfg, nil
}

func indexOf(classes []string, name string) int {
	for i, c := range classes {
		if c == name {
			return i
		}
	}
	return -1
}
