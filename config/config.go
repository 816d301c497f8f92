package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Version of the hiltnlp tool.
const Version = "0.1.0"

type Pipeline struct {
	Name    string `mapstructure:"name" yaml:"name"`
	Version string `mapstructure:"version" yaml:"version"`
	LogLvl  string `mapstructure:"log_level" yaml:"log_level"`
}
type Media struct {
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`
}
type Causation struct {
	Words     []string `mapstructure:"words" yaml:"words"`
	Threshold float64  `mapstructure:"threshold" yaml:"threshold"`
}
type Paths struct {
	Outputs string `mapstructure:"outputs" yaml:"outputs"`
}
type Root struct {
	Pipeline  Pipeline  `mapstructure:"pipeline" yaml:"pipeline"`
	Media     Media     `mapstructure:"media" yaml:"media"`
	Causation Causation `mapstructure:"causation" yaml:"causation"`
	Paths     Paths     `mapstructure:"paths" yaml:"paths"`
}

// Load reads the YAML configuration. With an empty path it looks for
// hiltnlp.yaml in the working directory and ./config, falling back to the
// defaults when no file exists. HILTNLP_* environment variables override
// file values (HILTNLP_PIPELINE_LOG_LEVEL, HILTNLP_PATHS_OUTPUTS, ...).
func Load(path string) (*Root, error) {
	v := viper.New()

	v.SetDefault("pipeline.name", "hiltnlp")
	v.SetDefault("pipeline.version", Version)
	v.SetDefault("pipeline.log_level", "info")
	v.SetDefault("media.extensions", []string{".mp3", ".mp4", ".aiff", ".raw", ".wav", ".flac"})
	v.SetDefault("causation.words", []string{"because"})
	v.SetDefault("causation.threshold", 0.85)
	v.SetDefault("paths.outputs", "outputs")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("hiltnlp")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("config")
	}
	v.SetEnvPrefix("HILTNLP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if path != "" || !notFound {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Root
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &c, nil
}
