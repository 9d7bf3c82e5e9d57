// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Profile   ProfileConfig   `yaml:"profile" mapstructure:"profile"`
	Shapefile ShapefileConfig `yaml:"shapefile" mapstructure:"shapefile"`
	Artifact  ArtifactConfig  `yaml:"artifact" mapstructure:"artifact"`
	Catalog   CatalogConfig   `yaml:"catalog" mapstructure:"catalog"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// ProfileConfig points at the tabular opportunity profile.
type ProfileConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ShapefileConfig points at the tract boundary shapefile.
type ShapefileConfig struct {
	Path       string `yaml:"path" mapstructure:"path"`
	CountyFIPS string `yaml:"county_fips" mapstructure:"county_fips"`
}

// ArtifactConfig configures the emitted HTML artifact.
type ArtifactConfig struct {
	OutPath string `yaml:"out_path" mapstructure:"out_path"`
	Title   string `yaml:"title" mapstructure:"title"`
}

// CatalogConfig configures indicator catalog overrides.
type CatalogConfig struct {
	OverridePath string `yaml:"override_path" mapstructure:"override_path"`
}

// StoreConfig configures the local run-history database.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("OPPMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("shapefile.county_fips", "153")
	v.SetDefault("artifact.out_path", "opportunity_map.html")
	v.SetDefault("artifact.title", "Community Opportunity Index")
	v.SetDefault("store.path", "runs.db")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
