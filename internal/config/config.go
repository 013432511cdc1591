// Package config provides configuration management for the Galton Mountains application.
package config

import "time"

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Simulation SimulationConfig `mapstructure:"simulation" validate:"required"`
	Output     OutputConfig     `mapstructure:"output" validate:"required"`
	Cache      CacheConfig      `mapstructure:"cache" validate:"required"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// SimulationConfig holds the board parameters.
// When Randomize is set the fixed values are ignored and a fresh set is drawn from Seed.
type SimulationConfig struct {
	Randomize bool    `mapstructure:"randomize"`
	Seed      int64   `mapstructure:"seed"`
	TotalBins int     `mapstructure:"total_bins" validate:"required,gt=0"`
	Balls     int     `mapstructure:"balls" validate:"gte=0"`
	ProbStart float64 `mapstructure:"prob_start" validate:"gte=0,lte=10"`
	ProbEnd   float64 `mapstructure:"prob_end" validate:"gte=0,lte=10"`
	Samples   int     `mapstructure:"samples" validate:"required,gt=0"`
}

// OutputConfig controls where figures and reports go
type OutputConfig struct {
	FiguresDir   string `mapstructure:"figures_dir" validate:"required"`
	Save         bool   `mapstructure:"save"`
	Show         bool   `mapstructure:"show"`
	ReportPath   string `mapstructure:"report_path"`
	ReportFormat string `mapstructure:"report_format" validate:"omitempty,oneof=json csv"`
}

// CacheConfig configures the distribution cache
type CacheConfig struct {
	TTLSeconds int `mapstructure:"ttl_seconds" validate:"required,gt=0"`
	MaxSize    int `mapstructure:"max_size" validate:"required,gt=0"`
}

// MetricsConfig represents metrics configuration.
// Textfile is a path in the node_exporter textfile format.
type MetricsConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Textfile string `mapstructure:"textfile"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// CacheTTL returns the cache entry lifetime
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}
