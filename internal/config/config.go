package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Table keys every run uploads to. Values in Warehouse.Tables map these keys
// to the physical table names at the warehouse.
const (
	TableHealthRecord    = "health_record"
	TableWorkoutsGrouped = "workouts_grouped"
	TableVO2Max          = "vo2max"
	TableSleepBoxplots   = "sleep_boxplots"
	TableRegimenBoxplots = "regimen_boxplots"
)

var requiredTables = []string{
	TableHealthRecord,
	TableWorkoutsGrouped,
	TableVO2Max,
	TableSleepBoxplots,
	TableRegimenBoxplots,
}

// Config holds all configuration for the application
type Config struct {
	Warehouse WarehouseConfig `mapstructure:"warehouse"`
	Paths     PathsConfig     `mapstructure:"paths"`
	Log       LogConfig       `mapstructure:"log"`
}

// WarehouseConfig holds the warehouse connection and table mapping
type WarehouseConfig struct {
	URL    string            `mapstructure:"url"`
	Tables map[string]string `mapstructure:"tables"`
}

// PathsConfig holds local filesystem locations
type PathsConfig struct {
	// Downloads is the directory scanned for export*.zip archives
	Downloads string `mapstructure:"downloads"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	for _, table := range requiredTables {
		v.SetDefault("warehouse.tables."+table, table)
	}

	// Read from environment variables
	v.SetEnvPrefix("HEALTHSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Also bind to non-prefixed environment variables for convenience
	v.BindEnv("warehouse.url", "WAREHOUSE_URL")
	v.BindEnv("paths.downloads", "DOWNLOADS_DIR")

	// Read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that all required configuration values are present
func (c *Config) Validate() error {
	if c.Warehouse.URL == "" {
		return fmt.Errorf("WAREHOUSE_URL is required")
	}
	if c.Paths.Downloads == "" {
		return fmt.Errorf("DOWNLOADS_DIR is required")
	}
	var missing []string
	for _, table := range requiredTables {
		if c.Warehouse.Tables[table] == "" {
			missing = append(missing, table)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing warehouse table names: %s", strings.Join(missing, ", "))
	}
	return nil
}
