package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log   LogConfig   `mapstructure:"log" validate:"required"`
	Store StoreConfig `mapstructure:"store" validate:"required"`
	Tasks TasksConfig `mapstructure:"tasks" validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// Storage drivers understood by the application.
const (
	DriverMemory   = "memory"
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// StoreConfig selects and configures the backing ordered map.
type StoreConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=memory bolt postgres mysql"`
	// Path is the database file used by the bolt driver.
	Path string `mapstructure:"path"`
	// URL is the connection string used by the postgres and mysql drivers.
	URL          string `mapstructure:"url"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=1,lte=100"`
}

// IsSQL reports whether the driver is backed by a SQL database.
func (c StoreConfig) IsSQL() bool {
	return c.Driver == DriverPostgres || c.Driver == DriverMySQL
}

// TasksConfig contains task repository policy settings.
type TasksConfig struct {
	// RequireText rejects empty descriptions and statuses.
	RequireText   bool `mapstructure:"require_text"`
	MaxIDAttempts int  `mapstructure:"max_id_attempts" validate:"gte=1,lte=100"`
}
