package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StoreConfig selects and configures the persistence backend. The memory
// driver needs no DSN; pgx and sqlite do.
type StoreConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=memory pgx sqlite"`
	DSN    string `mapstructure:"dsn"    validate:"required_unless=Driver memory"`
}
