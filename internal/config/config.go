package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken string `env:"BOT_TOKEN,required"`

	Marketplace MarketplaceConfig
	Admin       AdminConfig
	Server      ServerConfig
	Database    DatabaseConfig
}

// MarketplaceConfig holds remote seller API settings
type MarketplaceConfig struct {
	BaseURL string `env:"MARKETPLACE_BASE_URL" envDefault:"https://api-seller.uzum.uz/api/seller-openapi"`
}

// AdminConfig holds operator-side settings
type AdminConfig struct {
	DefaultAdminID int64  `env:"DEFAULT_ADMIN_ID" envDefault:"0"`
	ContactHandle  string `env:"ADMIN_USERNAME" envDefault:"Tolov_admini_btu"`
	SupportGroup   string `env:"SUPPORT_GROUP" envDefault:"https://t.me/unb_uz"`
}

// ServerConfig holds health server settings
type ServerConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":8000"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"marketbot"`
	User     string `env:"DB_USER" envDefault:"marketbot"`
	Password string `env:"DB_PASSWORD,required"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}
