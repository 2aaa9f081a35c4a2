package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	DurabilityAtomic       = "atomic"
	DurabilityCheckpointed = "checkpointed"
)

type Config struct {
	Database Database `json:"database" mapstructure:"database"`
	Volumes  Volumes  `json:"volumes" mapstructure:"volumes"`
	Pipeline Pipeline `json:"pipeline" mapstructure:"pipeline"`
}

type Database struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Name     string `json:"dbname" mapstructure:"dbname"`
	User     string `json:"user" mapstructure:"user"`
	Password string `json:"password" mapstructure:"password"`
}

// Volumes holds the requested row counts. Stores, Ingredients and MenuItems
// default to 0, which means "sample from the documented range" at pipeline
// start so that runs stay reproducible under a fixed seed.
type Volumes struct {
	Stores      int `json:"stores" mapstructure:"stores"`
	Ingredients int `json:"ingredients" mapstructure:"ingredients"`
	MenuItems   int `json:"menu_items" mapstructure:"menu_items"`
	Customers   int `json:"customers" mapstructure:"customers"`
	Orders      int `json:"orders" mapstructure:"orders"`
}

type Pipeline struct {
	OrderBatchSize int    `json:"order_batch_size" mapstructure:"order_batch_size"`
	ItemBufferSize int    `json:"item_buffer_size" mapstructure:"item_buffer_size"`
	Durability     string `json:"durability" mapstructure:"durability"`
	Seed           int64  `json:"seed" mapstructure:"seed"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Volumes.Customers == 0 {
		cfg.Volumes.Customers = 1200
	}
	if cfg.Volumes.Orders == 0 {
		cfg.Volumes.Orders = 5500
	}
	if cfg.Pipeline.OrderBatchSize == 0 {
		cfg.Pipeline.OrderBatchSize = 500
	}
	if cfg.Pipeline.ItemBufferSize == 0 {
		cfg.Pipeline.ItemBufferSize = 2000
	}
	if cfg.Pipeline.Durability == "" {
		cfg.Pipeline.Durability = DurabilityCheckpointed
	}
	if cfg.Pipeline.Seed == 0 {
		cfg.Pipeline.Seed = 42
	}

	return &cfg, nil
}

// Validate reports missing connection parameters as a fatal startup
// condition, before any pipeline state exists.
func (c *Config) Validate() error {
	var missing []string
	if c.Database.Host == "" {
		missing = append(missing, "database.host")
	}
	if c.Database.Name == "" {
		missing = append(missing, "database.dbname")
	}
	if c.Database.User == "" {
		missing = append(missing, "database.user")
	}
	if c.Database.Password == "" {
		missing = append(missing, "database.password")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing database config parameters: %v (set them in the config file or environment)", missing)
	}

	if c.Pipeline.Durability != DurabilityAtomic && c.Pipeline.Durability != DurabilityCheckpointed {
		return fmt.Errorf("unsupported durability mode: %s (supported: %s, %s)",
			c.Pipeline.Durability, DurabilityAtomic, DurabilityCheckpointed)
	}

	if c.Volumes.Stores < 0 || c.Volumes.Ingredients < 0 || c.Volumes.MenuItems < 0 ||
		c.Volumes.Customers < 0 || c.Volumes.Orders < 0 {
		return fmt.Errorf("volume counts cannot be negative")
	}

	// Orders reference customers; a run with orders but no customers to
	// reference has nothing valid to generate.
	if c.Volumes.Orders > 0 && c.Volumes.Customers == 0 {
		return fmt.Errorf("cannot generate %d orders with 0 customers", c.Volumes.Orders)
	}

	return nil
}

// DSN builds a pgx keyword/value connection string. The keyword form avoids
// URL-escaping issues with passwords.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s",
		c.Database.Host, c.Database.Port, c.Database.Name, c.Database.User, c.Database.Password)
}
