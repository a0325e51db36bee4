package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port             int              `json:"port"`
	DBPath           string           `json:"db_path"`
	Session          SessionConfig    `json:"session"`
	BcryptCost       int              `json:"bcrypt_cost"`
	AdminSeed        AdminSeedConfig  `json:"admin_seed"`
	EnableRegister   bool             `json:"enable_user_register"`
	LoginRateLimitMS int              `json:"login_rate_limit_ms"`
	MaintenanceCron  string           `json:"maintenance_cron"`
	LogConfig        logger.LogConfig `json:"log_config"`
}

type SessionConfig struct {
	CookieName string `json:"cookie_name"`
	Secret     string `json:"secret"`
	TTLHours   int    `json:"ttl_hours"`
	Secure     bool   `json:"secure"`
	SameSite   string `json:"same_site"`
}

type AdminSeedConfig struct {
	Enable   bool   `json:"enable"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserName string `json:"user_name"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("db_path is required")
	}
	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("session.secret is required")
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "session"
	}
	if cfg.Session.TTLHours == 0 {
		cfg.Session.TTLHours = 72
	}
	switch cfg.Session.SameSite {
	case "", "lax", "strict", "none":
	default:
		return nil, fmt.Errorf("session.same_site must be lax, strict or none")
	}
	if cfg.Session.SameSite == "" {
		cfg.Session.SameSite = "lax"
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = 10
	}
	if cfg.AdminSeed.Enable {
		if cfg.AdminSeed.Email == "" || cfg.AdminSeed.Password == "" {
			return nil, fmt.Errorf("admin_seed.email and admin_seed.password are required when seeding is enabled")
		}
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	return &cfg, nil
}
