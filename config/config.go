package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Either a full MySQL URL/DSN or discrete connection parts.
	MySQLURL    string `mapstructure:"MYSQL_URL"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBUser      string `mapstructure:"DB_USER"`
	DBPass      string `mapstructure:"DB_PASS"`
	DBHost      string `mapstructure:"DB_HOST"`
	DBPort      string `mapstructure:"DB_PORT"`
	DBName      string `mapstructure:"DB_NAME"`

	CORSOrigins string `mapstructure:"CORS_ORIGINS"`

	// Reservation pricing. "flat" mirrors legacy behavior; "nightly"
	// derives the cost from room rate, tax and stay length.
	PricingMode         string  `mapstructure:"PRICING_MODE"`
	FlatReservationCost float64 `mapstructure:"FLAT_RESERVATION_COST"`
}

// Load reads configuration from the environment (and an optional config.yaml
// in the working directory), applying defaults for anything unset.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MYSQL_URL", "")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_NAME", "hotels_db")
	v.SetDefault("CORS_ORIGINS", "")
	v.SetDefault("PRICING_MODE", "flat")
	v.SetDefault("FLAT_RESERVATION_COST", 500.0)

	// A config file is optional; env vars alone are enough.
	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// MySQLDSN resolves the go-sql-driver DSN. Precedence: MYSQL_URL, then
// DATABASE_URL, then the discrete DB_* parts. A raw DSN (user:pass@tcp...)
// is passed through untouched.
func (c *Config) MySQLDSN() (string, error) {
	raw := strings.TrimSpace(c.MySQLURL)
	if raw == "" {
		raw = strings.TrimSpace(c.DatabaseURL)
	}
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return dsnFromURL(raw)
		}
		return raw, nil
	}

	if strings.TrimSpace(c.DBName) == "" {
		return "", fmt.Errorf("database name is not configured")
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName,
	)
	return dsn, nil
}

func dsnFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}
