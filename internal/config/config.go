package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultRunAddress    = "localhost:8080"
	defaultMigrationsDir = "internal/db/migrations"
	defaultCacheTTL      = 5 * time.Minute
)

type Config struct {
	RunAddress    string        `env:"RUN_ADDRESS"`
	DatabaseDSN   string        `env:"DATABASE_URI"`
	MigrationsDir string        `env:"MIGRATIONS_DIR"`
	RedisAddress  string        `env:"REDIS_ADDRESS"`
	CacheTTL      time.Duration `env:"CACHE_TTL"`
	// StoreLatency искусственная задержка in-memory хранилища, используется только без DatabaseDSN.
	StoreLatency time.Duration `env:"STORE_LATENCY"`
}

// InMemory сообщает, что сервис работает без postgres.
func (c *Config) InMemory() bool {
	return c.DatabaseDSN == ""
}

func LoadConfig() (*Config, error) {
	return loadConfig(os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadConfig(args []string) (*Config, error) {
	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", err.Error())
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.CacheTTL < 0 {
		return nil, errors.New("cache TTL must not be negative")
	}
	if conf.StoreLatency < 0 {
		return nil, errors.New("store latency must not be negative")
	}
	return conf, nil
}

func loadFlags(flagConfig *Config, args []string) error {
	fset := flag.NewFlagSet("points", flag.ContinueOnError)
	fset.StringVar(&flagConfig.RunAddress, "a", defaultRunAddress, "Run address in format host:port")
	fset.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN, in-memory store if empty")
	fset.StringVar(&flagConfig.MigrationsDir, "m", defaultMigrationsDir, "Database migrations directory")
	fset.StringVar(&flagConfig.RedisAddress, "r", "", "Redis address in format host:port, no cache if empty")

	flagConfig.CacheTTL = defaultCacheTTL

	return fset.Parse(args) //nolint:wrapcheck
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:    defaultIfZero(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:   defaultIfZero(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir: defaultIfZero(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		RedisAddress:  defaultIfZero(envConfig.RedisAddress, flagsConfig.RedisAddress),
		CacheTTL:      defaultIfZero(envConfig.CacheTTL, flagsConfig.CacheTTL),
		StoreLatency:  defaultIfZero(envConfig.StoreLatency, flagsConfig.StoreLatency),
	}
}

func defaultIfZero[T comparable](value T, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}
