package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Поддерживаемые хранилища
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// ErrEnvFileNotFound возвращается вместе с конфигом, если .env отсутствует.
var ErrEnvFileNotFound = errors.New(".env file not found")

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SQLitePath    string
	StorageDriver string
	ServerPort    string
	LogLevel      string
	MinAge        int
}

// LoadConfig читает .env (если есть) и переменные окружения.
// Отсутствие .env не мешает работе: конфиг возвращается вместе с ErrEnvFileNotFound.
func LoadConfig() (Config, error) {
	var envErr error
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load .env: %w", err)
		}
		envErr = ErrEnvFileNotFound
	}

	minAge, err := getEnvInt("MIN_AGE", 18)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "password"),
		DBName:        getEnv("DB_NAME", "user_directory"),
		SQLitePath:    getEnv("SQLITE_PATH", ":memory:"),
		StorageDriver: getEnv("STORAGE_DRIVER", StorageMemory),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		MinAge:        minAge,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, envErr
}

// Validate проверяет значения, которые нельзя исправить подстановкой по умолчанию.
func (c Config) Validate() error {
	if c.MinAge < 0 {
		return fmt.Errorf("MIN_AGE must not be negative, got %d", c.MinAge)
	}

	switch c.StorageDriver {
	case StorageMemory, StoragePostgres, StorageSQLite:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}
