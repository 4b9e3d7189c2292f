package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Session  SessionConfig
	Server   ServerConfig
}

type DatabaseConfig struct {
	Primary  DBConnection
	Fallback DBConnection
}

type DBConnection struct {
	Driver string
	DSN    string
	Enable bool
}

type SessionConfig struct {
	Secret       string
	CookieName   string
	CookieSecure bool
	TTLHours     int
}

type ServerConfig struct {
	Port string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	return &Config{
		Database: DatabaseConfig{
			Primary:  loadPrimaryDB(),
			Fallback: loadFallbackDB(),
		},
		Session: SessionConfig{
			Secret:       getEnvOrDefault("SESSION_SECRET", "default_secret_key"),
			CookieName:   getEnvOrDefault("SESSION_COOKIE_NAME", "gt_session"),
			CookieSecure: os.Getenv("SESSION_COOKIE_SECURE") == "true",
			TTLHours:     24,
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
	}
}

func loadPrimaryDB() DBConnection {
	driver := getEnvOrDefault("PRIMARY_DB_DRIVER", "sqlite")
	enable := getEnvOrDefault("PRIMARY_DB_ENABLE", "true") == "true"

	var dsn string
	switch driver {
	case "mysql":
		dsn = buildMySQLDSN()
	case "sqlite":
		dsn = getEnvOrDefault("PRIMARY_SQLITE_PATH", "./data/geektwitter.db")
	default:
		log.Printf("unsupported primary database driver: %s", driver)
		enable = false
	}

	return DBConnection{
		Driver: driver,
		DSN:    dsn,
		Enable: enable,
	}
}

func loadFallbackDB() DBConnection {
	driver := getEnvOrDefault("FALLBACK_DB_DRIVER", "sqlite")
	enable := getEnvOrDefault("FALLBACK_DB_ENABLE", "true") == "true"

	var dsn string
	switch driver {
	case "mysql":
		dsn = buildFallbackMySQLDSN()
	case "sqlite":
		dsn = getEnvOrDefault("FALLBACK_SQLITE_PATH", "./data/fallback.db")
	default:
		driver = "sqlite"
		dsn = "./data/fallback.db"
	}

	return DBConnection{
		Driver: driver,
		DSN:    dsn,
		Enable: enable,
	}
}

func buildMySQLDSN() string {
	if dsn := os.Getenv("PRIMARY_DB_DSN"); dsn != "" {
		return dsn
	}

	host := getEnvOrDefault("MYSQL_HOST", "localhost")
	port := getEnvOrDefault("MYSQL_PORT", "3306")
	username := os.Getenv("MYSQL_USERNAME")
	password := os.Getenv("MYSQL_PASSWORD")
	database := os.Getenv("MYSQL_DATABASE")
	charset := getEnvOrDefault("MYSQL_CHARSET", "utf8mb4")

	if username == "" || password == "" || database == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		username, password, host, port, database, charset)
}

func buildFallbackMySQLDSN() string {
	if dsn := os.Getenv("FALLBACK_DB_DSN"); dsn != "" {
		return dsn
	}

	host := getEnvOrDefault("FALLBACK_MYSQL_HOST", "localhost")
	port := getEnvOrDefault("FALLBACK_MYSQL_PORT", "3306")
	username := os.Getenv("FALLBACK_MYSQL_USERNAME")
	password := os.Getenv("FALLBACK_MYSQL_PASSWORD")
	database := os.Getenv("FALLBACK_MYSQL_DATABASE")
	charset := getEnvOrDefault("FALLBACK_MYSQL_CHARSET", "utf8mb4")

	if username == "" || password == "" || database == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		username, password, host, port, database, charset)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
