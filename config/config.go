package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"

	StoreDriverSQL   = "sql"
	StoreDriverMongo = "mongo"
)

type Config struct {
	HTTPAddr    string
	GinMode     string
	CORSOrigins []string

	DBDriver   string
	DBPath     string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	StoreDriver   string
	MongoURI      string
	MongoDatabase string

	RedisAddr       string
	RedisPort       string
	RedisPassword   string
	NotificationTTL time.Duration

	// Log configuration
	LogLevel      string
	LogFormat     string
	LogFilename   string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func (c *Config) RedisFullAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisAddr, c.RedisPort)
}

// LoadConfig reads .env (if present), an optional config file named by
// CONFIG_FILE, and the process environment, in increasing precedence.
func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// Ignore error if .env file is not found
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		HTTPAddr:    v.GetString("HTTP_ADDR"),
		GinMode:     v.GetString("GIN_MODE"),
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),

		DBDriver:   strings.ToLower(v.GetString("DB_DRIVER")),
		DBPath:     v.GetString("DB_PATH"),
		DBHost:     v.GetString("DB_HOST"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBPort:     v.GetString("DB_PORT"),

		StoreDriver:   strings.ToLower(v.GetString("STORE_DRIVER")),
		MongoURI:      v.GetString("MONGO_URI"),
		MongoDatabase: v.GetString("MONGO_DATABASE"),

		RedisAddr:       v.GetString("REDIS_HOST"),
		RedisPort:       v.GetString("REDIS_PORT"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		NotificationTTL: v.GetDuration("NOTIFICATION_TTL"),

		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFormat:     v.GetString("LOG_FORMAT"),
		LogFilename:   v.GetString("LOG_FILENAME"),
		LogMaxSize:    v.GetInt("LOG_MAX_SIZE"),
		LogMaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
		LogMaxAge:     v.GetInt("LOG_MAX_AGE"),
		LogCompress:   v.GetBool("LOG_COMPRESS"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects driver names the service cannot wire.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DBDriverSQLite, DBDriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.StoreDriver {
	case StoreDriverSQL:
	case StoreDriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required when STORE_DRIVER=%s", StoreDriverMongo)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:8080")

	v.SetDefault("DB_DRIVER", DBDriverSQLite)
	v.SetDefault("DB_PATH", "data/modelhub.db")
	v.SetDefault("DB_PORT", "5432")

	v.SetDefault("STORE_DRIVER", StoreDriverSQL)
	v.SetDefault("MONGO_DATABASE", "modelhub")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("NOTIFICATION_TTL", 10*time.Second)

	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_FILENAME", "logs/app.log")
	v.SetDefault("LOG_MAX_SIZE", 100)
	v.SetDefault("LOG_MAX_BACKUPS", 3)
	v.SetDefault("LOG_MAX_AGE", 28)
	v.SetDefault("LOG_COMPRESS", true)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
