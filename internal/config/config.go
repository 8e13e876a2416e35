package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverOracle   = "oracle"

	EnvProduction = "production"

	// DefaultJWTSecret is only acceptable outside production.
	DefaultJWTSecret = "change-me"
)

type Config struct {
	DB       DBConfig
	Server   ServerConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Cache    CacheConfig
	Quiz     QuizConfig
	Importer ImporterConfig
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type LoggerConfig struct {
	Env   string
	Level string
}

type AuthConfig struct {
	JWTSecret    string
	SessionTTL   time.Duration
	CookieName   string
	CookieSecure bool
}

type CacheConfig struct {
	SubjectLevelsTTL time.Duration
}

type QuizConfig struct {
	DefaultLimit int
}

// ImportFile is one manifest entry of the question importer.
type ImportFile struct {
	Subject string `mapstructure:"subject"`
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
}

type ImporterConfig struct {
	DataDir string
	Files   []ImportFile
}

func setDefaults() {
	viper.SetDefault("db.driver", DriverPostgres)
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", 5432)
	viper.SetDefault("db.user", "quiz")
	viper.SetDefault("db.name", "mcqquiz")
	viper.SetDefault("db.sslmode", "disable")
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("auth.jwt_secret", DefaultJWTSecret)
	viper.SetDefault("auth.session_ttl", "24h")
	viper.SetDefault("auth.cookie_name", "mcqquiz_session")
	viper.SetDefault("cache.subject_levels_ttl", "10m")
	viper.SetDefault("quiz.default_limit", 10)
	viper.SetDefault("importer.data_dir", "data")
}

// LoadConfig reads config.yaml when present, then applies APP_* environment
// overrides. A .env file in the working directory is loaded first.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := &Config{
		DB: DBConfig{
			Driver:   strings.ToLower(viper.GetString("db.driver")),
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
			SSLMode:  viper.GetString("db.sslmode"),
		},
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  time.Duration(viper.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(viper.GetInt("server.write_timeout")) * time.Second,
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
		Auth: AuthConfig{
			JWTSecret:    viper.GetString("auth.jwt_secret"),
			SessionTTL:   viper.GetDuration("auth.session_ttl"),
			CookieName:   viper.GetString("auth.cookie_name"),
			CookieSecure: viper.GetBool("auth.cookie_secure"),
		},
		Cache: CacheConfig{
			SubjectLevelsTTL: viper.GetDuration("cache.subject_levels_ttl"),
		},
		Quiz: QuizConfig{
			DefaultLimit: viper.GetInt("quiz.default_limit"),
		},
		Importer: ImporterConfig{
			DataDir: viper.GetString("importer.data_dir"),
		},
	}

	if err := viper.UnmarshalKey("importer.files", &cfg.Importer.Files); err != nil {
		return nil, fmt.Errorf("failed to parse importer.files: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the process cannot start without.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverOracle:
	default:
		return fmt.Errorf("unsupported db.driver %q", c.DB.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret must be set")
	}
	if c.Logger.Env == EnvProduction && c.Auth.JWTSecret == DefaultJWTSecret {
		return errors.New("auth.jwt_secret must be changed from the default in production")
	}
	if c.Auth.SessionTTL <= 0 {
		return errors.New("auth.session_ttl must be positive")
	}
	return nil
}

// GetDSN returns the connection string for the configured driver.
func (c *Config) GetDSN() string {
	user := url.QueryEscape(c.DB.User)
	password := url.QueryEscape(c.DB.Password)
	if c.DB.Driver == DriverOracle {
		return fmt.Sprintf("oracle://%s:%s@%s:%d/%s", user, password, c.DB.Host, c.DB.Port, c.DB.DBName)
	}
	sslMode := c.DB.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		user, password, c.DB.Host, c.DB.Port, c.DB.DBName, sslMode)
}
