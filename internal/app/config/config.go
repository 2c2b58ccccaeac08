package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost    string
	ServicePort    int
	AllowedOrigins []string
	JWT            JWTConfig
	Redis          RedisConfig
	SMTP           SMTPConfig
	Upload         UploadConfig
}

type JWTConfig struct {
	Secret        string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

type UploadConfig struct {
	Dir     string // каталог для загруженных изображений
	BaseURL string // публичный адрес, из которого строятся ссылки на изображения
}

// Секреты берём только из окружения, не из toml
const (
	envJWTSecret = "JWT_SECRET"
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"
	envSMTPUser  = "SMTP_USER"
	envSMTPPass  = "SMTP_PASSWORD"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// JWT: секрет обязателен, срок жизни настраивается (по умолчанию сутки)
	cfg.JWT.Secret = os.Getenv(envJWTSecret)
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("%s is not set", envJWTSecret)
	}
	if cfg.JWT.ExpiresIn == 0 {
		cfg.JWT.ExpiresIn = 24 * time.Hour
	}
	cfg.JWT.SigningMethod = jwt.SigningMethodHS256

	// Redis (blacklist токенов) — опционален
	cfg.Redis.Host = os.Getenv(envRedisHost)
	if cfg.Redis.Host != "" {
		cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
		if err != nil {
			return nil, fmt.Errorf("redis port must be int value: %w", err)
		}
		cfg.Redis.Password = os.Getenv(envRedisPass)
		cfg.Redis.User = os.Getenv(envRedisUser)
		cfg.Redis.DialTimeout = 10 * time.Second
		cfg.Redis.ReadTimeout = 10 * time.Second
	}

	// Почтовый транспорт: логин и пароль из окружения
	cfg.SMTP.User = os.Getenv(envSMTPUser)
	cfg.SMTP.Password = os.Getenv(envSMTPPass)

	if cfg.Upload.Dir == "" {
		cfg.Upload.Dir = "uploads"
	}

	log.Info("config parsed")

	return cfg, nil
}
