package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string `mapstructure:"SERVER_HOST"`
	Port int    `mapstructure:"SERVER_PORT"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"DB_HOST"`
	Port     int    `mapstructure:"DB_PORT"`
	User     string `mapstructure:"DB_USER"`
	Password string `mapstructure:"DB_PASSWORD"`
	DBName   string `mapstructure:"DB_NAME"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type JWTConfig struct {
	Secret            string `mapstructure:"JWT_SECRET"`
	AccessExpireMins  int    `mapstructure:"JWT_ACCESS_EXPIRE_MINUTES"`
	RefreshExpireMins int    `mapstructure:"JWT_REFRESH_EXPIRE_MINUTES"`
}

type GoogleAPIConfig struct {
	ClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	ClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	RedirectURI  string `mapstructure:"GOOGLE_REDIRECT_URI"`
}

type S3Config struct {
	Region          string `mapstructure:"S3_REGION"`
	Bucket          string `mapstructure:"S3_BUCKET"`
	Endpoint        string `mapstructure:"S3_ENDPOINT"`
	AccessKeyID     string `mapstructure:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `mapstructure:"S3_SECRET_ACCESS_KEY"`
	PublicBaseURL   string `mapstructure:"S3_PUBLIC_BASE_URL"`
}

type LumaConfig struct {
	ScrapeBaseURL string `mapstructure:"LUMA_SCRAPE_BASE_URL"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:",squash"`
	Database  DatabaseConfig  `mapstructure:",squash"`
	Redis     RedisConfig     `mapstructure:",squash"`
	JWT       JWTConfig       `mapstructure:",squash"`
	GoogleAPI GoogleAPIConfig `mapstructure:",squash"`
	S3        S3Config        `mapstructure:",squash"`
	Luma      LumaConfig      `mapstructure:",squash"`
}

var (
	instance *Config
	loadErr  error
	once     sync.Once
)

// Load reads .env (if present) and environment variables into the singleton
// config. Every call reports the outcome of the first one.
func Load() (*Config, error) {
	once.Do(func() {
		_ = godotenv.Load()

		v := viper.New()
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

		setDefaults(v)

		cfg := &Config{}
		if err := v.Unmarshal(cfg); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal config: %w", err)
			return
		}

		// viper.AutomaticEnv does not populate Unmarshal targets unless the keys
		// are known, so bind them explicitly.
		cfg.Server.Host = v.GetString("SERVER_HOST")
		cfg.Server.Port = v.GetInt("SERVER_PORT")
		cfg.Database.Host = v.GetString("DB_HOST")
		cfg.Database.Port = v.GetInt("DB_PORT")
		cfg.Database.User = v.GetString("DB_USER")
		cfg.Database.Password = v.GetString("DB_PASSWORD")
		cfg.Database.DBName = v.GetString("DB_NAME")
		cfg.Redis.Addr = v.GetString("REDIS_ADDR")
		cfg.Redis.Password = v.GetString("REDIS_PASSWORD")
		cfg.Redis.DB = v.GetInt("REDIS_DB")
		cfg.JWT.Secret = v.GetString("JWT_SECRET")
		cfg.JWT.AccessExpireMins = v.GetInt("JWT_ACCESS_EXPIRE_MINUTES")
		cfg.JWT.RefreshExpireMins = v.GetInt("JWT_REFRESH_EXPIRE_MINUTES")
		cfg.GoogleAPI.ClientID = v.GetString("GOOGLE_CLIENT_ID")
		cfg.GoogleAPI.ClientSecret = v.GetString("GOOGLE_CLIENT_SECRET")
		cfg.GoogleAPI.RedirectURI = v.GetString("GOOGLE_REDIRECT_URI")
		cfg.S3.Region = v.GetString("S3_REGION")
		cfg.S3.Bucket = v.GetString("S3_BUCKET")
		cfg.S3.Endpoint = v.GetString("S3_ENDPOINT")
		cfg.S3.AccessKeyID = v.GetString("S3_ACCESS_KEY_ID")
		cfg.S3.SecretAccessKey = v.GetString("S3_SECRET_ACCESS_KEY")
		cfg.S3.PublicBaseURL = v.GetString("S3_PUBLIC_BASE_URL")
		cfg.Luma.ScrapeBaseURL = v.GetString("LUMA_SCRAPE_BASE_URL")

		instance = cfg
	})

	if loadErr != nil {
		return nil, loadErr
	}
	return instance, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "sponlink")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_ACCESS_EXPIRE_MINUTES", 60)
	v.SetDefault("JWT_REFRESH_EXPIRE_MINUTES", 60*24*7)
	v.SetDefault("S3_REGION", "ap-southeast-1")
	v.SetDefault("LUMA_SCRAPE_BASE_URL", "https://api.lu.ma/url")
}

// Get returns the loaded config. It panics when called before Load.
func Get() *Config {
	if instance == nil {
		panic("config not initialized, call config.Load first")
	}
	return instance
}

// GetSafe returns the loaded config without panicking.
func GetSafe() (*Config, bool) {
	if instance == nil {
		return nil, false
	}
	return instance, true
}
