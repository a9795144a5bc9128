package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every runtime setting. Values come from config.yml when
// present, environment variables override (BOUTIQUE_DATABASE_URL and so on).
type Config struct {
	Port        string `mapstructure:"port"`
	DatabaseURL string `mapstructure:"database_url"`
	Database    struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	JWTSecret string `mapstructure:"jwt_secret"`
	Shipping  struct {
		HomeDistrict string `mapstructure:"home_district"`
	} `mapstructure:"shipping"`
	Uploads struct {
		Dir           string `mapstructure:"dir"`
		PublicPath    string `mapstructure:"public_path"`
		BackupDir     string `mapstructure:"backup_dir"`
		RetentionDays int    `mapstructure:"retention_days"`
	} `mapstructure:"uploads"`
	Mail struct {
		APIURL string `mapstructure:"api_url"`
		APIKey string `mapstructure:"api_key"`
		From   string `mapstructure:"from"`
		To     string `mapstructure:"to"` // shop inbox notified on new orders
	} `mapstructure:"mail"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		Topic   string   `mapstructure:"topic"`
	} `mapstructure:"kafka"`
	R2 struct {
		AccountID string `mapstructure:"account_id"`
		AccessKey string `mapstructure:"access_key"`
		SecretKey string `mapstructure:"secret_key"`
		Bucket    string `mapstructure:"bucket"`
		PublicURL string `mapstructure:"public_url"`
	} `mapstructure:"r2"`
}

// DSN builds the postgres connection string. DatabaseURL wins when set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Database.Host, c.Database.User, c.Database.Password,
		c.Database.Name, c.Database.Port,
	)
}

// Load reads .env, config.yml and the environment, in that order of
// increasing precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("port", "8080")
	v.SetDefault("database_url", "")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "boutique")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("shipping.home_district", "Dhaka")
	v.SetDefault("uploads.dir", "./public/uploads")
	v.SetDefault("uploads.public_path", "/uploads")
	v.SetDefault("uploads.backup_dir", "./backup/uploads")
	v.SetDefault("uploads.retention_days", 4)
	v.SetDefault("mail.api_url", "")
	v.SetDefault("mail.api_key", "")
	v.SetDefault("mail.from", "orders@boutique.example")
	v.SetDefault("mail.to", "")
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "boutique.orders")
	v.SetDefault("r2.account_id", "")
	v.SetDefault("r2.access_key", "")
	v.SetDefault("r2.secret_key", "")
	v.SetDefault("r2.bucket", "")
	v.SetDefault("r2.public_url", "")

	v.SetEnvPrefix("BOUTIQUE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// no config.yml, defaults plus environment apply
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
