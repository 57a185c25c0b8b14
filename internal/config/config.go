package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env           string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer    HTTPServer    `yaml:"http_server"`
	Database      Database      `yaml:"database"`
	Auth          Auth          `yaml:"auth"`
	Payment       Payment       `yaml:"payment"`
	Bookings      Bookings      `yaml:"bookings"`
	Redis         Redis         `yaml:"redis"`
	Notifications Notifications `yaml:"notifications"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:5000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ClientURL   string        `yaml:"client_url" env:"CLIENT_URL" env-default:"http://localhost:5173"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"ems_db"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Auth struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"JWT_EXPIRES_IN" env-default:"168h"`
}

type Payment struct {
	Provider            string `yaml:"provider" env:"PAYMENT_PROVIDER" env-default:"mock"`
	StripeSecretKey     string `yaml:"stripe_secret_key" env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `yaml:"stripe_webhook_secret" env:"STRIPE_WEBHOOK_SECRET"`
	Currency            string `yaml:"currency" env-default:"gbp"`
}

type Bookings struct {
	PendingTTL    time.Duration `yaml:"pending_ttl" env-default:"1h"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"1m"`
}

type Redis struct {
	Address   string        `yaml:"address" env:"REDIS_ADDRESS"`
	Password  string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB        int           `yaml:"db" env-default:"0"`
	RateLimit int64         `yaml:"rate_limit" env-default:"30"`
	Window    time.Duration `yaml:"window" env-default:"1m"`
}

type Notifications struct {
	Store         string `yaml:"store" env:"NOTIFICATIONS_STORE" env-default:"postgres"`
	MongoURI      string `yaml:"mongo_uri" env:"MONGODB_URI" env-default:"mongodb://localhost:27017"`
	MongoDatabase string `yaml:"mongo_database" env-default:"ems_db"`
}

func MustLoad() *Config {
	// .env is optional
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	return &cfg, nil
}
