package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`

	// Redis Config
	RedisAddr    string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass    string        `env:"REDIS_PASSWORD"`
	RedisDB      int           `env:"REDIS_DB" envDefault:"0"`
	FireCacheTTL time.Duration `env:"FIRE_CACHE_TTL" envDefault:"2m"`

	// Kafka Config
	KafkaBrokers   []string `env:"KAFKA_BROKERS"`
	KafkaFireTopic string   `env:"KAFKA_FIRE_TOPIC" envDefault:"wildfire-updates"`

	// Fire feed Config
	ArcGISURL    string `env:"ARCGIS_URL"`
	FireState    string `env:"FIRE_STATE" envDefault:"US-WA"`
	FireDaysBack int    `env:"FIRE_DAYS_BACK" envDefault:"5"`
	FireInfoURL  string `env:"FIRE_INFO_URL" envDefault:"http://fireinfo.dnr.wa.gov/"`

	// Matching / dispatch Config
	RecencyWindow       time.Duration `env:"RECENCY_WINDOW" envDefault:"120h"`
	DispatchConcurrency int           `env:"DISPATCH_CONCURRENCY" envDefault:"10"`

	// SMS Config
	TwilioAccountSID string  `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string  `env:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string  `env:"TWILIO_FROM_NUMBER"`
	SMSRatePerSecond float64 `env:"SMS_RATE_PER_SECOND" envDefault:"5"`

	// Webhook Config
	DiscordWebhookBaseURL string        `env:"DISCORD_WEBHOOK_BASE_URL" envDefault:"https://discord.com/api/webhooks"`
	WebhookTimeout        time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries     int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay      time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"500ms"`

	// Telegram Config
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`

	// Scheduler Config
	PollInterval   time.Duration `env:"POLL_INTERVAL" envDefault:"0"`
	NotifyInterval time.Duration `env:"NOTIFY_INTERVAL" envDefault:"0"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// SMSEnabled сообщает, заданы ли все параметры Twilio
func (c *Config) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFile:               os.Getenv("LOG_FILE"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		FireCacheTTL:          getEnvAsDuration("FIRE_CACHE_TTL", 2*time.Minute),
		KafkaBrokers:          getEnvAsSlice("KAFKA_BROKERS"),
		KafkaFireTopic:        getEnv("KAFKA_FIRE_TOPIC", "wildfire-updates"),
		ArcGISURL:             getEnv("ARCGIS_URL", "https://services3.arcgis.com/T4QMspbfLg3qTGWY/arcgis/rest/services/CY_WildlandFire_Locations_ToDate/FeatureServer/0/query"),
		FireState:             getEnv("FIRE_STATE", "US-WA"),
		FireDaysBack:          getEnvAsInt("FIRE_DAYS_BACK", 5),
		FireInfoURL:           getEnv("FIRE_INFO_URL", "http://fireinfo.dnr.wa.gov/"),
		RecencyWindow:         getEnvAsDuration("RECENCY_WINDOW", 5*24*time.Hour),
		DispatchConcurrency:   getEnvAsInt("DISPATCH_CONCURRENCY", 10),
		TwilioAccountSID:      os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:       os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber:      os.Getenv("TWILIO_FROM_NUMBER"),
		SMSRatePerSecond:      getEnvAsFloat("SMS_RATE_PER_SECOND", 5),
		DiscordWebhookBaseURL: getEnv("DISCORD_WEBHOOK_BASE_URL", "https://discord.com/api/webhooks"),
		WebhookTimeout:        getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:     getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:      getEnvAsDuration("WEBHOOK_BASE_DELAY", 500*time.Millisecond),
		TelegramBotToken:      os.Getenv("TELEGRAM_BOT_TOKEN"),
		PollInterval:          getEnvAsDuration("POLL_INTERVAL", 0),
		NotifyInterval:        getEnvAsDuration("NOTIFY_INTERVAL", 0),
		APIKeys:               getEnvAsSlice("API_KEYS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.RecencyWindow < 0 {
		return nil, fmt.Errorf("RECENCY_WINDOW must not be negative")
	}
	if cfg.DispatchConcurrency < 1 {
		cfg.DispatchConcurrency = 1
	}
	if cfg.WebhookMaxRetries < 1 {
		cfg.WebhookMaxRetries = 1
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsSlice разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsSlice(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
