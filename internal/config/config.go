package config

import (
	"log"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Port         string        `envconfig:"PORT" default:"8080"`
	GinMode      string        `envconfig:"GIN_MODE" default:"debug"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`
	UploadDir    string        `envconfig:"UPLOAD_DIR" default:"uploads"`
}

type Database struct {
	Host                   string `envconfig:"DB_HOST" default:"localhost"`
	Port                   string `envconfig:"DB_PORT" default:"5432"`
	User                   string `envconfig:"DB_USER" default:"postgres"`
	Password               string `envconfig:"DB_PASSWORD"`
	Name                   string `envconfig:"DB_NAME" default:"car_rental"`
	SSLMode                string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenConns           int    `envconfig:"DB_MAX_OPEN_CONNS" default:"100"`
	MaxIdleConns           int    `envconfig:"DB_MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetimeMinutes int    `envconfig:"DB_CONN_MAX_LIFETIME_MINUTES" default:"60"`
}

type Redis struct {
	Host     string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string        `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	CacheTTL time.Duration `envconfig:"CARS_CACHE_TTL" default:"10m"`
}

type JWT struct {
	Secret string        `envconfig:"JWT_SECRET" required:"true"`
	TTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`
}

type SMTP struct {
	Host     string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	User     string `envconfig:"EMAIL_USER"`
	Password string `envconfig:"EMAIL_PASS"`
	From     string `envconfig:"EMAIL_FROM"`
}

type WhatsApp struct {
	CountryCode   string `envconfig:"WHATSAPP_COUNTRY_CODE" default:"212"`
	LinkBase      string `envconfig:"WHATSAPP_LINK_BASE" default:"https://web.whatsapp.com/send"`
	Currency      string `envconfig:"CURRENCY" default:"MAD"`
	PublicSiteURL string `envconfig:"PUBLIC_SITE_URL" default:"http://localhost:3000"`
	DefaultLocale string `envconfig:"DEFAULT_LOCALE" default:"fr"`
	// Green API, доставка на стороне сервера включается только при заданных реквизитах
	GreenInstanceID string `envconfig:"GREEN_API_INSTANCE_ID"`
	GreenToken      string `envconfig:"GREEN_API_TOKEN"`
	GreenBaseURL    string `envconfig:"GREEN_API_BASE_URL"`
}

type Kafka struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
	Topic   string   `envconfig:"KAFKA_BOOKING_TOPIC" default:"booking-events"`
}

type Log struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type Config struct {
	Env      string `envconfig:"APP_ENV" default:"production"`
	Server   HTTPServer
	Database Database
	Redis    Redis
	JWT      JWT
	SMTP     SMTP
	WhatsApp WhatsApp
	Kafka    Kafka
	Log      Log
}

// IsDevelopment включает подробности ошибок в ответах API
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig читает .env (если есть) и переменные окружения.
func NewConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("Файл .env не найден, используем переменные окружения")
		}
		var c Config
		if err := envconfig.Process("", &c); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &c
	})
	return cfg
}
