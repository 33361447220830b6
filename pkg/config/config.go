package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	JWT      JWT
	Mailer   Mailer
	Kafka    Kafka
	LoginURL string `env:"LOGIN_URL" envDefault:"https://academy.local/login"`
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type JWT struct {
	Secret     string `env:"JWT_SECRET"`
	CookieName string `env:"JWT_COOKIE_NAME" envDefault:"academy_token"`
}

type Mailer struct {
	Enabled  bool   `env:"MAILER_ENABLED" envDefault:"false"`
	Host     string `env:"MAILER_HOST" envDefault:"localhost"`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN" envDefault:""`
	Password string `env:"MAILER_PASSWORD" envDefault:""`
	From     string `env:"MAILER_FROM" envDefault:"no-reply@academy.local"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Academy"`
}

type Kafka struct {
	Enabled     bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers     []string `env:"KAFKA_BROKERS" envDefault:"kafka:9092"`
	EventsTopic string   `env:"KAFKA_EVENTS_TOPIC" envDefault:"academy-events"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
