package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP   HTTP
	Logger Logger
	Store  Store
	Kafka  Kafka
	Gemini Gemini
}

type HTTP struct {
	Port     int    `env:"HTTP_PORT" envDefault:"3001"`
	BasePath string `env:"API_BASE_PATH" envDefault:"/api"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Store selects the record store backing. The memory driver optionally
// mirrors every mutation to the File snapshot.
type Store struct {
	Driver   string `env:"STORE_DRIVER" envDefault:"memory"` // memory | postgres
	File     string `env:"STORE_FILE" envDefault:""`
	DSN      string `env:"POSTGRES_DSN" envDefault:""`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers           []string `env:"KAFKA_BROKERS" envDefault:""`
	RecordEventsTopic string   `env:"KAFKA_RECORD_EVENTS_TOPIC" envDefault:"clique360.record-events"`
}

type Gemini struct {
	APIKey  string `env:"GEMINI_API_KEY"`
	Model   string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	BaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
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
