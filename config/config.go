package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"hotelgen/shared/failure"
)

const DateLayout = "2006-01-02"

// Date is a calendar day decoded from YYYY-MM-DD.
type Date struct {
	time.Time
}

// Decode implements envconfig.Decoder.
func (d *Date) Decode(value string) error {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected %s: %w", value, DateLayout, err)
	}

	d.Time = t

	return nil
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

type Config struct {
	Server struct {
		Env      string `split_words:"true" default:"development"`
		LogLevel string `split_words:"true" default:"info"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `split_words:"true" default:"hotelgen"`
		Timezone string `split_words:"true" default:"Asia/Kolkata"`
	} `envconfig:"APP"`

	Generator struct {
		Seed          int64 `split_words:"true"`
		NumCustomers  int   `split_words:"true" default:"15000" validate:"gte=1"`
		NumBookings   int   `split_words:"true" default:"25000" validate:"gte=0"`
		NumRoomTypes  int   `split_words:"true" default:"6"     validate:"gte=1"`
		NumBranches   int   `split_words:"true" default:"10"    validate:"gte=1"`
		MaxTotalRooms int   `split_words:"true" default:"200"   validate:"gte=1"`
		StartDate     Date  `split_words:"true" default:"2021-01-01"`
		EndDate       Date  `split_words:"true" default:"2025-12-31"`
	} `envconfig:"GENERATOR"`

	Export struct {
		Path string `split_words:"true" default:"HotelData_AllSheets.xlsx" validate:"required"`
	} `envconfig:"EXPORT"`

	External struct {
		Otel struct {
			Endpoint string `split_words:"true"`
		} `envconfig:"OTEL"`
		S3 struct {
			Enable          bool   `split_words:"true"`
			APIEndpoint     string `split_words:"true"`
			PublicDomain    string `split_words:"true"`
			AccessKeyID     string `split_words:"true"`
			SecretAccessKey string `split_words:"true"`
			BucketName      string `split_words:"true"`
			Directory       string `split_words:"true" default:"datasets"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf    *Config
	once    sync.Once
	initErr error
)

// Load reads .env when present and decodes the environment into a fresh Config.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
	} else {
		log.Info().Msg("Successfully loaded variables from .env file into environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, failure.InvalidConfig(fmt.Errorf("processing environment variables: %w", err))
	}

	return &cfg, nil
}

func Init() error {
	once.Do(func() {
		conf, initErr = Load()
		if initErr == nil {
			log.Debug().Msg("Generator configuration initialized successfully")
		}
	})

	return initErr
}

func Get() *Config {
	if err := Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize configuration")
	}

	return conf
}
