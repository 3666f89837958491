package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	"github.com/turnthepage/library-service/pkg/auth"
	"github.com/turnthepage/library-service/pkg/kafka"
	"github.com/turnthepage/library-service/pkg/logger"
	"github.com/turnthepage/library-service/pkg/mailer"
	"github.com/turnthepage/library-service/pkg/postgres"
	"github.com/turnthepage/library-service/pkg/storage"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LIBRARY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LIBRARY_HTTP_PORT" default:"8060"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"10s"`
}

type Lending struct {
	LoanDays   int             `yaml:"loanDays" envconfig:"LENDING_LOAN_DAYS" default:"14"`
	FinePerDay decimal.Decimal `yaml:"finePerDay" envconfig:"LENDING_FINE_PER_DAY" default:"10"`
}

type Dashboard struct {
	CacheTTL time.Duration `yaml:"cacheTTL" envconfig:"DASHBOARD_CACHE_TTL" default:"30s"`
}

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Server    HTTPServer  `yaml:"server"`
	Database  postgres.DB `yaml:"db"`
	Log       logger.Log  `yaml:"log"`
	Kafka     kafka.Config
	Auth      auth.Config `json:"-"`
	Lending   Lending
	SMTP      mailer.Config `json:"-"`
	S3        storage.S3    `json:"-"`
	Dashboard Dashboard
	// Storage selects the repository backend.
	Storage string `envconfig:"LIBRARY_STORAGE" default:"postgres"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
