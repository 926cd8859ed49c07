package config

import (
	"os"
	"time"

	errorsUtils "github.com/Egor213/EndpointLog/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		PG         `yaml:"postgres"`
		Storage    `yaml:"storage"`
		GRPC       `yaml:"grpc"`
		HTTP       `yaml:"http"`
		Prometheus `yaml:"prometheus"`
		Kafka      `yaml:"kafka"`
	}

	App struct {
		Name    string `yaml:"name" env:"APP_NAME" env-required:"true"`
		Version string `yaml:"version" env:"APP_VERSION" env-required:"true"`
	}

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	}

	PG struct {
		MaxPoolSize    int    `yaml:"max_pool_size" env:"MAX_POOL_SIZE" env-default:"4"`
		URL            string `yaml:"url" env:"PG_URL"`
		MigrationsPath string `yaml:"migrations_path" env:"PG_MIGRATIONS_PATH" env-default:"migrations"`
	}

	Storage struct {
		Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres"`
	}

	GRPC struct {
		Port string `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
	}

	HTTP struct {
		Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	}

	Prometheus struct {
		Port string `yaml:"port" env:"PROMETHEUS_PORT" env-default:"9090"`
	}

	Kafka struct {
		Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"views.revalidate"`
	}
)

const (
	ENV_PATH            = "infra/.env.dev"
	DEFAULT_CONFIG_PATH = "infra/config.yaml"
)

func loadDotEnv() {
	if err := godotenv.Load(ENV_PATH); err != nil {
		log.WithField("path", ENV_PATH).Debugf("No .env file loaded: %v", err)
	}
}

func New() (*Config, error) {
	loadDotEnv()

	cfg := &Config{}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = DEFAULT_CONFIG_PATH
	}

	if err := cleanenv.ReadConfig(pathToConfig, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cfg.validate(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}
