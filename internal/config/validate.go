package config

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
	ErrMissingPGURL         = errors.New("postgres url is required for the postgres driver")
	ErrMissingKafkaBrokers  = errors.New("kafka brokers are required when kafka is enabled")
)

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.PG.URL == "" {
			return ErrMissingPGURL
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageDriver, c.Storage.Driver)
	}

	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return ErrMissingKafkaBrokers
	}
	return nil
}
