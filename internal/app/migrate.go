package app

import (
	"errors"
	"os"
	"time"

	errorsUtils "github.com/Egor213/EndpointLog/pkg/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	log "github.com/sirupsen/logrus"
)

const (
	defaultAttempts = 10
	defaultTimeout  = time.Second
)

func Migrate(pgUrl, migrationsPath string) error {
	log.WithField("path", migrationsPath).Info("Applying migrations")

	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		return errorsUtils.WrapPathErr(err)
	}

	var (
		err  error
		mgrt *migrate.Migrate
	)

	for connAttempts := defaultAttempts; connAttempts > 0; connAttempts-- {
		mgrt, err = migrate.New("file://"+migrationsPath, pgUrl)
		if err == nil {
			break
		}

		log.Infof("Postgres trying to connect, attempts left: %d", connAttempts-1)
		time.Sleep(defaultTimeout)
	}

	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	defer mgrt.Close()

	err = mgrt.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("Migration no change")
		return nil
	}
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	log.Info("Migration successful up")
	return nil
}
