package main

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/config"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/logging"
)

func main() {
	logger := logging.SetupLogging()

	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("ProcessEnvironmentVariables")
	}

	if err := run(logger, env); err != nil {
		logger.WithError(err).Fatal("Migration failed")
	}
}

func run(logger *logrus.Logger, env *config.Config) error {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		env.PostgresUsername, env.PostgresPassword,
		env.PostgresAddress, env.PostgresPort, env.PostgresDB)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("postgres.WithInstance: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate.NewWithDatabaseInstance: %w", err)
	}

	before, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		before = 0
	} else if err != nil {
		return fmt.Errorf("version before migrating: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	after, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("version after migrating: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  before,
		"postMigrationVersion": after,
	}).Info("Migration status")
	return nil
}
