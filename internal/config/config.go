package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	Port            string
	JWTSecret       string
	RebuildSchedule string
	OperatorWorkers int
}

// ProcessEnvironmentVariables loads .env when present and merges the
// environment over the docker compose defaults.
func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		Port:             "9446",
		JWTSecret:        "dev-secret",
		RebuildSchedule:  "0 3 * * *",
		OperatorWorkers:  4,
	}

	setFromEnv(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setFromEnv(&env.PostgresPort, "POSTGRES_PORT")
	setFromEnv(&env.PostgresDB, "POSTGRES_DB")
	setFromEnv(&env.PostgresUsername, "POSTGRES_USERNAME")
	setFromEnv(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setFromEnv(&env.Port, "PORT")
	setFromEnv(&env.JWTSecret, "JWT_SECRET")
	setFromEnv(&env.RebuildSchedule, "REBUILD_SCHEDULE")

	if raw := os.Getenv("OPERATOR_WORKERS"); raw != "" {
		workers, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		env.OperatorWorkers = workers
	}

	return &env, nil
}

func setFromEnv(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}
