package rpc

import (
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/satworks/electrum-jsonrpc/pkg/log"
)

// Config carries the daemon connection settings read from the environment.
// It exists for the integration tests and the manual CLI; the Client
// constructors never touch the environment themselves.
type Config struct {
	// Address is the daemon's base address.
	Address string `env:"ELECTRUM_DAEMON_ADDRESS" env-default:"http://127.0.0.1:7000" validate:"required,url"`
	// User is the RPC user name.
	User string `env:"ELECTRUM_USER" env-default:"test" validate:"required"`
	// Password is the RPC password.
	Password string `env:"ELECTRUM_PASSWORD" env-default:"test" validate:"required"`
}

// LoadConfig builds the connection settings from environment variables,
// loading a .env file first when one is present in the working directory.
func LoadConfig(logger log.Logger) (*Config, error) {
	logger = logger.WithName("config")

	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found")
	}

	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		logger.Error("failed to read env", "err", err)
		return nil, err
	}

	if err := validator.New().Struct(&config); err != nil {
		logger.Error("invalid configuration", "err", err)
		return nil, err
	}

	return &config, nil
}
