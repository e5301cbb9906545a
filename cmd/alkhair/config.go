package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"alkhair/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var storageDrivers = []string{"file", "sqlite", "postgres", "s3"}

// loadConfig reads .env (when present) and then the environment, using the
// --env-prefix flag, e.g. APP_STORAGE_DRIVER.
func loadConfig(cCtx *cli.Context) (*types.Config, error) {
	if err := godotenv.Load(cCtx.String("env-file")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	c := new(types.Config)
	if err := envconfig.Process(cCtx.String("env-prefix"), c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	return c, validateConfig(c)
}

func validateConfig(c *types.Config) error {
	c.StorageDriver = strings.ToLower(strings.TrimSpace(c.StorageDriver))

	switch c.StorageDriver {
	case "file":
		if c.DataDir == "" {
			return fmt.Errorf("set DATA_DIR for the file storage driver")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("set SQLITE_PATH for the sqlite storage driver")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("set DATABASE_URL for the postgres storage driver")
		}
	case "s3":
		if c.SnapshotBucket == "" {
			return fmt.Errorf("set SNAPSHOT_BUCKET for the s3 storage driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q, want one of %s", c.StorageDriver, strings.Join(storageDrivers, ", "))
	}

	if c.ServerPort == 0 {
		c.ServerPort = 8080
	}

	if c.ReadTimeoutSec == 0 {
		c.ReadTimeoutSec = 10
	}

	if c.WriteTimeoutSec == 0 {
		c.WriteTimeoutSec = 15
	}

	return nil
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	config, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}

	return config, nil
}

// newLogger honours --log-level over LOG_LEVEL. Production gets JSON lines.
func newLogger(cCtx *cli.Context, c *types.Config) (*logrus.Logger, error) {
	logger := logrus.New()

	level := c.LogLevel
	if cCtx.IsSet("log-level") {
		level = cCtx.String("log-level")
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(parsed)

	if c.Environment != "development" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger, nil
}
