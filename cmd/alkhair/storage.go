package main

import (
	"context"
	"fmt"

	"alkhair/internal/db"
	"alkhair/internal/records"
	"alkhair/internal/storage"
	"alkhair/pkg/types"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// office bundles what every command needs: config, logger and a loaded
// store backed by the configured driver.
type office struct {
	config  *types.Config
	logger  *logrus.Logger
	store   *records.Store
	closers []func()
}

func openOffice(ctx context.Context, cCtx *cli.Context) (*office, error) {
	config, err := loadConfig(cCtx)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cCtx, config)
	if err != nil {
		return nil, err
	}

	o := &office{config: config, logger: logger}

	backend, err := o.openBackend(ctx)
	if err != nil {
		o.Close()
		return nil, err
	}

	if config.SyncDir != "" {
		sync := storage.NewFileStorage(config.SyncDir)
		backend = storage.NewMirror(backend, logger).Add("sync", sync)
		logger.WithField("path", sync.Path()).Info("mirroring saves to sync directory")
	}

	o.store, err = records.Open(ctx, backend, records.WithLogger(logger))
	if err != nil {
		o.Close()
		return nil, err
	}

	return o, nil
}

func (o *office) openBackend(ctx context.Context) (storage.Backend, error) {
	entry := o.logger.WithField("driver", o.config.StorageDriver)

	switch o.config.StorageDriver {
	case "sqlite":
		s, err := storage.OpenSQLite(ctx, o.config.SQLitePath)
		if err != nil {
			return nil, err
		}
		o.closers = append(o.closers, func() { _ = s.Close() })
		entry.WithField("path", o.config.SQLitePath).Info("using sqlite storage")
		return s, nil

	case "postgres":
		pool, err := db.Connect(ctx, o.config)
		if err != nil {
			return nil, err
		}
		o.closers = append(o.closers, pool.Close)

		s := storage.NewPostgresStorage(pool)
		if err := s.Migrate(ctx); err != nil {
			return nil, err
		}
		entry.Info("using postgres storage")
		return s, nil

	case "s3":
		awsConfig, err := loadAWSConfig(ctx)
		if err != nil {
			return nil, err
		}
		entry.WithField("bucket", o.config.SnapshotBucket).Info("using s3 storage")
		return storage.NewS3Storage(s3.NewFromConfig(awsConfig), o.config.SnapshotBucket, o.config.SnapshotKey), nil

	case "file":
		s := storage.NewFileStorage(o.config.DataDir)
		entry.WithField("path", s.Path()).Info("using file storage")
		return s, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", o.config.StorageDriver)
}

func (o *office) Close() {
	for i := len(o.closers) - 1; i >= 0; i-- {
		o.closers[i]()
	}
}
