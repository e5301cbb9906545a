package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alkhair/internal/media"
	"alkhair/internal/server"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP API",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	o, err := openOffice(ctx, cCtx)
	if err != nil {
		return err
	}
	defer o.Close()

	uploader, err := o.newUploader(ctx)
	if err != nil {
		return err
	}

	srv := server.New(o.config, o.logger, o.store, uploader)

	go func() {
		o.logger.WithField("port", o.config.ServerPort).Infof("server starting http://localhost:%d", o.config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			o.logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	o.logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}

// newUploader stores attachments in MEDIA_BUCKET when set and inline in the
// office file otherwise.
func (o *office) newUploader(ctx context.Context) (media.Uploader, error) {
	if o.config.MediaBucket == "" {
		return &media.DataURIUploader{MaxBytes: o.config.MaxUploadBytes}, nil
	}

	awsConfig, err := loadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}

	o.logger.WithField("bucket", o.config.MediaBucket).Info("storing attachments in s3")
	return media.NewS3Uploader(s3.NewFromConfig(awsConfig), o.config.MediaBucket, o.config.MediaBaseURL, o.config.MaxUploadBytes), nil
}
