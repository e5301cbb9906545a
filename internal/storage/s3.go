package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"alkhair/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the part of *s3.Client used to keep the aggregate.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Storage keeps the aggregate as one JSON object, the same document
// FileStorage writes.
type S3Storage struct {
	client S3API
	bucket string
	key    string
}

func NewS3Storage(client S3API, bucket, key string) *S3Storage {
	if key == "" {
		key = DataFileName
	}
	return &S3Storage{client: client, bucket: bucket, key: key}
}

// Load returns an empty aggregate when the object does not exist yet.
func (s *S3Storage) Load(ctx context.Context) (*types.AppData, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var noSuchKey *s3types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return types.NewAppData(), nil
		}
		return nil, fmt.Errorf("failed to fetch s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	payload, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return decodeDocument(payload)
}

func (s *S3Storage) Save(ctx context.Context, data *types.AppData) error {
	payload, err := encodeDocument(data)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to write s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return nil
}
