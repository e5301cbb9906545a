package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"alkhair/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader puts attachments in a bucket under
// cases/<case id>/<slot>/<random id><ext> and returns their URL.
type S3Uploader struct {
	client   ObjectPutter
	bucket   string
	baseURL  string
	maxBytes int64
}

// NewS3Uploader builds an uploader. An empty baseURL falls back to the
// bucket's virtual-hosted S3 address.
func NewS3Uploader(client ObjectPutter, bucket, baseURL string, maxBytes int64) *S3Uploader {
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}
	return &S3Uploader{
		client:   client,
		bucket:   bucket,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
	}
}

func (u *S3Uploader) Upload(ctx context.Context, in Upload) (string, error) {
	data, err := readLimited(in.Body, u.maxBytes)
	if err != nil {
		return "", fmt.Errorf("failed to read attachment: %w", err)
	}

	key := objectKey(in)
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType(in, data)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return u.baseURL + "/" + key, nil
}

func objectKey(in Upload) string {
	return fmt.Sprintf("cases/%d/%s/%s%s", in.CaseID, in.Slot, utils.RandomKey(), extension(in.Filename))
}
