package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects      map[string][]byte
	contentTypes map[string]string
	getErr       error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, contentTypes: map[string]string{}}
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	body, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	f.objects[key] = body
	f.contentTypes[key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func TestS3StorageRoundTrip(t *testing.T) {
	client := newFakeS3()
	roundTrip(t, NewS3Storage(client, "office", ""))

	assert.Contains(t, client.objects, "office/"+DataFileName)
	assert.Equal(t, "application/json", client.contentTypes["office/"+DataFileName])
}

func TestS3StorageLoadError(t *testing.T) {
	client := newFakeS3()
	client.getErr = errors.New("access denied")

	_, err := NewS3Storage(client, "office", "backup.json").Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3://office/backup.json")
}
