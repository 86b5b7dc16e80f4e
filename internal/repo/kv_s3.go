package repo

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Options configures the object-storage backend.
type S3Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// s3KVStore keeps one JSON object per key in an S3-compatible bucket.
type s3KVStore struct {
	client *minio.Client
	bucket string
}

// NewS3KVStore connects to the object store and ensures the bucket exists.
func NewS3KVStore(ctx context.Context, opts S3Options) (KVStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("repo.NewS3KVStore: init client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("repo.NewS3KVStore: check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("repo.NewS3KVStore: create bucket: %w", err)
		}
	}
	return &s3KVStore{client: client, bucket: opts.Bucket}, nil
}

func (s *s3KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName(key), minio.GetObjectOptions{})
	if err != nil {
		return nil, false, fmt.Errorf("repo.s3KVStore.Get: %w", err)
	}
	defer obj.Close()

	// GetObject is lazy: a missing key only surfaces on the first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("repo.s3KVStore.Get: read: %w", err)
	}
	return data, true, nil
}

func (s *s3KVStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectName(key), bytes.NewReader(value), int64(len(value)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("repo.s3KVStore.Set: %w", err)
	}
	return nil
}

func objectName(key string) string {
	return key + ".json"
}
