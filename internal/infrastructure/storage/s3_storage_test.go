package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/propertyhub/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testStorageConfig() config.StorageConfig {
	return config.StorageConfig{
		Enabled:         true,
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		Bucket:          "test-bucket",
		AccessKeyID:     "test-key",
		SecretAccessKey: "test-secret",
		UsePathStyle:    true,
	}
}

func TestNewS3ObjectStorage_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*config.StorageConfig)
		wantErr string
	}{
		{"missing bucket", func(c *config.StorageConfig) { c.Bucket = "" }, "bucket is required"},
		{"key without secret", func(c *config.StorageConfig) { c.SecretAccessKey = "" }, "must be set together"},
		{"secret without key", func(c *config.StorageConfig) { c.AccessKeyID = "" }, "must be set together"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testStorageConfig()
			tt.mutate(&cfg)
			_, err := NewS3ObjectStorage(ctx, cfg, zaptest.NewLogger(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("valid config", func(t *testing.T) {
		s, err := NewS3ObjectStorage(ctx, testStorageConfig(), zaptest.NewLogger(t))
		require.NoError(t, err)
		assert.Equal(t, "test-bucket", s.Bucket())
	})

	t.Run("endpoint without scheme gets https", func(t *testing.T) {
		cfg := testStorageConfig()
		cfg.Endpoint = "storage.example.com"
		s, err := NewS3ObjectStorage(ctx, cfg, nil)
		require.NoError(t, err)

		url, err := s.PresignGet(ctx, "orgs/a/b", "b.pdf", time.Minute)
		require.NoError(t, err)
		assert.Contains(t, url, "https://storage.example.com/test-bucket/orgs/a/b")
	})
}

func TestS3ObjectStorage_Presign(t *testing.T) {
	ctx := context.Background()
	s, err := NewS3ObjectStorage(ctx, testStorageConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)

	key := "orgs/11111111-1111-1111-1111-111111111111/lease/general/doc/lease.pdf"

	t.Run("put url is signed for the bucket and key", func(t *testing.T) {
		url, err := s.PresignPut(ctx, key, "application/pdf", 1024, 15*time.Minute)
		require.NoError(t, err)

		assert.Contains(t, url, "localhost:9000/test-bucket/"+key)
		assert.Contains(t, url, "X-Amz-Signature=")
		assert.Contains(t, url, "X-Amz-Expires=900")
	})

	t.Run("get url carries the download file name", func(t *testing.T) {
		url, err := s.PresignGet(ctx, key, "lease.pdf", time.Hour)
		require.NoError(t, err)

		assert.Contains(t, url, "localhost:9000/test-bucket/"+key)
		assert.Contains(t, url, "response-content-disposition=attachment")
		assert.Contains(t, url, "X-Amz-Expires=3600")
	})

	t.Run("empty key is rejected", func(t *testing.T) {
		_, err := s.PresignPut(ctx, "", "application/pdf", 1, time.Minute)
		assert.Error(t, err)
		_, err = s.PresignGet(ctx, "", "", time.Minute)
		assert.Error(t, err)
		_, _, err = s.ObjectExists(ctx, "")
		assert.Error(t, err)
		assert.Error(t, s.DeleteObject(ctx, ""))
		assert.Error(t, s.PutObject(ctx, "", "text/plain", nil))
	})
}

func TestContentDisposition(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{"empty", "", "attachment"},
		{"token", "lease.pdf", "attachment; filename=lease.pdf"},
		{"spaces are quoted", "move in.pdf", `attachment; filename="move in.pdf"`},
		{"non-ascii uses extended form", "bail été.pdf", "attachment; filename*=utf-8''bail%20%C3%A9t%C3%A9.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentDisposition(tt.fileName))
		})
	}
}

// Requires a running MinIO; set PH_TEST_S3_ENDPOINT to enable.
func TestS3ObjectStorage_Integration(t *testing.T) {
	endpoint := os.Getenv("PH_TEST_S3_ENDPOINT")
	if testing.Short() || endpoint == "" {
		t.Skip("PH_TEST_S3_ENDPOINT not set")
	}

	ctx := context.Background()
	cfg := testStorageConfig()
	cfg.Endpoint = endpoint
	cfg.Bucket = "propertyhub-it"
	cfg.AccessKeyID = "minioadmin"
	cfg.SecretAccessKey = "minioadmin"

	s, err := NewS3ObjectStorage(ctx, cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, s.EnsureBucket(ctx))

	key := "orgs/it/general/general/doc/hello.txt"
	require.NoError(t, s.PutObject(ctx, key, "text/plain", []byte("hello")))

	exists, size, err := s.ObjectExists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, int64(5), size)

	require.NoError(t, s.DeleteObject(ctx, key))
	exists, _, err = s.ObjectExists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}
