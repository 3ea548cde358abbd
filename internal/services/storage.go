package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/comunidadevida/acampamento-api/internal/config"
	"github.com/comunidadevida/acampamento-api/internal/observability"
	"github.com/comunidadevida/acampamento-api/internal/utils"
	"github.com/comunidadevida/acampamento-api/internal/utils/httpclient"
	"go.uber.org/zap"
)

// BlobStorage is the consumed file-store capability: store a blob under a
// key, get back a public URL.
type BlobStorage interface {
	Put(ctx context.Context, key string, content []byte, contentType string) (string, error)
}

// HTTPBlobStorage stores blobs through the object-store REST API configured
// in STORAGE_BASE_URL
type HTTPBlobStorage struct {
	pool   *httpclient.Pool
	logger *zap.Logger
}

// NewHTTPBlobStorage creates a blob storage client backed by a pooled HTTP client
func NewHTTPBlobStorage(logger *zap.Logger) *HTTPBlobStorage {
	return &HTTPBlobStorage{
		pool:   httpclient.NewPool(4),
		logger: logger,
	}
}

// Put uploads the content and returns its public URL. Any non-2xx response
// is an error; the registration pipeline treats it as fatal.
func (s *HTTPBlobStorage) Put(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	ctx, span := utils.TraceExternalService(ctx, "blob_storage", "put")
	defer span.End()

	uploadURL := fmt.Sprintf("%s/object/%s/%s",
		strings.TrimRight(config.AppConfig.StorageBaseURL, "/"),
		config.AppConfig.StorageBucket,
		key,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if config.AppConfig.StorageAPIKey != "" {
		req.Header.Set("Authorization", "Bearer "+config.AppConfig.StorageAPIKey)
	}

	client := s.pool.Get()
	defer s.pool.Put(client)

	resp, err := client.Do(req)
	if err != nil {
		observability.StorageUploads.WithLabelValues("error").Inc()
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"storage.key": key})
		return "", fmt.Errorf("failed to upload blob: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		observability.StorageUploads.WithLabelValues("error").Inc()
		err := fmt.Errorf("blob store returned status %d: %s", resp.StatusCode, string(body))
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"storage.key": key})
		return "", err
	}

	observability.StorageUploads.WithLabelValues("success").Inc()
	s.logger.Debug("blob uploaded",
		zap.String("key", key),
		zap.String("content_type", contentType),
		zap.Int("size_bytes", len(content)))

	return s.publicURL(key), nil
}

func (s *HTTPBlobStorage) publicURL(key string) string {
	base := config.AppConfig.StoragePublicURL
	if base == "" {
		base = fmt.Sprintf("%s/object/public/%s",
			strings.TrimRight(config.AppConfig.StorageBaseURL, "/"),
			config.AppConfig.StorageBucket,
		)
	}
	return strings.TrimRight(base, "/") + "/" + key
}
