package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Source kinds accepted by NewSource
const (
	KindFile = "file"
	KindHTTP = "http"
	KindS3   = "s3"
)

// DefaultPath is where the articles CSV lives in a site checkout
const DefaultPath = "public/articles.csv"

// maxCSVBytes caps how much of a remote CSV is read
const maxCSVBytes = 32 * 1024 * 1024

// Source fetches the raw articles CSV
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// Config contains source configuration
type Config struct {
	Kind        string        // file, http or s3
	Path        string        // Local CSV path (file)
	URL         string        // CSV URL (http)
	HTTPTimeout time.Duration // Client timeout (http)
	S3          S3Config      // Bucket settings (s3)
}

// DefaultConfig returns default source configuration
func DefaultConfig() Config {
	return Config{
		Kind:        KindFile,
		Path:        DefaultPath,
		HTTPTimeout: 30 * time.Second,
	}
}

// NewSource creates the Source described by config
func NewSource(ctx context.Context, config Config) (Source, error) {
	switch config.Kind {
	case KindFile, "":
		if config.Path == "" {
			return nil, fmt.Errorf("articles path is required")
		}
		return NewFileSource(config.Path), nil
	case KindHTTP:
		if config.URL == "" {
			return nil, fmt.Errorf("articles URL is required")
		}
		return NewHTTPSource(config.URL, config.HTTPTimeout), nil
	case KindS3:
		return NewS3Source(ctx, config.S3)
	default:
		return nil, fmt.Errorf("unknown articles source %q", config.Kind)
	}
}

// FileSource reads the CSV from the local filesystem
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads the whole file
func (s *FileSource) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read articles file: %w", err)
	}

	return string(data), nil
}

// HTTPSource downloads the CSV from a URL
type HTTPSource struct {
	url        string
	httpClient *http.Client
}

// NewHTTPSource creates an HTTPSource whose client propagates trace context
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url: url,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Fetch downloads the CSV body
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch articles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCSVBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read articles body: %w", err)
	}

	return string(data), nil
}
