package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const sampleCSV = "Article Title,Article Content\nHello,<p>World</p>\n"

// TestFileSourceFetch tests reading the CSV from disk
func TestFileSourceFetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	got, err := NewFileSource(path).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if got != sampleCSV {
		t.Errorf("Fetch = %q, want %q", got, sampleCSV)
	}
}

// TestFileSourceMissing tests error handling for a missing file
func TestFileSourceMissing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.csv")).Fetch(context.Background())
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
}

// TestFileSourceCancelled tests that a cancelled context short-circuits the read
func TestFileSourceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewFileSource("irrelevant.csv").Fetch(ctx); err == nil {
		t.Fatal("Expected error for cancelled context, got nil")
	}
}

// TestHTTPSourceFetch tests downloading the CSV
func TestHTTPSourceFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/articles.csv" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL+"/articles.csv", 5*time.Second)
	got, err := source.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if got != sampleCSV {
		t.Errorf("Fetch = %q, want %q", got, sampleCSV)
	}
}

// TestHTTPSourceStatusError tests that non-200 responses are errors
func TestHTTPSourceStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewHTTPSource(server.URL, 5*time.Second).Fetch(context.Background())
	if err == nil {
		t.Fatal("Expected error for 500 response, got nil")
	}
}

// TestHTTPSourceUsesOtelTransport verifies trace context is propagated on fetches
func TestHTTPSourceUsesOtelTransport(t *testing.T) {
	source := NewHTTPSource("http://example.com/articles.csv", time.Second)

	if _, ok := source.httpClient.Transport.(*otelhttp.Transport); !ok {
		t.Error("HTTPSource client does not use otelhttp.Transport")
	}
}

// TestNewSource tests source selection from config
func TestNewSource(t *testing.T) {
	ctx := context.Background()

	file, err := NewSource(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("NewSource(default) error: %v", err)
	}
	if _, ok := file.(*FileSource); !ok {
		t.Errorf("NewSource(default) = %T, want *FileSource", file)
	}

	web, err := NewSource(ctx, Config{Kind: KindHTTP, URL: "https://example.com/articles.csv"})
	if err != nil {
		t.Fatalf("NewSource(http) error: %v", err)
	}
	if _, ok := web.(*HTTPSource); !ok {
		t.Errorf("NewSource(http) = %T, want *HTTPSource", web)
	}

	if _, err := NewSource(ctx, Config{Kind: KindHTTP}); err == nil {
		t.Error("Expected error for http source without URL")
	}
	if _, err := NewSource(ctx, Config{Kind: "ftp"}); err == nil {
		t.Error("Expected error for unknown source kind")
	}
}

// TestNewS3Source tests creating an S3 source with valid config
func TestNewS3Source(t *testing.T) {
	source, err := NewS3Source(context.Background(), S3Config{
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		Bucket:          "site-content",
		AccessKeyID:     "test-key",
		SecretAccessKey: "test-secret",
		UsePathStyle:    true,
	})
	if err != nil {
		t.Fatalf("Failed to create S3 source: %v", err)
	}
	if source.key != "articles.csv" {
		t.Errorf("default key = %q, want articles.csv", source.key)
	}
}

// TestNewS3SourceValidation tests error handling for incomplete S3 config
func TestNewS3SourceValidation(t *testing.T) {
	valid := S3Config{
		Region:          "us-east-1",
		Bucket:          "site-content",
		AccessKeyID:     "test-key",
		SecretAccessKey: "test-secret",
	}

	tests := []struct {
		name   string
		mutate func(*S3Config)
	}{
		{"missing bucket", func(c *S3Config) { c.Bucket = "" }},
		{"missing region", func(c *S3Config) { c.Region = "" }},
		{"missing access key", func(c *S3Config) { c.AccessKeyID = "" }},
		{"missing secret", func(c *S3Config) { c.SecretAccessKey = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if _, err := NewS3Source(context.Background(), cfg); err == nil {
				t.Fatal("Expected error, got nil")
			}
		})
	}
}
