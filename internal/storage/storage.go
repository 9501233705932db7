package storage

import (
	"context"
	"io"
)

// Storage defines the interface for evidence file operations
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader) error

	// Get retrieves a file from the given path
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a public URL for the file
	GetURL(ctx context.Context, path string) (string, error)

	// BasePath returns the root directory for static serving
	BasePath() string
}

// Config holds storage configuration
type Config struct {
	BasePath string // директория файлов
	BaseURL  string // публичный префикс URL
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(cfg Config) (Storage, error) {
	return NewLocalStorage(cfg)
}
