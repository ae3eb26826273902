package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Storage interface for public file uploads
type Storage interface {
	// Upload stores a file under key and returns its public URL
	Upload(ctx context.Context, key, contentType string, data io.Reader) (string, error)
}

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// StorageConfig holds configuration for storage
type StorageConfig struct {
	Type          StorageType
	LocalPath     string // For local storage
	PublicBaseURL string // For local storage public URLs
	S3Bucket      string // For S3 storage
	S3Region      string // For S3 storage
	AWSAccessKey  string
	AWSSecretKey  string
}

// allowedFolders are the upload folder prefixes the admin UI uses.
// Anything else lands in misc.
var allowedFolders = map[string]bool{
	"thumbnails": true,
	"videos":     true,
	"team":       true,
	"hero":       true,
	"misc":       true,
}

// NewStorageFromEnv creates a storage instance from environment variables
func NewStorageFromEnv() (Storage, error) {
	storageType := os.Getenv("STORAGE_TYPE")
	if storageType == "" {
		storageType = "local" // Default to local for development
	}

	switch StorageType(storageType) {
	case StorageTypeLocal:
		localPath := os.Getenv("STORAGE_LOCAL_PATH")
		if localPath == "" {
			localPath = "./storage/uploads"
		}
		baseURL := os.Getenv("PUBLIC_BASE_URL")
		if baseURL == "" {
			baseURL = "http://localhost:8080"
		}
		return NewLocalStorage(localPath, baseURL)

	case StorageTypeS3:
		cfg := StorageConfig{
			Type:         StorageTypeS3,
			S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
			S3Region:     os.Getenv("AWS_REGION"),
			AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		}
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1" // Default region
		}
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}
		return NewS3Storage(cfg)

	default:
		return nil, fmt.Errorf("unknown storage type: %s", storageType)
	}
}

// GenerateKey builds a pseudo-unique object key: the sanitized folder
// prefix plus a timestamp-random filename keeping the original extension.
func GenerateKey(folder, filename string) string {
	folder = strings.ToLower(strings.TrimSpace(folder))
	if !allowedFolders[folder] {
		folder = "misc"
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		ext = "bin"
	}

	return fmt.Sprintf("%s/%d-%s.%s", folder, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}
