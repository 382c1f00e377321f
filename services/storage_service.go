package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DefaultBucket is where tour gallery uploads land.
const DefaultBucket = "tour-images"

// StorageService is a local-disk stand-in for the object store: files live
// under uploads/{bucket}/{path} and are served back from /uploads.
type StorageService struct {
	Root    string // filesystem root, default "uploads"
	BaseURL string // public prefix, default "/uploads"
}

func NewStorageService() *StorageService {
	root := strings.TrimSpace(os.Getenv("UPLOADS_DIR"))
	if root == "" {
		root = "uploads"
	}
	base := strings.TrimSpace(os.Getenv("UPLOADS_BASE_URL"))
	if base == "" {
		base = "/uploads"
	}
	return &StorageService{Root: root, BaseURL: base}
}

// ObjectPath builds the storage path for an upload: {tourID}/{name}.{ext}
// when a tour id is known, else {name}.{ext} at the bucket root.
func (s *StorageService) ObjectPath(tourID, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := strings.Split(uuid.NewString(), "-")[0] + strings.Split(uuid.NewString(), "-")[1]
	if tourID != "" {
		return tourID + "/" + name + ext
	}
	return name + ext
}

// Upload writes data under the bucket and returns the public URL.
func (s *StorageService) Upload(bucket, path string, data []byte) (string, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}

	full := filepath.Join(s.Root, bucket, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return s.PublicURL(bucket, path), nil
}

// UploadBase64 decodes a base64 payload (with or without a data URL prefix)
// and stores it like Upload.
func (s *StorageService) UploadBase64(bucket, path, b64 string) (string, error) {
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}
	return s.Upload(bucket, path, data)
}

// PublicURL derives the serving URL for a stored object.
func (s *StorageService) PublicURL(bucket, path string) string {
	if bucket == "" {
		bucket = DefaultBucket
	}
	return s.BaseURL + "/" + bucket + "/" + path
}
