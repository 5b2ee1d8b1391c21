package service

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"
)

// StorageService uploads files to the hosted object storage buckets
// (meal photos, avatars) and resolves their public URLs.
type StorageService struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

func NewStorageService(baseURL, serviceKey string) *StorageService {
	return &StorageService{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload stores contents under bucket/path. Existing objects at the same
// path are overwritten.
func (s *StorageService) Upload(bucket, path string, contents []byte, contentType string) error {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, bucket, path)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(contents))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("storage upload failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("storage upload failed with status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// PublicURL returns the public download URL for an uploaded object
func (s *StorageService) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, bucket, path)
}
