package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"erpapi/internal/storage"
)

// ImageUpload is a photo received from a client.
type ImageUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// imageStore keeps record photos in object storage.
type imageStore struct {
	store  storage.Storage
	expiry time.Duration
	logger *slog.Logger
}

func newImageStore(store storage.Storage, logger *slog.Logger) *imageStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &imageStore{store: store, expiry: 15 * time.Minute, logger: logger}
}

// replace uploads img under kind/id, records the key through setKey and then
// removes oldKey. If setKey fails the upload is deleted again.
func (s *imageStore) replace(ctx context.Context, kind, id, oldKey string, img ImageUpload, setKey func(ctx context.Context, id, key string) error) (string, error) {
	if img.Reader == nil {
		return "", ErrReaderNil
	}
	if s.store == nil {
		return "", ErrUnavailable
	}
	ext, ok := storage.ImageExt(img.ContentType)
	if !ok {
		return "", ErrUnsupportedImage
	}

	key := storage.ImageKey(kind, id, ext, nowUTC())
	if _, err := s.store.Put(ctx, key, img.Reader, storage.PutObjectOptions{
		Size:        img.Size,
		ContentType: img.ContentType,
		Metadata:    map[string]string{"original-filename": img.Filename},
	}); err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}

	if err := setKey(ctx, id, key); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return "", fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return "", fmt.Errorf("db save failed: %w", mapRepoErr(err))
	}

	if oldKey != "" && oldKey != key {
		if err := s.store.Delete(ctx, oldKey); err != nil {
			s.logger.WarnContext(ctx, "old_image_delete_failed", "key", oldKey, "error", err)
		}
	}
	return key, nil
}

// url returns a time-limited download link for key.
func (s *imageStore) url(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrNoImage
	}
	if s.store == nil {
		return "", ErrUnavailable
	}
	return s.store.PresignGet(ctx, key, s.expiry)
}
