// Package storage keeps record images in S3-compatible object storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

// PutObjectOptions describe an upload. Size is -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key  string
	Size int64
	ETag string
}

// Storage holds record images. Reads go through presigned links.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a link valid for expiry that needs no credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// imageExts maps the accepted image content types to file extensions.
var imageExts = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ImageExt returns the extension for an accepted image content type.
func ImageExt(contentType string) (string, bool) {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	ext, ok := imageExts[ct]
	return ext, ok
}

// ImageKey builds the object key of an image owned by a record, e.g.
// "assets/<id>/<unix-nanos>.jpg". The timestamp keeps replaced images apart.
func ImageKey(kind, id, ext string, now time.Time) string {
	return path.Join(kind, id, fmt.Sprintf("%d%s", now.UnixNano(), ext))
}
