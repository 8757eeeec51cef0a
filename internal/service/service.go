// Package service holds the use cases behind each HTTP resource: required
// field checks, id and number generation, and calls into the stores.
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"erpapi/internal/repository"
)

var (
	ErrIDRequired         = errors.New("id is required")
	ErrInvalidID          = errors.New("invalid id")
	ErrNotFound           = errors.New("record not found")
	ErrConflict           = errors.New("record already exists")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrCaptchaFailed      = errors.New("captcha verification failed")
	ErrUnavailable        = errors.New("integration not configured")
	ErrReaderNil          = errors.New("reader is nil")
	ErrUnsupportedImage   = errors.New("unsupported image type")
	ErrNoImage            = errors.New("record has no image")
)

// ValidationError lists the request fields that are missing or invalid.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid or missing fields: " + strings.Join(e.Fields, ", ")
}

type field struct {
	name  string
	value string
}

// requireFields returns a *ValidationError naming every blank field.
func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// rejectSet fails when any of fields carries a value the operation cannot write.
func rejectSet(fields ...field) error {
	var set []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) != "" {
			set = append(set, f.name)
		}
	}
	if len(set) > 0 {
		return &ValidationError{Fields: set}
	}
	return nil
}

func invalid(fields ...string) error {
	return &ValidationError{Fields: fields}
}

// mapRepoErr converts repository errors into service errors.
func mapRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrConflict
	default:
		return err
	}
}

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ListResult is the service-level DTO for paginated listings.
type ListResult[T any] struct {
	Items  []T `json:"data"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func pageQuery(limit, offset int) repository.PageQuery {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return repository.PageQuery{Limit: limit, Offset: offset}
}

func toListResult[T any](res *repository.PageResult[T], pq repository.PageQuery) *ListResult[T] {
	items := res.Items
	if items == nil {
		items = []T{}
	}
	return &ListResult[T]{Items: items, Total: res.Total, Limit: pq.Limit, Offset: pq.Offset}
}

// newID returns a random UUID string.
func newID() string {
	return uuid.NewString()
}

// newNumber builds a human-readable record number such as ACT-20260102-1A2B3C.
func newNumber(prefix string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), suffix)
}

// nowUTC is replaced in tests.
var nowUTC = func() time.Time { return time.Now().UTC() }

// merge overwrites dst with src when src is not blank.
func merge(dst *string, src string) {
	if strings.TrimSpace(src) != "" {
		*dst = src
	}
}
