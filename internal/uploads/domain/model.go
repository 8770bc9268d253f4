package domain

import (
	"context"
	"io"
	"time"

	"github.com/ecap-org/ecap-directory/internal/apperr"
)

// DefaultMaxBytes is the largest accepted upload.
const DefaultMaxBytes = 5 << 20

// AllowedTypes are the image types accepted as logos.
var AllowedTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/svg+xml",
	"image/gif",
}

// File is an incoming upload. Name and ContentType are client supplied.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type Result struct {
	URL string `json:"url"`
}

// Blob is a stored upload.
type Blob struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// BlobStore persists uploaded bytes under server-chosen names.
type BlobStore interface {
	Put(ctx context.Context, name string, r io.Reader) error
	List(ctx context.Context) ([]Blob, error)
	Delete(ctx context.Context, name string) error
}

var (
	ErrNoFile      = apperr.Validation("no file provided")
	ErrInvalidType = apperr.Validation("invalid file type")
	ErrTooLarge    = apperr.Validation("file too large (max 5MB)")
)
