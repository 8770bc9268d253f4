package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/ecap-org/ecap-directory/internal/apperr"
	"github.com/ecap-org/ecap-directory/internal/logging"
	"github.com/ecap-org/ecap-directory/internal/uploads/domain"
)

const defaultExt = ".png"

type UploadService struct {
	store      domain.BlobStore
	publicPath string
	maxBytes   int64
	now        func() time.Time
}

// NewUploadService stores accepted files in store and reports them under
// publicPath. maxBytes <= 0 means domain.DefaultMaxBytes.
func NewUploadService(store domain.BlobStore, publicPath string, maxBytes int64) *UploadService {
	if maxBytes <= 0 {
		maxBytes = domain.DefaultMaxBytes
	}
	return &UploadService{
		store:      store,
		publicPath: "/" + strings.Trim(publicPath, "/"),
		maxBytes:   maxBytes,
		now:        time.Now,
	}
}

func (s *UploadService) MaxBytes() int64 {
	return s.maxBytes
}

// Upload validates f and stores it under a fresh name. Both the declared type
// and the sniffed content must be an allowed image type.
func (s *UploadService) Upload(ctx context.Context, f domain.File) (*domain.Result, error) {
	if f.Body == nil {
		return nil, domain.ErrNoFile
	}
	if !allowed(baseType(f.ContentType)) {
		return nil, domain.ErrInvalidType
	}
	if f.Size > s.maxBytes {
		return nil, s.TooLargeError()
	}

	data, err := io.ReadAll(io.LimitReader(f.Body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, s.TooLargeError()
	}
	if len(data) == 0 {
		return nil, domain.ErrNoFile
	}

	sniffed := mimetype.Detect(data)
	ext, ok := sniffedExt(baseType(f.ContentType), sniffed, data)
	if !ok {
		logging.New(ctx).Warnf("uploads.upload", "declared=%s sniffed=%s rejected", f.ContentType, sniffed.String())
		return nil, domain.ErrInvalidType
	}

	name := s.filename(f.Name, ext)
	if err := s.store.Put(ctx, name, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	logging.New(ctx).Infof("uploads.upload", "name=%s bytes=%d type=%s", name, len(data), sniffed.String())
	return &domain.Result{URL: path.Join(s.publicPath, name)}, nil
}

// TooLargeError names the configured limit.
func (s *UploadService) TooLargeError() error {
	if s.maxBytes == domain.DefaultMaxBytes {
		return domain.ErrTooLarge
	}
	return apperr.Validation("file too large (max %d bytes)", s.maxBytes)
}

// imageExts are the client extensions kept as-is. Anything else is replaced
// by the extension of the sniffed type.
var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".svg": true, ".gif": true,
}

// filename is "<unix millis>-<8 hex><ext>". The client name only contributes
// its extension, reduced to lowercase alphanumerics.
func (s *UploadService) filename(clientName, sniffedExt string) string {
	ext := cleanExt(filepath.Ext(clientName))
	if !imageExts[ext] {
		ext = cleanExt(sniffedExt)
	}
	if ext == "" {
		ext = defaultExt
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), suffix, ext)
}

func cleanExt(ext string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimPrefix(ext, ".")) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "." + b.String()
}

func baseType(contentType string) string {
	t, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(t))
}

func allowed(t string) bool {
	for _, a := range domain.AllowedTypes {
		if a == t {
			return true
		}
	}
	return false
}

const svgType = "image/svg+xml"

// sniffedExt reports whether the content matches an allowed type and the
// extension to name it by. Detection only looks at the head of the file, so an
// SVG behind a long XML prolog or comment sniffs as text; a declared SVG is
// accepted in that case when the body has an <svg element.
func sniffedExt(declared string, m *mimetype.MIME, data []byte) (string, bool) {
	for _, a := range domain.AllowedTypes {
		if m.Is(a) {
			return m.Extension(), true
		}
	}
	if declared == svgType && isText(m) && bytes.Contains(data, []byte("<svg")) {
		return ".svg", true
	}
	return "", false
}

func isText(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
