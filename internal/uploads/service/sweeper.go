package service

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ecap-org/ecap-directory/internal/logging"
	"github.com/ecap-org/ecap-directory/internal/uploads/domain"
)

// LogoLister reports every logo URL a project still references.
type LogoLister interface {
	LogoURLs(ctx context.Context) ([]string, error)
}

// Sweeper deletes stored uploads that no project references once they are
// older than the grace period. The grace period covers the gap between an
// upload and the project save that references it.
type Sweeper struct {
	store      domain.BlobStore
	logos      LogoLister
	publicPath string
	grace      time.Duration
	now        func() time.Time
}

func NewSweeper(store domain.BlobStore, logos LogoLister, publicPath string, grace time.Duration) *Sweeper {
	return &Sweeper{
		store:      store,
		logos:      logos,
		publicPath: "/" + strings.Trim(publicPath, "/") + "/",
		grace:      grace,
		now:        time.Now,
	}
}

// Sweep runs one pass and returns how many files were removed.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	urls, err := s.logos.LogoURLs(ctx)
	if err != nil {
		return 0, err
	}
	inUse := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		if strings.HasPrefix(u, s.publicPath) {
			inUse[path.Base(u)] = struct{}{}
		}
	}

	blobs, err := s.store.List(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := s.now().Add(-s.grace)
	removed := 0
	for _, b := range blobs {
		if _, ok := inUse[b.Name]; ok || b.ModTime.After(cutoff) {
			continue
		}
		if err := s.store.Delete(ctx, b.Name); err != nil {
			logging.New(ctx).Warnf("uploads.sweep", "delete %s: %v", b.Name, err)
			continue
		}
		removed++
	}
	return removed, nil
}

// Start schedules Sweep on spec (six fields, seconds first, or a descriptor
// such as "@daily"). The caller stops the returned cron on shutdown.
func (s *Sweeper) Start(spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())
	_, err := c.AddFunc(spec, func() {
		ctx := logging.WithRequestID(context.Background(), "upload-sweeper")
		n, err := s.Sweep(ctx)
		if err != nil {
			logging.New(ctx).Error("uploads.sweep", err)
			return
		}
		logging.New(ctx).Infof("uploads.sweep", "removed=%d", n)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
