package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecap-org/ecap-directory/internal/apperr"
	"github.com/ecap-org/ecap-directory/internal/catalog/cache"
	"github.com/ecap-org/ecap-directory/internal/catalog/domain"
	projects "github.com/ecap-org/ecap-directory/internal/projects/domain"
	"github.com/ecap-org/ecap-directory/internal/storage/memory"
)

type fixture struct {
	store      *memory.Store
	mr         *miniredis.Miniredis
	countries  *CountryService
	industries *IndustryService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := cache.NewRedisCache(client, time.Minute)
	store := memory.New()
	return fixture{
		store:      store,
		mr:         mr,
		countries:  NewCountryService(store.Countries(), c),
		industries: NewIndustryService(store.Industries(), c),
	}
}

func kind(err error) apperr.Kind {
	return apperr.KindOf(err)
}

func TestCountry_CreateTrimsAndValidates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.countries.Create(ctx, domain.CountryFields{Slug: " uae ", NameEn: " UAE ", NameAr: "الإمارات"})
	require.NoError(t, err)
	assert.Equal(t, "uae", c.Slug)
	assert.Equal(t, "UAE", c.NameEn)
	assert.Equal(t, "الإمارات", c.NameAr)

	_, err = f.countries.Create(ctx, domain.CountryFields{Slug: "uae", NameEn: "Other"})
	assert.ErrorIs(t, err, domain.ErrCountrySlugTaken)

	_, err = f.countries.Create(ctx, domain.CountryFields{Slug: "x"})
	assert.Equal(t, apperr.KindValidation, kind(err))

	_, err = f.countries.Create(ctx, domain.CountryFields{Slug: "Not A Slug", NameEn: "X"})
	assert.Equal(t, apperr.KindValidation, kind(err))
}

func TestCountry_ListIsCachedAndInvalidated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.countries.Create(ctx, domain.CountryFields{Slug: "morocco", NameEn: "Morocco"})
	require.NoError(t, err)

	list, err := f.countries.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, f.mr.Exists("catalog:countries"))

	// writes behind the service's back are hidden by the cache
	_, err = f.store.Countries().Create(ctx, domain.CountryFields{Slug: "egypt", NameEn: "Egypt"})
	require.NoError(t, err)
	list, err = f.countries.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.countries.Create(ctx, domain.CountryFields{Slug: "tunisia", NameEn: "Tunisia"})
	require.NoError(t, err)
	assert.False(t, f.mr.Exists("catalog:countries"))

	list, err = f.countries.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestCountry_UpdateAndSlugConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.countries.Create(ctx, domain.CountryFields{Slug: "a", NameEn: "A"})
	require.NoError(t, err)
	_, err = f.countries.Create(ctx, domain.CountryFields{Slug: "b", NameEn: "B"})
	require.NoError(t, err)

	updated, err := f.countries.Update(ctx, a.ID, domain.CountryFields{Slug: "a", NameEn: "Alpha", NameFr: "Alpha FR"})
	require.NoError(t, err)
	assert.Equal(t, "Alpha", updated.NameEn)
	assert.Equal(t, "Alpha FR", updated.NameFr)

	_, err = f.countries.Update(ctx, a.ID, domain.CountryFields{Slug: "b", NameEn: "A"})
	assert.Equal(t, apperr.KindConflict, kind(err))

	_, err = f.countries.Update(ctx, "missing", domain.CountryFields{Slug: "c", NameEn: "C"})
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)
}

func TestCountry_DeleteBlockedByProjects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.countries.Create(ctx, domain.CountryFields{Slug: "uae", NameEn: "UAE"})
	require.NoError(t, err)
	ind, err := f.industries.Create(ctx, domain.IndustryFields{Slug: "tech", NameEn: "Tech"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		p := &projects.Project{NameEn: "P", DescEn: "D", CountryID: c.ID, IndustryID: ind.ID}
		require.NoError(t, f.store.Projects().Create(ctx, p))
	}

	err = f.countries.Delete(ctx, c.ID)
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindConflict, e.Kind)
	assert.Equal(t, 2, e.Blocking)

	err = f.industries.Delete(ctx, ind.ID)
	e, ok = apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 2, e.Blocking)

	assert.ErrorIs(t, f.countries.Delete(ctx, "missing"), domain.ErrCountryNotFound)
}

func TestCountry_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.countries.Create(ctx, domain.CountryFields{Slug: "uae", NameEn: "UAE"})
	require.NoError(t, err)
	_, err = f.countries.List(ctx)
	require.NoError(t, err)

	require.NoError(t, f.countries.Delete(ctx, c.ID))
	assert.False(t, f.mr.Exists("catalog:countries"))

	_, err = f.countries.Get(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)
}

func TestIndustry_Color(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ind, err := f.industries.Create(ctx, domain.IndustryFields{Slug: "tech", NameEn: "Tech"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultColor, ind.Color)

	ind, err = f.industries.Update(ctx, ind.ID, domain.IndustryFields{Slug: "tech", NameEn: "Tech", Color: " Blue "})
	require.NoError(t, err)
	assert.Equal(t, "blue", ind.Color)

	_, err = f.industries.Update(ctx, ind.ID, domain.IndustryFields{Slug: "tech", NameEn: "Tech", Color: "chartreuse"})
	assert.Equal(t, apperr.KindValidation, kind(err))

	_, err = f.industries.Create(ctx, domain.IndustryFields{Slug: "tech", NameEn: "Dup"})
	assert.ErrorIs(t, err, domain.ErrIndustrySlugTaken)
}

func TestNilCacheFallsBackToStore(t *testing.T) {
	store := memory.New()
	svc := NewIndustryService(store.Industries(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.IndustryFields{Slug: "energy", NameEn: "Energy", Color: "amber"})
	require.NoError(t, err)
	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
