// README: Venue paging tests (ordering, page concatenation, validation, discovery).
package venue

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventride/internal/maps"
	"eventride/internal/types"
)

var willoughby = types.Coordinate{Lat: 41.64, Lng: -81.41}

func TestFetchPage_WilloughbyBarCluster(t *testing.T) {
	svc := NewService(DefaultCatalog(), nil)

	got, err := svc.FetchPage(context.Background(), PageQuery{Center: willoughby, RadiusMiles: 5, Page: 0, Limit: 10})
	require.NoError(t, err)
	require.LessOrEqual(t, len(got), 10)

	ids := make([]string, len(got))
	for i, r := range got {
		ids[i] = r.ID
		assert.LessOrEqual(t, r.DistanceMiles, 5.0)
		assert.Len(t, r.Geohash, geohashPrecision)
	}
	assert.Equal(t, []string{
		"willoughby-brewing",
		"chagrin-river-ale-house",
		"wild-goose-tavern",
		"willoughby-vine-and-tap",
		"willoughby-hills-lounge",
		"mentor-avenue-pub",
	}, ids)
}

func TestFetchPage_SortedNonDecreasing(t *testing.T) {
	svc := NewService(DefaultCatalog(), nil)
	downtown := types.Coordinate{Lat: 41.4993, Lng: -81.6944}

	got, err := svc.FetchPage(context.Background(), PageQuery{Center: downtown, RadiusMiles: 100, Page: 0, Limit: 100})
	require.NoError(t, err)
	require.Len(t, got, DefaultCatalog().Len())

	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].DistanceMiles, got[i].DistanceMiles, "position %d", i)
	}
}

func TestFetchPage_ConcatenatedPagesMatchFullSet(t *testing.T) {
	svc := NewService(DefaultCatalog(), nil)
	ctx := context.Background()
	center := types.Coordinate{Lat: 41.45, Lng: -81.6}

	for _, limit := range []int{1, 2, 3, 4, 7, 50} {
		full, err := svc.FetchPage(ctx, PageQuery{Center: center, RadiusMiles: 40, Page: 0, Limit: 1000})
		require.NoError(t, err)

		var all []Result
		for page := 0; ; page++ {
			got, err := svc.FetchPage(ctx, PageQuery{Center: center, RadiusMiles: 40, Page: page, Limit: limit})
			require.NoError(t, err)
			all = append(all, got...)
			if len(got) < limit {
				break
			}
			require.Less(t, page, 1000, "paging did not terminate")
		}

		require.Len(t, all, len(full), "limit %d", limit)
		seen := make(map[string]bool)
		for i := range full {
			assert.Equal(t, full[i].ID, all[i].ID, "limit %d position %d", limit, i)
			assert.False(t, seen[all[i].ID], "duplicate %s", all[i].ID)
			seen[all[i].ID] = true
		}
	}
}

func TestFetchPage_CategoryFilter(t *testing.T) {
	svc := NewService(DefaultCatalog(), nil)
	concert := CategoryConcert
	downtown := types.Coordinate{Lat: 41.4993, Lng: -81.6944}

	got, err := svc.FetchPage(context.Background(), PageQuery{Center: downtown, Category: &concert, RadiusMiles: 50, Page: 0, Limit: 20})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, r := range got {
		assert.Equal(t, CategoryConcert, r.Category)
	}
	assert.Equal(t, "house-of-blues-cleveland", got[0].ID)
	assert.Equal(t, "blossom-music-center", got[len(got)-1].ID)
}

func TestFetchPage_PastTheEnd(t *testing.T) {
	svc := NewService(DefaultCatalog(), nil)

	got, err := svc.FetchPage(context.Background(), PageQuery{Center: willoughby, RadiusMiles: 5, Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	huge, err := svc.FetchPage(context.Background(), PageQuery{Center: willoughby, RadiusMiles: 5, Page: math.MaxInt / 2, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, huge)
}

func TestFetchPage_ZeroRadius(t *testing.T) {
	svc := NewService(DefaultCatalog(), nil)
	pf := types.Coordinate{Lat: 41.4962, Lng: -81.6852}

	got, err := svc.FetchPage(context.Background(), PageQuery{Center: pf, RadiusMiles: 0, Page: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "progressive-field", got[0].ID)
	assert.Zero(t, got[0].DistanceMiles)

	empty, err := svc.FetchPage(context.Background(), PageQuery{Center: willoughby, RadiusMiles: 0, Page: 0, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFetchPage_TiesKeepCatalogOrder(t *testing.T) {
	spot := types.Coordinate{Lat: 41.5, Lng: -81.7}
	catalog, err := NewCatalog([]Venue{
		{ID: "far", Name: "Far", Coordinate: types.Coordinate{Lat: 41.6, Lng: -81.7}, Category: CategoryBar},
		{ID: "b", Name: "B", Coordinate: spot, Category: CategoryBar},
		{ID: "a", Name: "A", Coordinate: spot, Category: CategoryBar},
		{ID: "c", Name: "C", Coordinate: spot, Category: CategoryBar},
	})
	require.NoError(t, err)

	got, err := NewService(catalog, nil).FetchPage(context.Background(), PageQuery{Center: spot, RadiusMiles: 50, Page: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"b", "a", "c", "far"}, []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
}

func TestFetchPage_InvalidInput(t *testing.T) {
	svc := NewService(DefaultCatalog(), nil)
	unknown := Category("opera")

	tests := []struct {
		name string
		q    PageQuery
	}{
		{name: "negative page", q: PageQuery{Center: willoughby, RadiusMiles: 5, Page: -1, Limit: 10}},
		{name: "zero limit", q: PageQuery{Center: willoughby, RadiusMiles: 5, Page: 0, Limit: 0}},
		{name: "negative radius", q: PageQuery{Center: willoughby, RadiusMiles: -1, Page: 0, Limit: 10}},
		{name: "NaN radius", q: PageQuery{Center: willoughby, RadiusMiles: math.NaN(), Page: 0, Limit: 10}},
		{name: "center out of range", q: PageQuery{Center: types.Coordinate{Lat: 120}, RadiusMiles: 5, Page: 0, Limit: 10}},
		{name: "unknown category", q: PageQuery{Center: willoughby, Category: &unknown, RadiusMiles: 5, Page: 0, Limit: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.FetchPage(context.Background(), tt.q)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestFetchPage_CancelledContext(t *testing.T) {
	svc := NewService(DefaultCatalog(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.FetchPage(ctx, PageQuery{Center: willoughby, RadiusMiles: 5, Page: 0, Limit: 10})
	assert.ErrorIs(t, err, context.Canceled)
}

type stubPlaces struct {
	places  []maps.Place
	err     error
	keyword string
}

func (s *stubPlaces) SearchNearby(_ context.Context, _ types.Coordinate, keyword string) ([]maps.Place, error) {
	s.keyword = keyword
	return s.places, s.err
}

func TestDiscover(t *testing.T) {
	places := &stubPlaces{places: []maps.Place{
		{Name: "Far Lounge", PlaceID: "far", Coordinate: types.Coordinate{Lat: 41.70, Lng: -81.41}},
		{Name: "willoughby brewing company", PlaceID: "dup", Coordinate: willoughby},
		{Name: "Near Bar", PlaceID: "near", Address: "1 Erie St", Coordinate: types.Coordinate{Lat: 41.641, Lng: -81.41}},
		{Name: "Broken", PlaceID: "broken", Coordinate: types.Coordinate{Lat: 200}},
	}}
	svc := NewService(DefaultCatalog(), places)

	got, err := svc.Discover(context.Background(), willoughby, CategoryBar)
	require.NoError(t, err)
	assert.Equal(t, "bar", places.keyword)
	require.Len(t, got, 2)
	assert.Equal(t, "places:near", got[0].ID)
	assert.Equal(t, "places:far", got[1].ID)
	assert.Equal(t, CategoryBar, got[0].Category)
}

func TestDiscover_Errors(t *testing.T) {
	_, err := NewService(DefaultCatalog(), nil).Discover(context.Background(), willoughby, CategoryBar)
	assert.ErrorIs(t, err, ErrDiscoveryDisabled)

	boom := errors.New("quota")
	svc := NewService(DefaultCatalog(), &stubPlaces{err: boom})
	_, err = svc.Discover(context.Background(), willoughby, CategoryBar)
	assert.ErrorIs(t, err, boom)

	_, err = svc.Discover(context.Background(), willoughby, Category("opera"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
