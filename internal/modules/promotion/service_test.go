// README: Quick-select tests covering sponsored placement, the cap, and the popular radius.
package promotion

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventride/internal/modules/venue"
	"eventride/internal/types"
)

var (
	downtown   = types.Coordinate{Lat: 41.4993, Lng: -81.6944}
	willoughby = types.Coordinate{Lat: 41.64, Lng: -81.41}
	manhattan  = types.Coordinate{Lat: 40.7128, Lng: -74.0060}
)

func newDefaultService(t *testing.T, catalog *venue.Catalog) *Service {
	t.Helper()
	tables, err := DefaultTables(catalog)
	require.NoError(t, err)
	return NewService(tables)
}

func ids(got []PromoVenue) []string {
	out := make([]string, len(got))
	for i, p := range got {
		out[i] = p.ID
	}
	return out
}

func TestQuickSelect_Defaults(t *testing.T) {
	catalog := venue.DefaultCatalog()
	svc := newDefaultService(t, catalog)
	ctx := context.Background()

	tests := []struct {
		name      string
		category  venue.Category
		center    types.Coordinate
		want      []string
		sponsored int
	}{
		{
			name:      "concert downtown",
			category:  venue.CategoryConcert,
			center:    downtown,
			want:      []string{"blossom-music-center", "house-of-blues-cleveland", "jacobs-pavilion", "agora-theatre"},
			sponsored: 2,
		},
		{
			name:      "bar in willoughby",
			category:  venue.CategoryBar,
			center:    willoughby,
			want:      []string{"willoughby-brewing", "chagrin-river-ale-house", "wild-goose-tavern", "willoughby-vine-and-tap", "mentor-avenue-pub"},
			sponsored: 1,
		},
		{
			name:      "sponsored kept at any distance",
			category:  venue.CategorySports,
			center:    manhattan,
			want:      []string{"progressive-field"},
			sponsored: 1,
		},
		{
			name:     "no tables for category",
			category: venue.CategoryFood,
			center:   downtown,
			want:     []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.QuickSelect(ctx, tt.category, tt.center)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
			for i, p := range got {
				assert.Equal(t, i < tt.sponsored, p.Sponsored, "position %d", i)
				assert.Equal(t, p.Sponsored, p.Promotion != "", "position %d", i)
			}
		})
	}
}

func TestQuickSelect_NeverExceedsCap(t *testing.T) {
	svc := newDefaultService(t, venue.DefaultCatalog())
	centers := []types.Coordinate{downtown, willoughby, manhattan, {Lat: 41.1, Lng: -81.5}, {}}

	for _, cat := range venue.Categories {
		for _, c := range centers {
			got, err := svc.QuickSelect(context.Background(), cat, c)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(got), QuickSelectCap, "%s at %s", cat, c)

			seen := make(map[string]bool)
			for _, p := range got {
				assert.False(t, seen[p.ID], "%s repeated for %s", p.ID, cat)
				seen[p.ID] = true
			}
		}
	}
}

// barCatalog builds n bars spaced a hundredth of a degree apart northwards from
// downtown, so bar-0 is nearest.
func barCatalog(t *testing.T, n int) *venue.Catalog {
	t.Helper()
	venues := make([]venue.Venue, n)
	for i := range venues {
		venues[i] = venue.Venue{
			ID:         fmt.Sprintf("bar-%d", i),
			Name:       fmt.Sprintf("Bar %d", i),
			Coordinate: types.Coordinate{Lat: downtown.Lat + float64(i)*0.01, Lng: downtown.Lng},
			Category:   venue.CategoryBar,
		}
	}
	c, err := venue.NewCatalog(venues)
	require.NoError(t, err)
	return c
}

func TestQuickSelect_SponsoredFillsCap(t *testing.T) {
	catalog := barCatalog(t, 9)
	var sponsored []Sponsorship
	for i := 8; i >= 2; i-- {
		sponsored = append(sponsored, Sponsorship{VenueID: fmt.Sprintf("bar-%d", i), Promotion: "promo"})
	}
	tables, err := NewTables(catalog,
		map[venue.Category][]Sponsorship{venue.CategoryBar: sponsored},
		map[venue.Category][]string{venue.CategoryBar: {"bar-0", "bar-1"}},
	)
	require.NoError(t, err)

	got, err := NewService(tables).QuickSelect(context.Background(), venue.CategoryBar, downtown)
	require.NoError(t, err)
	assert.Equal(t, []string{"bar-8", "bar-7", "bar-6", "bar-5", "bar-4", "bar-3"}, ids(got))
	for _, p := range got {
		assert.True(t, p.Sponsored)
	}
}

func TestQuickSelect_NearbyTakesRemainingSlots(t *testing.T) {
	catalog := barCatalog(t, 9)
	tables, err := NewTables(catalog,
		map[venue.Category][]Sponsorship{venue.CategoryBar: {
			{VenueID: "bar-8", Promotion: "a"},
			{VenueID: "bar-3", Promotion: "b"},
			{VenueID: "bar-7", Promotion: "c"},
			{VenueID: "bar-6", Promotion: "d"},
		}},
		map[venue.Category][]string{venue.CategoryBar: {"bar-5", "bar-3", "bar-2", "bar-0", "bar-1"}},
	)
	require.NoError(t, err)

	got, err := NewService(tables).QuickSelect(context.Background(), venue.CategoryBar, downtown)
	require.NoError(t, err)
	assert.Equal(t, []string{"bar-8", "bar-3", "bar-7", "bar-6", "bar-0", "bar-1"}, ids(got))
	assert.False(t, got[4].Sponsored)
	assert.Zero(t, got[4].DistanceMiles)
}

func TestQuickSelect_PopularRadius(t *testing.T) {
	catalog, err := venue.NewCatalog([]venue.Venue{
		{ID: "near", Name: "Near", Coordinate: types.Coordinate{Lat: 41.6, Lng: -81.7}, Category: venue.CategoryArt},
		{ID: "far", Name: "Far", Coordinate: types.Coordinate{Lat: 42.5, Lng: -81.7}, Category: venue.CategoryArt},
	})
	require.NoError(t, err)
	tables, err := NewTables(catalog, nil, map[venue.Category][]string{venue.CategoryArt: {"far", "near"}})
	require.NoError(t, err)

	got, err := NewService(tables).QuickSelect(context.Background(), venue.CategoryArt, downtown)
	require.NoError(t, err)
	assert.Equal(t, []string{"near"}, ids(got))
}

func TestQuickSelect_InvalidInput(t *testing.T) {
	svc := newDefaultService(t, venue.DefaultCatalog())

	_, err := svc.QuickSelect(context.Background(), venue.Category("opera"), downtown)
	assert.ErrorIs(t, err, venue.ErrInvalidInput)

	_, err = svc.QuickSelect(context.Background(), venue.CategoryBar, types.Coordinate{Lat: -91})
	assert.ErrorIs(t, err, venue.ErrInvalidInput)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.QuickSelect(ctx, venue.CategoryBar, downtown)
	assert.ErrorIs(t, err, context.Canceled)
}
