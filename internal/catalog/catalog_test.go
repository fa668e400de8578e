package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedSampleData(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	restaurants := c.Restaurants()
	require.Len(t, restaurants, 4)
	assert.Equal(t, "Spice Garden", restaurants[0].Name)
	assert.Equal(t, Traditional, restaurants[0].Category)
	assert.Equal(t, 4.8, restaurants[0].Rating)
	assert.Equal(t, "$$$$", restaurants[3].PriceRange)

	assert.Len(t, c.Markets(), 2)

	locations := c.Locations()
	require.Len(t, locations, 6)
	assert.Equal(t, KindMarket, locations[2].Kind)
	assert.Equal(t, Position{X: 60, Y: 45}, locations[2].Position)
}

func TestAccessorsReturnCopies(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	rs := c.Restaurants()
	rs[0].Name = "Changed"
	rs[0].Specialties[0] = "Changed"
	again := c.Restaurants()
	assert.Equal(t, "Spice Garden", again[0].Name)
	assert.Equal(t, "Biryani", again[0].Specialties[0])

	loc, ok := c.Location(3)
	require.True(t, ok)
	loc.Certifications[0] = "Changed"
	loc2, _ := c.Location(3)
	assert.Equal(t, "Certified Organic Vendors", loc2.Certifications[0])

	_, ok = c.Location(99)
	assert.False(t, ok)
}

func TestMapStats(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	stats := c.MapStats()
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 4, stats.Restaurants)
	assert.Equal(t, 2, stats.Markets)
	assert.InDelta(t, 4.583, stats.AverageRating, 0.001)

	empty, err := Parse([]byte("restaurants: []\n"))
	require.NoError(t, err)
	assert.Equal(t, MapStats{}, empty.MapStats())
}

func TestParse_RejectsInvalidData(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "unknown category",
			doc:     "restaurants:\n  - {id: 1, name: A, category: Bakery, rating: 4}\n",
			wantErr: `unknown category "Bakery"`,
		},
		{
			name:    "rating above five",
			doc:     "restaurants:\n  - {id: 1, name: A, category: Healthy, rating: 5.5}\n",
			wantErr: "out of range",
		},
		{
			name:    "duplicate location id",
			doc:     "locations:\n  - {id: 1, kind: market, category: Market}\n  - {id: 1, kind: market, category: Market}\n",
			wantErr: "duplicate id",
		},
		{
			name:    "marker off the map",
			doc:     "locations:\n  - {id: 1, kind: market, category: Market, position: {x: 120, y: 5}}\n",
			wantErr: "position outside map",
		},
		{
			name:    "unknown kind",
			doc:     "locations:\n  - {id: 1, kind: truck, category: Market}\n",
			wantErr: `unknown kind "truck"`,
		},
		{
			name:    "malformed yaml",
			doc:     "restaurants: [",
			wantErr: "parse catalog",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory(" Street Food ")
	assert.True(t, ok)
	assert.Equal(t, StreetFood, c)

	_, ok = ParseCategory("street food")
	assert.False(t, ok)

	_, ok = ParseCategory("all")
	assert.False(t, ok)

	assert.Len(t, Categories(), 5)
	assert.NotContains(t, DiningCategories(), MarketStall)
}
