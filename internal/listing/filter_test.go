package listing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/platter/internal/catalog"
)

type item struct {
	id       int
	category catalog.Category
	rating   float64
}

func (i item) ListingCategory() catalog.Category { return i.category }
func (i item) ListingRating() float64            { return i.rating }

func ids(items []item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.id
	}
	return out
}

var sample = []item{
	{1, catalog.Traditional, 4.8},
	{2, catalog.Healthy, 4.6},
	{3, catalog.StreetFood, 4.4},
	{4, catalog.FineDining, 4.9},
	{5, catalog.Traditional, 3.4},
	{6, catalog.MarketStall, 4.0},
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		entities []item
		criteria Criteria
		want     []int
	}{
		{
			name:     "rating bucket keeps order",
			entities: sample[:3],
			criteria: Criteria{Category: All, MinRating: "4.5+"},
			want:     []int{1, 2},
		},
		{
			name:     "category only",
			entities: sample,
			criteria: Criteria{Category: "Traditional", MinRating: All},
			want:     []int{1, 5},
		},
		{
			name:     "category and rating",
			entities: sample,
			criteria: Criteria{Category: "Traditional", MinRating: "3.5+"},
			want:     []int{1},
		},
		{
			name:     "4.0+ includes exact boundary",
			entities: sample,
			criteria: Criteria{Category: All, MinRating: "4.0+"},
			want:     []int{1, 2, 3, 4, 6},
		},
		{
			name:     "fine dining above 4.5",
			entities: sample,
			criteria: Criteria{Category: "Fine Dining", MinRating: "4.5+"},
			want:     []int{4},
		},
		{
			name:     "unknown category passes through",
			entities: sample,
			criteria: Criteria{Category: "Bakery", MinRating: All},
			want:     []int{1, 2, 3, 4, 5, 6},
		},
		{
			name:     "unknown rating passes through",
			entities: sample,
			criteria: Criteria{Category: "Healthy", MinRating: "5 stars"},
			want:     []int{2},
		},
		{
			name:     "empty input",
			entities: nil,
			criteria: Criteria{Category: "Healthy", MinRating: "4.5+"},
			want:     []int{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(tt.entities, tt.criteria))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Filter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_AllIsIdentity(t *testing.T) {
	got := Filter(sample, AllCriteria())
	require.Equal(t, sample, got)
	assert.Equal(t, sample, Filter(sample))
	assert.True(t, AllCriteria().IsAll())
	assert.True(t, Criteria{}.IsAll())
}

func TestFilter_DoesNotShareInput(t *testing.T) {
	input := append([]item(nil), sample...)
	got := Filter(input, AllCriteria())
	got[0].rating = 0
	assert.Equal(t, 4.8, input[0].rating)
}

func TestFilter_ThresholdIsExact(t *testing.T) {
	entities := []item{{1, catalog.Healthy, 4.5}, {2, catalog.Healthy, 4.4999}}
	got := ids(Filter(entities, Criteria{Category: All, MinRating: "4.5+"}))
	assert.Equal(t, []int{1}, got)
}

func TestFilter_Composes(t *testing.T) {
	pairs := [][2]Criteria{
		{{Category: "Traditional", MinRating: All}, {Category: All, MinRating: "4.5+"}},
		{{Category: All, MinRating: "4.0+"}, {Category: "Market", MinRating: All}},
		{{Category: "Healthy", MinRating: All}, {Category: "Traditional", MinRating: All}},
	}
	for _, p := range pairs {
		nested := Filter(Filter(sample, p[0]), p[1])
		combined := Filter(sample, p[0], p[1])
		if diff := cmp.Diff(ids(nested), ids(combined)); diff != "" {
			t.Fatalf("composition mismatch for %v then %v:\n%s", p[0], p[1], diff)
		}
	}
}

func TestFilter_OutputIsSubsequence(t *testing.T) {
	for _, cat := range append([]string{All, "Bakery"}, "Traditional", "Healthy", "Market") {
		for _, rating := range append([]string{All}, RatingLabels()...) {
			got := Filter(sample, Criteria{Category: cat, MinRating: rating})
			j := 0
			for _, g := range got {
				for j < len(sample) && sample[j] != g {
					j++
				}
				require.Less(t, j, len(sample), "%s/%s produced an element out of order", cat, rating)
				j++
			}
		}
	}
}

func TestCriteria_Active(t *testing.T) {
	c := Criteria{Category: " all ", MinRating: "3.5+"}
	_, ok := c.ActiveCategory()
	assert.False(t, ok)
	floor, ok := c.ActiveRating()
	assert.True(t, ok)
	assert.Equal(t, 3.5, floor)
	assert.Equal(t, "category=all rating=3.5+", c.String())

	cat, ok := Criteria{Category: "Street Food"}.ActiveCategory()
	assert.True(t, ok)
	assert.Equal(t, catalog.StreetFood, cat)
}

func TestWorksWithCatalogTypes(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	restaurants := Filter(c.Restaurants(), Criteria{Category: All, MinRating: "4.5+"})
	names := make([]string, len(restaurants))
	for i, r := range restaurants {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"Spice Garden", "Fresh Market Cafe", "Heritage Kitchen"}, names)

	markets := Filter(c.Locations(), Criteria{Category: "Market", MinRating: All})
	assert.Len(t, markets, 2)
}
