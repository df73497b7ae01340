package instagram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockPosts(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{limit: -1, want: 0},
		{limit: 0, want: 0},
		{limit: 1, want: 1},
		{limit: 6, want: 6},
		{limit: 9, want: 6},
	}

	for _, tt := range tests {
		posts := MockPosts(tt.limit)
		require.NotNil(t, posts)
		assert.Len(t, posts, tt.want, "limit %d", tt.limit)
	}
}

func TestMockPosts_Deterministic(t *testing.T) {
	first := MockPosts(6)
	first[0].Caption = "changed"

	second := MockPosts(6)
	assert.Equal(t, "Amazing sea view! 🌊 #Batumi #OrbiCity", second[0].Caption)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), second[0].Timestamp)
	assert.Equal(t, time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC), second[5].Timestamp)

	a, err := json.Marshal(MockPosts(6))
	require.NoError(t, err)
	b, err := json.Marshal(MockPosts(6))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestMockMetrics(t *testing.T) {
	m := MockMetrics()

	assert.Equal(t, 12543, m.Followers)
	assert.Equal(t, 856, m.Following)
	assert.Equal(t, 324, m.Posts)
	assert.Equal(t, 4.2, m.Engagement)
	assert.Equal(t, 45000, m.Reach)
	assert.Equal(t, 128000, m.Impressions)
	assert.Equal(t, 2340, m.ProfileViews)
	assert.Equal(t, 567, m.WebsiteClicks)
	assert.Equal(t, "2025-01-01T00:00:00Z", m.LastUpdated.Format(time.RFC3339))
}

func TestMockDemographics(t *testing.T) {
	d := MockDemographics()

	var total float64
	for _, a := range d.AgeRanges {
		total += a.Percentage
	}
	assert.Equal(t, float64(100), total)
	assert.Equal(t, float64(100), d.GenderSplit.Male+d.GenderSplit.Female+d.GenderSplit.Other)
	require.Len(t, d.TopLocations, 3)
	assert.Equal(t, "Tbilisi", d.TopLocations[0].City)

	d.AgeRanges[0].Range = "changed"
	assert.Equal(t, "18-24", MockDemographics().AgeRanges[0].Range)
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultPostsLimit, normalizeLimit(0))
	assert.Equal(t, DefaultPostsLimit, normalizeLimit(-4))
	assert.Equal(t, 25, normalizeLimit(25))
	assert.Equal(t, MaxPostsLimit, normalizeLimit(500))
}
