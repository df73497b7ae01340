package shape

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := map[string]string{
		"Followers":       "followers",
		"Follower Count":  "followercount",
		"follower_count":  "followercount",
		"Engagement (%)":  "engagement",
		"  Profile-Views": "profileviews",
		"%%":              "",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeKey(in), in)
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		in   interface{}
		want float64
		ok   bool
	}{
		{in: float64(12), want: 12, ok: true},
		{in: "12,543", want: 12543, ok: true},
		{in: "4.2%", want: 4.2, ok: true},
		{in: " 1 000 ", want: 1000, ok: true},
		{in: "-3", want: -3, ok: true},
		{in: map[string]interface{}{"value": "7"}, want: 7, ok: true},
		{in: "", ok: false},
		{in: "n/a", ok: false},
		{in: nil, ok: false},
		{in: true, ok: false},
		{in: []interface{}{1}, ok: false},
	}

	for _, tt := range tests {
		got, ok := ToFloat(tt.in)
		assert.Equal(t, tt.ok, ok, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   interface{}
		want time.Time
		ok   bool
	}{
		{in: "2025-01-02T10:00:00Z", want: time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC), ok: true},
		{in: "2025-01-02T10:00:00+04:00", want: time.Date(2025, 1, 2, 6, 0, 0, 0, time.UTC), ok: true},
		{in: "2025-01-02 10:00:00", want: time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC), ok: true},
		{in: "2025-01-02", want: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), ok: true},
		{in: "31/12/2024", want: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), ok: true},
		{in: float64(1735689600), want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{in: "1735689600", want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{in: float64(45658), want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{in: "45658.5", want: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), ok: true},
		{in: map[string]interface{}{"value": float64(45717)}, want: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{in: "yesterday", ok: false},
		{in: nil, ok: false},
		{in: float64(-1), ok: false},
	}

	for _, tt := range tests {
		got, ok := ParseTimestamp(tt.in)
		assert.Equal(t, tt.ok, ok, "%v", tt.in)
		if tt.ok {
			assert.True(t, tt.want.Equal(got), "%v: got %s", tt.in, got)
		}
	}
}

func TestToCount(t *testing.T) {
	assert.Equal(t, 3000000000, toCount("3,000,000,000"))
	assert.Equal(t, 12543, toCount(float64(12542.6)))
	assert.Equal(t, math.MaxInt, toCount(float64(1e30)))
	assert.Equal(t, 0, toCount("-7"))
	assert.Equal(t, 0, toCount("n/a"))
}

func TestNormalizeMediaType(t *testing.T) {
	assert.Equal(t, "VIDEO", string(NormalizeMediaType("reels")))
	assert.Equal(t, "VIDEO", string(NormalizeMediaType("VIDEO")))
	assert.Equal(t, "CAROUSEL", string(NormalizeMediaType("CAROUSEL_ALBUM")))
	assert.Equal(t, "IMAGE", string(NormalizeMediaType("")))
	assert.Equal(t, "IMAGE", string(NormalizeMediaType("story")))
}
