package timeparse

import (
	"testing"

	"github.com/magiconair/properties/assert"
)

func TestMinutesOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"06:00", 360, true},
		{"23:59", 1439, true},
		{"00:00", 0, true},
		{"6:15 PM", 1095, true},
		{"09:30:00", 570, true},
		{"2026-09-01T18:20:00", 1100, true},
		{"not a time", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := MinutesOfDay(tt.in)
		assert.Equal(t, ok, tt.ok, tt.in)
		if ok {
			assert.Equal(t, got, tt.want, tt.in)
		}
	}
}

func TestBucketEdgesAreHalfOpen(t *testing.T) {
	// 06:00 belongs to the morning window, not to "Before 6 AM".
	assert.Equal(t, BucketBefore6AM.Contains(6*60), false)
	assert.Equal(t, BucketMorning.Contains(6*60), true)

	assert.Equal(t, BucketMorning.Contains(12*60), false)
	assert.Equal(t, BucketAfternoon.Contains(12*60), true)

	assert.Equal(t, BucketAfternoon.Contains(18*60), false)
	assert.Equal(t, BucketAfter6PM.Contains(18*60), true)

	assert.Equal(t, BucketBefore6AM.Contains(0), true)
	assert.Equal(t, BucketAfter6PM.Contains(24*60-1), true)
}

func TestBucketOf(t *testing.T) {
	assert.Equal(t, BucketOf(5*60), BucketBefore6AM)
	assert.Equal(t, BucketOf(10*60), BucketMorning)
	assert.Equal(t, BucketOf(15*60), BucketAfternoon)
	assert.Equal(t, BucketOf(20*60), BucketAfter6PM)
}

func TestUnknownBucketMatchesNothing(t *testing.T) {
	assert.Equal(t, Bucket("Red Eye").Contains(120), false)
}
