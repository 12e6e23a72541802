package timeparse

import (
	"time"
)

// Bucket is one of the four time-of-day windows offered by the filter panel.
// Windows are half-open [start, end) on a 24-hour clock.
type Bucket string

const (
	BucketBefore6AM Bucket = "Before 6 AM"
	BucketMorning   Bucket = "6 AM - 12 PM"
	BucketAfternoon Bucket = "12 PM - 6 PM"
	BucketAfter6PM  Bucket = "After 6 PM"
)

var Buckets = []Bucket{BucketBefore6AM, BucketMorning, BucketAfternoon, BucketAfter6PM}

var bucketWindows = map[Bucket][2]int{
	BucketBefore6AM: {0, 6 * 60},
	BucketMorning:   {6 * 60, 12 * 60},
	BucketAfternoon: {12 * 60, 18 * 60},
	BucketAfter6PM:  {18 * 60, 24 * 60},
}

// Contains reports whether the minute-of-day falls inside the bucket window.
func (b Bucket) Contains(minute int) bool {
	w, ok := bucketWindows[b]
	if !ok {
		return false
	}
	return minute >= w[0] && minute < w[1]
}

// BucketOf classifies a minute-of-day.
func BucketOf(minute int) Bucket {
	for _, b := range Buckets {
		if b.Contains(minute) {
			return b
		}
	}
	return BucketAfter6PM
}

var displayFormats = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"03:04 PM",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// MinutesOfDay parses a display time string into minutes since midnight.
// Inventory records carry naive strings in a handful of shapes, so parsing
// walks a format ladder and takes the first hit.
func MinutesOfDay(s string) (int, bool) {
	for _, format := range displayFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}
