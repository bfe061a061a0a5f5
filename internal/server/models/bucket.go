package models

import "time"

// FocusBucket is one day of summed focus duration. Buckets exist only for
// days with at least one session: the series is sparse, never zero-filled.
type FocusBucket struct {
	Date     time.Time
	Duration int
}

// TaskCountBucket is one day of counted tasks (created or completed,
// depending on the query that produced it).
type TaskCountBucket struct {
	Date  time.Time
	Count int
}
