package models

import "time"

// MinFocusDuration is the shortest focus session worth recording, in seconds.
const MinFocusDuration = 60

// FocusSession is one logged block of focus time. The log is append-only:
// sessions are created once and never mutated or deleted.
type FocusSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Duration  int       `json:"duration"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}
