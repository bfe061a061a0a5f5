package models

import "time"

// DefaultNoteColor is applied when a note is created without a color.
const DefaultNoteColor = "#ffeb3b"

// Note is a sticky note. Same ownership rules as Task; notes support
// create, list and delete only.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}
