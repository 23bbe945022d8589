package dto

import "time"

// StatusBoardEntry is one user's row on the campus status board. Exactly one
// of CurrentClass/NextClass may be set depending on which bucket holds the
// entry.
type StatusBoardEntry struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Major        string `json:"major"`
	Avatar       string `json:"avatar,omitempty"`
	ManualStatus string `json:"manual_status"`
	CurrentClass string `json:"current_class,omitempty"`
	NextClass    string `json:"next_class,omitempty"`
}

// StatusBoardResponse partitions the whole population as of Now. Every user
// lands in exactly one bucket.
type StatusBoardResponse struct {
	Now     time.Time          `json:"now"`
	InClass []StatusBoardEntry `json:"in_class"`
	Free    []StatusBoardEntry `json:"free"`
}
