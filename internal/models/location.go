package models

// Location maps a building code used in schedule entries to its full name.
type Location struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
