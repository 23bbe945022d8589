package models

import (
	"strings"
	"time"
)

// StatusTag is a self-reported availability tag from the closed enumeration.
// Anything outside the six values is rejected at the HTTP boundary.
type StatusTag string

const (
	StatusStudying StatusTag = "studying"
	StatusFree     StatusTag = "free"
	StatusHelp     StatusTag = "help"
	StatusBusy     StatusTag = "busy"
	StatusTired    StatusTag = "tired"
	StatusSocial   StatusTag = "social"
)

// AllStatusTags lists the closed enumeration in display order.
var AllStatusTags = []StatusTag{
	StatusStudying,
	StatusFree,
	StatusHelp,
	StatusBusy,
	StatusTired,
	StatusSocial,
}

// ParseStatusTag maps raw input onto the enum; unknown values report ok=false.
func ParseStatusTag(raw string) (StatusTag, bool) {
	tag := StatusTag(strings.ToLower(strings.TrimSpace(raw)))
	return tag, tag.Valid()
}

// Valid reports whether the tag belongs to the closed enumeration.
func (s StatusTag) Valid() bool {
	switch s {
	case StatusStudying, StatusFree, StatusHelp, StatusBusy, StatusTired, StatusSocial:
		return true
	}
	return false
}

// UserStatus is the single live status record for a user. Absence of a
// record is read as StatusFree everywhere.
type UserStatus struct {
	UserID    string    `json:"user_id"`
	Status    StatusTag `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PreferenceLevel grades social or study appetite derived from a status tag.
type PreferenceLevel string

const (
	PreferenceHigh    PreferenceLevel = "high"
	PreferenceLow     PreferenceLevel = "low"
	PreferenceNeutral PreferenceLevel = "neutral"
)

// Availability is the preference view of a user's current status. Status
// holds the raw tag, or "unknown" when the tag falls outside the enum.
type Availability struct {
	Status           string          `json:"status"`
	SocialPreference PreferenceLevel `json:"social_preference"`
	StudyPreference  PreferenceLevel `json:"study_preference"`
}
