package dto

import "github.com/campuspulse/campus-api/internal/models"

// CreateScheduleEntryRequest payload for adding one weekly schedule entry.
type CreateScheduleEntryRequest struct {
	CourseCode string `json:"course_code" validate:"required"`
	CourseName string `json:"course_name" validate:"required"`
	Day        string `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime  string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string `json:"end_time" validate:"required,datetime=15:04"`
	Location   string `json:"location" validate:"omitempty,max=120"`
}

// ImportReportResponse summarises one calendar upload.
type ImportReportResponse struct {
	Imported int                    `json:"imported"`
	Skipped  int                    `json:"skipped"`
	Entries  []models.ScheduleEntry `json:"entries"`
}
