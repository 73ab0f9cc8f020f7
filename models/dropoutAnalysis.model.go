package models

import (
	"time"

	"gorm.io/gorm"
)

// DropoutAnalysis is a persisted per-segment analysis row. Rows are
// replaced wholesale on every re-analysis of a course; never hand-edited.
type DropoutAnalysis struct {
	gorm.Model
	CourseID          uint      `json:"course_id" gorm:"index;not null"`
	SegmentStart      int       `json:"segment_start"`
	SegmentEnd        int       `json:"segment_end"`
	TotalUsersReached int       `json:"total_users_reached"`
	DropoutCount      int       `json:"dropout_count"`
	DropoutRate       float64   `json:"dropout_rate"`
	RiskLevel         string    `json:"risk_level"`
	AnalyzedAt        time.Time `json:"analyzed_at"`
}
