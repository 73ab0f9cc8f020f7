package models

import (
	"time"

	"gorm.io/gorm"
)

// LearningLog is one immutable progress checkpoint for a (user, course)
// pair. Many logs per pair; the engine only ever reads them.
type LearningLog struct {
	gorm.Model
	UserID           uint      `json:"user_id" gorm:"index;not null"`
	CourseID         uint      `json:"course_id" gorm:"index;not null"`
	ProgressPercent  float64   `json:"progress_percent"` // 0-100
	WatchDurationSec int       `json:"watch_duration_sec" gorm:"default:0"`
	IsDropout        bool      `json:"is_dropout" gorm:"default:false"`
	DropoutReason    string    `json:"dropout_reason"`
	LoggedAt         time.Time `json:"logged_at" gorm:"index"`
}
