package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment status values. One row per (user, course) pair.
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentDropped   = "dropped"
)

// Enrollment tracks a user's enrollment in a course with progress
type Enrollment struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_course"`
	CourseID    uint       `json:"course_id" gorm:"index;not null;uniqueIndex:idx_user_course"`
	Status      string     `json:"status" gorm:"default:'active'"`
	Progress    float64    `json:"progress_percent" gorm:"default:0"` // 0-100
	EnrolledAt  time.Time  `json:"enrolled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	DroppedAt   *time.Time `json:"dropped_at"`
	IsDeleted   bool       `gorm:"default:false"`
	User        User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course      Course     `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
