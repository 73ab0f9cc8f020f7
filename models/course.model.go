package models

import "gorm.io/gorm"

// Course is static reference data used for scoring and labeling
type Course struct {
	gorm.Model
	CourseCode string `json:"course_code" gorm:"uniqueIndex;not null"`
	Title      string `json:"title"`
	Category   string `json:"category" gorm:"index"`   // python, javascript, web_backend, ...
	Difficulty string `json:"difficulty" gorm:"index"` // beginner, intermediate, advanced
	Duration   int64  `json:"duration" gorm:"default:0"` // duration in hours
	Instructor string `json:"instructor"`
	Price      int64  `json:"price" gorm:"default:0"`
	Tags       string `json:"tags"` // comma separated
	Status     string `json:"status" gorm:"default:'ACTIVE'"` // DRAFT, ACTIVE, INACTIVE
	IsDeleted  bool   `gorm:"default:false"`
}
