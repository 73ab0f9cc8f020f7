package models

import "gorm.io/gorm"

// User is a learner account. Only identity fields are kept here; the
// analytics engine never writes to this table.
type User struct {
	gorm.Model
	UserCode  string `json:"user_code" gorm:"uniqueIndex;not null"`
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"index"`
	Level     string `json:"level" gorm:"default:'beginner'"`
	IsDeleted bool   `gorm:"default:false"`
}
