package repository

import (
	"errors"
	"math"

	"edulytics/analytics"
	"edulytics/models"

	"gorm.io/gorm"
)

// GormStore implements the engine's read-only store and the analysis
// sink over a GORM connection.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a database handle
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// FetchCourse loads one course or reports NotFound
func (s *GormStore) FetchCourse(courseID uint) (*models.Course, error) {
	var course models.Course
	err := s.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &analytics.NotFoundError{Resource: "course", ID: courseID}
		}
		return nil, &analytics.DataUnavailableError{Op: "fetch course", Err: err}
	}
	return &course, nil
}

// FetchLogs loads a course's progress logs in checkpoint order
func (s *GormStore) FetchLogs(courseID uint) ([]models.LearningLog, error) {
	var logs []models.LearningLog
	err := s.db.Where("course_id = ?", courseID).Order("logged_at asc").Find(&logs).Error
	if err != nil {
		return nil, &analytics.DataUnavailableError{Op: "fetch logs", Err: err}
	}
	return logs, nil
}

// FetchEnrollments loads a course's enrollments
func (s *GormStore) FetchEnrollments(courseID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&enrollments).Error
	if err != nil {
		return nil, &analytics.DataUnavailableError{Op: "fetch enrollments", Err: err}
	}
	return enrollments, nil
}

// FetchCourseStats aggregates enrollment counts for every active course
// in one pass. Rates are computed in Go to stay portable across
// postgres and sqlite.
func (s *GormStore) FetchCourseStats() ([]analytics.CourseStats, error) {
	var stats []analytics.CourseStats
	err := s.db.Raw(`
		SELECT
			c.id AS course_id,
			c.course_code,
			c.title,
			c.category,
			c.difficulty,
			COUNT(DISTINCT e.user_id) AS total_enrollments,
			COUNT(DISTINCT CASE WHEN e.status = ? THEN e.user_id END) AS completions,
			COUNT(DISTINCT CASE WHEN e.status = ? THEN e.user_id END) AS dropouts
		FROM courses c
		LEFT JOIN enrollments e
			ON e.course_id = c.id AND e.is_deleted = ?
		WHERE c.is_deleted = ? AND c.status = ?
		GROUP BY c.id, c.course_code, c.title, c.category, c.difficulty
		ORDER BY total_enrollments DESC, c.id ASC`,
		models.EnrollmentCompleted, models.EnrollmentDropped,
		false, false, "ACTIVE",
	).Scan(&stats).Error
	if err != nil {
		return nil, &analytics.DataUnavailableError{Op: "fetch course stats", Err: err}
	}

	for i := range stats {
		if stats[i].TotalEnrollments > 0 {
			total := float64(stats[i].TotalEnrollments)
			stats[i].CompletionRate = round2(float64(stats[i].Completions) / total * 100)
			stats[i].DropoutRate = round2(float64(stats[i].Dropouts) / total * 100)
		}
	}
	return stats, nil
}

// ReplaceAnalysis swaps a course's persisted segment rows in one
// transaction, the write-through cache of a fresh analysis
func (s *GormStore) ReplaceAnalysis(courseID uint, rows []models.DropoutAnalysis) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&models.DropoutAnalysis{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return &analytics.DataUnavailableError{Op: "replace analysis", Err: err}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
