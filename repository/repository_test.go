package repository

import (
	"errors"
	"testing"
	"time"

	"edulytics/analytics"
	"edulytics/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Course{}, &models.Enrollment{},
		&models.LearningLog{}, &models.DropoutAnalysis{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewGormStore(db)
}

func seedCourse(t *testing.T, db *gorm.DB, code, category, difficulty, status string) models.Course {
	t.Helper()
	course := models.Course{CourseCode: code, Title: code + " title", Category: category, Difficulty: difficulty, Status: status}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("seed course %s: %v", code, err)
	}
	return course
}

func TestFetchCourse(t *testing.T) {
	store := testStore(t)
	course := seedCourse(t, store.db, "PY101", "python", "beginner", "ACTIVE")

	got, err := store.FetchCourse(course.ID)
	if err != nil {
		t.Fatalf("FetchCourse: %v", err)
	}
	if got.CourseCode != "PY101" {
		t.Errorf("course code = %q, want PY101", got.CourseCode)
	}

	_, err = store.FetchCourse(999)
	var notFound *analytics.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestFetchCourse_SkipsDeleted(t *testing.T) {
	store := testStore(t)
	course := seedCourse(t, store.db, "PY101", "python", "beginner", "ACTIVE")
	store.db.Model(&course).Update("is_deleted", true)

	_, err := store.FetchCourse(course.ID)
	var notFound *analytics.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError for a deleted course", err)
	}
}

func TestFetchLogs_OrderedByTime(t *testing.T) {
	store := testStore(t)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for _, offset := range []int{5, 1, 3} {
		log := models.LearningLog{UserID: 1, CourseID: 1, ProgressPercent: float64(offset * 10), LoggedAt: base.AddDate(0, 0, offset)}
		if err := store.db.Create(&log).Error; err != nil {
			t.Fatalf("seed log: %v", err)
		}
	}

	logs, err := store.FetchLogs(1)
	if err != nil {
		t.Fatalf("FetchLogs: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("got %d logs, want 3", len(logs))
	}
	for i := 1; i < len(logs); i++ {
		if logs[i].LoggedAt.Before(logs[i-1].LoggedAt) {
			t.Errorf("logs out of order at %d", i)
		}
	}
}

func TestFetchCourseStats_Aggregation(t *testing.T) {
	store := testStore(t)
	active := seedCourse(t, store.db, "PY101", "python", "beginner", "ACTIVE")
	seedCourse(t, store.db, "DR900", "python", "beginner", "DRAFT")

	enrollments := []models.Enrollment{
		{UserID: 1, CourseID: active.ID, Status: models.EnrollmentCompleted, EnrolledAt: time.Now()},
		{UserID: 2, CourseID: active.ID, Status: models.EnrollmentDropped, EnrolledAt: time.Now()},
		{UserID: 3, CourseID: active.ID, Status: models.EnrollmentActive, EnrolledAt: time.Now()},
		{UserID: 4, CourseID: active.ID, Status: models.EnrollmentCompleted, EnrolledAt: time.Now()},
	}
	for i := range enrollments {
		if err := store.db.Create(&enrollments[i]).Error; err != nil {
			t.Fatalf("seed enrollment: %v", err)
		}
	}

	stats, err := store.FetchCourseStats()
	if err != nil {
		t.Fatalf("FetchCourseStats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("got %d courses, want 1 (draft excluded)", len(stats))
	}
	s := stats[0]
	if s.TotalEnrollments != 4 || s.Completions != 2 || s.Dropouts != 1 {
		t.Errorf("counts = %d/%d/%d, want 4/2/1", s.TotalEnrollments, s.Completions, s.Dropouts)
	}
	if s.CompletionRate != 50.0 {
		t.Errorf("completion rate = %v, want 50.0", s.CompletionRate)
	}
	if s.DropoutRate != 25.0 {
		t.Errorf("dropout rate = %v, want 25.0", s.DropoutRate)
	}
}

func TestFetchCourseStats_CourseWithoutEnrollments(t *testing.T) {
	store := testStore(t)
	seedCourse(t, store.db, "PY101", "python", "beginner", "ACTIVE")

	stats, err := store.FetchCourseStats()
	if err != nil {
		t.Fatalf("FetchCourseStats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("got %d courses, want 1", len(stats))
	}
	if stats[0].TotalEnrollments != 0 || stats[0].CompletionRate != 0 {
		t.Errorf("empty course stats not zeroed: %+v", stats[0])
	}
}

func TestReplaceAnalysis_SwapsRows(t *testing.T) {
	store := testStore(t)
	now := time.Now().UTC()

	first := []models.DropoutAnalysis{
		{CourseID: 1, SegmentStart: 0, SegmentEnd: 10, DropoutRate: 5, RiskLevel: "low", AnalyzedAt: now},
		{CourseID: 1, SegmentStart: 10, SegmentEnd: 20, DropoutRate: 22, RiskLevel: "critical", AnalyzedAt: now},
	}
	if err := store.ReplaceAnalysis(1, first); err != nil {
		t.Fatalf("first ReplaceAnalysis: %v", err)
	}

	second := []models.DropoutAnalysis{
		{CourseID: 1, SegmentStart: 0, SegmentEnd: 10, DropoutRate: 8, RiskLevel: "low", AnalyzedAt: now},
	}
	if err := store.ReplaceAnalysis(1, second); err != nil {
		t.Fatalf("second ReplaceAnalysis: %v", err)
	}

	var rows []models.DropoutAnalysis
	if err := store.db.Where("course_id = ?", 1).Find(&rows).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows after replace, want 1", len(rows))
	}
	if rows[0].DropoutRate != 8 {
		t.Errorf("row rate = %v, want 8", rows[0].DropoutRate)
	}

	// Other courses are untouched
	other := []models.DropoutAnalysis{{CourseID: 2, SegmentStart: 0, SegmentEnd: 10, AnalyzedAt: now}}
	if err := store.ReplaceAnalysis(2, other); err != nil {
		t.Fatalf("other ReplaceAnalysis: %v", err)
	}
	if err := store.ReplaceAnalysis(1, nil); err != nil {
		t.Fatalf("empty ReplaceAnalysis: %v", err)
	}
	var otherRows []models.DropoutAnalysis
	store.db.Where("course_id = ?", 2).Find(&otherRows)
	if len(otherRows) != 1 {
		t.Errorf("course 2 rows = %d, want 1", len(otherRows))
	}
}
