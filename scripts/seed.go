package main

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"edulytics/config"
	"edulytics/database"
	"edulytics/models"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// Demo catalog covering every category and difficulty the engine scores
var seedCourses = []models.Course{
	{CourseCode: "PY101", Title: "Python for Absolute Beginners", Category: "python", Difficulty: "beginner", Duration: 20, Instructor: "Kim Minji", Price: 0, Tags: "python,basics"},
	{CourseCode: "PY201", Title: "Intermediate Python Patterns", Category: "python", Difficulty: "intermediate", Duration: 30, Instructor: "Kim Minji", Price: 49, Tags: "python,oop"},
	{CourseCode: "JS101", Title: "JavaScript Essentials", Category: "javascript", Difficulty: "beginner", Duration: 18, Instructor: "Lee Haru", Price: 0, Tags: "javascript,basics"},
	{CourseCode: "FE201", Title: "Modern Frontend with React", Category: "web_frontend", Difficulty: "intermediate", Duration: 35, Instructor: "Lee Haru", Price: 59, Tags: "react,frontend"},
	{CourseCode: "BE201", Title: "REST API Development", Category: "web_backend", Difficulty: "intermediate", Duration: 40, Instructor: "Park Jiwoo", Price: 59, Tags: "api,backend"},
	{CourseCode: "BE301", Title: "Scalable Backend Architecture", Category: "web_backend", Difficulty: "advanced", Duration: 45, Instructor: "Park Jiwoo", Price: 89, Tags: "architecture,backend"},
	{CourseCode: "DB101", Title: "SQL and Database Fundamentals", Category: "database", Difficulty: "beginner", Duration: 15, Instructor: "Choi Dana", Price: 0, Tags: "sql,database"},
	{CourseCode: "DA201", Title: "Data Analysis with Pandas", Category: "data_analysis", Difficulty: "intermediate", Duration: 28, Instructor: "Choi Dana", Price: 49, Tags: "pandas,data"},
	{CourseCode: "ML301", Title: "Machine Learning in Practice", Category: "machine_learning", Difficulty: "advanced", Duration: 50, Instructor: "Jung Sora", Price: 99, Tags: "ml,python"},
	{CourseCode: "AL201", Title: "Algorithms and Problem Solving", Category: "algorithm", Difficulty: "intermediate", Duration: 32, Instructor: "Jung Sora", Price: 49, Tags: "algorithms,interview"},
}

var dropoutReasons = []string{
	"too difficult",
	"lost interest",
	"no time to study",
	"content outdated",
	"", // logged without a reason
}

// dropoutBias shifts where dropouts cluster per difficulty, so the
// seeded funnels look like real courses: beginners quit early,
// advanced learners quit in the middle.
var dropoutBias = map[string][]int{
	"beginner":     {0, 0, 1, 1, 2},
	"intermediate": {1, 2, 3, 4, 5},
	"advanced":     {3, 4, 5, 6, 7},
}

func main() {
	config.LoadConfig()
	database.ConnectDb()
	db := database.Database.Db

	rng := rand.New(rand.NewSource(42))
	baseDate := now.BeginningOfYear()

	log.Println("Seeding demo catalog...")

	for i := range seedCourses {
		course := seedCourses[i]
		if err := db.Where("course_code = ?", course.CourseCode).FirstOrCreate(&seedCourses[i], course).Error; err != nil {
			log.Fatalf("Failed to seed course %s: %v", course.CourseCode, err)
		}
	}
	log.Printf("Seeded %d courses", len(seedCourses))

	userCount := 200
	users := make([]models.User, 0, userCount)
	for i := 0; i < userCount; i++ {
		users = append(users, models.User{
			UserCode: uuid.NewString(),
			Name:     fmt.Sprintf("Learner %03d", i+1),
			Email:    fmt.Sprintf("learner%03d@example.com", i+1),
			Level:    "beginner",
		})
	}
	if err := db.CreateInBatches(&users, 100).Error; err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Seeded %d users", len(users))

	enrollments := 0
	logs := 0
	for _, user := range users {
		// Each learner takes 1 to 4 courses
		taken := rng.Perm(len(seedCourses))[:1+rng.Intn(4)]
		for _, ci := range taken {
			course := seedCourses[ci]
			enrolledAt := baseDate.AddDate(0, rng.Intn(6), rng.Intn(28))

			outcome := rng.Float64()
			enrollment := models.Enrollment{
				UserID:     user.ID,
				CourseID:   course.ID,
				Status:     models.EnrollmentActive,
				EnrolledAt: enrolledAt,
			}

			switch {
			case outcome < 0.35: // completed
				enrollment.Status = models.EnrollmentCompleted
				enrollment.Progress = 100
				completedAt := enrolledAt.AddDate(0, 0, 14+rng.Intn(60))
				enrollment.CompletedAt = &completedAt
				logs += writeProgressLogs(db, rng, user.ID, course.ID, enrolledAt, 100, false, "")
			case outcome < 0.60: // dropped out
				bias := dropoutBias[course.Difficulty]
				segment := bias[rng.Intn(len(bias))]
				dropProgress := float64(segment*10 + rng.Intn(10))
				enrollment.Status = models.EnrollmentDropped
				enrollment.Progress = dropProgress
				droppedAt := enrolledAt.AddDate(0, 0, 3+rng.Intn(30))
				enrollment.DroppedAt = &droppedAt
				reason := dropoutReasons[rng.Intn(len(dropoutReasons))]
				logs += writeProgressLogs(db, rng, user.ID, course.ID, enrolledAt, dropProgress, true, reason)
			default: // still active
				progress := float64(rng.Intn(90))
				enrollment.Progress = progress
				logs += writeProgressLogs(db, rng, user.ID, course.ID, enrolledAt, progress, false, "")
			}

			if err := db.Create(&enrollment).Error; err != nil {
				log.Fatalf("Failed to seed enrollment: %v", err)
			}
			enrollments++
		}
	}

	log.Printf("Seeded %d enrollments and %d learning logs", enrollments, logs)
	log.Println("Seeding finished")
}

// writeProgressLogs writes checkpoint logs every ~10% up to the final
// progress; the last log carries the dropout flag when the learner quit
func writeProgressLogs(db *gorm.DB, rng *rand.Rand, userID, courseID uint, start time.Time, finalProgress float64, dropout bool, reason string) int {
	written := 0
	loggedAt := start
	for p := 0.0; p < finalProgress; p += 10 {
		loggedAt = loggedAt.AddDate(0, 0, 1+rng.Intn(4))
		entry := models.LearningLog{
			UserID:           userID,
			CourseID:         courseID,
			ProgressPercent:  p,
			WatchDurationSec: 600 + rng.Intn(2400),
			LoggedAt:         loggedAt,
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Fatalf("Failed to seed learning log: %v", err)
		}
		written++
	}

	loggedAt = loggedAt.AddDate(0, 0, 1+rng.Intn(4))
	final := models.LearningLog{
		UserID:           userID,
		CourseID:         courseID,
		ProgressPercent:  finalProgress,
		WatchDurationSec: 600 + rng.Intn(2400),
		IsDropout:        dropout,
		DropoutReason:    strings.TrimSpace(reason),
		LoggedAt:         loggedAt,
	}
	if err := db.Create(&final).Error; err != nil {
		log.Fatalf("Failed to seed learning log: %v", err)
	}
	return written + 1
}
