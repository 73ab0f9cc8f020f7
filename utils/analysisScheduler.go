package utils

import (
	"log"
	"strconv"
	"time"

	"edulytics/analytics"
	"edulytics/config"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[ANALYSIS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// reanalyzeAllCourses recomputes every active course's dropout analysis,
// refreshing the persisted segment rows, and fires webhook alerts for
// courses with critical danger zones.
func reanalyzeAllCourses(service *analytics.Service) {
	courses, err := service.CourseList()
	if err != nil {
		logScheduler("Error fetching course list: " + err.Error())
		return
	}

	alerted := 0
	for _, course := range courses {
		analysis, err := service.AnalyzeCourse(course.CourseID, 0)
		if err != nil {
			logScheduler("Error analyzing course " + course.CourseCode + ": " + err.Error())
			continue
		}

		critical := []analytics.DangerZone{}
		for _, zone := range analysis.DangerZones {
			if zone.RiskLevel == analytics.RiskCritical {
				critical = append(critical, zone)
			}
		}
		if len(critical) == 0 {
			continue
		}

		alert := DangerZoneAlert{
			CourseID:    course.CourseID,
			CourseCode:  course.CourseCode,
			Title:       course.Title,
			DangerZones: critical,
			AlertedAt:   time.Now().UTC(),
		}
		if err := SendDangerZoneAlert(alert); err == nil {
			alerted++
		}
	}

	logScheduler("Re-analysis pass finished: " + strconv.Itoa(len(courses)) + " courses, " + strconv.Itoa(alerted) + " alerts")
}

// StartAnalysisScheduler registers the periodic re-analysis job
func StartAnalysisScheduler(c *cron.Cron, service *analytics.Service) {
	spec := config.AppConfig.AnalysisCronSpec
	if _, err := c.AddFunc(spec, func() {
		reanalyzeAllCourses(service)
	}); err != nil {
		logScheduler("Invalid cron spec " + spec + ": " + err.Error())
		return
	}
	logScheduler("Analysis scheduler started with schedule: " + spec)
}

// InitializeAnalysisScheduler creates and starts the scheduler
func InitializeAnalysisScheduler(service *analytics.Service) *cron.Cron {
	c := cron.New()
	StartAnalysisScheduler(c, service)
	c.Start()
	return c
}
