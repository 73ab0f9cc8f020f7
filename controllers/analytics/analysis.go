package controllers

import (
	"errors"
	"log"

	"edulytics/analytics"
	"edulytics/middleware"

	"github.com/gofiber/fiber/v2"
)

var service *analytics.Service

// Init wires the shared engine facade into the handlers. Must be called
// once at startup before any route is registered.
func Init(s *analytics.Service) {
	service = s
}

// errorResponse maps engine errors onto HTTP statuses
func errorResponse(c *fiber.Ctx, err error) error {
	var notFound *analytics.NotFoundError
	if errors.As(err, &notFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, notFound.Error(), nil)
	}

	var invalid *analytics.InvalidInputError
	if errors.As(err, &invalid) {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, invalid.Error(), nil)
	}

	var unavailable *analytics.DataUnavailableError
	if errors.As(err, &unavailable) {
		log.Println("data unavailable:", unavailable)
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Data source unavailable, try again shortly!", nil)
	}

	log.Println("analysis error:", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}

// GetCourseList returns aggregate stats for every active course
func GetCourseList(c *fiber.Ctx) error {
	courses, err := service.CourseList()
	if err != nil {
		return errorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

// GetSegments returns the per-band dropout funnel of one course
func GetSegments(c *fiber.Ctx) error {
	courseId, ok := c.Locals("courseId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	analysis, err := service.AnalyzeCourse(courseId, 0)
	if err != nil {
		return errorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Segments fetched successfully!", fiber.Map{
		"course_id":   courseId,
		"segments":    analysis.Segments,
		"analyzed_at": analysis.AnalyzedAt,
	})
}

// GetDangerZones returns the segments above the dropout-rate threshold
func GetDangerZones(c *fiber.Ctx) error {
	courseId, ok := c.Locals("courseId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	threshold, _ := c.Locals("threshold").(float64)

	analysis, err := service.AnalyzeCourse(courseId, threshold)
	if err != nil {
		return errorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Danger zones fetched successfully!", fiber.Map{
		"course_id":    courseId,
		"threshold":    analysis.Threshold,
		"danger_zones": analysis.DangerZones,
	})
}

// GetSummary returns the course-level dropout aggregate
func GetSummary(c *fiber.Ctx) error {
	courseId, ok := c.Locals("courseId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	analysis, err := service.AnalyzeCourse(courseId, 0)
	if err != nil {
		return errorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Summary fetched successfully!", analysis.Summary)
}

// GetChartData returns the dashboard bar-chart payload
func GetChartData(c *fiber.Ctx) error {
	courseId, ok := c.Locals("courseId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	analysis, err := service.AnalyzeCourse(courseId, 0)
	if err != nil {
		return errorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chart data fetched successfully!", analysis.Chart)
}

// GetDropoutReasons returns the tallied dropout reasons of one course
func GetDropoutReasons(c *fiber.Ctx) error {
	courseId, ok := c.Locals("courseId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	analysis, err := service.AnalyzeCourse(courseId, 0)
	if err != nil {
		return errorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dropout reasons fetched successfully!", fiber.Map{
		"course_id": courseId,
		"reasons":   analysis.DropoutReasons,
	})
}
