package controllers

import (
	"edulytics/config"
	"edulytics/middleware"
	validators "edulytics/validators/analytics"

	"github.com/gofiber/fiber/v2"
)

// QuickRecommend scores the catalog for a role and experience level
func QuickRecommend(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRecommend").(*validators.QuickRecommendRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	limit := reqData.Limit
	if limit == 0 {
		limit = config.AppConfig.RecommendMaxLimit
	}

	recommendations, err := service.QuickRecommend(reqData.DesiredRole, reqData.ExperienceLevel, reqData.CompletedCourses, limit)
	if err != nil {
		return errorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations fetched successfully!", fiber.Map{
		"recommendations": recommendations,
		"total":           len(recommendations),
	})
}

// LearningPath composes the staged study roadmap for a learner
func LearningPath(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPath").(*validators.LearningPathRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	stages, err := service.BuildLearningPath(
		reqData.CurrentLevel, reqData.DesiredRole,
		reqData.KnownConcepts, reqData.CompletedCourses, reqData.InProgressCourses,
	)
	if err != nil {
		return errorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning path built successfully!", fiber.Map{
		"current_level": reqData.CurrentLevel,
		"desired_role":  reqData.DesiredRole,
		"stages":        stages,
		"total_stages":  len(stages),
	})
}

// GetPopularCourses ranks active courses by enrollments
func GetPopularCourses(c *fiber.Ctx) error {
	limit, _ := c.Locals("limit").(int)
	if limit == 0 {
		limit = config.AppConfig.RecommendMaxLimit
	}

	courses, err := service.PopularCourses(limit)
	if err != nil {
		return errorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Popular courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}
