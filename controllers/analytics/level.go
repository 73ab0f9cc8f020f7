package controllers

import (
	"edulytics/analytics"
	"edulytics/middleware"
	validators "edulytics/validators/analytics"

	"github.com/gofiber/fiber/v2"
)

// EstimateLevel runs the skill-tier estimation over a learner profile
func EstimateLevel(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEstimate").(*validators.EstimateLevelRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	estimate := service.EstimateLevel(analytics.LevelRequest{
		Education:            reqData.Education,
		DailyStudyHours:      reqData.DailyStudyHours,
		KnownConcepts:        reqData.KnownConcepts,
		DesiredRole:          reqData.DesiredRole,
		HasProjectExperience: reqData.HasProjectExperience,
		CodingMonths:         reqData.CodingMonths,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Level estimated successfully!", estimate)
}
