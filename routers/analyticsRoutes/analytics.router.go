package analyticsRoutes

import (
	controllers "edulytics/controllers/analytics"
	validators "edulytics/validators/analytics"

	"github.com/gofiber/fiber/v2"
)

// SetupAnalyticsRoutes sets up the analysis, estimation and
// recommendation routes
func SetupAnalyticsRoutes(app *fiber.App) {
	analysisGroup := app.Group("/analysis")

	analysisGroup.Get("/courses", controllers.GetCourseList)
	analysisGroup.Get("/segments/:id", validators.CourseID(), controllers.GetSegments)
	analysisGroup.Get("/danger-zones/:id", validators.CourseID(), validators.Threshold(), controllers.GetDangerZones)
	analysisGroup.Get("/summary/:id", validators.CourseID(), controllers.GetSummary)
	analysisGroup.Get("/chart-data/:id", validators.CourseID(), controllers.GetChartData)
	analysisGroup.Get("/reasons/:id", validators.CourseID(), controllers.GetDropoutReasons)

	userGroup := app.Group("/user")
	userGroup.Post("/estimate-level", validators.EstimateLevel(), controllers.EstimateLevel)

	recommendGroup := app.Group("/recommend")
	recommendGroup.Post("/quick", validators.QuickRecommend(), controllers.QuickRecommend)
	recommendGroup.Post("/learning-path", validators.LearningPath(), controllers.LearningPath)
	recommendGroup.Get("/popular", validators.PopularList(), controllers.GetPopularCourses)
}
