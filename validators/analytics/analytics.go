package analyticsValidator

import (
	"strconv"
	"strings"

	"edulytics/analytics"
	"edulytics/middleware"

	"github.com/gofiber/fiber/v2"
)

var validEducations = map[string]bool{
	analytics.EduHighSchool:      true,
	analytics.EduCollege:         true,
	analytics.EduUniversityNonCS: true,
	analytics.EduUniversityCS:    true,
	analytics.EduGraduate:        true,
	analytics.EduBootcamp:        true,
}

var validRoles = map[string]bool{
	analytics.RoleBackend:   true,
	analytics.RoleFrontend:  true,
	analytics.RoleData:      true,
	analytics.RoleAI:        true,
	analytics.RoleFullstack: true,
	analytics.RoleDevops:    true,
}

var validConcepts = map[string]bool{
	analytics.ConceptVariable:  true,
	analytics.ConceptLoop:      true,
	analytics.ConceptFunction:  true,
	analytics.ConceptHTTP:      true,
	analytics.ConceptDatabase:  true,
	analytics.ConceptGit:       true,
	analytics.ConceptAlgorithm: true,
	analytics.ConceptOOP:       true,
}

var validExperience = map[string]bool{
	analytics.DifficultyBeginner:     true,
	analytics.DifficultyIntermediate: true,
	analytics.DifficultyAdvanced:     true,
}

var validLevels = map[string]bool{
	analytics.LevelAbsoluteBeginner: true,
	analytics.LevelBeginner:         true,
	analytics.LevelJuniorReady:      true,
	analytics.LevelDataFocused:      true,
	analytics.LevelWebFocused:       true,
	analytics.LevelAIFocused:        true,
	analytics.LevelIntermediate:     true,
	analytics.DifficultyAdvanced:    true,
}

// EstimateLevelRequest is the validated estimate-level payload
type EstimateLevelRequest struct {
	Education            string   `json:"education"`
	DailyStudyHours      float64  `json:"daily_study_hours"`
	KnownConcepts        []string `json:"known_concepts"`
	DesiredRole          string   `json:"desired_role"`
	HasProjectExperience bool     `json:"has_project_experience"`
	CodingMonths         int      `json:"coding_months"`
}

// QuickRecommendRequest is the validated quick-recommend payload
type QuickRecommendRequest struct {
	DesiredRole      string   `json:"desired_role"`
	ExperienceLevel  string   `json:"experience_level"`
	CompletedCourses []string `json:"completed_courses"`
	Limit            int      `json:"limit"`
}

// LearningPathRequest is the validated learning-path payload
type LearningPathRequest struct {
	CurrentLevel      string   `json:"current_level"`
	DesiredRole       string   `json:"desired_role"`
	KnownConcepts     []string `json:"known_concepts"`
	CompletedCourses  []string `json:"completed_courses"`
	InProgressCourses []string `json:"in_progress_courses"`
}

func EstimateLevel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EstimateLevelRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Education
		if strings.TrimSpace(reqData.Education) == "" {
			errors["education"] = "Education is required!"
		} else if !validEducations[reqData.Education] {
			errors["education"] = "Unknown education level!"
		}

		// Validate DesiredRole
		if strings.TrimSpace(reqData.DesiredRole) == "" {
			errors["desired_role"] = "Desired role is required!"
		} else if !validRoles[reqData.DesiredRole] {
			errors["desired_role"] = "Unknown desired role!"
		}

		// Validate DailyStudyHours
		if reqData.DailyStudyHours < 0 || reqData.DailyStudyHours > 24 {
			errors["daily_study_hours"] = "Daily study hours must be between 0 and 24!"
		}

		// Validate CodingMonths
		if reqData.CodingMonths < 0 {
			errors["coding_months"] = "Coding months cannot be negative!"
		}

		// Validate KnownConcepts
		for _, concept := range reqData.KnownConcepts {
			if !validConcepts[concept] {
				errors["known_concepts"] = "Unknown concept: " + concept
				break
			}
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEstimate", reqData)
		return c.Next()
	}
}

func QuickRecommend() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuickRecommendRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate DesiredRole
		if strings.TrimSpace(reqData.DesiredRole) == "" {
			errors["desired_role"] = "Desired role is required!"
		} else if !validRoles[reqData.DesiredRole] {
			errors["desired_role"] = "Unknown desired role!"
		}

		// Validate ExperienceLevel
		if strings.TrimSpace(reqData.ExperienceLevel) == "" {
			errors["experience_level"] = "Experience level is required!"
		} else if !validExperience[reqData.ExperienceLevel] {
			errors["experience_level"] = "Experience level must be beginner, intermediate or advanced!"
		}

		// Validate Limit (0 means server default)
		if reqData.Limit < 0 || reqData.Limit > 20 {
			errors["limit"] = "Limit must be between 1 and 20!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRecommend", reqData)
		return c.Next()
	}
}

func LearningPath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LearningPathRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate CurrentLevel
		if strings.TrimSpace(reqData.CurrentLevel) == "" {
			errors["current_level"] = "Current level is required!"
		} else if !validLevels[reqData.CurrentLevel] {
			errors["current_level"] = "Unknown level!"
		}

		// Validate DesiredRole
		if strings.TrimSpace(reqData.DesiredRole) == "" {
			errors["desired_role"] = "Desired role is required!"
		} else if !validRoles[reqData.DesiredRole] {
			errors["desired_role"] = "Unknown desired role!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPath", reqData)
		return c.Next()
	}
}

// CourseID validates the :id path parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		c.Locals("courseId", uint(id))
		return c.Next()
	}
}

// Threshold validates the optional ?threshold= query parameter.
// Missing or empty means the configured default; an explicit 0 is
// rejected because 0 doubles as the unset sentinel downstream.
func Threshold() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("threshold")
		if raw == "" {
			c.Locals("threshold", 0.0)
			return c.Next()
		}

		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil || threshold <= 0 || threshold > 100 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Threshold must be greater than 0 and at most 100!", nil)
		}

		c.Locals("threshold", threshold)
		return c.Next()
	}
}

// PopularList validates the optional ?limit= query parameter
func PopularList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("limit")
		if raw == "" {
			c.Locals("limit", 0)
			return c.Next()
		}

		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 20 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Limit must be between 1 and 20!", nil)
		}

		c.Locals("limit", limit)
		return c.Next()
	}
}
