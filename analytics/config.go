package analytics

import "math"

// Difficulty levels
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Desired job roles
const (
	RoleBackend   = "backend"
	RoleFrontend  = "frontend"
	RoleData      = "data"
	RoleAI        = "ai"
	RoleFullstack = "fullstack"
	RoleDevops    = "devops"
)

// Education levels
const (
	EduHighSchool      = "high_school"
	EduCollege         = "college"
	EduUniversityNonCS = "university_non_cs"
	EduUniversityCS    = "university_cs"
	EduGraduate        = "graduate"
	EduBootcamp        = "bootcamp"
)

// Basic concepts a learner can self-report
const (
	ConceptVariable  = "variable"
	ConceptLoop      = "loop"
	ConceptFunction  = "function"
	ConceptHTTP      = "http"
	ConceptDatabase  = "database"
	ConceptGit       = "git"
	ConceptAlgorithm = "algorithm"
	ConceptOOP       = "oop"
)

// Estimated learner levels, ordered roughly by skill
const (
	LevelAbsoluteBeginner = "absolute_beginner"
	LevelBeginner         = "beginner"
	LevelJuniorReady      = "junior_ready"
	LevelDataFocused      = "data_focused"
	LevelWebFocused       = "web_focused"
	LevelAIFocused        = "ai_focused"
	LevelIntermediate     = "intermediate"
)

// Segment risk levels
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

// Course categories
const (
	CategoryPython          = "python"
	CategoryJavascript      = "javascript"
	CategoryJava            = "java"
	CategoryDatabase        = "database"
	CategoryWebFrontend     = "web_frontend"
	CategoryWebBackend      = "web_backend"
	CategoryDataAnalysis    = "data_analysis"
	CategoryMachineLearning = "machine_learning"
	CategoryDevops          = "devops"
	CategoryAlgorithm       = "algorithm"
)

// RiskThresholds classify a segment dropout rate. Evaluated top-down,
// first match wins.
type RiskThresholds struct {
	Critical float64
	High     float64
	Medium   float64
}

// Classify maps a dropout rate to a risk level
func (t RiskThresholds) Classify(rate float64) string {
	switch {
	case rate >= t.Critical:
		return RiskCritical
	case rate >= t.High:
		return RiskHigh
	case rate >= t.Medium:
		return RiskMedium
	default:
		return RiskLow
	}
}

// SegmentationConfig carries the tunables of the segmentation analyzer
type SegmentationConfig struct {
	Risk            RiskThresholds
	DangerThreshold float64           // default danger-zone threshold (%)
	ZoneAdvice      map[string]string // risk level -> recommendation text
}

// DefaultSegmentationConfig returns the production threshold set
func DefaultSegmentationConfig() SegmentationConfig {
	return SegmentationConfig{
		Risk:            RiskThresholds{Critical: 20, High: 15, Medium: 10},
		DangerThreshold: 10,
		ZoneAdvice: map[string]string{
			RiskCritical: "urgent content revision needed",
			RiskHigh:     "add checkpoint quizzes and practice material",
			RiskMedium:   "send progress reminders and milestone rewards",
			RiskLow:      "keep monitoring this segment",
		},
	}
}

// EstimatorConfig carries the scoring tables of the level estimator
type EstimatorConfig struct {
	EducationScores   map[string]float64
	ConceptWeights    map[string]float64
	ConceptCanon      []string            // fixed ordering for strengths/gaps output
	RoleConcepts      map[string][]string // concepts that matter per role, canon-ordered
	LevelDescriptions map[string]string
	BaseMonths        map[string]int // months to job-ready per level
	MinConfidence     float64        // confidence exactly at a score-bucket boundary
	MaxConfidence     float64        // confidence at BoundaryBand distance or more
	BoundaryBand      float64        // score distance over which confidence saturates
}

// DefaultEstimatorConfig returns the production scoring tables
func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{
		EducationScores: map[string]float64{
			EduHighSchool:      1,
			EduCollege:         2,
			EduUniversityNonCS: 3,
			EduUniversityCS:    5,
			EduGraduate:        6,
			EduBootcamp:        4,
		},
		ConceptWeights: map[string]float64{
			ConceptVariable:  1,
			ConceptLoop:      1,
			ConceptFunction:  1.5,
			ConceptHTTP:      2,
			ConceptDatabase:  2,
			ConceptGit:       1.5,
			ConceptAlgorithm: 2.5,
			ConceptOOP:       2.5,
		},
		ConceptCanon: []string{
			ConceptVariable, ConceptLoop, ConceptFunction, ConceptHTTP,
			ConceptDatabase, ConceptGit, ConceptAlgorithm, ConceptOOP,
		},
		RoleConcepts: map[string][]string{
			RoleBackend:   {ConceptHTTP, ConceptDatabase, ConceptOOP},
			RoleFrontend:  {ConceptVariable, ConceptFunction, ConceptHTTP},
			RoleData:      {ConceptVariable, ConceptLoop, ConceptDatabase},
			RoleAI:        {ConceptFunction, ConceptAlgorithm, ConceptOOP},
			RoleFullstack: {ConceptHTTP, ConceptDatabase, ConceptGit},
			RoleDevops:    {ConceptHTTP, ConceptDatabase, ConceptGit},
		},
		LevelDescriptions: map[string]string{
			LevelAbsoluteBeginner: "You are just getting started. Build up from the basics, one concept at a time.",
			LevelBeginner:         "You know the fundamentals but still lack hands-on experience.",
			LevelJuniorReady:      "You are ready to apply for junior developer positions.",
			LevelDataFocused:      "Your profile fits data analysis and data science work.",
			LevelWebFocused:       "Your profile fits web development work.",
			LevelAIFocused:        "Your profile fits AI/ML engineering work.",
			LevelIntermediate:     "You have solid intermediate development skills.",
		},
		BaseMonths: map[string]int{
			LevelAbsoluteBeginner: 12,
			LevelBeginner:         8,
			LevelJuniorReady:      2,
			LevelDataFocused:      4,
			LevelWebFocused:       4,
			LevelAIFocused:        6,
			LevelIntermediate:     1,
		},
		MinConfidence: 0.60,
		MaxConfidence: 0.95,
		BoundaryBand:  10,
	}
}

// RecommenderConfig carries the catalog-scoring tables
type RecommenderConfig struct {
	RoleCategories   map[string][]string
	LevelDifficulty  map[string][]string // suitable difficulties per level, easiest first
	PopularEnrollMin int                 // enrollment count a course must exceed for the popularity bonus
	StageSizes       map[string]int      // courses per learning-path stage
}

// DefaultRecommenderConfig returns the production recommendation tables
func DefaultRecommenderConfig() RecommenderConfig {
	return RecommenderConfig{
		RoleCategories: map[string][]string{
			RoleBackend:   {CategoryPython, CategoryJava, CategoryWebBackend, CategoryDatabase},
			RoleFrontend:  {CategoryJavascript, CategoryWebFrontend},
			RoleData:      {CategoryPython, CategoryDataAnalysis, CategoryDatabase},
			RoleAI:        {CategoryPython, CategoryMachineLearning, CategoryDataAnalysis},
			RoleFullstack: {CategoryPython, CategoryJavascript, CategoryWebBackend, CategoryWebFrontend, CategoryDatabase},
			RoleDevops:    {CategoryDevops, CategoryDatabase, CategoryPython},
		},
		LevelDifficulty: map[string][]string{
			LevelAbsoluteBeginner: {DifficultyBeginner},
			LevelBeginner:         {DifficultyBeginner},
			LevelJuniorReady:      {DifficultyIntermediate, DifficultyAdvanced},
			LevelDataFocused:      {DifficultyBeginner, DifficultyIntermediate},
			LevelWebFocused:       {DifficultyBeginner, DifficultyIntermediate},
			LevelAIFocused:        {DifficultyIntermediate, DifficultyAdvanced},
			LevelIntermediate:     {DifficultyIntermediate, DifficultyAdvanced},
			// "beginner" and "intermediate" double as plain difficulty
			// aliases; "advanced" exists only as an alias
			DifficultyAdvanced: {DifficultyAdvanced},
		},
		PopularEnrollMin: 1500,
		StageSizes: map[string]int{
			DifficultyBeginner:     3,
			DifficultyIntermediate: 3,
			DifficultyAdvanced:     2,
		},
	}
}

// round2 rounds to two decimal places for display consistency
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
