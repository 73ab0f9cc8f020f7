package analytics

import (
	"fmt"
	"sort"
)

// CourseStats is the per-course aggregate the recommender scores
// against. Built in one pass from enrollments by the repository.
type CourseStats struct {
	CourseID         uint    `json:"course_id"`
	CourseCode       string  `json:"course_code"`
	Title            string  `json:"title"`
	Category         string  `json:"category"`
	Difficulty       string  `json:"difficulty"`
	TotalEnrollments int     `json:"total_enrollments"`
	Completions      int     `json:"completions"`
	Dropouts         int     `json:"dropouts"`
	CompletionRate   float64 `json:"completion_rate"`
	DropoutRate      float64 `json:"dropout_rate"`
}

// Recommendation is one scored course suggestion
type Recommendation struct {
	CourseID         uint     `json:"course_id"`
	CourseCode       string   `json:"course_code"`
	Title            string   `json:"title"`
	Category         string   `json:"category"`
	Difficulty       string   `json:"difficulty"`
	CompletionRate   float64  `json:"completion_rate"`
	TotalEnrollments int      `json:"total_enrollments"`
	Score            float64  `json:"score"`
	Reasons          []string `json:"reasons"`
}

// PathCourse is one course inside a learning-path stage
type PathCourse struct {
	CourseID       uint    `json:"course_id"`
	CourseCode     string  `json:"course_code"`
	Title          string  `json:"title"`
	CompletionRate float64 `json:"completion_rate"`
}

// PathStage is one difficulty stage of a learning path
type PathStage struct {
	StageIndex int          `json:"stage"`
	StageName  string       `json:"stage_name"`
	Difficulty string       `json:"difficulty"`
	Courses    []PathCourse `json:"courses"`
}

var stageNames = map[string]string{
	DifficultyBeginner:     "Foundation",
	DifficultyIntermediate: "Skill Building",
	DifficultyAdvanced:     "Expert Track",
}

var difficultyRank = map[string]int{
	DifficultyBeginner:     0,
	DifficultyIntermediate: 1,
	DifficultyAdvanced:     2,
}

// experienceLevels maps the quick-recommend experience values onto the
// estimator ladder
var experienceLevels = map[string]string{
	DifficultyBeginner:     LevelBeginner,
	DifficultyIntermediate: LevelJuniorReady,
	DifficultyAdvanced:     LevelIntermediate,
}

// Recommender scores courses against a learner's role, level and
// history. Pure and read-only; safe for concurrent use.
type Recommender struct {
	cfg RecommenderConfig
}

// NewRecommender builds a recommender from the given tables
func NewRecommender(cfg RecommenderConfig) *Recommender {
	return &Recommender{cfg: cfg}
}

// QuickRecommend scores the catalog for a role and experience level,
// excluding completed courses. Ordering is deterministic: score desc,
// completion rate desc, course id asc.
func (r *Recommender) QuickRecommend(role, experienceLevel string, completed []string, catalog []CourseStats, limit int) []Recommendation {
	level, ok := experienceLevels[experienceLevel]
	if !ok {
		level = LevelBeginner
	}
	difficulties := r.cfg.LevelDifficulty[level]
	categories := r.cfg.RoleCategories[role]
	excluded := toSet(completed)

	recs := []Recommendation{}
	for _, course := range catalog {
		if excluded[course.CourseCode] {
			continue
		}

		score := 0.0
		reasons := []string{}

		if containsString(difficulties, course.Difficulty) {
			score += 30
			reasons = append(reasons, fmt.Sprintf("matches your level (%s)", course.Difficulty))
		}
		if containsString(categories, course.Category) {
			score += 30
			reasons = append(reasons, fmt.Sprintf("relevant to the %s role", role))
		}

		completionBonus := course.CompletionRate * 0.5
		if completionBonus > 20 {
			completionBonus = 20
		}
		score += completionBonus
		if course.CompletionRate > 30 {
			reasons = append(reasons, fmt.Sprintf("high completion rate (%.1f%%)", course.CompletionRate))
		}

		if course.TotalEnrollments > r.cfg.PopularEnrollMin {
			score += 10
			reasons = append(reasons, "popular course")
		}

		dropoutBonus := (100 - course.DropoutRate) * 0.1
		if dropoutBonus > 10 {
			dropoutBonus = 10
		}
		if dropoutBonus > 0 {
			score += dropoutBonus
		}

		recs = append(recs, Recommendation{
			CourseID:         course.CourseID,
			CourseCode:       course.CourseCode,
			Title:            course.Title,
			Category:         course.Category,
			Difficulty:       course.Difficulty,
			CompletionRate:   course.CompletionRate,
			TotalEnrollments: course.TotalEnrollments,
			Score:            round2(score),
			Reasons:          reasons,
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		if recs[i].CompletionRate != recs[j].CompletionRate {
			return recs[i].CompletionRate > recs[j].CompletionRate
		}
		return recs[i].CourseID < recs[j].CourseID
	})

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

// LearningPath partitions the role-relevant catalog into ordered
// difficulty stages. Stages below the learner's minimum difficulty are
// omitted entirely, so the list is not always length 3.
func (r *Recommender) LearningPath(level, role string, completed, inProgress []string, catalog []CourseStats) []PathStage {
	categories := r.cfg.RoleCategories[role]
	excluded := toSet(append(append([]string{}, completed...), inProgress...))

	minRank := 0
	if difficulties, ok := r.cfg.LevelDifficulty[level]; ok && len(difficulties) > 0 {
		minRank = difficultyRank[difficulties[0]]
	}

	stages := []PathStage{}
	for _, difficulty := range []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced} {
		if difficultyRank[difficulty] < minRank {
			continue
		}

		courses := []CourseStats{}
		for _, course := range catalog {
			if course.Difficulty != difficulty || excluded[course.CourseCode] {
				continue
			}
			if !containsString(categories, course.Category) {
				continue
			}
			courses = append(courses, course)
		}
		if len(courses) == 0 {
			continue
		}

		sort.Slice(courses, func(i, j int) bool {
			if courses[i].CompletionRate != courses[j].CompletionRate {
				return courses[i].CompletionRate > courses[j].CompletionRate
			}
			return courses[i].CourseID < courses[j].CourseID
		})
		if size := r.cfg.StageSizes[difficulty]; size > 0 && len(courses) > size {
			courses = courses[:size]
		}

		stage := PathStage{
			StageIndex: len(stages) + 1,
			StageName:  stageNames[difficulty],
			Difficulty: difficulty,
			Courses:    make([]PathCourse, len(courses)),
		}
		for i, c := range courses {
			stage.Courses[i] = PathCourse{
				CourseID:       c.CourseID,
				CourseCode:     c.CourseCode,
				Title:          c.Title,
				CompletionRate: c.CompletionRate,
			}
		}
		stages = append(stages, stage)
	}
	return stages
}

// PopularCourses ranks by total enrollments, breaking ties on
// completion rate then course id so repeated calls agree.
func (r *Recommender) PopularCourses(catalog []CourseStats, limit int) []CourseStats {
	ranked := make([]CourseStats, len(catalog))
	copy(ranked, catalog)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalEnrollments != ranked[j].TotalEnrollments {
			return ranked[i].TotalEnrollments > ranked[j].TotalEnrollments
		}
		if ranked[i].CompletionRate != ranked[j].CompletionRate {
			return ranked[i].CompletionRate > ranked[j].CompletionRate
		}
		return ranked[i].CourseID < ranked[j].CourseID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
