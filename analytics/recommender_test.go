package analytics

import (
	"testing"
)

func testCatalog() []CourseStats {
	return []CourseStats{
		{CourseID: 1, CourseCode: "PY101", Title: "Python Basics", Category: CategoryPython, Difficulty: DifficultyBeginner, TotalEnrollments: 2000, CompletionRate: 50, DropoutRate: 20},
		{CourseID: 2, CourseCode: "PY201", Title: "Python Patterns", Category: CategoryPython, Difficulty: DifficultyIntermediate, TotalEnrollments: 900, CompletionRate: 40, DropoutRate: 25},
		{CourseID: 3, CourseCode: "DB101", Title: "SQL Basics", Category: CategoryDatabase, Difficulty: DifficultyBeginner, TotalEnrollments: 1600, CompletionRate: 55, DropoutRate: 15},
		{CourseID: 4, CourseCode: "BE301", Title: "Backend Architecture", Category: CategoryWebBackend, Difficulty: DifficultyAdvanced, TotalEnrollments: 400, CompletionRate: 35, DropoutRate: 30},
		{CourseID: 5, CourseCode: "FE201", Title: "React Deep Dive", Category: CategoryWebFrontend, Difficulty: DifficultyIntermediate, TotalEnrollments: 1200, CompletionRate: 45, DropoutRate: 22},
	}
}

func testRecommender() *Recommender {
	return NewRecommender(DefaultRecommenderConfig())
}

func TestQuickRecommend_NeverReturnsCompleted(t *testing.T) {
	recs := testRecommender().QuickRecommend(RoleBackend, DifficultyBeginner, []string{"PY101", "DB101"}, testCatalog(), 10)

	for _, rec := range recs {
		if rec.CourseCode == "PY101" || rec.CourseCode == "DB101" {
			t.Errorf("completed course %s recommended", rec.CourseCode)
		}
	}
	if len(recs) == 0 {
		t.Fatal("no recommendations returned")
	}
}

func TestQuickRecommend_ScoreBreakdown(t *testing.T) {
	catalog := []CourseStats{
		{CourseID: 1, CourseCode: "PY101", Category: CategoryPython, Difficulty: DifficultyBeginner, TotalEnrollments: 2000, CompletionRate: 50, DropoutRate: 20},
	}

	recs := testRecommender().QuickRecommend(RoleBackend, DifficultyBeginner, nil, catalog, 10)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}

	// 30 level + 30 category + 20 capped completion + 10 popularity + 8 low-dropout
	if recs[0].Score != 98 {
		t.Errorf("score = %v, want 98", recs[0].Score)
	}
	if len(recs[0].Reasons) != 4 {
		t.Errorf("reasons = %v, want 4 entries", recs[0].Reasons)
	}
}

func TestQuickRecommend_PopularityBonusIsStrict(t *testing.T) {
	atFloor := []CourseStats{
		{CourseID: 1, CourseCode: "PY101", Category: CategoryPython, Difficulty: DifficultyBeginner, TotalEnrollments: 1500, CompletionRate: 50, DropoutRate: 20},
	}
	aboveFloor := []CourseStats{
		{CourseID: 1, CourseCode: "PY101", Category: CategoryPython, Difficulty: DifficultyBeginner, TotalEnrollments: 1501, CompletionRate: 50, DropoutRate: 20},
	}

	r := testRecommender()
	recsAt := r.QuickRecommend(RoleBackend, DifficultyBeginner, nil, atFloor, 10)
	recsAbove := r.QuickRecommend(RoleBackend, DifficultyBeginner, nil, aboveFloor, 10)

	if recsAt[0].Score != 88 {
		t.Errorf("score at the floor = %v, want 88 (no popularity bonus)", recsAt[0].Score)
	}
	if recsAbove[0].Score != 98 {
		t.Errorf("score above the floor = %v, want 98", recsAbove[0].Score)
	}
}

func TestQuickRecommend_DeterministicOrdering(t *testing.T) {
	recs := testRecommender().QuickRecommend(RoleBackend, DifficultyBeginner, nil, testCatalog(), 10)

	for i := 1; i < len(recs); i++ {
		prev, cur := recs[i-1], recs[i]
		if cur.Score > prev.Score {
			t.Errorf("scores out of order at %d: %v after %v", i, cur.Score, prev.Score)
		}
		if cur.Score == prev.Score && cur.CompletionRate > prev.CompletionRate {
			t.Errorf("completion tie-break violated at %d", i)
		}
	}
}

func TestQuickRecommend_LimitApplied(t *testing.T) {
	recs := testRecommender().QuickRecommend(RoleFullstack, DifficultyBeginner, nil, testCatalog(), 2)
	if len(recs) != 2 {
		t.Errorf("got %d recommendations, want 2", len(recs))
	}
}

func TestLearningPath_AdvancedLearnerSkipsEarlyStages(t *testing.T) {
	stages := testRecommender().LearningPath(DifficultyAdvanced, RoleBackend, nil, nil, testCatalog())

	for _, stage := range stages {
		if stage.Difficulty != DifficultyAdvanced {
			t.Errorf("stage %q below the learner's level included", stage.Difficulty)
		}
	}
	if len(stages) != 1 {
		t.Fatalf("got %d stages, want 1", len(stages))
	}
	if stages[0].StageName != "Expert Track" {
		t.Errorf("stage name = %q, want Expert Track", stages[0].StageName)
	}
}

func TestLearningPath_JuniorReadySkipsBeginner(t *testing.T) {
	stages := testRecommender().LearningPath(LevelJuniorReady, RoleBackend, nil, nil, testCatalog())

	for _, stage := range stages {
		if stage.Difficulty == DifficultyBeginner {
			t.Error("beginner stage included for a junior-ready learner")
		}
	}
}

func TestLearningPath_ExcludesKnownCoursesAndRenumbers(t *testing.T) {
	stages := testRecommender().LearningPath(LevelBeginner, RoleBackend, []string{"PY101"}, []string{"PY201"}, testCatalog())

	for i, stage := range stages {
		if stage.StageIndex != i+1 {
			t.Errorf("stage index = %d at position %d", stage.StageIndex, i)
		}
		for _, course := range stage.Courses {
			if course.CourseCode == "PY101" || course.CourseCode == "PY201" {
				t.Errorf("excluded course %s present in stage %d", course.CourseCode, stage.StageIndex)
			}
		}
	}
}

func TestLearningPath_StageSizeCap(t *testing.T) {
	catalog := []CourseStats{}
	for i := 0; i < 5; i++ {
		catalog = append(catalog, CourseStats{
			CourseID:       uint(i + 1),
			CourseCode:     string(rune('A'+i)) + "101",
			Category:       CategoryPython,
			Difficulty:     DifficultyBeginner,
			CompletionRate: float64(60 - i*5),
		})
	}

	stages := testRecommender().LearningPath(LevelBeginner, RoleBackend, nil, nil, catalog)
	if len(stages) != 1 {
		t.Fatalf("got %d stages, want 1", len(stages))
	}
	if len(stages[0].Courses) != 3 {
		t.Fatalf("stage holds %d courses, want 3", len(stages[0].Courses))
	}
	// Highest completion rates first
	if stages[0].Courses[0].CompletionRate != 60 {
		t.Errorf("first course completion = %v, want 60", stages[0].Courses[0].CompletionRate)
	}
}

func TestPopularCourses_RankingAndTies(t *testing.T) {
	catalog := []CourseStats{
		{CourseID: 2, CourseCode: "B200", TotalEnrollments: 1000, CompletionRate: 40},
		{CourseID: 1, CourseCode: "A100", TotalEnrollments: 1000, CompletionRate: 40},
		{CourseID: 3, CourseCode: "C300", TotalEnrollments: 2000, CompletionRate: 30},
		{CourseID: 4, CourseCode: "D400", TotalEnrollments: 1000, CompletionRate: 50},
	}

	ranked := testRecommender().PopularCourses(catalog, 0)
	want := []string{"C300", "D400", "A100", "B200"}
	for i, code := range want {
		if ranked[i].CourseCode != code {
			t.Errorf("position %d = %s, want %s", i, ranked[i].CourseCode, code)
		}
	}

	top := testRecommender().PopularCourses(catalog, 2)
	if len(top) != 2 {
		t.Errorf("limited ranking length = %d, want 2", len(top))
	}
}

func TestPopularCourses_DoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	firstBefore := catalog[0].CourseCode
	testRecommender().PopularCourses(catalog, 0)
	if catalog[0].CourseCode != firstBefore {
		t.Error("input catalog reordered in place")
	}
}
