package analytics

import (
	"reflect"
	"testing"
)

func testEstimator() *LevelEstimator {
	return NewLevelEstimator(DefaultEstimatorConfig())
}

func TestEstimate_Deterministic(t *testing.T) {
	req := LevelRequest{
		Education:       EduCollege,
		DailyStudyHours: 2,
		KnownConcepts:   []string{ConceptVariable, ConceptLoop, ConceptFunction},
		DesiredRole:     RoleFrontend,
		CodingMonths:    4,
	}

	e := testEstimator()
	first := e.Estimate(req)
	second := e.Estimate(req)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same profile produced different estimates:\n%+v\n%+v", first, second)
	}
}

func TestEstimate_AbsoluteBeginner(t *testing.T) {
	estimate := testEstimator().Estimate(LevelRequest{
		Education:   EduHighSchool,
		DesiredRole: RoleBackend,
	})

	if estimate.EstimatedLevel != LevelAbsoluteBeginner {
		t.Fatalf("level = %q, want %q", estimate.EstimatedLevel, LevelAbsoluteBeginner)
	}
	if len(estimate.Strengths) != 1 || estimate.Strengths[0] != "motivation to start learning" {
		t.Errorf("strengths fallback missing: %v", estimate.Strengths)
	}
	if len(estimate.RecommendedPath) == 0 {
		t.Error("recommended path is empty")
	}
	if estimate.LevelDescription == "" {
		t.Error("level description is empty")
	}
}

func TestEstimate_ExperiencedBackendProfile(t *testing.T) {
	estimate := testEstimator().Estimate(LevelRequest{
		Education:            EduUniversityCS,
		DailyStudyHours:      3,
		KnownConcepts:        []string{ConceptVariable, ConceptLoop, ConceptFunction, ConceptHTTP, ConceptDatabase, ConceptGit},
		DesiredRole:          RoleBackend,
		HasProjectExperience: true,
		CodingMonths:         18,
	})

	if estimate.EstimatedLevel != LevelJuniorReady {
		t.Fatalf("level = %q, want %q (total score %v)",
			estimate.EstimatedLevel, LevelJuniorReady, estimate.DetailScores.TotalScore)
	}
	if estimate.ConfidenceScore <= 0.6 || estimate.ConfidenceScore > 0.95 {
		t.Errorf("confidence = %v, want in (0.6, 0.95]", estimate.ConfidenceScore)
	}
	if estimate.DetailScores.EducationScore != 5 {
		t.Errorf("education score = %v, want 5", estimate.DetailScores.EducationScore)
	}
	if estimate.DetailScores.RoleMatchScore != 6.67 {
		t.Errorf("role match = %v, want 6.67 (2 of 3 backend concepts)", estimate.DetailScores.RoleMatchScore)
	}
	if estimate.DetailScores.ExperienceScore != 10.5 {
		t.Errorf("experience = %v, want 10.5", estimate.DetailScores.ExperienceScore)
	}
}

func TestEstimate_RoleFlavorInMidBand(t *testing.T) {
	// Mid-band score with a strong data-role concept match lands on the
	// data-focused tier instead of plain beginner
	estimate := testEstimator().Estimate(LevelRequest{
		Education:       EduUniversityNonCS,
		DailyStudyHours: 2,
		KnownConcepts:   []string{ConceptVariable, ConceptLoop, ConceptDatabase, ConceptFunction},
		DesiredRole:     RoleData,
		CodingMonths:    6,
	})

	if estimate.DetailScores.RoleMatchScore != 10 {
		t.Fatalf("role match = %v, want 10 (all 3 data concepts known)", estimate.DetailScores.RoleMatchScore)
	}
	total := estimate.DetailScores.TotalScore
	if total < 30 || total >= 60 {
		t.Fatalf("total = %v, expected mid band [30,60)", total)
	}
	if estimate.EstimatedLevel != LevelDataFocused {
		t.Errorf("level = %q, want %q", estimate.EstimatedLevel, LevelDataFocused)
	}
}

func TestConfidence_BoundaryDistance(t *testing.T) {
	e := testEstimator()

	if got := e.confidence(60); got != 0.6 {
		t.Errorf("confidence at boundary = %v, want 0.6", got)
	}
	if got := e.confidence(45); got != 0.95 {
		t.Errorf("confidence far from boundaries = %v, want 0.95", got)
	}
	if got := e.confidence(75); got != 0.78 {
		t.Errorf("confidence 5 points from boundary = %v, want 0.78", got)
	}
}

func TestEstimate_StrengthsAndGapsCanonOrder(t *testing.T) {
	// Backend canon order is http, database, oop regardless of how the
	// learner lists their concepts
	estimate := testEstimator().Estimate(LevelRequest{
		Education:     EduBootcamp,
		KnownConcepts: []string{ConceptDatabase, ConceptHTTP},
		DesiredRole:   RoleBackend,
		CodingMonths:  3,
	})

	wantStrengths := []string{"solid grasp of HTTP basics", "solid grasp of database fundamentals"}
	if !reflect.DeepEqual(estimate.Strengths, wantStrengths) {
		t.Errorf("strengths = %v, want %v", estimate.Strengths, wantStrengths)
	}
	wantGaps := []string{"study object-oriented programming"}
	if !reflect.DeepEqual(estimate.AreasToImprove, wantGaps) {
		t.Errorf("areas to improve = %v, want %v", estimate.AreasToImprove, wantGaps)
	}
}

func TestTimeToJobReady_StudyHourAdjustment(t *testing.T) {
	e := testEstimator()

	// junior_ready base is 2 months; 6+ daily hours shrinks it to 1
	if got := e.timeToJobReady(LevelJuniorReady, 6); got != "about 1 month" {
		t.Errorf("heavy schedule = %q, want about 1 month", got)
	}
	// absolute beginner base 12 months stretched by a light schedule
	if got := e.timeToJobReady(LevelAbsoluteBeginner, 1); got != "over a year" {
		t.Errorf("light schedule = %q, want over a year", got)
	}
	if got := e.timeToJobReady(LevelIntermediate, 6); got != "under a month" {
		t.Errorf("intermediate heavy = %q, want under a month", got)
	}
}

func TestEstimate_CuratedPathOverridesDefault(t *testing.T) {
	e := testEstimator()

	withCurated := e.Estimate(LevelRequest{Education: EduHighSchool, DesiredRole: RoleBackend})
	withDefault := e.Estimate(LevelRequest{Education: EduHighSchool, DesiredRole: RoleDevops})

	if reflect.DeepEqual(withCurated.RecommendedPath, withDefault.RecommendedPath) {
		t.Error("curated backend path should differ from the per-level default")
	}
	if len(withDefault.RecommendedPath) == 0 {
		t.Error("default path is empty")
	}
}
