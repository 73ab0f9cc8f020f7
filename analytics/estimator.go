package analytics

import (
	"fmt"
	"math"
)

// LevelRequest is a learner's self-reported profile. Enum fields are
// validated at the HTTP boundary before reaching the estimator.
type LevelRequest struct {
	Education            string   `json:"education"`
	DailyStudyHours      float64  `json:"daily_study_hours"`
	KnownConcepts        []string `json:"known_concepts"`
	DesiredRole          string   `json:"desired_role"`
	HasProjectExperience bool     `json:"has_project_experience"`
	CodingMonths         int      `json:"coding_months"`
}

// DetailScores exposes the per-signal breakdown behind an estimate
type DetailScores struct {
	EducationScore    float64 `json:"education_score"`
	ConceptCount      int     `json:"concept_count"`
	ConceptScore      float64 `json:"concept_score"`
	ConceptPercentage float64 `json:"concept_percentage"`
	RoleMatchScore    float64 `json:"role_match_score"`
	ExperienceScore   float64 `json:"experience_score"`
	CommitmentScore   float64 `json:"commitment_score"`
	TotalScore        float64 `json:"total_score"`
}

// LevelEstimate is the full estimation result
type LevelEstimate struct {
	EstimatedLevel          string       `json:"estimated_level"`
	LevelDescription        string       `json:"level_description"`
	ConfidenceScore         float64      `json:"confidence_score"`
	RecommendedPath         []string     `json:"recommended_path"`
	Strengths               []string     `json:"strengths"`
	AreasToImprove          []string     `json:"areas_to_improve"`
	EstimatedTimeToJobReady string       `json:"estimated_time_to_job_ready"`
	DetailScores            DetailScores `json:"detail_scores"`
}

// LevelEstimator maps a learner profile to a skill tier with weighted,
// auditable scoring. Deterministic for identical input.
type LevelEstimator struct {
	cfg EstimatorConfig
}

// NewLevelEstimator builds an estimator from the given scoring tables
func NewLevelEstimator(cfg EstimatorConfig) *LevelEstimator {
	return &LevelEstimator{cfg: cfg}
}

// Score-bucket boundaries of the level ladder
var levelBoundaries = []float64{30, 60, 80}

// Estimate runs the rule-based estimation
func (e *LevelEstimator) Estimate(req LevelRequest) LevelEstimate {
	scores := e.detailScores(req)
	level := e.resolveLevel(req, scores)

	return LevelEstimate{
		EstimatedLevel:          level,
		LevelDescription:        e.cfg.LevelDescriptions[level],
		ConfidenceScore:         e.confidence(scores.TotalScore),
		RecommendedPath:         e.recommendedPath(level, req.DesiredRole),
		Strengths:               e.strengths(req),
		AreasToImprove:          e.areasToImprove(req),
		EstimatedTimeToJobReady: e.timeToJobReady(level, req.DailyStudyHours),
		DetailScores:            scores,
	}
}

func (e *LevelEstimator) detailScores(req LevelRequest) DetailScores {
	education, ok := e.cfg.EducationScores[req.Education]
	if !ok {
		education = 2
	}

	conceptScore, maxConceptScore := 0.0, 0.0
	for _, w := range e.cfg.ConceptWeights {
		maxConceptScore += w
	}
	for _, c := range req.KnownConcepts {
		if w, ok := e.cfg.ConceptWeights[c]; ok {
			conceptScore += w
		} else {
			conceptScore++
		}
	}
	conceptPct := 0.0
	if maxConceptScore > 0 {
		conceptPct = conceptScore / maxConceptScore * 100
	}

	roleMatch := 0.0
	if important := e.cfg.RoleConcepts[req.DesiredRole]; len(important) > 0 {
		matched := 0
		for _, c := range important {
			if containsConcept(req.KnownConcepts, c) {
				matched++
			}
		}
		roleMatch = float64(matched) / float64(len(important)) * 10
	}

	experience := math.Min(float64(req.CodingMonths)/12*5, 10)
	if req.HasProjectExperience {
		experience += 3
	}

	commitment := math.Min(req.DailyStudyHours/4*10, 10)

	total := education*3 + conceptPct*0.3 + roleMatch*2 + experience*2 + commitment*0.6

	return DetailScores{
		EducationScore:    education,
		ConceptCount:      len(req.KnownConcepts),
		ConceptScore:      round2(conceptScore),
		ConceptPercentage: round2(conceptPct),
		RoleMatchScore:    round2(roleMatch),
		ExperienceScore:   round2(experience),
		CommitmentScore:   round2(commitment),
		TotalScore:        round2(total),
	}
}

// resolveLevel walks the ladder top-down against the cumulative score
func (e *LevelEstimator) resolveLevel(req LevelRequest, s DetailScores) string {
	if s.ConceptCount == 0 && req.CodingMonths == 0 {
		return LevelAbsoluteBeginner
	}
	if s.TotalScore < levelBoundaries[0] || s.ConceptCount < 3 {
		return LevelBeginner
	}

	if s.TotalScore < levelBoundaries[1] {
		if flavor := roleFlavor(req.DesiredRole); flavor != "" && s.RoleMatchScore >= 5 {
			return flavor
		}
		return LevelBeginner
	}

	if s.TotalScore < levelBoundaries[2] {
		if req.HasProjectExperience && req.CodingMonths >= 6 {
			return LevelJuniorReady
		}
		if flavor := roleFlavor(req.DesiredRole); flavor != "" {
			return flavor
		}
		return LevelJuniorReady
	}

	if req.HasProjectExperience {
		return LevelIntermediate
	}
	return LevelJuniorReady
}

// roleFlavor returns the role-specialized tier, or "" when the role has none
func roleFlavor(role string) string {
	switch role {
	case RoleData:
		return LevelDataFocused
	case RoleAI:
		return LevelAIFocused
	case RoleBackend, RoleFrontend, RoleFullstack:
		return LevelWebFocused
	}
	return ""
}

// confidence is the normalized distance from the nearest score-bucket
// boundary: MinConfidence exactly at a boundary, MaxConfidence once the
// score is a full band away.
func (e *LevelEstimator) confidence(total float64) float64 {
	dist := math.Inf(1)
	for _, b := range levelBoundaries {
		if d := math.Abs(total - b); d < dist {
			dist = d
		}
	}
	norm := math.Min(dist/e.cfg.BoundaryBand, 1)
	return round2(e.cfg.MinConfidence + (e.cfg.MaxConfidence-e.cfg.MinConfidence)*norm)
}

// strengths lists the role-relevant concepts the learner already knows,
// in canonical order
func (e *LevelEstimator) strengths(req LevelRequest) []string {
	out := []string{}
	for _, c := range e.cfg.RoleConcepts[req.DesiredRole] {
		if containsConcept(req.KnownConcepts, c) {
			out = append(out, "solid grasp of "+conceptLabel(c))
		}
	}
	if len(out) == 0 {
		return []string{"motivation to start learning"}
	}
	return out
}

// areasToImprove lists the role-relevant concepts still missing, in
// canonical order
func (e *LevelEstimator) areasToImprove(req LevelRequest) []string {
	out := []string{}
	for _, c := range e.cfg.RoleConcepts[req.DesiredRole] {
		if !containsConcept(req.KnownConcepts, c) {
			out = append(out, "study "+conceptLabel(c))
		}
	}
	if len(out) == 0 {
		return []string{"keep building on your current level"}
	}
	return out
}

func (e *LevelEstimator) timeToJobReady(level string, studyHours float64) string {
	months, ok := e.cfg.BaseMonths[level]
	if !ok {
		months = 6
	}

	switch {
	case studyHours >= 6:
		months = int(float64(months) * 0.7)
	case studyHours >= 4:
		months = int(float64(months) * 0.85)
	case studyHours < 2:
		months = int(float64(months) * 1.5)
	}

	switch {
	case months < 1:
		return "under a month"
	case months == 1:
		return "about 1 month"
	case months <= 12:
		return fmt.Sprintf("about %d months", months)
	default:
		return "over a year"
	}
}

func containsConcept(concepts []string, target string) bool {
	for _, c := range concepts {
		if c == target {
			return true
		}
	}
	return false
}

func conceptLabel(concept string) string {
	switch concept {
	case ConceptVariable:
		return "variables"
	case ConceptLoop:
		return "loops"
	case ConceptFunction:
		return "functions"
	case ConceptHTTP:
		return "HTTP basics"
	case ConceptDatabase:
		return "database fundamentals"
	case ConceptGit:
		return "Git workflow"
	case ConceptAlgorithm:
		return "algorithms"
	case ConceptOOP:
		return "object-oriented programming"
	}
	return concept
}

// recommendedPath returns the staged study plan for a (level, role)
// pair, falling back to the per-level default
func (e *LevelEstimator) recommendedPath(level, role string) []string {
	if path, ok := curatedPaths[pathKey{level, role}]; ok {
		return path
	}
	return defaultPaths[level]
}

type pathKey struct {
	level string
	role  string
}

var curatedPaths = map[pathKey][]string{
	{LevelAbsoluteBeginner, RoleBackend}: {
		"Programming language basics",
		"Data structures fundamentals",
		"HTTP and how the web works",
		"First backend framework",
		"SQL basics",
		"REST API design",
		"Portfolio project",
	},
	{LevelAbsoluteBeginner, RoleFrontend}: {
		"HTML/CSS basics",
		"JavaScript basics",
		"DOM and events",
		"First frontend framework",
		"State management basics",
		"Consuming APIs",
		"Portfolio project",
	},
	{LevelAbsoluteBeginner, RoleData}: {
		"Programming language basics",
		"Data types and structures",
		"Dataframe library basics",
		"Data visualization",
		"SQL basics",
		"First analysis project",
		"Statistics fundamentals",
	},
	{LevelAbsoluteBeginner, RoleAI}: {
		"Programming language basics",
		"Math foundations (linear algebra, statistics)",
		"Numeric computing libraries",
		"Classic ML toolkit",
		"Machine learning theory basics",
		"Deep learning basics",
		"First AI project",
	},
	{LevelBeginner, RoleBackend}: {
		"Language deep dive",
		"REST API design",
		"Database deep dive",
		"Authentication and authorization",
		"Writing tests",
		"Deployment basics",
	},
	{LevelBeginner, RoleData}: {
		"Dataframe library deep dive",
		"Data cleaning techniques",
		"Statistical analysis",
		"Advanced visualization",
		"Advanced SQL",
		"Analysis project",
	},
	{LevelJuniorReady, RoleBackend}: {
		"System design basics",
		"Performance tuning",
		"CI/CD pipelines",
		"Monitoring and logging",
		"Interview preparation",
	},
	{LevelDataFocused, RoleData}: {
		"Advanced analysis techniques",
		"ML fundamentals",
		"A/B testing",
		"Dashboard building",
		"Portfolio polish",
	},
}

var defaultPaths = map[string][]string{
	LevelAbsoluteBeginner: {"Programming basics", "Data structures", "Role fundamentals course", "Practice project"},
	LevelBeginner:         {"Role deep dive", "Real-world project", "Collaboration tools (Git)", "Code review experience"},
	LevelJuniorReady:      {"Interview preparation", "Algorithm practice", "Portfolio polish", "Technical writing"},
	LevelDataFocused:      {"ML and statistics deep dive", "Analysis project", "Portfolio polish"},
	LevelWebFocused:       {"Framework deep dive", "Deployment and operations", "Portfolio polish"},
	LevelAIFocused:        {"Deep learning deep dive", "Paper reimplementation", "Competition practice"},
	LevelIntermediate:     {"System design", "Open source contribution", "Technical leadership"},
}
