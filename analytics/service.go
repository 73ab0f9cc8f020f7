package analytics

import (
	"fmt"
	"sync"
	"time"

	"edulytics/models"

	"golang.org/x/sync/singleflight"
)

// Store is the read-only repository adapter the engine computes over.
// It is the sole I/O boundary; every call fetches a consistent snapshot.
type Store interface {
	FetchCourse(courseID uint) (*models.Course, error)
	FetchLogs(courseID uint) ([]models.LearningLog, error)
	FetchEnrollments(courseID uint) ([]models.Enrollment, error)
	FetchCourseStats() ([]CourseStats, error)
}

// AnalysisSink optionally persists computed segment rows (write-through
// cache). The engine works without one.
type AnalysisSink interface {
	ReplaceAnalysis(courseID uint, rows []models.DropoutAnalysis) error
}

// CourseAnalysis is the complete per-course analysis payload
type CourseAnalysis struct {
	Summary        CourseSummary `json:"summary"`
	Segments       []SegmentStat `json:"segments"`
	Chart          ChartData     `json:"chart_data"`
	DangerZones    []DangerZone  `json:"danger_zones"`
	DropoutReasons []ReasonStat  `json:"dropout_reasons"`
	Threshold      float64       `json:"threshold"`
	AnalyzedAt     time.Time     `json:"analyzed_at"`
}

// ServiceOptions tune the facade
type ServiceOptions struct {
	Segmentation SegmentationConfig
	Estimator    EstimatorConfig
	Recommender  RecommenderConfig
	CacheTTL     time.Duration // zero disables the analysis cache
	Sink         AnalysisSink  // optional
}

// Service orchestrates the three pure components over one snapshot
// fetch per request. Computed analyses are cached per course key with a
// TTL; singleflight guarantees at most one computation per key under
// concurrent access.
type Service struct {
	store       Store
	sink        AnalysisSink
	analyzer    *Analyzer
	estimator   *LevelEstimator
	recommender *Recommender

	cacheTTL time.Duration
	flight   singleflight.Group
	mu       sync.Mutex
	cache    map[string]cacheEntry
}

type cacheEntry struct {
	analysis *CourseAnalysis
	expires  time.Time
}

// NewService wires the engine together
func NewService(store Store, opts ServiceOptions) *Service {
	return &Service{
		store:       store,
		sink:        opts.Sink,
		analyzer:    NewAnalyzer(opts.Segmentation),
		estimator:   NewLevelEstimator(opts.Estimator),
		recommender: NewRecommender(opts.Recommender),
		cacheTTL:    opts.CacheTTL,
		cache:       make(map[string]cacheEntry),
	}
}

// NewDefaultService builds a Service with the production tables
func NewDefaultService(store Store, cacheTTL time.Duration, sink AnalysisSink) *Service {
	return NewService(store, ServiceOptions{
		Segmentation: DefaultSegmentationConfig(),
		Estimator:    DefaultEstimatorConfig(),
		Recommender:  DefaultRecommenderConfig(),
		CacheTTL:     cacheTTL,
		Sink:         sink,
	})
}

// AnalyzeCourse produces the funnel, risk map, danger zones and reason
// breakdown for one course. A threshold <= 0 uses the configured
// default. A course with no enrollments yields a zeroed result.
func (s *Service) AnalyzeCourse(courseID uint, threshold float64) (*CourseAnalysis, error) {
	key := fmt.Sprintf("course:%d:threshold:%g", courseID, threshold)

	if s.cacheTTL > 0 {
		s.mu.Lock()
		if entry, ok := s.cache[key]; ok && time.Now().Before(entry.expires) {
			s.mu.Unlock()
			return entry.analysis, nil
		}
		s.mu.Unlock()
	}

	result, err, _ := s.flight.Do(key, func() (interface{}, error) {
		analysis, err := s.computeAnalysis(courseID, threshold)
		if err != nil {
			return nil, err
		}
		if s.cacheTTL > 0 {
			s.mu.Lock()
			s.cache[key] = cacheEntry{analysis: analysis, expires: time.Now().Add(s.cacheTTL)}
			s.mu.Unlock()
		}
		return analysis, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*CourseAnalysis), nil
}

func (s *Service) computeAnalysis(courseID uint, threshold float64) (*CourseAnalysis, error) {
	course, err := s.store.FetchCourse(courseID)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.store.FetchEnrollments(courseID)
	if err != nil {
		return nil, err
	}
	logs, err := s.store.FetchLogs(courseID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	segments := s.analyzer.AnalyzeSegments(logs)
	analysis := &CourseAnalysis{
		Summary:        s.analyzer.Summarize(course, enrollments, logs, segments),
		Segments:       segments,
		Chart:          s.analyzer.BuildChartData(segments),
		DangerZones:    s.analyzer.DangerZones(segments, threshold),
		DropoutReasons: s.analyzer.DropoutReasons(logs),
		Threshold:      threshold,
		AnalyzedAt:     now,
	}
	if analysis.Threshold <= 0 {
		analysis.Threshold = s.analyzer.cfg.DangerThreshold
	}

	if s.sink != nil {
		rows := make([]models.DropoutAnalysis, len(segments))
		for i, seg := range segments {
			rows[i] = models.DropoutAnalysis{
				CourseID:          courseID,
				SegmentStart:      seg.SegmentStart,
				SegmentEnd:        seg.SegmentEnd,
				TotalUsersReached: seg.UsersReached,
				DropoutCount:      seg.DropoutCount,
				DropoutRate:       seg.DropoutRate,
				RiskLevel:         seg.RiskLevel,
				AnalyzedAt:        now,
			}
		}
		if err := s.sink.ReplaceAnalysis(courseID, rows); err != nil {
			// Persisting is an optimization; the computed result is
			// still valid when the sink fails.
			return analysis, nil
		}
	}
	return analysis, nil
}

// CourseList returns the aggregate stats of every active course
func (s *Service) CourseList() ([]CourseStats, error) {
	return s.store.FetchCourseStats()
}

// EstimateLevel runs the rule-based skill-tier estimation
func (s *Service) EstimateLevel(req LevelRequest) LevelEstimate {
	return s.estimator.Estimate(req)
}

// QuickRecommend scores the catalog for a role/experience pair
func (s *Service) QuickRecommend(role, experienceLevel string, completed []string, limit int) ([]Recommendation, error) {
	catalog, err := s.store.FetchCourseStats()
	if err != nil {
		return nil, err
	}
	return s.recommender.QuickRecommend(role, experienceLevel, completed, catalog, limit), nil
}

// BuildLearningPath composes the staged study roadmap. Known concepts
// are accepted for interface parity but do not affect stage selection;
// only level and role do.
func (s *Service) BuildLearningPath(level, role string, knownConcepts, completed, inProgress []string) ([]PathStage, error) {
	catalog, err := s.store.FetchCourseStats()
	if err != nil {
		return nil, err
	}
	return s.recommender.LearningPath(level, role, completed, inProgress, catalog), nil
}

// PopularCourses ranks active courses by enrollments
func (s *Service) PopularCourses(limit int) ([]CourseStats, error) {
	catalog, err := s.store.FetchCourseStats()
	if err != nil {
		return nil, err
	}
	return s.recommender.PopularCourses(catalog, limit), nil
}
