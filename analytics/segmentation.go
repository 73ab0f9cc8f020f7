package analytics

import (
	"fmt"
	"sort"
	"strings"

	"edulytics/models"
)

// Ten fixed 10-point progress bands covering [0,100). A user at exactly
// 100% counts into the last band.
const (
	segmentWidth = 10
	segmentCount = 10
)

// UnspecifiedReason is the bucket for dropout logs without a reason
const UnspecifiedReason = "unspecified"

// riskColors are the chart colors per risk level
var riskColors = map[string]string{
	RiskCritical: "#dc3545",
	RiskHigh:     "#fd7e14",
	RiskMedium:   "#ffc107",
	RiskLow:      "#28a745",
}

// SegmentStat is the per-band funnel result
type SegmentStat struct {
	SegmentStart int     `json:"segment_start"`
	SegmentEnd   int     `json:"segment_end"`
	SegmentLabel string  `json:"segment_label"`
	UsersReached int     `json:"users_reached"`
	DropoutCount int     `json:"dropout_count"`
	DropoutRate  float64 `json:"dropout_rate"`
	RiskLevel    string  `json:"risk_level"`
}

// DangerZone is a segment whose dropout rate crossed the alert threshold
type DangerZone struct {
	Segment        string  `json:"segment"`
	DropoutRate    float64 `json:"dropout_rate"`
	RiskLevel      string  `json:"risk_level"`
	Recommendation string  `json:"recommendation"`
}

// ReasonStat is one tallied dropout reason
type ReasonStat struct {
	Reason     string  `json:"reason"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CourseSummary aggregates course-level dropout figures. Rates come from
// enrollment status, not logs, so repeat watch events are not double counted.
type CourseSummary struct {
	CourseID            uint    `json:"course_id"`
	CourseCode          string  `json:"course_code"`
	Title               string  `json:"title"`
	Category            string  `json:"category"`
	Difficulty          string  `json:"difficulty"`
	TotalEnrollments    int     `json:"total_enrollments"`
	TotalCompleted      int     `json:"total_completed"`
	TotalDropouts       int     `json:"total_dropouts"`
	CompletionRate      float64 `json:"completion_rate"`
	OverallDropoutRate  float64 `json:"overall_dropout_rate"`
	AverageDropoutPoint float64 `json:"average_dropout_point"`
	PeakSegment         string  `json:"peak_dropout_segment"`
	PeakDropoutCount    int     `json:"peak_dropout_count"`
}

// ChartData is the bar-chart payload for the dashboard
type ChartData struct {
	Labels        []string  `json:"labels"`
	DropoutCounts []int     `json:"dropout_counts"`
	DropoutRates  []float64 `json:"dropout_rates"`
	Colors        []string  `json:"colors"`
}

// Analyzer turns a course's raw progress logs into the funnel shape and
// risk map. Pure and read-only; safe for concurrent use.
type Analyzer struct {
	cfg SegmentationConfig
}

// NewAnalyzer builds an analyzer with the given threshold set
func NewAnalyzer(cfg SegmentationConfig) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// segmentLabel renders "start-end%"
func segmentLabel(start int) string {
	return fmt.Sprintf("%d-%d%%", start, start+segmentWidth)
}

// segmentIndex maps a progress percentage to its band index
func segmentIndex(progress float64) int {
	idx := int(progress) / segmentWidth
	if idx >= segmentCount {
		idx = segmentCount - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// AnalyzeSegments computes per-band reach, dropout counts and risk.
// users_reached is non-increasing across bands: a user reached a band
// iff their maximum observed progress is at least the band start.
func (a *Analyzer) AnalyzeSegments(logs []models.LearningLog) []SegmentStat {
	maxProgress := make(map[uint]float64)
	dropoutUsers := make([]map[uint]bool, segmentCount)
	for i := range dropoutUsers {
		dropoutUsers[i] = make(map[uint]bool)
	}

	for _, l := range logs {
		if p, ok := maxProgress[l.UserID]; !ok || l.ProgressPercent > p {
			maxProgress[l.UserID] = l.ProgressPercent
		}
		if l.IsDropout {
			dropoutUsers[segmentIndex(l.ProgressPercent)][l.UserID] = true
		}
	}

	stats := make([]SegmentStat, segmentCount)
	for i := 0; i < segmentCount; i++ {
		start := i * segmentWidth

		reached := 0
		for _, p := range maxProgress {
			if p >= float64(start) {
				reached++
			}
		}

		count := len(dropoutUsers[i])
		rate := 0.0
		if reached > 0 {
			rate = round2(float64(count) / float64(reached) * 100)
		}

		stats[i] = SegmentStat{
			SegmentStart: start,
			SegmentEnd:   start + segmentWidth,
			SegmentLabel: segmentLabel(start),
			UsersReached: reached,
			DropoutCount: count,
			DropoutRate:  rate,
			RiskLevel:    a.cfg.Risk.Classify(rate),
		}
	}
	return stats
}

// DangerZones filters segments at or above the threshold, highest rate
// first. A non-positive threshold falls back to the configured default.
func (a *Analyzer) DangerZones(segments []SegmentStat, threshold float64) []DangerZone {
	if threshold <= 0 {
		threshold = a.cfg.DangerThreshold
	}

	zones := []DangerZone{}
	for _, seg := range segments {
		if seg.DropoutRate >= threshold {
			zones = append(zones, DangerZone{
				Segment:        seg.SegmentLabel,
				DropoutRate:    seg.DropoutRate,
				RiskLevel:      seg.RiskLevel,
				Recommendation: a.cfg.ZoneAdvice[seg.RiskLevel],
			})
		}
	}

	// Segments come in ascending start order, so equal rates stay in
	// that order after the stable sort.
	sort.SliceStable(zones, func(i, j int) bool {
		return zones[i].DropoutRate > zones[j].DropoutRate
	})
	return zones
}

// DropoutReasons tallies the free-text reasons of all dropout-flagged
// logs. Counts always sum to the number of dropout logs; percentage is
// against that total, not enrollments. Ties keep first-seen order.
func (a *Analyzer) DropoutReasons(logs []models.LearningLog) []ReasonStat {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	total := 0

	for _, l := range logs {
		if !l.IsDropout {
			continue
		}
		reason := strings.TrimSpace(l.DropoutReason)
		if reason == "" {
			reason = UnspecifiedReason
		}
		if _, ok := counts[reason]; !ok {
			firstSeen[reason] = order
			order++
		}
		counts[reason]++
		total++
	}

	reasons := make([]ReasonStat, 0, len(counts))
	for reason, count := range counts {
		pct := 0.0
		if total > 0 {
			pct = round2(float64(count) / float64(total) * 100)
		}
		reasons = append(reasons, ReasonStat{Reason: reason, Count: count, Percentage: pct})
	}

	sort.Slice(reasons, func(i, j int) bool {
		if reasons[i].Count != reasons[j].Count {
			return reasons[i].Count > reasons[j].Count
		}
		return firstSeen[reasons[i].Reason] < firstSeen[reasons[j].Reason]
	})
	return reasons
}

// Summarize builds the course-level aggregate. A course with zero
// enrollments yields a fully zeroed summary, never an error.
func (a *Analyzer) Summarize(course *models.Course, enrollments []models.Enrollment, logs []models.LearningLog, segments []SegmentStat) CourseSummary {
	summary := CourseSummary{PeakSegment: "n/a"}
	if course != nil {
		summary.CourseID = course.ID
		summary.CourseCode = course.CourseCode
		summary.Title = course.Title
		summary.Category = course.Category
		summary.Difficulty = course.Difficulty
	}

	completed, dropped := 0, 0
	for _, e := range enrollments {
		switch e.Status {
		case models.EnrollmentCompleted:
			completed++
		case models.EnrollmentDropped:
			dropped++
		}
	}
	summary.TotalEnrollments = len(enrollments)
	summary.TotalCompleted = completed
	summary.TotalDropouts = dropped
	if len(enrollments) > 0 {
		summary.CompletionRate = round2(float64(completed) / float64(len(enrollments)) * 100)
		summary.OverallDropoutRate = round2(float64(dropped) / float64(len(enrollments)) * 100)
	}

	sum, n := 0.0, 0
	for _, l := range logs {
		if l.IsDropout {
			sum += l.ProgressPercent
			n++
		}
	}
	if n > 0 {
		summary.AverageDropoutPoint = round2(sum / float64(n))
	}

	// Peak segment: max dropout count, lowest band on ties
	peak := -1
	for _, seg := range segments {
		if seg.DropoutCount > 0 && (peak < 0 || seg.DropoutCount > summary.PeakDropoutCount) {
			peak = seg.SegmentStart
			summary.PeakDropoutCount = seg.DropoutCount
			summary.PeakSegment = seg.SegmentLabel
		}
	}
	return summary
}

// BuildChartData shapes segment stats for the dashboard bar chart
func (a *Analyzer) BuildChartData(segments []SegmentStat) ChartData {
	chart := ChartData{
		Labels:        make([]string, len(segments)),
		DropoutCounts: make([]int, len(segments)),
		DropoutRates:  make([]float64, len(segments)),
		Colors:        make([]string, len(segments)),
	}
	for i, seg := range segments {
		chart.Labels[i] = seg.SegmentLabel
		chart.DropoutCounts[i] = seg.DropoutCount
		chart.DropoutRates[i] = seg.DropoutRate
		chart.Colors[i] = riskColors[seg.RiskLevel]
	}
	return chart
}
