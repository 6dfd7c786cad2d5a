package services

import (
	"math"

	"owlrecruit-api/models"
)

// CriterionSummary is the aggregate for one rubric criterion. Average is nil
// when no review gave the criterion a valid score.
type CriterionSummary struct {
	Name            string   `json:"name"`
	Average         *float64 `json:"average"`
	MaxValue        float64  `json:"maxVal"`
	ValidScoreCount int      `json:"validScoreCount"`
}

// RubricSummary aggregates every review of one application against a rubric.
// It is computed on read and never stored.
type RubricSummary struct {
	Criteria                []CriterionSummary `json:"criteria"`
	OverallAverage          float64            `json:"overallAverage"`
	OverallMax              float64            `json:"overallMax"`
	ContributingReviewCount int                `json:"contributingReviewCount"`
	HasValidScores          bool               `json:"hasValidScores"`
}

// IsValidScore reports whether value is a usable score for a criterion
// capped at maxValue.
func IsValidScore(value, maxValue float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	return value >= 0 && value <= maxValue
}

// ComputeRubricSummary averages the valid scores of each criterion across
// reviews. Nil reviews are skipped. OverallAverage is the sum of the
// non-nil criterion averages, not a mean.
func ComputeRubricSummary(rubric []models.RubricCriterion, reviews []models.ScoreMap) RubricSummary {
	summary := RubricSummary{
		Criteria: make([]CriterionSummary, 0, len(rubric)),
	}
	contributed := make([]bool, len(reviews))

	for _, criterion := range rubric {
		summary.OverallMax += criterion.MaxValue

		var sum float64
		count := 0
		for i, scores := range reviews {
			if scores == nil {
				continue
			}
			value, ok := scores[criterion.Name]
			if !ok || !IsValidScore(value, criterion.MaxValue) {
				continue
			}
			sum += value
			count++
			contributed[i] = true
		}

		cs := CriterionSummary{
			Name:            criterion.Name,
			MaxValue:        criterion.MaxValue,
			ValidScoreCount: count,
		}
		if count > 0 {
			avg := sum / float64(count)
			cs.Average = &avg
			summary.OverallAverage += avg
			summary.HasValidScores = true
		}
		summary.Criteria = append(summary.Criteria, cs)
	}

	for _, ok := range contributed {
		if ok {
			summary.ContributingReviewCount++
		}
	}
	return summary
}
