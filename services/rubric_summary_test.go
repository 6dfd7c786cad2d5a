package services

import (
	"math"
	"testing"

	"owlrecruit-api/models"

	"github.com/google/go-cmp/cmp"
)

func f64(v float64) *float64 { return &v }

func TestComputeRubricSummaryScenarios(t *testing.T) {
	tests := []struct {
		name    string
		rubric  []models.RubricCriterion
		reviews []models.ScoreMap
		want    RubricSummary
	}{
		{
			name:    "averages valid scores and skips nil reviews",
			rubric:  []models.RubricCriterion{{Name: "Teamwork", MaxValue: 10}},
			reviews: []models.ScoreMap{{"Teamwork": 8}, {"Teamwork": 6}, nil},
			want: RubricSummary{
				Criteria:                []CriterionSummary{{Name: "Teamwork", Average: f64(7), MaxValue: 10, ValidScoreCount: 2}},
				OverallAverage:          7,
				OverallMax:              10,
				ContributingReviewCount: 2,
				HasValidScores:          true,
			},
		},
		{
			name:    "unscored criterion stays nil and adds nothing",
			rubric:  []models.RubricCriterion{{Name: "A", MaxValue: 5}, {Name: "B", MaxValue: 5}},
			reviews: []models.ScoreMap{{"A": 5}},
			want: RubricSummary{
				Criteria: []CriterionSummary{
					{Name: "A", Average: f64(5), MaxValue: 5, ValidScoreCount: 1},
					{Name: "B", Average: nil, MaxValue: 5, ValidScoreCount: 0},
				},
				OverallAverage:          5,
				OverallMax:              10,
				ContributingReviewCount: 1,
				HasValidScores:          true,
			},
		},
		{
			name:    "no reviews",
			rubric:  []models.RubricCriterion{{Name: "A", MaxValue: 5}, {Name: "B", MaxValue: 3}},
			reviews: nil,
			want: RubricSummary{
				Criteria: []CriterionSummary{
					{Name: "A", MaxValue: 5},
					{Name: "B", MaxValue: 3},
				},
				OverallMax: 8,
			},
		},
		{
			name:    "empty rubric",
			rubric:  nil,
			reviews: []models.ScoreMap{{"A": 1}},
			want:    RubricSummary{Criteria: []CriterionSummary{}},
		},
		{
			name:    "review without matching keys does not contribute",
			rubric:  []models.RubricCriterion{{Name: "A", MaxValue: 5}},
			reviews: []models.ScoreMap{{"Other": 3}, {"A": 2}, {}},
			want: RubricSummary{
				Criteria:                []CriterionSummary{{Name: "A", Average: f64(2), MaxValue: 5, ValidScoreCount: 1}},
				OverallAverage:          2,
				OverallMax:              5,
				ContributingReviewCount: 1,
				HasValidScores:          true,
			},
		},
		{
			name:   "review scoring several criteria counts once",
			rubric: []models.RubricCriterion{{Name: "A", MaxValue: 5}, {Name: "B", MaxValue: 10}},
			reviews: []models.ScoreMap{
				{"A": 4, "B": 10},
				{"A": 2},
			},
			want: RubricSummary{
				Criteria: []CriterionSummary{
					{Name: "A", Average: f64(3), MaxValue: 5, ValidScoreCount: 2},
					{Name: "B", Average: f64(10), MaxValue: 10, ValidScoreCount: 1},
				},
				OverallAverage:          13,
				OverallMax:              15,
				ContributingReviewCount: 2,
				HasValidScores:          true,
			},
		},
		{
			name:   "zero is a real score",
			rubric: []models.RubricCriterion{{Name: "A", MaxValue: 5}},
			reviews: []models.ScoreMap{
				{"A": 0},
			},
			want: RubricSummary{
				Criteria:                []CriterionSummary{{Name: "A", Average: f64(0), MaxValue: 5, ValidScoreCount: 1}},
				OverallMax:              5,
				ContributingReviewCount: 1,
				HasValidScores:          true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRubricSummary(tt.rubric, tt.reviews)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("summary mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeRubricSummaryExcludesInvalidScores(t *testing.T) {
	rubric := []models.RubricCriterion{{Name: "A", MaxValue: 5}}
	reviews := []models.ScoreMap{
		{"A": 5},
		{"A": 6},
		{"A": -1},
		{"A": math.NaN()},
		{"A": math.Inf(1)},
	}

	got := ComputeRubricSummary(rubric, reviews)

	if got.Criteria[0].ValidScoreCount != 1 {
		t.Fatalf("expected only the boundary score to count, got %d", got.Criteria[0].ValidScoreCount)
	}
	if got.Criteria[0].Average == nil || *got.Criteria[0].Average != 5 {
		t.Fatalf("expected average 5, got %v", got.Criteria[0].Average)
	}
	if got.ContributingReviewCount != 1 {
		t.Fatalf("expected 1 contributing review, got %d", got.ContributingReviewCount)
	}
}

func TestComputeRubricSummaryProperties(t *testing.T) {
	rubric := []models.RubricCriterion{
		{Name: "Teamwork", MaxValue: 10},
		{Name: "Craft", MaxValue: 5},
		{Name: "Vision", MaxValue: 2.5},
	}
	all := []models.ScoreMap{
		{"Teamwork": 9, "Craft": 1},
		nil,
		{"Vision": 3},
		{"Craft": 5, "Vision": 2},
		{},
	}

	for m := 0; m <= len(all); m++ {
		reviews := all[:m]
		got := ComputeRubricSummary(rubric, reviews)

		if got.OverallMax != 17.5 {
			t.Fatalf("m=%d: overallMax = %v, want 17.5", m, got.OverallMax)
		}
		if got.ContributingReviewCount > m {
			t.Fatalf("m=%d: contributing %d exceeds review count", m, got.ContributingReviewCount)
		}

		again := ComputeRubricSummary(rubric, reviews)
		if diff := cmp.Diff(got, again); diff != "" {
			t.Fatalf("m=%d: repeated call differs:\n%s", m, diff)
		}
	}

	got := ComputeRubricSummary(rubric, all)
	if got.ContributingReviewCount != 2 {
		t.Fatalf("expected 2 contributing reviews, got %d", got.ContributingReviewCount)
	}
	if got.Criteria[2].Average == nil || *got.Criteria[2].Average != 2 {
		t.Fatalf("expected Vision average 2 (3 is above max), got %v", got.Criteria[2].Average)
	}
}

func TestIsValidScore(t *testing.T) {
	cases := []struct {
		value, max float64
		want       bool
	}{
		{0, 10, true},
		{10, 10, true},
		{11, 10, false},
		{10.0001, 10, false},
		{-0.5, 10, false},
		{math.NaN(), 10, false},
		{math.Inf(-1), 10, false},
	}
	for _, c := range cases {
		if got := IsValidScore(c.value, c.max); got != c.want {
			t.Fatalf("IsValidScore(%v, %v) = %v, want %v", c.value, c.max, got, c.want)
		}
	}
}
