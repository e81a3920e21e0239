package challenge

import (
	"math/rand"
	"testing"
)

func testSynthesizer(seed int64) *Synthesizer {
	return NewSynthesizer(rand.New(rand.NewSource(seed)))
}

func answersWithQuality(q Quality, n int) []SessionAnswer {
	answers := make([]SessionAnswer, n)
	for i := range answers {
		answers[i] = SessionAnswer{QuestionTitle: "q", Answer: "a", Quality: q}
	}
	return answers
}

func TestSynthesizeEndToEndScenario(t *testing.T) {
	// 3 excellent + 1 poor, all completed, analytics/advanced:
	// avg = (95*3+40)/4 = 76.25, base = 76.25*0.7 + 100*0.3 = 83.375,
	// x1.1 = 91.7125, rounded = 92.
	answers := append(answersWithQuality(QualityExcellent, 3), answersWithQuality(QualityPoor, 1)...)

	result := testSynthesizer(1).Synthesize(answers, SkillAnalytics, DifficultyAdvanced, 4, nil)
	if result.Score != 92 {
		t.Fatalf("score = %d, want 92", result.Score)
	}
}

func TestSynthesizeScoreClamping(t *testing.T) {
	testCases := []struct {
		name       string
		answers    []SessionAnswer
		difficulty Difficulty
		count      int
	}{
		{"all excellent", answersWithQuality(QualityExcellent, 4), DifficultyAdvanced, 4},
		{"all poor", answersWithQuality(QualityPoor, 4), DifficultyBeginner, 4},
		{"zero completion", []SessionAnswer{{QuestionTitle: "q"}, {QuestionTitle: "q"}}, DifficultyBeginner, 4},
		{"no answers at all", nil, DifficultyIntermediate, 4},
		{"zero exercise count", answersWithQuality(QualityGood, 2), DifficultyAdvanced, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := testSynthesizer(2).Synthesize(tc.answers, SkillStrategy, tc.difficulty, tc.count, nil)
			if result.Score < 10 || result.Score > 95 {
				t.Errorf("score = %d, want within [10, 95]", result.Score)
			}
		})
	}
}

func TestSynthesizeCeilingNeverExceeded(t *testing.T) {
	// All excellent at advanced: 95*0.7 + 100*0.3 = 96.5, x1.1 = 106.15.
	result := testSynthesizer(3).Synthesize(answersWithQuality(QualityExcellent, 4), SkillAnalytics, DifficultyAdvanced, 4, nil)
	if result.Score != 95 {
		t.Fatalf("score = %d, want ceiling 95", result.Score)
	}
}

func TestSynthesizeFeedbackCardinality(t *testing.T) {
	testCases := []struct {
		name    string
		answers []SessionAnswer
		skill   SkillArea
	}{
		{"strong strategy session", answersWithQuality(QualityExcellent, 4), SkillStrategy},
		{"weak session", answersWithQuality(QualityPoor, 4), SkillResearch},
		{"empty session", nil, SkillAnalytics},
		{"unknown skill area", answersWithQuality(QualityGood, 4), SkillArea("mystery")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := testSynthesizer(4).Synthesize(tc.answers, tc.skill, DifficultyBeginner, 4, nil)
			if n := len(result.Strengths); n < 1 || n > 2 {
				t.Errorf("strengths count = %d, want 1-2", n)
			}
			if n := len(result.Improvements); n < 1 || n > 2 {
				t.Errorf("improvements count = %d, want 1-2", n)
			}
			if result.ProgressStatement == "" {
				t.Error("progress statement is empty")
			}
			if result.Recommendation == "" {
				t.Error("recommendation is empty")
			}
		})
	}
}

func TestSynthesizeNeutralDefaultWhenNoQualitySignal(t *testing.T) {
	// Completed answers with no quality tags: averageQuality defaults to 65.
	// base = 65*0.7 + 100*0.3 = 75.5, beginner x1.0, rounded = 76.
	answers := []SessionAnswer{
		{QuestionTitle: "q1", Answer: "a"},
		{QuestionTitle: "q2", Answer: "b"},
	}
	result := testSynthesizer(5).Synthesize(answers, SkillDesign, DifficultyBeginner, 2, nil)
	if result.Score != 76 {
		t.Fatalf("score = %d, want 76 from the neutral quality default", result.Score)
	}
}

func TestSynthesizeProgressBands(t *testing.T) {
	// All-good, fully completed, beginner: 80*0.7 + 100*0.3 = 86.
	answers := answersWithQuality(QualityGood, 4)

	contains := func(pool []string, s string) bool {
		for _, v := range pool {
			if v == s {
				return true
			}
		}
		return false
	}

	prev := func(v int) *int { return &v }

	testCases := []struct {
		name     string
		previous *int
		pool     []string
	}{
		{"no previous score", nil, progressFirst},
		{"improved", prev(70), progressImproved},
		{"declined", prev(95), progressDeclined},
		{"consistent upper", prev(84), progressConsistent},
		{"consistent lower", prev(90), progressConsistent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := testSynthesizer(6).Synthesize(answers, SkillStrategy, DifficultyBeginner, 4, tc.previous)
			if !contains(tc.pool, result.ProgressStatement) {
				t.Errorf("progress statement %q not drawn from the expected band", result.ProgressStatement)
			}
		})
	}
}

func TestSynthesizeUnknownSkillUsesStrategyRecommendations(t *testing.T) {
	result := testSynthesizer(7).Synthesize(answersWithQuality(QualityGood, 4), SkillArea("unknown"), DifficultyBeginner, 4, nil)
	found := false
	for _, rec := range recommendationPools[SkillStrategy] {
		if rec == result.Recommendation {
			found = true
		}
	}
	if !found {
		t.Fatalf("recommendation %q not from the strategy pool", result.Recommendation)
	}
}
