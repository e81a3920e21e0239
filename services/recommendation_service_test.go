package services

import (
	"strings"
	"testing"
)

func TestFallbackRecommendationNoHistory(t *testing.T) {
	svc := &RecommendationService{}

	text := svc.fallbackRecommendation(nil)
	if !strings.Contains(text, "strategy") {
		t.Errorf("empty history should suggest a strategy starting point, got %q", text)
	}
}

func TestFallbackRecommendationPicksWeakestSkill(t *testing.T) {
	svc := &RecommendationService{}

	history := []SessionSummary{
		{SkillArea: "strategy", Difficulty: "beginner", Score: 80},
		{SkillArea: "analytics", Difficulty: "beginner", Score: 42},
		{SkillArea: "design", Difficulty: "intermediate", Score: 71},
	}

	text := svc.fallbackRecommendation(history)
	if text != fallbackBySkill["analytics"] {
		t.Errorf("expected analytics fallback for lowest score, got %q", text)
	}
}

func TestFallbackRecommendationUnknownSkill(t *testing.T) {
	svc := &RecommendationService{}

	history := []SessionSummary{
		{SkillArea: "negotiation", Difficulty: "beginner", Score: 10},
	}

	text := svc.fallbackRecommendation(history)
	if text != fallbackBySkill["strategy"] {
		t.Errorf("unknown skill should fall back to strategy text, got %q", text)
	}
}

func TestRecommendWithoutAPIKeyUsesFallback(t *testing.T) {
	svc := &RecommendationService{}

	text, fromLLM := svc.Recommend("taylor", nil)
	if fromLLM {
		t.Error("no API key configured but response claimed to be generated")
	}
	if text == "" {
		t.Error("fallback recommendation is empty")
	}
}
