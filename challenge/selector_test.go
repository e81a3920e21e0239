package challenge

import (
	"math/rand"
	"testing"
	"time"
)

func testSelector(seed int64) *Selector {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return NewSelector(DefaultCatalog(), rand.New(rand.NewSource(seed)), func() time.Time { return fixed })
}

func TestSelectSessionIDUniqueness(t *testing.T) {
	sel := testSelector(42)
	for call := 0; call < 100; call++ {
		instances, err := sel.SelectSession(SkillStrategy, DifficultyBeginner, 4)
		if err != nil {
			t.Fatalf("call %d: %v", call, err)
		}
		if len(instances) != 4 {
			t.Fatalf("call %d: got %d instances, want 4", call, len(instances))
		}
		seen := map[string]bool{}
		for _, inst := range instances {
			if seen[inst.ID] {
				t.Fatalf("call %d: duplicate id %q", call, inst.ID)
			}
			seen[inst.ID] = true
		}
	}
}

func TestSelectSessionTimeLimitOverride(t *testing.T) {
	sel := testSelector(1)
	instances, err := sel.SelectSession(SkillAnalytics, DifficultyAdvanced, 4)
	if err != nil {
		t.Fatal(err)
	}
	for _, inst := range instances {
		if inst.TimeLimitSeconds != SessionTimeLimitSeconds {
			t.Errorf("instance %s: time limit %d, want %d", inst.ID, inst.TimeLimitSeconds, SessionTimeLimitSeconds)
		}
	}
}

func TestSelectSessionDifficultyWidening(t *testing.T) {
	sel := testSelector(7)
	instances, err := sel.SelectSession(SkillStrategy, Difficulty("nonexistent-difficulty"), 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(instances) != 4 {
		t.Fatalf("got %d instances, want 4", len(instances))
	}
	for _, inst := range instances {
		if inst.SkillArea != SkillStrategy {
			t.Errorf("instance %s: skill area %s, want strategy preserved by the widened fallback", inst.ID, inst.SkillArea)
		}
	}
}

func TestSelectSessionSkillAreaFallback(t *testing.T) {
	sel := testSelector(9)
	instances, err := sel.SelectSession(SkillArea("nonexistent-area"), DifficultyBeginner, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(instances) != 4 {
		t.Fatalf("got %d instances, want 4", len(instances))
	}
	// First non-empty bucket in catalog order is strategy/beginner.
	for _, inst := range instances {
		if inst.SkillArea != SkillStrategy || inst.Difficulty != DifficultyBeginner {
			t.Errorf("instance %s: got %s/%s, want strategy/beginner from the first non-empty bucket",
				inst.ID, inst.SkillArea, inst.Difficulty)
		}
	}
}

func TestSelectSessionWrapAroundWhenPoolIsSmall(t *testing.T) {
	small := Catalog{
		SkillResearch: {
			DifficultyBeginner: researchBeginner[:1],
		},
	}
	sel := NewSelector(small, rand.New(rand.NewSource(3)), nil)

	instances, err := sel.SelectSession(SkillResearch, DifficultyBeginner, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(instances) != 4 {
		t.Fatalf("got %d instances, want 4 via wrap-around", len(instances))
	}
	seen := map[string]bool{}
	for _, inst := range instances {
		if seen[inst.ID] {
			t.Fatalf("duplicate id %q after wrap-around", inst.ID)
		}
		seen[inst.ID] = true
		if inst.TemplateID != researchBeginner[0].ID {
			t.Errorf("instance %s: template %s, want repeats of the only candidate", inst.ID, inst.TemplateID)
		}
	}
}

func TestSelectSessionEmptyCatalog(t *testing.T) {
	sel := NewSelector(Catalog{}, rand.New(rand.NewSource(5)), nil)
	if _, err := sel.SelectSession(SkillStrategy, DifficultyBeginner, 4); err != ErrNoChallenges {
		t.Fatalf("got err %v, want ErrNoChallenges", err)
	}
}

func TestSelectSessionDefaultCount(t *testing.T) {
	sel := testSelector(11)
	instances, err := sel.SelectSession(SkillDesign, DifficultyBeginner, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(instances) != DefaultSessionSize {
		t.Fatalf("got %d instances, want default %d", len(instances), DefaultSessionSize)
	}
}
