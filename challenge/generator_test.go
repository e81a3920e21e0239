package challenge

import (
	"math"
	"math/rand"
	"strings"
	"testing"
)

func testGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

func TestGenerateUnknownEnumsFallBack(t *testing.T) {
	inst := testGenerator(1).Generate(SkillArea("bogus"), Difficulty("bogus"))
	if inst.SkillArea != SkillStrategy {
		t.Errorf("skill area = %s, want strategy fallback", inst.SkillArea)
	}
	if inst.Difficulty != DifficultyBeginner {
		t.Errorf("difficulty = %s, want beginner fallback", inst.Difficulty)
	}
}

func TestGenerateTimeLimitScaling(t *testing.T) {
	// Sample many generations; each instance's limit must equal
	// round(base format limit * tier multiplier).
	for _, tc := range []struct {
		difficulty Difficulty
		multiplier float64
	}{
		{DifficultyBeginner, 1.5},
		{DifficultyIntermediate, 1.0},
		{DifficultyAdvanced, 0.7},
	} {
		gen := testGenerator(2)
		for i := 0; i < 50; i++ {
			inst := gen.Generate(SkillAnalytics, tc.difficulty)
			format := formatFromTemplateID(t, inst.TemplateID)
			want := int(math.Round(float64(formatTimeLimits[format]) * tc.multiplier))
			if inst.TimeLimitSeconds != want {
				t.Fatalf("%s/%s: time limit %d, want %d", tc.difficulty, format, inst.TimeLimitSeconds, want)
			}
		}
	}
}

func formatFromTemplateID(t *testing.T, templateID string) Format {
	t.Helper()
	for _, f := range formats {
		if strings.HasSuffix(templateID, string(f)) {
			return f
		}
	}
	t.Fatalf("template id %q does not name a known format", templateID)
	return ""
}

func TestTimePressureOptionInvariant(t *testing.T) {
	// The time-pressure format always carries exactly three options with the
	// fixed delegate/act/gather quality distribution.
	gen := testGenerator(3)
	var inst Instance
	found := false
	for i := 0; i < 200 && !found; i++ {
		inst = gen.Generate(SkillStrategy, DifficultyBeginner)
		if strings.HasSuffix(inst.TemplateID, string(FormatTimePressure)) {
			found = true
		}
	}
	if !found {
		t.Fatal("time-pressure format never generated in 200 attempts")
	}

	mc := inst.Content.MultipleChoice
	if mc == nil {
		t.Fatal("time-pressure instance has no multiple-choice content")
	}
	if len(mc.Options) != 3 {
		t.Fatalf("got %d options, want exactly 3", len(mc.Options))
	}

	byID := map[string]Option{}
	for _, opt := range mc.Options {
		byID[opt.ID] = opt
	}
	if opt := byID["delegate"]; !opt.IsCorrect || opt.Quality != QualityExcellent {
		t.Errorf("delegate option = correct:%v quality:%s, want correct/excellent", opt.IsCorrect, opt.Quality)
	}
	if opt := byID["act"]; opt.Quality != QualityPoor {
		t.Errorf("act option quality = %s, want poor", opt.Quality)
	}
	if opt := byID["gather"]; opt.Quality != QualityAverage {
		t.Errorf("gather option quality = %s, want average", opt.Quality)
	}
}

func TestGenerateStakeholderCountsScaleWithDifficulty(t *testing.T) {
	for _, tc := range []struct {
		difficulty Difficulty
		want       int
	}{
		{DifficultyBeginner, 2},
		{DifficultyIntermediate, 3},
		{DifficultyAdvanced, 4},
	} {
		gen := testGenerator(4)
		checked := false
		for i := 0; i < 200 && !checked; i++ {
			inst := gen.Generate(SkillDesign, tc.difficulty)
			if inst.Content.DragDrop == nil {
				continue
			}
			checked = true
			if got := len(inst.Content.DragDrop.Stakeholders); got != tc.want {
				t.Errorf("%s: %d stakeholders, want %d", tc.difficulty, got, tc.want)
			}
		}
		if !checked {
			t.Fatalf("%s: no drag-drop format generated in 200 attempts", tc.difficulty)
		}
	}
}

func TestEnsureRenderableDegradesMalformedSlider(t *testing.T) {
	inst := Instance{
		ID:              "broken",
		Description:     "A slider with nothing to slide",
		InteractionType: InteractionSlider,
		Content:         Content{Slider: &SliderContent{Scenario: "empty"}},
	}
	ensureRenderable(&inst)

	if inst.InteractionType != InteractionMultipleChoice {
		t.Fatalf("interaction type = %s, want multiple-choice degradation", inst.InteractionType)
	}
	if inst.Content.MultipleChoice == nil || len(inst.Content.MultipleChoice.Options) == 0 {
		t.Fatal("degraded instance carries no renderable options")
	}
}

func TestGenerateAlwaysRenderable(t *testing.T) {
	gen := testGenerator(5)
	for i := 0; i < 300; i++ {
		inst := gen.Generate(SkillAreas[i%len(SkillAreas)], Difficulties[i%len(Difficulties)])
		c := inst.Content
		switch inst.InteractionType {
		case InteractionMultipleChoice:
			if c.MultipleChoice == nil || len(c.MultipleChoice.Options) == 0 {
				t.Fatalf("instance %s: multiple-choice without options", inst.ID)
			}
		case InteractionDragDrop:
			if c.DragDrop == nil || len(c.DragDrop.Stakeholders) == 0 {
				t.Fatalf("instance %s: drag-drop without stakeholders", inst.ID)
			}
		case InteractionSlider:
			if c.Slider == nil || len(c.Slider.TradeOffs) == 0 {
				t.Fatalf("instance %s: slider without trade-offs", inst.ID)
			}
		case InteractionRanking:
			if c.Ranking == nil || len(c.Ranking.Items) == 0 {
				t.Fatalf("instance %s: ranking without items", inst.ID)
			}
		case InteractionDialogue:
			if c.Dialogue == nil || len(c.Dialogue.Root.Responses) == 0 {
				t.Fatalf("instance %s: dialogue without responses", inst.ID)
			}
		default:
			t.Fatalf("instance %s: unknown interaction type %s", inst.ID, inst.InteractionType)
		}
	}
}
