package handlers

import (
	"testing"

	"pmquest/challenge"
	"pmquest/models"
)

func multipleChoiceInstance() challenge.Instance {
	return challenge.Instance{
		ID:              "inst-1",
		Title:           "Roadmap call",
		InteractionType: challenge.InteractionMultipleChoice,
		Content: challenge.Content{
			MultipleChoice: &challenge.MultipleChoiceContent{
				Scenario: "Two teams want the same sprint.",
				Options: []challenge.Option{
					{ID: "opt-a", Text: "Ship the committed feature", Quality: challenge.QualityExcellent},
					{ID: "opt-b", Text: "Split the sprint in half", Quality: challenge.QualityPoor},
				},
			},
		},
	}
}

func TestFindOptionByID(t *testing.T) {
	inst := multipleChoiceInstance()

	opt, idx, ok := findOption(inst.Content, "opt-b")
	if !ok {
		t.Fatal("option not found by ID")
	}
	if opt.ID != "opt-b" || idx != 1 {
		t.Errorf("got option %q at index %d, want opt-b at 1", opt.ID, idx)
	}
}

func TestFindOptionByText(t *testing.T) {
	inst := multipleChoiceInstance()

	opt, _, ok := findOption(inst.Content, "Ship the committed feature")
	if !ok {
		t.Fatal("option not found by text")
	}
	if opt.ID != "opt-a" {
		t.Errorf("got option %q, want opt-a", opt.ID)
	}
}

func TestGradeAnswerUsesOptionQuality(t *testing.T) {
	instances := []challenge.Instance{multipleChoiceInstance()}
	answer := models.StoredAnswer{ChallengeID: "inst-1", Answer: "opt-a"}

	qs := gradeAnswer(instances, answer, 0)
	if qs.Quality != challenge.QualityExcellent {
		t.Errorf("quality = %s, want excellent", qs.Quality)
	}
	if qs.Score != 95 {
		t.Errorf("score = %d, want 95", qs.Score)
	}
}

func TestGradeAnswerUnknownChallengeIsDeterministic(t *testing.T) {
	answer := models.StoredAnswer{ChallengeID: "missing", Answer: "free text"}

	first := gradeAnswer(nil, answer, 2)
	second := gradeAnswer(nil, answer, 2)

	if first != second {
		t.Errorf("regrade changed: %+v vs %+v", first, second)
	}
}

func TestSanitizeClientAnswersStripsGrading(t *testing.T) {
	instances := []challenge.Instance{multipleChoiceInstance()}

	// A client claiming "excellent" for the poor option must get regraded.
	submitted := []models.StoredAnswer{
		{ChallengeID: "inst-1", Answer: "opt-b", Quality: "excellent", IsCorrect: true},
	}

	clean := sanitizeClientAnswers(submitted)
	if len(clean) != 1 {
		t.Fatalf("sanitized %d answers, want 1", len(clean))
	}
	if clean[0].Quality != "" || clean[0].IsCorrect {
		t.Fatalf("grading fields survived sanitizing: %+v", clean[0])
	}
	if clean[0].Answer != "opt-b" || clean[0].ChallengeID != "inst-1" {
		t.Errorf("answer content altered: %+v", clean[0])
	}

	qs := gradeAnswer(instances, clean[0], 0)
	if qs.Quality != challenge.QualityPoor {
		t.Errorf("regraded quality = %s, want poor", qs.Quality)
	}
}

func TestDialogueOptionsFlattensTree(t *testing.T) {
	root := challenge.DialogueNode{
		Speaker: "VP Sales",
		Text:    "The client wants it friday.",
		Responses: []challenge.DialogueResponse{
			{
				ID:      "r1",
				Text:    "Push back on the date",
				Quality: challenge.QualityGood,
				Next: &challenge.DialogueNode{
					Speaker: "VP Sales",
					Text:    "They will walk.",
					Responses: []challenge.DialogueResponse{
						{ID: "r1a", Text: "Offer a scoped-down version", Quality: challenge.QualityExcellent},
					},
				},
			},
			{ID: "r2", Text: "Promise friday", Quality: challenge.QualityPoor},
		},
	}

	options := dialogueOptions(root)
	if len(options) != 3 {
		t.Fatalf("flattened %d options, want 3", len(options))
	}

	content := challenge.Content{Dialogue: &challenge.DialogueContent{Root: root}}
	opt, _, ok := findOption(content, "r1a")
	if !ok {
		t.Fatal("nested dialogue response not reachable")
	}
	if opt.Quality != challenge.QualityExcellent {
		t.Errorf("nested response quality = %s, want excellent", opt.Quality)
	}
}
