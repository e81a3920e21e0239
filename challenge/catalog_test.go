package challenge

import "testing"

func TestLookupNeverReturnsNil(t *testing.T) {
	catalog := DefaultCatalog()

	if got := catalog.Lookup(SkillArea("unknown"), DifficultyBeginner); got == nil {
		t.Error("unknown skill area returned nil, want empty slice")
	}
	if got := catalog.Lookup(SkillStrategy, Difficulty("unknown")); got == nil {
		t.Error("unknown difficulty returned nil, want empty slice")
	}
}

func TestCatalogKeysMatchTemplateFields(t *testing.T) {
	catalog := DefaultCatalog()
	ids := map[string]bool{}

	for _, skill := range SkillAreas {
		for _, difficulty := range Difficulties {
			for _, tpl := range catalog.Lookup(skill, difficulty) {
				if tpl.SkillArea != skill {
					t.Errorf("template %s filed under %s but declares %s", tpl.ID, skill, tpl.SkillArea)
				}
				if tpl.Difficulty != difficulty {
					t.Errorf("template %s filed under %s but declares %s", tpl.ID, difficulty, tpl.Difficulty)
				}
				if ids[tpl.ID] {
					t.Errorf("duplicate template id %s", tpl.ID)
				}
				ids[tpl.ID] = true
				if tpl.TimeLimitSeconds <= 0 {
					t.Errorf("template %s has no time limit", tpl.ID)
				}
			}
		}
	}

	if len(ids) == 0 {
		t.Fatal("default catalog is empty")
	}
}

func TestCatalogContentMatchesInteractionType(t *testing.T) {
	catalog := DefaultCatalog()
	for _, skill := range SkillAreas {
		for _, difficulty := range Difficulties {
			for _, tpl := range catalog.Lookup(skill, difficulty) {
				c := tpl.Content
				var ok bool
				switch tpl.InteractionType {
				case InteractionMultipleChoice:
					ok = c.MultipleChoice != nil && len(c.MultipleChoice.Options) > 0
				case InteractionDragDrop:
					ok = c.DragDrop != nil && len(c.DragDrop.Stakeholders) > 0
				case InteractionSlider:
					ok = c.Slider != nil && len(c.Slider.TradeOffs) > 0
				case InteractionRanking:
					ok = c.Ranking != nil && len(c.Ranking.Items) > 0
				case InteractionDialogue:
					ok = c.Dialogue != nil && len(c.Dialogue.Root.Responses) > 0
				}
				if !ok {
					t.Errorf("template %s: content does not match interaction type %s", tpl.ID, tpl.InteractionType)
				}
			}
		}
	}
}

func TestEveryCatalogBucketIsPopulated(t *testing.T) {
	catalog := DefaultCatalog()
	for _, skill := range SkillAreas {
		for _, difficulty := range Difficulties {
			if len(catalog.Lookup(skill, difficulty)) == 0 {
				t.Errorf("catalog bucket %s/%s is empty", skill, difficulty)
			}
		}
	}
}

func TestInstantiateCopiesTemplate(t *testing.T) {
	tpl := DefaultCatalog().Lookup(SkillStrategy, DifficultyBeginner)[0]
	inst := tpl.Instantiate("fresh-id")

	if inst.ID != "fresh-id" {
		t.Errorf("instance id = %s, want fresh-id", inst.ID)
	}
	if inst.TemplateID != tpl.ID {
		t.Errorf("template id = %s, want %s", inst.TemplateID, tpl.ID)
	}
	if inst.Title != tpl.Title || inst.SkillArea != tpl.SkillArea || inst.TimeLimitSeconds != tpl.TimeLimitSeconds {
		t.Error("instance did not copy template fields")
	}
}
