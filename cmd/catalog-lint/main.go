// Command catalog-lint validates the built-in challenge catalog: unique
// template IDs, content matching the declared interaction type, and sane
// time limits. Run it after editing catalog.go.
package main

import (
	"fmt"
	"os"

	"pmquest/challenge"
)

func main() {
	catalog := challenge.DefaultCatalog()

	exitCode := 0
	seen := map[string]bool{}
	total := 0

	for _, skill := range challenge.SkillAreas {
		for _, difficulty := range challenge.Difficulties {
			for _, tpl := range catalog.Lookup(skill, difficulty) {
				total++
				for _, problem := range lintTemplate(tpl, skill, difficulty, seen) {
					fmt.Printf("%s: %s\n", tpl.ID, problem)
					exitCode = 1
				}
			}
		}
	}

	if exitCode == 0 {
		fmt.Printf("catalog OK: %d templates\n", total)
	}
	os.Exit(exitCode)
}

func lintTemplate(tpl challenge.Template, skill challenge.SkillArea, difficulty challenge.Difficulty, seen map[string]bool) []string {
	var problems []string

	if tpl.ID == "" {
		problems = append(problems, "empty template ID")
	} else if seen[tpl.ID] {
		problems = append(problems, "duplicate template ID")
	}
	seen[tpl.ID] = true

	if tpl.Title == "" {
		problems = append(problems, "empty title")
	}
	if tpl.SkillArea != skill {
		problems = append(problems, fmt.Sprintf("filed under %s but declares %s", skill, tpl.SkillArea))
	}
	if tpl.Difficulty != difficulty {
		problems = append(problems, fmt.Sprintf("filed under %s but declares %s", difficulty, tpl.Difficulty))
	}
	if tpl.TimeLimitSeconds <= 0 || tpl.TimeLimitSeconds > 600 {
		problems = append(problems, fmt.Sprintf("time limit %d out of range", tpl.TimeLimitSeconds))
	}

	if problem := lintContent(tpl); problem != "" {
		problems = append(problems, problem)
	}

	return problems
}

func lintContent(tpl challenge.Template) string {
	c := tpl.Content
	switch tpl.InteractionType {
	case challenge.InteractionMultipleChoice:
		if c.MultipleChoice == nil {
			return "multiple-choice type without multiple-choice content"
		}
		if len(c.MultipleChoice.Options) < 2 {
			return "multiple-choice content needs at least 2 options"
		}
	case challenge.InteractionDragDrop:
		if c.DragDrop == nil {
			return "drag-drop type without drag-drop content"
		}
		if len(c.DragDrop.Stakeholders) == 0 {
			return "drag-drop content has no stakeholders"
		}
	case challenge.InteractionSlider:
		if c.Slider == nil {
			return "slider type without slider content"
		}
		if len(c.Slider.TradeOffs) == 0 {
			return "slider content has no trade-offs"
		}
	case challenge.InteractionRanking:
		if c.Ranking == nil {
			return "ranking type without ranking content"
		}
		if len(c.Ranking.Items) < 2 {
			return "ranking content needs at least 2 items"
		}
	case challenge.InteractionDialogue:
		if c.Dialogue == nil {
			return "dialogue type without dialogue content"
		}
		if len(c.Dialogue.Root.Responses) == 0 {
			return "dialogue root has no responses"
		}
	default:
		return fmt.Sprintf("unknown interaction type %q", tpl.InteractionType)
	}
	return ""
}
