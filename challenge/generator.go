// challenge/generator.go - Procedural challenge generation
package challenge

import (
	"fmt"
	"math"
	"math/rand"
)

// Format is one of the seven procedural interaction archetypes.
type Format string

const (
	FormatTimePressure       Format = "time-pressure"
	FormatStakeholderTension Format = "stakeholder-tension"
	FormatTradeOff           Format = "trade-off"
	FormatPostMortem         Format = "post-mortem"
	FormatResourceAllocator  Format = "resource-allocator"
	FormatDialogueTree       Format = "dialogue-tree"
	FormatRetrospective      Format = "retrospective-fix"
)

var formats = []Format{
	FormatTimePressure,
	FormatStakeholderTension,
	FormatTradeOff,
	FormatPostMortem,
	FormatResourceAllocator,
	FormatDialogueTree,
	FormatRetrospective,
}

// Base time limit in seconds for each format, before difficulty scaling.
var formatTimeLimits = map[Format]int{
	FormatTimePressure:       60,
	FormatStakeholderTension: 150,
	FormatTradeOff:           120,
	FormatPostMortem:         180,
	FormatResourceAllocator:  150,
	FormatDialogueTree:       180,
	FormatRetrospective:      150,
}

type difficultyModifier struct {
	TimeMultiplier   float64
	ComplexityLevel  int
	StakeholderCount int
	OptionCount      int
}

var difficultyModifiers = map[Difficulty]difficultyModifier{
	DifficultyBeginner:     {TimeMultiplier: 1.5, ComplexityLevel: 1, StakeholderCount: 2, OptionCount: 3},
	DifficultyIntermediate: {TimeMultiplier: 1.0, ComplexityLevel: 2, StakeholderCount: 3, OptionCount: 4},
	DifficultyAdvanced:     {TimeMultiplier: 0.7, ComplexityLevel: 3, StakeholderCount: 4, OptionCount: 5},
}

// scenarioFragment seeds a generated challenge with a concrete situation.
type scenarioFragment struct {
	Context string
	Subject string // the thing under decision: a launch, a metric, a feature
}

var scenarioFragments = map[SkillArea][]scenarioFragment{
	SkillStrategy: {
		{Context: "Your flagship product is losing ground to a cheaper competitor", Subject: "the competitive response"},
		{Context: "The company just acquired a smaller rival with an overlapping product", Subject: "the product consolidation"},
		{Context: "Leadership wants to expand into the enterprise segment next quarter", Subject: "the enterprise push"},
		{Context: "A platform partner announced API changes that break a core integration", Subject: "the integration rescue"},
	},
	SkillResearch: {
		{Context: "Signups are up but week-two retention keeps sliding", Subject: "the retention study"},
		{Context: "Two customer segments report opposite reactions to the new editor", Subject: "the segment investigation"},
		{Context: "Sales insists prospects keep asking for a feature no current user touches", Subject: "the demand validation"},
		{Context: "Support tickets about the export flow tripled after the redesign", Subject: "the usability follow-up"},
	},
	SkillAnalytics: {
		{Context: "The conversion funnel lost four points overnight with no deploy in sight", Subject: "the funnel incident"},
		{Context: "The quarterly OKR metric is on track but the input metrics all look sick", Subject: "the metric audit"},
		{Context: "An experiment shows a significant lift that nobody can explain", Subject: "the suspicious win"},
		{Context: "Finance and product dashboards disagree on monthly active users by 18%", Subject: "the metric reconciliation"},
	},
	SkillDesign: {
		{Context: "Usability tests show new users can't find the primary action", Subject: "the discoverability fix"},
		{Context: "The design system migration is half-done and screens look inconsistent", Subject: "the migration plan"},
		{Context: "Mobile and desktop flows have drifted apart after a year of separate teams", Subject: "the platform convergence"},
		{Context: "A rebrand lands in six weeks and touches every surface", Subject: "the rebrand rollout"},
	},
}

var stakeholderPool = []Stakeholder{
	{ID: "sh-eng", Name: "Jordan", Role: "Engineering Lead", Concern: "Scope creep against committed deadlines", Influence: "high"},
	{ID: "sh-sales", Name: "Casey", Role: "Head of Sales", Concern: "Commitments already made to prospects", Influence: "high"},
	{ID: "sh-support", Name: "Riley", Role: "Support Manager", Concern: "Ticket volume and escalation load", Influence: "medium"},
	{ID: "sh-design", Name: "Morgan", Role: "Design Lead", Concern: "Consistency of the user experience", Influence: "medium"},
	{ID: "sh-fin", Name: "Avery", Role: "Finance Partner", Concern: "Budget burn against forecast", Influence: "medium"},
	{ID: "sh-legal", Name: "Quinn", Role: "Legal Counsel", Concern: "Compliance exposure of the change", Influence: "low"},
}

var kpiPool = []KPI{
	{ID: "kpi-act", Name: "Activation rate", Value: "42%", Trend: "down"},
	{ID: "kpi-ret", Name: "Week-4 retention", Value: "61%", Trend: "flat"},
	{ID: "kpi-nps", Name: "NPS", Value: "31", Trend: "up"},
	{ID: "kpi-conv", Name: "Trial conversion", Value: "9.4%", Trend: "down"},
	{ID: "kpi-churn", Name: "Monthly churn", Value: "3.1%", Trend: "up"},
}

// Generator synthesizes novel challenge instances from scenario fragments.
// All randomness comes from the injected source; calls are safe to make
// concurrently as long as each goroutine owns its Generator.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator drawing from the given random source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate produces a single procedurally assembled challenge instance.
// Unknown skill areas or difficulties degrade to strategy/beginner; this
// never fails the caller out of a session.
func (g *Generator) Generate(skill SkillArea, difficulty Difficulty) Instance {
	if !ValidSkillArea(skill) {
		skill = SkillStrategy
	}
	if !ValidDifficulty(difficulty) {
		difficulty = DifficultyBeginner
	}

	format := formats[g.rng.Intn(len(formats))]
	mod := difficultyModifiers[difficulty]
	fragments := scenarioFragments[skill]
	frag := fragments[g.rng.Intn(len(fragments))]

	timeLimit := int(math.Round(float64(formatTimeLimits[format]) * mod.TimeMultiplier))

	inst := Instance{
		ID:               fmt.Sprintf("gen-%s-%s-%d", skill, format, g.rng.Intn(1_000_000)),
		TemplateID:       fmt.Sprintf("gen-%s-%s", skill, format),
		SkillArea:        skill,
		Difficulty:       difficulty,
		TimeLimitSeconds: timeLimit,
	}

	switch format {
	case FormatTimePressure:
		g.buildTimePressure(&inst, frag)
	case FormatStakeholderTension:
		g.buildStakeholderTension(&inst, frag, mod)
	case FormatTradeOff:
		g.buildTradeOff(&inst, frag)
	case FormatPostMortem:
		g.buildPostMortem(&inst, frag, mod)
	case FormatResourceAllocator:
		g.buildResourceAllocator(&inst, frag, mod)
	case FormatDialogueTree:
		g.buildDialogueTree(&inst, frag)
	case FormatRetrospective:
		g.buildRetrospective(&inst, frag)
	}

	ensureRenderable(&inst)
	return inst
}

// buildTimePressure always produces exactly three options with a fixed
// quality distribution: delegate (correct/excellent), act now (poor),
// gather info (average). The distribution is a format invariant.
func (g *Generator) buildTimePressure(inst *Instance, frag scenarioFragment) {
	inst.Title = "Decision Under Fire"
	inst.Description = fmt.Sprintf("%s. You have minutes, not days, to commit to a direction on %s.", frag.Context, frag.Subject)
	inst.InteractionType = InteractionMultipleChoice
	inst.Content = Content{MultipleChoice: &MultipleChoiceContent{
		Scenario: frag.Context + ". The team is waiting on your call.",
		Options: []Option{
			{ID: "delegate", Text: "Pull in the domain expert and delegate the immediate call to them", IsCorrect: true, Quality: QualityExcellent,
				Explanation: "Under real time pressure, the closest expert makes the better first move."},
			{ID: "act", Text: "Act on your current read immediately", Quality: QualityPoor,
				Explanation: "Speed without the available expertise trades one risk for another."},
			{ID: "gather", Text: "Pause everything and gather more information first", Quality: QualityAverage,
				Explanation: "Safe, but the window may close while you research."},
		},
	}}
}

func (g *Generator) buildStakeholderTension(inst *Instance, frag scenarioFragment, mod difficultyModifier) {
	inst.Title = "Stakeholder Tension Map"
	inst.Description = fmt.Sprintf("%s. Map who needs what before %s moves forward.", frag.Context, frag.Subject)
	inst.InteractionType = InteractionDragDrop

	picked := g.pickStakeholders(mod.StakeholderCount)
	inst.Content = Content{DragDrop: &DragDropContent{
		Scenario:     frag.Context + ".",
		Zones:        []string{"manage closely", "keep satisfied", "keep informed"},
		Stakeholders: picked,
	}}
}

func (g *Generator) buildTradeOff(inst *Instance, frag scenarioFragment) {
	inst.Title = "Find the Balance"
	inst.Description = fmt.Sprintf("%s. Set the dials for %s.", frag.Context, frag.Subject)
	inst.InteractionType = InteractionSlider
	inst.Content = Content{Slider: &SliderContent{
		Scenario: frag.Context + ".",
		TradeOffs: []TradeOff{
			{ID: "speed-quality", LeftLabel: "Ship fast", RightLabel: "Ship polished", Description: "Where does " + frag.Subject + " land?", OptimalValue: 30 + g.rng.Intn(41)},
			{ID: "build-buy", LeftLabel: "Build in-house", RightLabel: "Buy or integrate", Description: "Ownership versus time to market.", OptimalValue: 30 + g.rng.Intn(41)},
		},
	}}
}

func (g *Generator) buildPostMortem(inst *Instance, frag scenarioFragment, mod difficultyModifier) {
	inst.Title = "Post-Mortem Investigation"
	inst.Description = fmt.Sprintf("%s. Work out what actually went wrong with %s.", frag.Context, frag.Subject)
	inst.InteractionType = InteractionMultipleChoice

	kpis := g.pickKPIs(2 + mod.ComplexityLevel)
	options := []Option{
		{ID: "pm-timeline", Text: "Reconstruct the timeline from logs and deploys before assigning any cause", Quality: QualityExcellent, IsCorrect: true},
		{ID: "pm-blame", Text: "Start with the team that owned the failing component", Quality: QualityPoor},
		{ID: "pm-survey", Text: "Survey affected users about what they noticed", Quality: QualityAverage},
		{ID: "pm-revert", Text: "Revert every change from the incident window and move on", Quality: QualityGood,
			Explanation: "Stops the bleeding but learns nothing."},
	}
	inst.Content = Content{MultipleChoice: &MultipleChoiceContent{
		Scenario: frag.Context + ". The dashboard the morning after:",
		KPIs:     kpis,
		Options:  options[:min(len(options), mod.OptionCount)],
	}}
}

func (g *Generator) buildResourceAllocator(inst *Instance, frag scenarioFragment, mod difficultyModifier) {
	inst.Title = "Allocate the Quarter"
	inst.Description = fmt.Sprintf("%s. Distribute the team's capacity across %s and everything else.", frag.Context, frag.Subject)
	inst.InteractionType = InteractionDragDrop

	picked := g.pickStakeholders(mod.StakeholderCount)
	inst.Content = Content{DragDrop: &DragDropContent{
		Scenario:     frag.Context + ". Each stakeholder is bidding for the same engineers.",
		Zones:        []string{"this sprint", "this quarter", "backlog"},
		Stakeholders: picked,
	}}
}

func (g *Generator) buildDialogueTree(inst *Instance, frag scenarioFragment) {
	inst.Title = "The Hard Conversation"
	inst.Description = fmt.Sprintf("%s. Navigate the conversation about %s.", frag.Context, frag.Subject)
	inst.InteractionType = InteractionDialogue

	sh := stakeholderPool[g.rng.Intn(len(stakeholderPool))]
	inst.Content = Content{Dialogue: &DialogueContent{
		Scenario: frag.Context + ".",
		Root: DialogueNode{
			Speaker: sh.Name + " (" + sh.Role + ")",
			Text:    fmt.Sprintf("I'm worried about %s. What's the plan for %s?", sh.Concern, frag.Subject),
			Responses: []DialogueResponse{
				{ID: "ack", Text: "Acknowledge the concern, share the current plan, and name the open risks honestly", Quality: QualityExcellent},
				{ID: "deflect", Text: "Reassure them it's handled and change the subject", Quality: QualityPoor},
				{ID: "defer", Text: "Promise a follow-up meeting with the full details", Quality: QualityAverage},
			},
		},
	}}
}

func (g *Generator) buildRetrospective(inst *Instance, frag scenarioFragment) {
	inst.Title = "Retrospective Fix"
	inst.Description = fmt.Sprintf("%s. Decide what the team changes so %s doesn't repeat.", frag.Context, frag.Subject)
	inst.InteractionType = InteractionRanking
	inst.Content = Content{Ranking: &RankingContent{
		Scenario: frag.Context + ". The retro surfaced four proposed process changes.",
		Items: []RankItem{
			{ID: "rf-guard", Text: "Add an automated guardrail that catches the failure class", CorrectRank: 1},
			{ID: "rf-checklist", Text: "Add a launch checklist item covering this case", CorrectRank: 2},
			{ID: "rf-review", Text: "Require an extra review sign-off on similar changes", CorrectRank: 3},
			{ID: "rf-memo", Text: "Write a memo reminding everyone to be careful", CorrectRank: 4},
		},
	}}
}

func (g *Generator) pickStakeholders(n int) []Stakeholder {
	idx := g.rng.Perm(len(stakeholderPool))
	if n > len(stakeholderPool) {
		n = len(stakeholderPool)
	}
	picked := make([]Stakeholder, 0, n)
	for _, i := range idx[:n] {
		picked = append(picked, stakeholderPool[i])
	}
	return picked
}

func (g *Generator) pickKPIs(n int) []KPI {
	idx := g.rng.Perm(len(kpiPool))
	if n > len(kpiPool) {
		n = len(kpiPool)
	}
	picked := make([]KPI, 0, n)
	for _, i := range idx[:n] {
		picked = append(picked, kpiPool[i])
	}
	return picked
}

// ensureRenderable degrades an instance whose format-specific content is
// missing its expected sub-fields to a plain multiple-choice rendering.
// Malformed content is never an error.
func ensureRenderable(inst *Instance) {
	c := &inst.Content
	switch inst.InteractionType {
	case InteractionSlider:
		if c.Slider == nil || len(c.Slider.TradeOffs) == 0 {
			degradeToMultipleChoice(inst, sliderFallbackOptions(c))
		}
	case InteractionDragDrop:
		if c.DragDrop == nil || len(c.DragDrop.Stakeholders) == 0 {
			degradeToMultipleChoice(inst, dragDropFallbackOptions(c))
		}
	case InteractionRanking:
		if c.Ranking == nil || len(c.Ranking.Items) == 0 {
			degradeToMultipleChoice(inst, rankingFallbackOptions(c))
		}
	case InteractionDialogue:
		if c.Dialogue == nil || len(c.Dialogue.Root.Responses) == 0 {
			degradeToMultipleChoice(inst, dialogueFallbackOptions(c))
		}
	case InteractionMultipleChoice:
		if c.MultipleChoice == nil {
			c.MultipleChoice = &MultipleChoiceContent{Scenario: inst.Description, Options: genericFallbackOptions()}
		} else if len(c.MultipleChoice.Options) == 0 {
			c.MultipleChoice.Options = genericFallbackOptions()
		}
	}
}

func degradeToMultipleChoice(inst *Instance, options []Option) {
	scenario := inst.Description
	inst.InteractionType = InteractionMultipleChoice
	inst.Content = Content{MultipleChoice: &MultipleChoiceContent{
		Scenario: scenario,
		Options:  options,
	}}
}

func sliderFallbackOptions(c *Content) []Option {
	if c.Slider != nil && len(c.Slider.Options) > 0 {
		return c.Slider.Options
	}
	return genericFallbackOptions()
}

func dragDropFallbackOptions(c *Content) []Option {
	if c.DragDrop != nil && len(c.DragDrop.Options) > 0 {
		return c.DragDrop.Options
	}
	return genericFallbackOptions()
}

func rankingFallbackOptions(c *Content) []Option {
	if c.Ranking != nil && len(c.Ranking.Options) > 0 {
		return c.Ranking.Options
	}
	return genericFallbackOptions()
}

func dialogueFallbackOptions(c *Content) []Option {
	if c.Dialogue != nil && len(c.Dialogue.Options) > 0 {
		return c.Dialogue.Options
	}
	return genericFallbackOptions()
}

func genericFallbackOptions() []Option {
	return []Option{
		{ID: "fb-a", Text: "Dig into the underlying data before committing", Quality: QualityGood},
		{ID: "fb-b", Text: "Make the call now with what you know", Quality: QualityAverage},
		{ID: "fb-c", Text: "Escalate the decision to leadership", Quality: QualityPoor},
	}
}
