// challenge/types.go - Core challenge engine types
package challenge

// SkillArea is one of the four fixed PM competency categories.
type SkillArea string

const (
	SkillStrategy  SkillArea = "strategy"
	SkillResearch  SkillArea = "research"
	SkillAnalytics SkillArea = "analytics"
	SkillDesign    SkillArea = "design"
)

// SkillAreas lists every skill area in catalog iteration order.
var SkillAreas = []SkillArea{SkillStrategy, SkillResearch, SkillAnalytics, SkillDesign}

// Difficulty scales time pressure and option/stakeholder counts.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties lists every tier in catalog iteration order.
var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// InteractionType determines how a challenge is rendered and answered.
type InteractionType string

const (
	InteractionMultipleChoice InteractionType = "multiple-choice"
	InteractionDragDrop       InteractionType = "drag-drop"
	InteractionSlider         InteractionType = "slider"
	InteractionRanking        InteractionType = "ranking"
	InteractionDialogue       InteractionType = "dialogue"
)

// Quality is the resolved qualitative grade of a chosen option.
type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityAverage   Quality = "average"
	QualityPoor      Quality = "poor"
)

// ConsequenceType tags an outcome description attached to an answer option.
type ConsequenceType string

const (
	ConsequencePositive ConsequenceType = "positive"
	ConsequenceNegative ConsequenceType = "negative"
	ConsequenceNeutral  ConsequenceType = "neutral"
)

// Consequence describes one outcome of choosing an option. Scoring input only;
// never mutated after creation.
type Consequence struct {
	Type        ConsequenceType `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Impact      string          `json:"impact"`
}

// Option is a single selectable answer within a challenge.
type Option struct {
	ID           string        `json:"id"`
	Text         string        `json:"text"`
	Description  string        `json:"description,omitempty"`
	Explanation  string        `json:"explanation,omitempty"`
	IsCorrect    bool          `json:"is_correct,omitempty"`
	Quality      Quality       `json:"quality,omitempty"`
	Consequences []Consequence `json:"consequences,omitempty"`
}

// Stakeholder appears in tension-map and resource-allocation challenges.
type Stakeholder struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Concern   string `json:"concern"`
	Influence string `json:"influence"` // high, medium, low
}

// TradeOff is one axis of a slider challenge.
type TradeOff struct {
	ID           string `json:"id"`
	LeftLabel    string `json:"left_label"`
	RightLabel   string `json:"right_label"`
	Description  string `json:"description"`
	OptimalValue int    `json:"optimal_value"` // 0-100 along the axis
}

// KPI is a metric referenced by analytics-flavored challenges.
type KPI struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Value  string `json:"value"`
	Trend  string `json:"trend"` // up, down, flat
	Signal string `json:"signal,omitempty"`
}

// RankItem is one entry the user must order in a ranking challenge.
type RankItem struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Description string `json:"description,omitempty"`
	CorrectRank int    `json:"correct_rank"` // 1-based
}

// DialogueResponse is one reply choice inside a conversation tree.
type DialogueResponse struct {
	ID           string        `json:"id"`
	Text         string        `json:"text"`
	Quality      Quality       `json:"quality,omitempty"`
	Consequences []Consequence `json:"consequences,omitempty"`
	Next         *DialogueNode `json:"next,omitempty"`
}

// DialogueNode is one turn of a dialogue challenge's conversation tree.
type DialogueNode struct {
	Speaker   string             `json:"speaker"`
	Text      string             `json:"text"`
	Responses []DialogueResponse `json:"responses,omitempty"`
}

// MultipleChoiceContent is the content variant for multiple-choice challenges.
// Also the degradation target when a richer variant is missing its sub-fields.
type MultipleChoiceContent struct {
	Scenario string   `json:"scenario"`
	Options  []Option `json:"options"`
	KPIs     []KPI    `json:"kpis,omitempty"`
}

// DragDropContent is the content variant for drag-drop challenges
// (stakeholder tension maps and resource allocators).
type DragDropContent struct {
	Scenario     string        `json:"scenario"`
	Stakeholders []Stakeholder `json:"stakeholders"`
	Zones        []string      `json:"zones"`
	Options      []Option      `json:"options,omitempty"`
}

// SliderContent is the content variant for trade-off slider challenges.
type SliderContent struct {
	Scenario  string     `json:"scenario"`
	TradeOffs []TradeOff `json:"trade_offs"`
	Options   []Option   `json:"options,omitempty"`
}

// RankingContent is the content variant for ranking challenges.
type RankingContent struct {
	Scenario string     `json:"scenario"`
	Items    []RankItem `json:"items"`
	Options  []Option   `json:"options,omitempty"`
}

// DialogueContent is the content variant for dialogue challenges.
type DialogueContent struct {
	Scenario string       `json:"scenario"`
	Root     DialogueNode `json:"root"`
	Options  []Option     `json:"options,omitempty"`
}

// Content is a tagged union keyed by the challenge's InteractionType.
// Exactly one variant is set on well-formed content.
type Content struct {
	MultipleChoice *MultipleChoiceContent `json:"multiple_choice,omitempty"`
	DragDrop       *DragDropContent       `json:"drag_drop,omitempty"`
	Slider         *SliderContent         `json:"slider,omitempty"`
	Ranking        *RankingContent        `json:"ranking,omitempty"`
	Dialogue       *DialogueContent       `json:"dialogue,omitempty"`
}

// Template is an immutable catalog entry. Templates are process-wide constants;
// they are copied into Instances, never mutated.
type Template struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	SkillArea        SkillArea       `json:"skill_area"`
	Difficulty       Difficulty      `json:"difficulty"`
	InteractionType  InteractionType `json:"interaction_type"`
	TimeLimitSeconds int             `json:"time_limit_seconds"`
	Content          Content         `json:"content"`
}

// Instance is a per-session materialization of a template with a
// session-unique ID. Discarded at session end; never persisted by the engine.
type Instance struct {
	ID               string          `json:"id"`
	TemplateID       string          `json:"template_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	SkillArea        SkillArea       `json:"skill_area"`
	Difficulty       Difficulty      `json:"difficulty"`
	InteractionType  InteractionType `json:"interaction_type"`
	TimeLimitSeconds int             `json:"time_limit_seconds"`
	Content          Content         `json:"content"`
}

// Instantiate copies the template into an instance carrying the given id.
func (t Template) Instantiate(id string) Instance {
	return Instance{
		ID:               id,
		TemplateID:       t.ID,
		Title:            t.Title,
		Description:      t.Description,
		SkillArea:        t.SkillArea,
		Difficulty:       t.Difficulty,
		InteractionType:  t.InteractionType,
		TimeLimitSeconds: t.TimeLimitSeconds,
		Content:          t.Content,
	}
}

// SessionAnswer is one submitted answer, consumed as an immutable snapshot by
// the scorer and feedback synthesizer. An answer with empty Answer text counts
// as not completed.
type SessionAnswer struct {
	QuestionTitle string  `json:"question_title"`
	Answer        string  `json:"answer"`
	CorrectAnswer string  `json:"correct_answer,omitempty"`
	Quality       Quality `json:"quality,omitempty"`
	IsCorrect     bool    `json:"is_correct,omitempty"`
}

// Completed reports whether the user actually answered this exercise.
func (a SessionAnswer) Completed() bool {
	return a.Answer != ""
}

// ExerciseScore is the derived per-exercise result. Computed fresh per scoring
// request; never cached.
type ExerciseScore struct {
	QuestionTitle string `json:"question_title"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Score         int    `json:"score"` // 0-100
}

// FeedbackResult is the synthesized session outcome. The score is deliberately
// capped to [10, 95]: never a perfect 100, never a discouraging zero.
type FeedbackResult struct {
	Score             int      `json:"score"`
	Strengths         []string `json:"strengths"`    // 1-2 entries
	Improvements      []string `json:"improvements"` // 1-2 entries
	ProgressStatement string   `json:"progress_statement"`
	Recommendation    string   `json:"recommendation"`
}

// ValidSkillArea reports whether s is a known skill area.
func ValidSkillArea(s SkillArea) bool {
	switch s {
	case SkillStrategy, SkillResearch, SkillAnalytics, SkillDesign:
		return true
	}
	return false
}

// ValidDifficulty reports whether d is a known difficulty tier.
func ValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}
