// challenge/feedback.go - Session feedback synthesis
package challenge

import (
	"math"
	"math/rand"
)

const (
	feedbackScoreFloor   = 10
	feedbackScoreCeiling = 95
	neutralQuality       = 65.0
)

var difficultyScoreMultipliers = map[Difficulty]float64{
	DifficultyBeginner:     1.0,
	DifficultyIntermediate: 1.05,
	DifficultyAdvanced:     1.1,
}

var strengthExcellent = []string{
	"You made excellent decisions when it mattered — several answers hit the strongest available option.",
	"Strong judgment throughout: multiple choices landed on the best possible call.",
	"Your decision quality stood out, with repeated top-tier answers across the session.",
}

var strengthStakeholder = []string{
	"You read stakeholder dynamics well and balanced competing interests cleanly.",
	"Stakeholder management was a highlight — you kept the right people in the right conversations.",
	"You navigated organizational tensions with a steady hand.",
}

var strengthTime = []string{
	"You managed the clock well and completed nearly everything on time.",
	"Great pacing — you worked through the exercises without running out of room.",
	"Time management was solid; you finished what you started.",
}

var strengthGeneric = []string{
	"You engaged seriously with every scenario and reasoned through the trade-offs.",
	"You showed a willingness to sit with ambiguity instead of reaching for easy answers.",
	"Consistent effort across the session — a real base to build on.",
}

var improvementDecisions = []string{
	"Several answers missed the strongest option — slow down and weigh the second-order effects before committing.",
	"Work on distinguishing the good-enough answer from the best one; the gap showed up more than once.",
	"Revisit the scenarios where your choice carried heavy downsides — what signal did you discount?",
}

var improvementFundamentals = []string{
	"Shore up the fundamentals for this skill area before moving up a difficulty tier.",
	"The basics need another pass — consider replaying this tier until the core patterns feel automatic.",
	"Focus on the foundational frameworks here; the advanced scenarios will reward it.",
}

var improvementPacing = []string{
	"Several exercises went unanswered — budget your time so every scenario gets a real attempt.",
	"Completion slipped this session; an answered guess teaches more than a skipped question.",
	"Try committing to an answer earlier — unfinished exercises cost more than imperfect ones.",
}

var improvementGeneric = []string{
	"Push yourself to articulate why the best answer beats the runner-up, not just which one it is.",
	"Next session, try predicting the consequences before revealing them.",
	"Challenge yourself with a higher difficulty once this tier feels comfortable.",
}

var progressImproved = []string{
	"You're trending up — this session beat your previous score.",
	"Clear improvement over last time. Whatever you changed, keep doing it.",
	"Your score climbed since the last session — the practice is paying off.",
}

var progressDeclined = []string{
	"This one came in below your last session — a tougher set, or an off day. Worth a second run.",
	"Your score dipped compared to last time; review the feedback above and try the tier again.",
	"A step back from your previous session — use the improvement notes to close the gap.",
}

var progressConsistent = []string{
	"You're performing consistently with your recent sessions.",
	"Your score is holding steady — consistency is its own signal.",
	"Right in line with your last session; steady hands.",
}

var progressFirst = []string{
	"First session on the books — you now have a baseline to beat.",
	"A starting benchmark is set. Future sessions will show your trajectory.",
	"Good first session — come back and see how the next one compares.",
}

var recommendationPools = map[SkillArea][]string{
	SkillStrategy: {
		"Try a stakeholder-mapping exercise before your next strategy session — influence dynamics decided several of these scenarios.",
		"Practice writing a one-page strategy memo for a product you use daily, then test it against the next session.",
		"Replay the strategy tier and focus on sequencing: which move creates options for the next one?",
	},
	SkillResearch: {
		"Run a mock discovery interview with a colleague and watch for leading questions — it's the most common miss in this tier.",
		"Before the next session, practice ranking evidence by strength: behavior beats opinion, patterns beat anecdotes.",
		"Pick one research finding from your real work and write the three weakest points in it.",
	},
	SkillAnalytics: {
		"Sketch the funnel for a product you know and guess where the biggest leak is, then check your instinct in the next session.",
		"Practice separating metric movement from metric meaning — half these scenarios hinged on it.",
		"Review the difference between statistical significance and practical significance before the next analytics run.",
	},
	SkillDesign: {
		"Critique one flow in an app you use daily: what does the design assume the user already knows?",
		"Practice separating meaningful interaction from polish — it's the core trade in this tier's scenarios.",
		"Try the design tier one difficulty up; your pattern recognition is ready for harder rollout questions.",
	},
}

// Synthesizer turns a completed session's answers into narrative feedback.
// Template variant selection draws from the injected random source; the score
// itself is fully deterministic in the inputs.
type Synthesizer struct {
	rng *rand.Rand
}

// NewSynthesizer returns a feedback synthesizer using the given random source.
func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// Synthesize produces a complete FeedbackResult from any input shape,
// substituting neutral defaults where signal is missing. It never fails.
// previousScore, when non-nil, drives the progress statement.
func (s *Synthesizer) Synthesize(answers []SessionAnswer, skill SkillArea, difficulty Difficulty, exerciseCount int, previousScore *int) FeedbackResult {
	if exerciseCount <= 0 {
		exerciseCount = len(answers)
	}

	completed := 0
	excellentCount := 0
	poorCount := 0
	qualitySum := 0
	qualityCount := 0
	for _, a := range answers {
		if a.Completed() {
			completed++
		}
		if a.Quality == "" {
			continue
		}
		if v := QualityValue(a.Quality); v > 0 {
			qualitySum += v
			qualityCount++
		}
		switch a.Quality {
		case QualityExcellent:
			excellentCount++
		case QualityPoor:
			poorCount++
		}
	}

	completionRate := 0.0
	if exerciseCount > 0 {
		completionRate = float64(completed) / float64(exerciseCount) * 100
	}

	averageQuality := neutralQuality
	if qualityCount > 0 {
		averageQuality = float64(qualitySum) / float64(qualityCount)
	}

	multiplier, ok := difficultyScoreMultipliers[difficulty]
	if !ok {
		multiplier = 1.0
	}

	baseScore := averageQuality*0.7 + completionRate*0.3
	score := int(math.Round(clamp(baseScore*multiplier, feedbackScoreFloor, feedbackScoreCeiling)))

	return FeedbackResult{
		Score:             score,
		Strengths:         s.pickStrengths(skill, averageQuality, completionRate, excellentCount),
		Improvements:      s.pickImprovements(averageQuality, completionRate, poorCount),
		ProgressStatement: s.pickProgress(score, previousScore),
		Recommendation:    s.pickRecommendation(skill),
	}
}

// pickStrengths applies the rule set and bounds the output to 1-2 entries.
func (s *Synthesizer) pickStrengths(skill SkillArea, averageQuality, completionRate float64, excellentCount int) []string {
	var strengths []string
	if excellentCount >= 2 {
		strengths = append(strengths, s.variant(strengthExcellent))
	}
	if skill == SkillStrategy && averageQuality > 75 {
		strengths = append(strengths, s.variant(strengthStakeholder))
	}
	if completionRate > 90 {
		strengths = append(strengths, s.variant(strengthTime))
	}
	if len(strengths) == 0 {
		strengths = append(strengths, s.variant(strengthGeneric))
	}
	if len(strengths) > 2 {
		strengths = strengths[:2]
	}
	return strengths
}

// pickImprovements mirrors pickStrengths for the growth side.
func (s *Synthesizer) pickImprovements(averageQuality, completionRate float64, poorCount int) []string {
	var improvements []string
	if poorCount >= 2 {
		improvements = append(improvements, s.variant(improvementDecisions))
	}
	if averageQuality < 60 {
		improvements = append(improvements, s.variant(improvementFundamentals))
	}
	if completionRate < 70 {
		improvements = append(improvements, s.variant(improvementPacing))
	}
	if len(improvements) == 0 {
		improvements = append(improvements, s.variant(improvementGeneric))
	}
	if len(improvements) > 2 {
		improvements = improvements[:2]
	}
	return improvements
}

func (s *Synthesizer) pickProgress(score int, previousScore *int) string {
	if previousScore == nil {
		return s.variant(progressFirst)
	}
	delta := score - *previousScore
	switch {
	case delta > 5:
		return s.variant(progressImproved)
	case delta < -5:
		return s.variant(progressDeclined)
	default:
		return s.variant(progressConsistent)
	}
}

func (s *Synthesizer) pickRecommendation(skill SkillArea) string {
	pool, ok := recommendationPools[skill]
	if !ok {
		pool = recommendationPools[SkillStrategy]
	}
	return s.variant(pool)
}

func (s *Synthesizer) variant(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
