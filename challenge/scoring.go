// challenge/scoring.go - Deterministic option quality resolution
package challenge

// Numeric score for each quality bucket, shared with the feedback synthesizer.
var qualityScores = map[Quality]int{
	QualityExcellent: 95,
	QualityGood:      80,
	QualityAverage:   65,
	QualityPoor:      40,
}

// qualitySpread orders the buckets used by the no-signal fallback.
var qualitySpread = []Quality{QualityExcellent, QualityGood, QualityAverage, QualityPoor}

// QualityScore pairs a resolved quality bucket with its numeric score.
type QualityScore struct {
	Quality Quality `json:"quality"`
	Score   int     `json:"score"` // 0-100
}

// ResolveQuality grades one chosen option. The priority order is strict so the
// same option always resolves identically:
//  1. an explicit quality field wins outright,
//  2. else the consequence list is classified by positive/negative ratio,
//  3. else a correct-flagged option is excellent,
//  4. else quality is spread deterministically across undifferentiated
//     options so badges vary in the UI. The spread carries no judgment about
//     answer correctness.
func ResolveQuality(opt Option, optionIndex int) QualityScore {
	if opt.Quality != "" {
		if score, ok := qualityScores[opt.Quality]; ok {
			return QualityScore{Quality: opt.Quality, Score: score}
		}
	}

	if opt.Consequences != nil {
		return classifyConsequences(opt.Consequences)
	}

	if opt.IsCorrect {
		return QualityScore{Quality: QualityExcellent, Score: qualityScores[QualityExcellent]}
	}

	q := qualitySpread[(optionIndex+len(opt.Text)+len(opt.ID))%len(qualitySpread)]
	return QualityScore{Quality: q, Score: qualityScores[q]}
}

// classifyConsequences maps a consequence list to a quality bucket by the
// ratio of positive and negative entries.
func classifyConsequences(consequences []Consequence) QualityScore {
	if len(consequences) == 0 {
		return QualityScore{Quality: QualityAverage, Score: 60}
	}

	var positive, negative int
	for _, c := range consequences {
		switch c.Type {
		case ConsequencePositive:
			positive++
		case ConsequenceNegative:
			negative++
		}
	}

	total := float64(len(consequences))
	positiveRatio := float64(positive) / total
	negativeRatio := float64(negative) / total

	switch {
	case positiveRatio >= 0.7:
		return QualityScore{Quality: QualityExcellent, Score: qualityScores[QualityExcellent]}
	case positiveRatio >= 0.5 || (positiveRatio >= 0.3 && negativeRatio <= 0.3):
		return QualityScore{Quality: QualityGood, Score: qualityScores[QualityGood]}
	case negativeRatio <= 0.5:
		return QualityScore{Quality: QualityAverage, Score: qualityScores[QualityAverage]}
	default:
		return QualityScore{Quality: QualityPoor, Score: qualityScores[QualityPoor]}
	}
}

// QualityValue returns the numeric score for a quality bucket, or 0 when the
// bucket is unknown.
func QualityValue(q Quality) int {
	return qualityScores[q]
}
