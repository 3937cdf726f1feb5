package sentiment

import (
	"math"

	"SentimentScanner/internal/domain"
)

// classification thresholds shared by both methods
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Classify maps a scalar signal onto the three-way label. Values inside
// [-0.05, 0.05] are neutral; the boundaries themselves are neutral.
func Classify(v float64) domain.Label {
	switch {
	case v > positiveThreshold:
		return domain.LabelPositive
	case v < negativeThreshold:
		return domain.LabelNegative
	default:
		return domain.LabelNeutral
	}
}

// Consensus reconciles the two methods into one label. Agreement wins
// outright; on disagreement the method with the larger absolute signal
// wins, and an exact magnitude tie resolves to neutral. Pure function over
// an already-computed score, no I/O.
func Consensus(s domain.SentimentScore) domain.Label {
	patternLabel := Classify(s.Polarity)
	valenceLabel := Classify(s.Compound)

	if patternLabel == valenceLabel {
		return patternLabel
	}

	patternStrength := math.Abs(s.Polarity)
	valenceStrength := math.Abs(s.Compound)

	switch {
	case patternStrength > valenceStrength:
		return patternLabel
	case valenceStrength > patternStrength:
		return valenceLabel
	default:
		return domain.LabelNeutral
	}
}
