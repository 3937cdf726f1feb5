package sentiment

import (
	"math"
	"strings"
)

const (
	// normalization constant for the compound score
	valenceAlpha = 15.0
	// scalar added for an intensifier directly before a lexicon word
	boosterIncrement = 0.293
	// dampening applied when a negator precedes a lexicon word
	negationFactor = -0.74
	// emphasis added to the valence sum per exclamation mark, capped at 4
	exclamationBoost = 0.292
)

// distance dampening for boosters two and three tokens away
var boosterDamp = [4]float64{0, 1.0, 0.95, 0.9}

// valenceBoosters adjust the intensity of a following lexicon word.
// Positive values amplify, negative values diminish.
var valenceBoosters = map[string]float64{
	"very":         boosterIncrement,
	"really":       boosterIncrement,
	"extremely":    boosterIncrement,
	"incredibly":   boosterIncrement,
	"absolutely":   boosterIncrement,
	"completely":   boosterIncrement,
	"totally":      boosterIncrement,
	"truly":        boosterIncrement,
	"so":           boosterIncrement,
	"especially":   boosterIncrement,
	"particularly": boosterIncrement,
	"slightly":     -boosterIncrement,
	"somewhat":     -boosterIncrement,
	"barely":       -boosterIncrement,
	"hardly":       -boosterIncrement,
	"marginally":   -boosterIncrement,
	"kinda":        -boosterIncrement,
	"sorta":        -boosterIncrement,
}

// scoreValence computes the informal-text valence signal: a compound score
// normalized to [-1,1] plus pos/neg/neu proportions that sum to 1. Text
// with no tokens or no lexicon hits is fully neutral (compound=0, neu=1).
func scoreValence(tokens []string, raw string) (compound, pos, neg, neu float64) {
	if len(tokens) == 0 {
		return 0, 0, 0, 1
	}

	var sum, posSum, negSum, neuCount float64

	for i, tok := range tokens {
		v, ok := valenceLexicon[tok]
		if !ok {
			if _, isBooster := valenceBoosters[tok]; !isBooster && !negators[tok] {
				neuCount++
			}
			continue
		}

		for dist := 1; dist <= 3 && i-dist >= 0; dist++ {
			prev := tokens[i-dist]
			if b, ok := valenceBoosters[prev]; ok {
				scalar := b * boosterDamp[dist]
				if v < 0 {
					scalar = -scalar
				}
				v += scalar
			}
			if negators[prev] {
				v *= negationFactor
			}
		}

		switch {
		case v > 0:
			posSum += v + 1
		case v < 0:
			negSum += v - 1
		default:
			neuCount++
		}
		sum += v
	}

	if excl := strings.Count(raw, "!"); excl > 0 && sum != 0 {
		if excl > 4 {
			excl = 4
		}
		amp := float64(excl) * exclamationBoost
		if sum > 0 {
			sum += amp
			posSum += amp
		} else {
			sum -= amp
			negSum -= amp
		}
	}

	compound = clamp(sum/math.Sqrt(sum*sum+valenceAlpha), -1, 1)

	total := posSum + math.Abs(negSum) + neuCount
	if total == 0 {
		return compound, 0, 0, 1
	}

	return compound, posSum / total, math.Abs(negSum) / total, neuCount / total
}

// valenceLexicon holds raw word valences on the usual -4..4 scale.
var valenceLexicon = map[string]float64{
	"love": 3.2, "loved": 2.9, "loves": 2.7,
	"amazing": 2.8, "awesome": 3.1, "excellent": 2.7,
	"great": 3.1, "good": 1.9, "best": 3.2, "better": 1.9,
	"impressive": 2.3, "impressed": 2.2,
	"exciting": 2.2, "excited": 2.4, "enthusiastic": 2.3,
	"promising": 1.8, "fascinating": 2.3,
	"beneficial": 1.9, "benefit": 1.5,
	"improved": 1.8, "improve": 1.6, "improvement": 1.5,
	"helpful": 1.8, "helped": 1.7, "help": 1.7,
	"wonderful": 2.9, "fantastic": 3.0, "brilliant": 2.8,
	"happy": 2.7, "glad": 2.0, "nice": 1.8, "perfect": 3.0,
	"easy": 1.5, "strong": 1.2,
	"successful": 2.6, "success": 2.7,
	"valuable": 1.7, "innovative": 1.9,
	"optimistic": 2.2, "positive": 2.0, "hopeful": 2.0, "hope": 1.9,
	"empowering": 2.1, "crucial": 1.3,
	"safe": 1.6, "safety": 1.4, "transparent": 1.2,
	"breakthrough": 2.0, "enjoy": 2.0, "trust": 1.8,
	"progress": 1.7, "opportunity": 1.6, "advantage": 1.5,
	"win": 2.8, "winning": 2.6,
	"gain": 1.4, "gains": 1.4, "surge": 1.3, "surges": 1.3,
	"profit": 1.7, "growth": 1.4, "free": 1.2,
	"sophisticated": 1.1, "revolutionary": 1.7,
	"like": 1.5, "likes": 1.4,

	"hate": -2.7, "hated": -2.4,
	"terrible": -3.1, "horrible": -2.9, "awful": -3.0,
	"bad": -2.5, "worse": -2.1, "worst": -3.1,
	"concern": -1.1, "concerns": -1.1, "concerning": -1.4, "concerned": -1.2,
	"worried": -1.8, "worry": -1.6, "worrying": -1.7,
	"afraid": -2.0, "fear": -2.2, "fears": -2.1, "scary": -2.2,
	"danger": -2.4, "dangerous": -2.3,
	"risk": -1.1, "risks": -1.1, "risky": -1.4,
	"problem": -1.7, "problems": -1.8,
	"issue": -0.8, "issues": -0.9,
	"fail": -2.3, "failed": -2.2, "failure": -2.4,
	"crisis": -2.5, "threat": -2.1, "threats": -2.0,
	"bias": -1.3, "biased": -1.5, "unfair": -2.0, "wrong": -1.9,
	"loss": -1.6, "losses": -1.7, "lose": -1.7,
	"plunge": -1.9, "plunges": -1.9, "crash": -2.2, "decline": -1.3,
	"harmful": -2.3, "harm": -2.1, "damage": -2.0, "damaging": -2.1,
	"difficult": -1.5, "sad": -2.1, "angry": -2.3,
	"disappointing": -2.2, "disappointed": -2.1,
	"poor": -1.9, "useless": -1.8, "broken": -1.6,
	"serious": -0.9, "severe": -1.6,
	"unethical": -2.2, "dishonest": -2.0, "misleading": -1.8,
	"fraud": -2.6, "scam": -2.6,
	"displacement": -1.2, "invasion": -1.9,
	"violation": -2.0, "violations": -2.0, "abuse": -2.7,
	"attack": -2.1, "war": -2.9, "death": -2.9, "kill": -3.0,
	"destroy": -2.4, "destroys": -2.3, "destruction": -2.4,
}
