// Package sentiment computes dual-method sentiment scores and reconciles
// them into a single consensus label.
//
// Method A is a pattern lexicon yielding polarity and subjectivity; method
// B is a valence lexicon tuned for informal social-media text yielding a
// normalized compound score with pos/neg/neu proportions. The two methods
// are computed independently: a method that finds no signal contributes
// its neutral defaults instead of failing the record.
package sentiment

import (
	"regexp"
	"strings"

	"SentimentScanner/internal/domain"
)

var reToken = regexp.MustCompile(`[a-z]+(?:'[a-z]+)*`)

// negators flip or dampen the valence of the word they precede.
var negators = map[string]bool{
	"not": true, "no": true, "never": true, "none": true,
	"neither": true, "nor": true, "cannot": true,
	"isn't": true, "aren't": true, "wasn't": true, "weren't": true,
	"don't": true, "doesn't": true, "didn't": true,
	"won't": true, "wouldn't": true, "can't": true, "couldn't": true,
	"shouldn't": true, "ain't": true,
}

// Scorer runs both methods over a text.
type Scorer struct{}

// NewScorer returns a ready scorer; lexicons are package data.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes both methods for the given text. Empty or signal-free
// text yields the neutral defaults (polarity=0, subjectivity=0 and
// compound=0, neu=1) rather than an error.
func (s *Scorer) Score(text string) domain.SentimentScore {
	tokens := tokenize(text)

	polarity, subjectivity := scorePattern(tokens)
	compound, pos, neg, neu := scoreValence(tokens, text)

	return domain.SentimentScore{
		Polarity:     polarity,
		Subjectivity: subjectivity,
		Compound:     compound,
		Pos:          pos,
		Neg:          neg,
		Neu:          neu,
	}
}

func tokenize(text string) []string {
	return reToken.FindAllString(strings.ToLower(text), -1)
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
