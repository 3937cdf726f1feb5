// Package aggregate derives summary statistics and time-window trends from
// an analyzed dataset. Both projections are pure: re-running them over the
// same dataset yields identical results.
package aggregate

import (
	"time"

	"SentimentScanner/internal/domain"
)

// Summarize computes whole-run statistics. An empty dataset yields the
// zero Summary; percentages are never computed against a zero total.
func Summarize(ds domain.Dataset) domain.Summary {
	var s domain.Summary
	s.Total = len(ds)
	if s.Total == 0 {
		return s
	}

	first := true
	for _, rec := range ds {
		switch rec.Label {
		case domain.LabelPositive:
			s.Positive++
		case domain.LabelNegative:
			s.Negative++
		default:
			s.Neutral++
		}

		s.MeanPolarity += rec.Score.Polarity
		s.MeanSubjectivity += rec.Score.Subjectivity
		s.MeanCompound += rec.Score.Compound
		s.MeanPos += rec.Score.Pos
		s.MeanNeg += rec.Score.Neg
		s.MeanNeu += rec.Score.Neu

		if first || rec.Score.Compound > s.MostPositive.Compound {
			s.MostPositive = domain.Extreme{Text: rec.Post.Text, Compound: rec.Score.Compound}
		}
		if first || rec.Score.Compound < s.MostNegative.Compound {
			s.MostNegative = domain.Extreme{Text: rec.Post.Text, Compound: rec.Score.Compound}
		}
		first = false
	}

	total := float64(s.Total)
	s.PositivePct = float64(s.Positive) / total * 100
	s.NegativePct = float64(s.Negative) / total * 100
	s.NeutralPct = float64(s.Neutral) / total * 100

	s.MeanPolarity /= total
	s.MeanSubjectivity /= total
	s.MeanCompound /= total
	s.MeanPos /= total
	s.MeanNeg /= total
	s.MeanNeu /= total

	return s
}

// Trends buckets the dataset into fixed-width windows spanning earliest to
// latest timestamp. Windows with no records are still emitted with zero
// counts so the sequence has no gaps.
func Trends(ds domain.Dataset, window time.Duration) []domain.TrendBucket {
	if len(ds) == 0 || window <= 0 {
		return nil
	}

	earliest := ds[0].Post.Timestamp
	latest := ds[0].Post.Timestamp
	for _, rec := range ds[1:] {
		if rec.Post.Timestamp.Before(earliest) {
			earliest = rec.Post.Timestamp
		}
		if rec.Post.Timestamp.After(latest) {
			latest = rec.Post.Timestamp
		}
	}

	start := earliest.Truncate(window)
	end := latest.Truncate(window)

	var buckets []domain.TrendBucket
	for ws := start; !ws.After(end); ws = ws.Add(window) {
		buckets = append(buckets, domain.TrendBucket{
			WindowStart: ws,
			Labels: map[domain.Label]int{
				domain.LabelPositive: 0,
				domain.LabelNegative: 0,
				domain.LabelNeutral:  0,
			},
		})
	}

	for _, rec := range ds {
		idx := int(rec.Post.Timestamp.Truncate(window).Sub(start) / window)
		b := &buckets[idx]
		b.Count++
		b.MeanCompound += rec.Score.Compound
		b.MeanPolarity += rec.Score.Polarity
		b.Labels[rec.Label]++
	}

	for i := range buckets {
		if buckets[i].Count > 0 {
			buckets[i].MeanCompound /= float64(buckets[i].Count)
			buckets[i].MeanPolarity /= float64(buckets[i].Count)
		}
	}

	return buckets
}
