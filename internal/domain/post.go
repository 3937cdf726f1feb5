package domain

import "time"

// SourceKind distinguishes live posts from bundled fallback texts.
type SourceKind string

const (
	SourcePrimary  SourceKind = "primary"
	SourceFallback SourceKind = "fallback"
)

// Topic describes what to fetch and from where.
type Topic struct {
	Source    string
	Subreddit string
	Query     string
	Limit     int
	Feeds     []string
}

// Post is a single text document pulled from a source. Text holds the
// combined title+body; the pipeline replaces it with the cleaned form
// before scoring.
type Post struct {
	ID        string
	Title     string
	Text      string
	Votes     string
	Timestamp time.Time
	Kind      SourceKind
	Origin    string
	Topic     string
}

// FetchOutcome is the explicit result of the primary fetch attempt loop.
// Reason is set when the attempts were abandoned and the fallback corpus
// must be substituted.
type FetchOutcome struct {
	Posts  []Post
	Kind   SourceKind
	Reason string
}

// Label is the three-way consensus sentiment classification.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// SentimentScore carries both methods' signals for one post. Polarity and
// Subjectivity come from the pattern-lexicon method, the rest from the
// valence-lexicon method. Never mutated after creation.
type SentimentScore struct {
	Polarity     float64
	Subjectivity float64
	Compound     float64
	Pos          float64
	Neg          float64
	Neu          float64
}

// AnalyzedPost is one scored and labeled post, the unit of aggregation.
type AnalyzedPost struct {
	Post  Post
	Score SentimentScore
	Label Label
}

// Dataset is the ordered run result; order follows fetch timestamps.
type Dataset []AnalyzedPost

// Extreme points at the strongest post of one sign inside a dataset.
type Extreme struct {
	Text     string
	Compound float64
}

// Summary holds whole-run statistics. All fields are zero for an empty
// dataset; percentages sum to 100 otherwise, modulo rounding.
type Summary struct {
	Total       int
	Positive    int
	Negative    int
	Neutral     int
	PositivePct float64
	NegativePct float64
	NeutralPct  float64

	MeanPolarity     float64
	MeanSubjectivity float64
	MeanCompound     float64
	MeanPos          float64
	MeanNeg          float64
	MeanNeu          float64

	MostPositive Extreme
	MostNegative Extreme
}

// TrendBucket summarizes one fixed-width time window. Buckets with no
// posts still appear in a trend sequence with zero counts.
type TrendBucket struct {
	WindowStart  time.Time
	Count        int
	MeanCompound float64
	MeanPolarity float64
	Labels       map[Label]int
}

// Report is the finished product handed to external reporting: the full
// dataset plus its derived summary and trend sequence. Wire formats are
// owned by the exporting adapter.
type Report struct {
	Topic       string
	GeneratedAt time.Time
	Summary     Summary
	Trends      []TrendBucket
	Records     Dataset
}
