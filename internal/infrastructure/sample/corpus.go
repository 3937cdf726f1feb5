// Package sample bundles the fallback corpus used when live retrieval
// fails. The texts ship with the binary so a pipeline run can always
// produce a dataset.
package sample

import (
	"fmt"
	"time"

	"SentimentScanner/internal/domain"
)

var texts = []string{
	"I love the new AI developments! This technology is amazing and will change everything for the better.",
	"Artificial intelligence is concerning. We need to be careful about job displacement and privacy.",
	"The latest AI research shows promising results in healthcare applications.",
	"Machine learning algorithms are becoming more sophisticated every day.",
	"I'm worried about the ethical implications of AI in decision making.",
	"This AI tool helped me solve a complex problem quickly. Very impressed!",
	"The debate about AI regulation continues among policymakers worldwide.",
	"Neural networks are fascinating from a technical perspective.",
	"AI companies need to be more transparent about their data usage.",
	"The potential of AI in education is enormous and exciting.",
	"Deep learning models require massive computational resources.",
	"I think AI will create more jobs than it destroys in the long run.",
	"The bias in AI systems is a serious problem that needs addressing.",
	"Automation through AI is transforming manufacturing industries.",
	"Natural language processing has improved dramatically in recent years.",
	"I'm excited about the future of AI in creative applications.",
	"The AI winter was a difficult period for the research community.",
	"Computer vision technology is enabling new possibilities in robotics.",
	"AI safety research is crucial for developing beneficial systems.",
	"The democratization of AI tools is empowering more developers.",
}

// Corpus returns exactly limit fallback posts for the topic, cycling the
// bundled texts when limit exceeds them. Timestamps step forward in
// 30-minute increments starting 12 hours before now, so trend bucketing
// has real spread to work with. Deterministic for a fixed now.
func Corpus(topic string, limit int, now time.Time) []domain.Post {
	if limit <= 0 {
		return nil
	}

	base := now.Add(-12 * time.Hour)
	posts := make([]domain.Post, 0, limit)
	for i := 0; i < limit; i++ {
		text := texts[i%len(texts)]
		posts = append(posts, domain.Post{
			ID:        fmt.Sprintf("sample-%d", i+1),
			Title:     fmt.Sprintf("Discussion post %d", i+1),
			Text:      text,
			Votes:     fmt.Sprintf("%d", i%10),
			Timestamp: base.Add(time.Duration(i) * 30 * time.Minute),
			Kind:      domain.SourceFallback,
			Origin:    "sample",
			Topic:     topic,
		})
	}

	return posts
}
