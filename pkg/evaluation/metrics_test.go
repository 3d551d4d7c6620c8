package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Run("lowercases and splits on punctuation", func(t *testing.T) {
		tokens := tokenize("Well, I built THE pipeline; twice.")
		assert.Equal(t, []string{"well", "i", "built", "the", "pipeline", "twice"}, tokens)
	})

	t.Run("keeps apostrophes inside words", func(t *testing.T) {
		tokens := tokenize("I don't think it's broken")
		assert.Equal(t, []string{"i", "don't", "think", "it's", "broken"}, tokens)
	})

	t.Run("empty input yields no tokens", func(t *testing.T) {
		assert.Empty(t, tokenize("   "))
	})
}

func TestCountFillers(t *testing.T) {
	t.Run("counts single-word fillers", func(t *testing.T) {
		tokens := tokenize("Um, I was basically done, uh, yesterday.")
		assert.Equal(t, 3, countFillers(tokens))
	})

	t.Run("counts multi-word fillers as consecutive tokens", func(t *testing.T) {
		tokens := tokenize("It was, you know, sort of finished.")
		assert.Equal(t, 2, countFillers(tokens))
	})

	t.Run("counts back-to-back repeats individually", func(t *testing.T) {
		tokens := tokenize("um um um")
		assert.Equal(t, 3, countFillers(tokens))
	})

	t.Run("does not match phrase fragments", func(t *testing.T) {
		// "know" alone and "of" alone are not fillers.
		tokens := tokenize("I know most of the codebase")
		assert.Equal(t, 0, countFillers(tokens))
	})

	t.Run("clean transcript counts zero", func(t *testing.T) {
		tokens := tokenize("We shipped the feature on schedule.")
		assert.Equal(t, 0, countFillers(tokens))
	})
}

func TestSentiment(t *testing.T) {
	t.Run("positive transcript scores above zero", func(t *testing.T) {
		tokens := tokenize("I enjoyed the project and the outcome was great.")
		assert.Equal(t, 1.0, sentiment(tokens))
	})

	t.Run("negative transcript scores below zero", func(t *testing.T) {
		tokens := tokenize("It failed and the rollout was stressful.")
		assert.Equal(t, -1.0, sentiment(tokens))
	})

	t.Run("mixed transcript balances out", func(t *testing.T) {
		// One positive word, one negative word.
		tokens := tokenize("It was hard but the result was good.")
		assert.Equal(t, 0.0, sentiment(tokens))
	})

	t.Run("no lexicon words means neutral", func(t *testing.T) {
		tokens := tokenize("We migrated the database to a new region.")
		assert.Equal(t, 0.0, sentiment(tokens))
	})
}

func TestWordsPerMinute(t *testing.T) {
	t.Run("computes pace from duration", func(t *testing.T) {
		assert.Equal(t, 60.0, wordsPerMinute(30, 30))
		assert.Equal(t, 120.0, wordsPerMinute(120, 60))
	})

	t.Run("zero without a recorded duration", func(t *testing.T) {
		assert.Equal(t, 0.0, wordsPerMinute(50, 0))
		assert.Equal(t, 0.0, wordsPerMinute(50, -1))
	})
}

func TestAnalyzeTranscript(t *testing.T) {
	m := analyzeTranscript("resp-1", "q-1",
		"Um I enjoyed building the ingestion service, you know.", 30)

	assert.Equal(t, "resp-1", m.responseID)
	assert.Equal(t, "q-1", m.questionID)
	assert.Equal(t, 2, m.fillerCount)
	// 9 tokens over 30 seconds.
	assert.Equal(t, 18.0, m.wordsPerMinute)
	assert.Equal(t, 1.0, m.sentiment)
}

func TestMetricsJSON(t *testing.T) {
	m := &transcriptMetrics{
		perResponse: []responseMetrics{
			{responseID: "r1", questionID: "q1", sentiment: 1.0 / 3.0},
			{responseID: "r2", questionID: "q2", sentiment: -1},
		},
		fillerTotal:        4,
		wordsPerMinute:     123.456,
		avgResponseSeconds: 45.678,
	}

	out := m.metricsJSON()

	assert.Equal(t, 4, out["filler_total"])
	assert.Equal(t, 123.5, out["words_per_minute"])
	assert.Equal(t, 45.7, out["avg_response_seconds"])

	byQuestion, ok := out["sentiment_by_question"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, 0.33, byQuestion["q1"])
	assert.Equal(t, -1.0, byQuestion["q2"])
}
