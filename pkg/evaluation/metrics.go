package evaluation

import (
	"math"
	"strings"
	"unicode"
)

// fillerWords is the fixed list counted in transcripts. Multi-word entries
// match as consecutive tokens.
var fillerWords = []string{
	"um", "uh", "er", "ah", "hmm",
	"like", "actually", "basically", "literally",
	"you know", "i mean", "sort of", "kind of",
}

// Compact polarity lexicon for per-question sentiment. This is a mechanical
// signal stored next to the LLM scores, never blended into them.
var (
	positiveWords = map[string]bool{
		"good": true, "great": true, "excellent": true, "strong": true,
		"love": true, "enjoy": true, "enjoyed": true, "happy": true,
		"confident": true, "success": true, "successful": true,
		"improve": true, "improved": true, "solved": true, "effective": true,
		"efficient": true, "clear": true, "interesting": true, "best": true,
	}
	negativeWords = map[string]bool{
		"bad": true, "hard": true, "difficult": true, "problem": true,
		"problems": true, "fail": true, "failed": true, "failure": true,
		"wrong": true, "hate": true, "worst": true, "confused": true,
		"confusing": true, "stress": true, "stressful": true, "weak": true,
		"struggle": true, "struggled": true, "poor": true, "unfortunately": true,
	}
)

var fillerTokens = splitFillers()

func splitFillers() [][]string {
	out := make([][]string, len(fillerWords))
	for i, f := range fillerWords {
		out[i] = strings.Fields(f)
	}
	return out
}

// tokenize lowercases and splits on anything that is not a letter, digit,
// or apostrophe.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// countFillers counts filler occurrences, including overlapping back-to-back
// repeats ("um um" counts twice).
func countFillers(tokens []string) int {
	total := 0
	for i := range tokens {
		for _, phrase := range fillerTokens {
			if matchesAt(tokens, i, phrase) {
				total++
			}
		}
	}
	return total
}

func matchesAt(tokens []string, i int, phrase []string) bool {
	if i+len(phrase) > len(tokens) {
		return false
	}
	for j, w := range phrase {
		if tokens[i+j] != w {
			return false
		}
	}
	return true
}

// sentiment returns the lexicon polarity of a transcript in [-1, 1];
// 0 when no lexicon word appears.
func sentiment(tokens []string) float64 {
	pos, neg := 0, 0
	for _, tok := range tokens {
		if positiveWords[tok] {
			pos++
		}
		if negativeWords[tok] {
			neg++
		}
	}
	if pos+neg == 0 {
		return 0
	}
	return float64(pos-neg) / float64(pos+neg)
}

// wordsPerMinute is zero when no duration was recorded (typed answers).
func wordsPerMinute(wordCount int, durationSeconds float64) float64 {
	if durationSeconds <= 0 {
		return 0
	}
	return float64(wordCount) / (durationSeconds / 60)
}

// round1 rounds to the canonical one-decimal score precision.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// responseMetrics is the mechanical profile of one spoken answer.
type responseMetrics struct {
	responseID     string
	questionID     string
	fillerCount    int
	wordsPerMinute float64
	sentiment      float64
}

// transcriptMetrics aggregates the per-response profiles for the stored
// metrics JSON.
type transcriptMetrics struct {
	perResponse        []responseMetrics
	fillerTotal        int
	wordsPerMinute     float64
	avgResponseSeconds float64
}

// analyzeTranscript profiles one answer.
func analyzeTranscript(responseID, questionID, transcript string, durationSeconds float64) responseMetrics {
	tokens := tokenize(transcript)
	return responseMetrics{
		responseID:     responseID,
		questionID:     questionID,
		fillerCount:    countFillers(tokens),
		wordsPerMinute: wordsPerMinute(len(tokens), durationSeconds),
		sentiment:      sentiment(tokens),
	}
}

// metricsJSON renders the aggregate for EvaluationResult.metrics.
func (m *transcriptMetrics) metricsJSON() map[string]interface{} {
	byQuestion := make(map[string]interface{}, len(m.perResponse))
	for _, r := range m.perResponse {
		byQuestion[r.questionID] = math.Round(r.sentiment*100) / 100
	}
	return map[string]interface{}{
		"filler_total":          m.fillerTotal,
		"words_per_minute":      round1(m.wordsPerMinute),
		"avg_response_seconds":  round1(m.avgResponseSeconds),
		"sentiment_by_question": byQuestion,
	}
}
