package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseQuestionSections extracts the generated question lists from the
// model's markdown. The contract is two headers, "## Technical Questions"
// and "## Behavioral Questions", each followed by hyphen-prefixed bullet
// lines. Anything outside a recognized section is ignored.
func ParseQuestionSections(raw string) (technical, behavioral []string, err error) {
	const (
		sectionNone = iota
		sectionTechnical
		sectionBehavioral
	)

	section := sectionNone
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "##"):
			header := strings.ToLower(strings.TrimSpace(strings.TrimLeft(line, "#")))
			switch {
			case strings.HasPrefix(header, "technical"):
				section = sectionTechnical
			case strings.HasPrefix(header, "behavioral"):
				section = sectionBehavioral
			default:
				section = sectionNone
			}
		case strings.HasPrefix(line, "- "):
			text := strings.TrimSpace(strings.TrimPrefix(line, "- "))
			if text == "" {
				continue
			}
			switch section {
			case sectionTechnical:
				technical = append(technical, text)
			case sectionBehavioral:
				behavioral = append(behavioral, text)
			}
		}
	}

	if len(technical) == 0 || len(behavioral) == 0 {
		return nil, nil, fmt.Errorf("question sections missing or empty (technical=%d behavioral=%d)",
			len(technical), len(behavioral))
	}
	return technical, behavioral, nil
}

// extractJSON pulls the first balanced JSON object out of model output,
// tolerating markdown fences and prose around it.
func extractJSON(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}
	return "", false
}

// clampScore bounds a model-reported score to the canonical 0-10 scale.
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

type scorePayload struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// ParseScore reads a {"score": n, "feedback": "..."} completion.
func ParseScore(raw string) (float64, string, error) {
	blob, ok := extractJSON(raw)
	if !ok {
		return 0, "", fmt.Errorf("no JSON object in score response")
	}
	var payload scorePayload
	if err := json.Unmarshal([]byte(blob), &payload); err != nil {
		return 0, "", fmt.Errorf("failed to parse score response: %w", err)
	}
	return clampScore(payload.Score), strings.TrimSpace(payload.Feedback), nil
}

type overallPayload struct {
	Score          float64 `json:"score"`
	Recommendation string  `json:"recommendation"`
	Hire           bool    `json:"hire"`
}

// ParseOverall reads the final blended evaluation completion.
func ParseOverall(raw string) (float64, string, bool, error) {
	blob, ok := extractJSON(raw)
	if !ok {
		return 0, "", false, fmt.Errorf("no JSON object in overall response")
	}
	var payload overallPayload
	if err := json.Unmarshal([]byte(blob), &payload); err != nil {
		return 0, "", false, fmt.Errorf("failed to parse overall response: %w", err)
	}
	return clampScore(payload.Score), strings.TrimSpace(payload.Recommendation), payload.Hire, nil
}

// ParseIDCard reads the OCR extraction completion.
func ParseIDCard(raw string) (*IDCardData, error) {
	blob, ok := extractJSON(raw)
	if !ok {
		return nil, fmt.Errorf("no JSON object in OCR response")
	}
	var data IDCardData
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		return nil, fmt.Errorf("failed to parse OCR response: %w", err)
	}
	data.Name = strings.TrimSpace(data.Name)
	data.IDNumber = strings.TrimSpace(data.IDNumber)
	return &data, nil
}

// noFollowUpSentinel is the contract marker for "this answer needs no probe".
const noFollowUpSentinel = "NO_FOLLOW_UP"

// uncertaintyPhrases gate follow-up generation: only answers expressing
// uncertainty warrant a probe.
var uncertaintyPhrases = []string{
	"i don't know",
	"i dont know",
	"not sure",
	"no idea",
	"basic knowledge",
	"don't remember",
	"dont remember",
	"not familiar",
	"never used",
	"only heard of",
}

// NeedsFollowUp reports whether a transcript expresses enough uncertainty to
// warrant one follow-up probe.
func NeedsFollowUp(transcript string) bool {
	t := strings.ToLower(strings.TrimSpace(transcript))
	if t == "" {
		return false
	}
	for _, phrase := range uncertaintyPhrases {
		if strings.Contains(t, phrase) {
			return true
		}
	}
	return false
}

// parseFollowUp normalizes the probe completion. Returns "" for the
// sentinel or for responses too short to be a real question.
func parseFollowUp(raw string) string {
	text := strings.TrimSpace(raw)
	text = strings.Trim(text, "\"")
	if text == "" || strings.Contains(strings.ToUpper(text), noFollowUpSentinel) {
		return ""
	}
	if len(text) < 10 {
		return ""
	}
	return text
}
