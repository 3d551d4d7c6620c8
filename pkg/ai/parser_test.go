package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestionSections(t *testing.T) {
	raw := `Here are the questions.

## Technical Questions
- How does a B-tree index speed up range scans?
- Explain connection pooling.

## Behavioral Questions
- Tell me about a failed launch.
`
	technical, behavioral, err := ParseQuestionSections(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"How does a B-tree index speed up range scans?",
		"Explain connection pooling.",
	}, technical)
	assert.Equal(t, []string{"Tell me about a failed launch."}, behavioral)
}

func TestParseQuestionSectionsToleratesCaseAndNoise(t *testing.T) {
	raw := "## technical questions\n- q1\ntrailing prose\n## BEHAVIORAL QUESTIONS\n- q2\n\n## Notes\n- ignored"

	technical, behavioral, err := ParseQuestionSections(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"q1"}, technical)
	assert.Equal(t, []string{"q2"}, behavioral)
}

func TestParseQuestionSectionsRejectsMissingSections(t *testing.T) {
	cases := []string{
		"",
		"no sections at all",
		"## Technical Questions\n- only technical",
		"## Technical Questions\n## Behavioral Questions\n",
	}
	for _, raw := range cases {
		_, _, err := ParseQuestionSections(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestParseScoreTolerant(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		score    float64
		feedback string
	}{
		{"bare json", `{"score": 7.5, "feedback": "good"}`, 7.5, "good"},
		{"fenced", "```json\n{\"score\": 9, \"feedback\": \"great\"}\n```", 9, "great"},
		{"prose around", `Sure! {"score": 4, "feedback": "weak"} Hope that helps.`, 4, "weak"},
		{"clamped high", `{"score": 14, "feedback": "x"}`, 10, "x"},
		{"clamped low", `{"score": -3, "feedback": "x"}`, 0, "x"},
		{"braces in feedback", `{"score": 5, "feedback": "uses {} literals"}`, 5, "uses {} literals"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, feedback, err := ParseScore(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.score, score)
			assert.Equal(t, tc.feedback, feedback)
		})
	}
}

func TestParseScoreRejectsNonJSON(t *testing.T) {
	_, _, err := ParseScore("the candidate did fine, 8/10")
	assert.Error(t, err)
}

func TestParseOverall(t *testing.T) {
	score, rec, hire, err := ParseOverall(`{"score": 8.2, "recommendation": "hire them", "hire": true}`)
	require.NoError(t, err)
	assert.Equal(t, 8.2, score)
	assert.Equal(t, "hire them", rec)
	assert.True(t, hire)
}

func TestParseIDCard(t *testing.T) {
	data, err := ParseIDCard("```json\n{\"name\": \" Priya Sharma \", \"id_number\": \"1234 5678 9012\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", data.Name)
	assert.Equal(t, "1234 5678 9012", data.IDNumber)
}

func TestNeedsFollowUp(t *testing.T) {
	cases := []struct {
		transcript string
		want       bool
	}{
		{"I am not sure about generics", true},
		{"Honestly I don't know", true},
		{"I have basic knowledge of Kafka", true},
		{"NOT SURE at all", true},
		{"A process has its own address space; a thread shares one.", false},
		{"", false},
		{"   ", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NeedsFollowUp(tc.transcript), "transcript=%q", tc.transcript)
	}
}

func TestParseFollowUp(t *testing.T) {
	assert.Equal(t, "", parseFollowUp("NO_FOLLOW_UP"))
	assert.Equal(t, "", parseFollowUp("  no_follow_up  "))
	assert.Equal(t, "", parseFollowUp("ok"))
	assert.Equal(t, "", parseFollowUp(""))
	assert.Equal(t,
		"Could you describe what a generic type parameter is?",
		parseFollowUp("\"Could you describe what a generic type parameter is?\""))
}
