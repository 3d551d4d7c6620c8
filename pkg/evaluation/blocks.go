package evaluation

import (
	"fmt"
	"strings"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/question"
)

// noAnswer stands in for an empty or missing transcript so the evaluator
// sees the gap instead of a silently shorter interview.
const noAnswer = "No answer provided."

// buildSpokenBlock renders the spoken Q&A in asking order. Coding questions
// are excluded; their submissions go into the coding block.
func buildSpokenBlock(questions []*ent.Question, responses map[string]*ent.Response) string {
	var b strings.Builder
	for _, q := range questions {
		if q.Type == question.TypeCoding {
			continue
		}

		label := fmt.Sprintf("Question %d", q.Order+1)
		if q.Level == question.LevelFollowUp {
			label = fmt.Sprintf("Follow-up to question %d", q.Order+1)
		}

		answer := noAnswer
		if resp, ok := responses[q.ID]; ok && strings.TrimSpace(resp.Content) != "" {
			answer = strings.TrimSpace(resp.Content)
		}

		fmt.Fprintf(&b, "%s: %s\nAnswer: %s\n\n", label, q.Text, answer)
	}
	return strings.TrimSpace(b.String())
}

// buildCodingBlock renders one section per code submission: question text,
// language, the judged result log, and the source.
func buildCodingBlock(questions []*ent.Question, submissions []*ent.CodeSubmission) string {
	texts := make(map[string]string, len(questions))
	for _, q := range questions {
		texts[q.ID] = q.Text
	}

	var b strings.Builder
	for _, sub := range submissions {
		text, ok := texts[sub.QuestionID]
		if !ok {
			text = "(question not on file)"
		}

		verdict := "FAILED"
		if sub.PassedAllTests {
			verdict = "PASSED ALL TESTS"
		}

		fmt.Fprintf(&b, "Coding question: %s\n", text)
		fmt.Fprintf(&b, "Language: %s\n", sub.Language)
		fmt.Fprintf(&b, "Verdict: %s\n", verdict)
		if log := strings.TrimSpace(sub.OutputLog); log != "" {
			fmt.Fprintf(&b, "Test results:\n%s\n", log)
		}
		fmt.Fprintf(&b, "Source:\n%s\n\n", strings.TrimSpace(sub.SourceCode))
	}
	return strings.TrimSpace(b.String())
}
