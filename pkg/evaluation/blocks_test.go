package evaluation

import (
	"testing"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/codesubmission"
	"github.com/hireloop/hireloop/ent/question"
	"github.com/stretchr/testify/assert"
)

func TestBuildSpokenBlock(t *testing.T) {
	questions := []*ent.Question{
		{ID: "q1", Order: 0, Type: question.TypeIceBreaker, Level: question.LevelMain,
			Text: "What drew you to this role?"},
		{ID: "q1f", Order: 0, Type: question.TypeIceBreaker, Level: question.LevelFollowUp,
			Text: "Could you say more about that?"},
		{ID: "q2", Order: 1, Type: question.TypeTechnical, Level: question.LevelMain,
			Text: "How do you handle schema migrations?"},
	}
	responses := map[string]*ent.Response{
		"q1": {ID: "r1", QuestionID: "q1", Content: "  The team's focus on reliability.  "},
		"q2": {ID: "r2", QuestionID: "q2", Content: ""},
	}

	block := buildSpokenBlock(questions, responses)

	assert.Equal(t,
		"Question 1: What drew you to this role?\n"+
			"Answer: The team's focus on reliability.\n\n"+
			"Follow-up to question 1: Could you say more about that?\n"+
			"Answer: No answer provided.\n\n"+
			"Question 2: How do you handle schema migrations?\n"+
			"Answer: No answer provided.",
		block)
}

func TestBuildSpokenBlockExcludesCodingQuestions(t *testing.T) {
	lang := question.CodingLanguagePython
	questions := []*ent.Question{
		{ID: "q1", Order: 0, Type: question.TypeTechnical, Level: question.LevelMain,
			Text: "Explain eventual consistency."},
		{ID: "q2", Order: 1, Type: question.TypeCoding, Level: question.LevelMain,
			Text: "Reverse a string.", CodingLanguage: &lang},
	}
	responses := map[string]*ent.Response{
		"q1": {ID: "r1", QuestionID: "q1", Content: "Replicas converge over time."},
		"q2": {ID: "r2", QuestionID: "q2", Content: "def solve(s): return s[::-1]"},
	}

	block := buildSpokenBlock(questions, responses)

	assert.Contains(t, block, "Explain eventual consistency.")
	assert.NotContains(t, block, "Reverse a string.")
	assert.NotContains(t, block, "def solve")
}

func TestBuildSpokenBlockEmptyWithoutQuestions(t *testing.T) {
	assert.Equal(t, "", buildSpokenBlock(nil, nil))
}

func TestBuildCodingBlock(t *testing.T) {
	questions := []*ent.Question{
		{ID: "q5", Order: 4, Type: question.TypeCoding, Level: question.LevelMain,
			Text: "Reverse a string."},
	}

	t.Run("renders verdict, log, and source", func(t *testing.T) {
		submissions := []*ent.CodeSubmission{
			{ID: "s1", QuestionID: "q5", Language: codesubmission.LanguagePython,
				SourceCode:     "def solve(s):\n    return s[::-1]\n",
				PassedAllTests: true,
				OutputLog:      "Test 1: PASSED\nTest 2 (hidden): PASSED",
			},
		}

		block := buildCodingBlock(questions, submissions)

		assert.Equal(t,
			"Coding question: Reverse a string.\n"+
				"Language: python\n"+
				"Verdict: PASSED ALL TESTS\n"+
				"Test results:\nTest 1: PASSED\nTest 2 (hidden): PASSED\n"+
				"Source:\ndef solve(s):\n    return s[::-1]",
			block)
	})

	t.Run("failed submission without a log omits the results section", func(t *testing.T) {
		submissions := []*ent.CodeSubmission{
			{ID: "s2", QuestionID: "q5", Language: codesubmission.LanguageJavascript,
				SourceCode: "function solve(s) { return s; }"},
		}

		block := buildCodingBlock(questions, submissions)

		assert.Contains(t, block, "Verdict: FAILED")
		assert.NotContains(t, block, "Test results:")
	})

	t.Run("legacy question reference renders a placeholder", func(t *testing.T) {
		submissions := []*ent.CodeSubmission{
			{ID: "s3", QuestionID: "4", Language: codesubmission.LanguagePython,
				SourceCode: "def solve(): pass"},
		}

		block := buildCodingBlock(questions, submissions)

		assert.Contains(t, block, "Coding question: (question not on file)")
	})

	t.Run("empty without submissions", func(t *testing.T) {
		assert.Equal(t, "", buildCodingBlock(questions, nil))
	})
}
