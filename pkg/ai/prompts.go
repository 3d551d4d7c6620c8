package ai

import (
	"fmt"
	"strings"
)

const questionSystemPrompt = `You are a senior technical interviewer preparing questions for a live remote interview. Be specific to the candidate's background and the role. Output exactly two markdown sections:

## Technical Questions
- <question>
- <question>

## Behavioral Questions
- <question>

Use hyphen bullets only. No numbering, no commentary outside the sections.`

func questionUserPrompt(in QuestionInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Role: %s\n\n", in.JobTitle)
	fmt.Fprintf(&b, "Job description:\n%s\n\n", in.JobDescription)
	if in.ResumeText != "" {
		fmt.Fprintf(&b, "Candidate resume:\n%s\n\n", in.ResumeText)
	}
	b.WriteString("Produce 2 technical questions and 1 behavioral question tailored to this role and candidate.")
	return b.String()
}

const followUpSystemPrompt = `You are conducting a live interview. The candidate just gave an uncertain answer. Ask exactly one short, encouraging follow-up question that probes the same topic from an easier angle. If no follow-up makes sense, reply with exactly NO_FOLLOW_UP. Reply with the question text only.`

func followUpUserPrompt(parentText, transcript string) string {
	return fmt.Sprintf("Question asked: %s\n\nCandidate's answer: %s", parentText, transcript)
}

const resumeSystemPrompt = `You evaluate how well a resume fits a job description. Respond with a single JSON object: {"score": <number 0-10>, "feedback": "<2-3 sentences>"} and nothing else.`

func resumeUserPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf("Job description:\n%s\n\nResume:\n%s", jobDescription, resumeText)
}

const answersSystemPrompt = `You evaluate interview performance from the transcript of spoken answers and the results of coding exercises. Weigh correctness, depth, and communication. Respond with a single JSON object: {"score": <number 0-10>, "feedback": "<2-3 sentences>"} and nothing else.`

func answersUserPrompt(spokenBlock, codingBlock string) string {
	var b strings.Builder
	b.WriteString("Spoken answers:\n")
	b.WriteString(spokenBlock)
	if codingBlock != "" {
		b.WriteString("\n\nCoding exercises:\n")
		b.WriteString(codingBlock)
	}
	return b.String()
}

const overallSystemPrompt = `You produce the final hiring assessment from component scores and proctoring observations. Respond with a single JSON object: {"score": <number 0-10>, "recommendation": "<3-4 sentences>", "hire": <true|false>} and nothing else.`

func overallUserPrompt(resumeScore, answersScore float64, warningSummary string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Resume fit score: %.1f/10\n", resumeScore)
	fmt.Fprintf(&b, "Interview answers score: %.1f/10\n", answersScore)
	if warningSummary == "" {
		b.WriteString("Proctoring warnings: none\n")
	} else {
		fmt.Fprintf(&b, "Proctoring warnings:\n%s\n", warningSummary)
	}
	return b.String()
}

const ocrPrompt = `This photo shows a person holding a government ID card. Read the ID card and extract the holder's full name and the ID number. Respond with a single JSON object: {"name": "<name>", "id_number": "<number>"} and nothing else. Use empty strings for fields you cannot read.`
