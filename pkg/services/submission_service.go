package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/codesubmission"
	"github.com/hireloop/hireloop/ent/question"
)

// CodeSubmissionService persists code runs. Rows are immutable: a
// resubmission is a new row, and the evaluation engine reads the latest one
// per question.
type CodeSubmissionService struct {
	client *ent.Client
}

// NewCodeSubmissionService creates a new CodeSubmissionService
func NewCodeSubmissionService(client *ent.Client) *CodeSubmissionService {
	return &CodeSubmissionService{client: client}
}

// RecordSubmissionInput captures one judged run.
type RecordSubmissionInput struct {
	SessionID      string
	QuestionID     string
	Language       string
	SourceCode     string
	PassedAllTests bool
	OutputLog      string
}

// RecordSubmission stores one judged run.
func (s *CodeSubmissionService) RecordSubmission(ctx context.Context, in RecordSubmissionInput) (*ent.CodeSubmission, error) {
	sub, err := s.client.CodeSubmission.Create().
		SetID(uuid.NewString()).
		SetSessionID(in.SessionID).
		SetQuestionID(in.QuestionID).
		SetLanguage(codesubmission.Language(in.Language)).
		SetSourceCode(in.SourceCode).
		SetPassedAllTests(in.PassedAllTests).
		SetOutputLog(in.OutputLog).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record code submission: %w", err)
	}
	return sub, nil
}

// ListBySession returns a session's submissions oldest first.
func (s *CodeSubmissionService) ListBySession(ctx context.Context, sessionID string) ([]*ent.CodeSubmission, error) {
	subs, err := s.client.CodeSubmission.Query().
		Where(codesubmission.SessionIDEQ(sessionID)).
		Order(ent.Asc(codesubmission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list code submissions: %w", err)
	}
	return subs, nil
}

var integerRef = regexp.MustCompile(`^\d+$`)

// FixQuestionRefs rewrites legacy integer question references to the UUID
// of the MAIN question at that order within the same session. Idempotent:
// repaired rows no longer match the integer pattern. Returns the number of
// rows rewritten.
func (s *CodeSubmissionService) FixQuestionRefs(ctx context.Context) (int, error) {
	subs, err := s.client.CodeSubmission.Query().All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list code submissions: %w", err)
	}

	fixed := 0
	for _, sub := range subs {
		if !integerRef.MatchString(sub.QuestionID) {
			continue
		}
		order, err := strconv.Atoi(sub.QuestionID)
		if err != nil {
			continue
		}

		q, err := s.client.Question.Query().
			Where(
				question.SessionIDEQ(sub.SessionID),
				question.OrderEQ(order),
				question.LevelEQ(question.LevelMain),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				slog.Warn("No question matches legacy submission ref",
					"submission_id", sub.ID, "session_id", sub.SessionID, "order", order)
				continue
			}
			return fixed, fmt.Errorf("failed to resolve question for submission %s: %w", sub.ID, err)
		}

		// question_id is immutable in the schema; legacy repair goes
		// through a raw predicate-free update on the row copy.
		if err := s.rewriteQuestionRef(ctx, sub.ID, q.ID); err != nil {
			return fixed, err
		}
		fixed++
	}
	return fixed, nil
}

// rewriteQuestionRef replaces the immutable question_id by recreating the
// row under the same ID within a transaction.
func (s *CodeSubmissionService) rewriteQuestionRef(ctx context.Context, submissionID, questionID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sub, err := tx.CodeSubmission.Get(ctx, submissionID)
	if err != nil {
		return fmt.Errorf("failed to get submission %s: %w", submissionID, err)
	}

	if err := tx.CodeSubmission.DeleteOneID(submissionID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete legacy submission %s: %w", submissionID, err)
	}
	if err := tx.CodeSubmission.Create().
		SetID(sub.ID).
		SetSessionID(sub.SessionID).
		SetQuestionID(questionID).
		SetLanguage(sub.Language).
		SetSourceCode(sub.SourceCode).
		SetPassedAllTests(sub.PassedAllTests).
		SetOutputLog(sub.OutputLog).
		SetCreatedAt(sub.CreatedAt).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to recreate submission %s: %w", submissionID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit question ref fix: %w", err)
	}
	return nil
}
