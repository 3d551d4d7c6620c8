package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/question"
	"github.com/hireloop/hireloop/ent/response"
	"github.com/hireloop/hireloop/ent/testcase"
	"github.com/hireloop/hireloop/pkg/ai"
)

// QuestionService persists the question plan and serves it back in asking
// order: MAIN questions by order, each followed by its follow-ups in
// creation order.
type QuestionService struct {
	client *ent.Client
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(client *ent.Client) *QuestionService {
	return &QuestionService{client: client}
}

// QuestionSeed pairs a generated draft with its synthesized audio outcome.
type QuestionSeed struct {
	Draft       ai.QuestionDraft
	AudioPath   *string
	TTSDegraded bool
}

// CreateQuestionSet persists the full plan in one transaction, including
// test cases for coding questions. Called exactly once per session, by the
// Start call that won the SCHEDULED -> ACTIVE transition.
func (s *QuestionService) CreateQuestionSet(ctx context.Context, sessionID string, seeds []QuestionSeed) ([]*ent.Question, error) {
	if len(seeds) == 0 {
		return nil, NewValidationError("questions", "empty plan")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	questions := make([]*ent.Question, 0, len(seeds))
	for _, seed := range seeds {
		d := seed.Draft

		create := tx.Question.Create().
			SetID(uuid.NewString()).
			SetSessionID(sessionID).
			SetOrder(d.Order).
			SetType(question.Type(d.Type)).
			SetLevel(question.LevelMain).
			SetText(d.Text).
			SetTtsDegraded(seed.TTSDegraded).
			SetGeneratedFallback(d.Fallback)
		if d.CodingLanguage != "" {
			create.SetCodingLanguage(question.CodingLanguage(d.CodingLanguage))
		}
		if seed.AudioPath != nil {
			create.SetAudioPath(*seed.AudioPath)
		}

		q, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create question %d: %w", d.Order, err)
		}

		for i, tc := range d.TestCases {
			if err := tx.TestCase.Create().
				SetID(uuid.NewString()).
				SetQuestionID(q.ID).
				SetInput(tc.Input).
				SetExpectedOutput(tc.Expected).
				SetIsHidden(tc.Hidden).
				SetOrdinal(i).
				Exec(ctx); err != nil {
				return nil, fmt.Errorf("failed to create test case: %w", err)
			}
		}

		questions = append(questions, q)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit question set: %w", err)
	}
	return questions, nil
}

// AddFollowUp appends one follow-up under a MAIN question. It shares the
// parent's order and sorts after it by creation time.
func (s *QuestionService) AddFollowUp(ctx context.Context, parent *ent.Question, text string, audioPath *string, ttsDegraded bool) (*ent.Question, error) {
	create := s.client.Question.Create().
		SetID(uuid.NewString()).
		SetSessionID(parent.SessionID).
		SetOrder(parent.Order).
		SetType(parent.Type).
		SetLevel(question.LevelFollowUp).
		SetParentID(parent.ID).
		SetText(text).
		SetTtsDegraded(ttsDegraded).
		SetCreatedAt(time.Now())
	if audioPath != nil {
		create.SetAudioPath(*audioPath)
	}

	q, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create follow-up: %w", err)
	}
	return q, nil
}

// GetQuestion retrieves a question by ID
func (s *QuestionService) GetQuestion(ctx context.Context, questionID string) (*ent.Question, error) {
	q, err := s.client.Question.Get(ctx, questionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return q, nil
}

// ListQuestions returns a session's questions in asking order. MAIN
// questions always precede their follow-ups because follow-ups share the
// parent's order and are created later.
func (s *QuestionService) ListQuestions(ctx context.Context, sessionID string) ([]*ent.Question, error) {
	qs, err := s.client.Question.Query().
		Where(question.SessionIDEQ(sessionID)).
		Order(
			ent.Asc(question.FieldOrder),
			ent.Asc(question.FieldCreatedAt),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return qs, nil
}

// MainQuestionByOrder retrieves the MAIN question at a zero-based order.
func (s *QuestionService) MainQuestionByOrder(ctx context.Context, sessionID string, order int) (*ent.Question, error) {
	q, err := s.client.Question.Query().
		Where(
			question.SessionIDEQ(sessionID),
			question.OrderEQ(order),
			question.LevelEQ(question.LevelMain),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get question at order %d: %w", order, err)
	}
	return q, nil
}

// HasResponse reports whether a question already has a non-empty answer.
func (s *QuestionService) HasResponse(ctx context.Context, questionID string) (bool, error) {
	exists, err := s.client.Response.Query().
		Where(
			response.QuestionIDEQ(questionID),
			response.ContentNEQ(""),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check response: %w", err)
	}
	return exists, nil
}

// HasFollowUp reports whether a MAIN question already spawned a follow-up.
// At most one follow-up is asked per main question.
func (s *QuestionService) HasFollowUp(ctx context.Context, parentID string) (bool, error) {
	exists, err := s.client.Question.Query().
		Where(question.ParentIDEQ(parentID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check follow-up: %w", err)
	}
	return exists, nil
}

// TestCasesFor returns a question's test cases in authoring order. The
// runner re-orders them (non-hidden first) itself.
func (s *QuestionService) TestCasesFor(ctx context.Context, questionID string) ([]*ent.TestCase, error) {
	tcs, err := s.client.TestCase.Query().
		Where(testcase.QuestionIDEQ(questionID)).
		Order(ent.Asc(testcase.FieldOrdinal)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list test cases: %w", err)
	}
	return tcs, nil
}
