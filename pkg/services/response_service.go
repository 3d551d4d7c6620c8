package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/response"
)

// ResponseService persists candidate answers. Each question takes exactly
// one response; the unique index on question_id backs that up.
type ResponseService struct {
	client *ent.Client
}

// NewResponseService creates a new ResponseService
func NewResponseService(client *ent.Client) *ResponseService {
	return &ResponseService{client: client}
}

// RecordResponseInput is the persisted answer. For AUDIO payloads Content
// is the transcript and AudioPath points at the stored original.
type RecordResponseInput struct {
	SessionID       string
	QuestionID      string
	Kind            string // text | audio | code
	Content         string
	AudioPath       *string
	DurationSeconds float64
}

// RecordResponse stores one answer. A second write to the same question
// returns ErrAlreadyExists.
func (s *ResponseService) RecordResponse(ctx context.Context, in RecordResponseInput) (*ent.Response, error) {
	create := s.client.Response.Create().
		SetID(uuid.NewString()).
		SetSessionID(in.SessionID).
		SetQuestionID(in.QuestionID).
		SetKind(response.Kind(in.Kind)).
		SetContent(in.Content).
		SetDurationSeconds(in.DurationSeconds)
	if in.AudioPath != nil {
		create.SetAudioPath(*in.AudioPath)
	}

	resp, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record response: %w", err)
	}
	return resp, nil
}

// ReplaceContent overwrites an answer in place. Used when the first attempt
// produced an empty transcript (degraded transcription) and the candidate
// retries, and for code resubmissions, where the response row tracks the
// latest source.
func (s *ResponseService) ReplaceContent(ctx context.Context, responseID, kind, content string, audioPath *string, durationSeconds float64) (*ent.Response, error) {
	update := s.client.Response.UpdateOneID(responseID).
		SetKind(response.Kind(kind)).
		SetContent(content).
		SetDurationSeconds(durationSeconds)
	if audioPath != nil {
		update.SetAudioPath(*audioPath)
	}

	resp, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to replace response: %w", err)
	}
	return resp, nil
}

// GetByQuestion retrieves the response for one question, if any.
func (s *ResponseService) GetByQuestion(ctx context.Context, questionID string) (*ent.Response, error) {
	resp, err := s.client.Response.Query().
		Where(response.QuestionIDEQ(questionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get response: %w", err)
	}
	return resp, nil
}

// ListBySession returns a session's responses in creation order.
func (s *ResponseService) ListBySession(ctx context.Context, sessionID string) ([]*ent.Response, error) {
	resps, err := s.client.Response.Query().
		Where(response.SessionIDEQ(sessionID)).
		Order(ent.Asc(response.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	return resps, nil
}

// SetMetrics attaches the mechanical transcript metrics computed at
// evaluation time. Best-effort: evaluation proceeds even when this fails.
func (s *ResponseService) SetMetrics(ctx context.Context, responseID string, fillerCount int, wordsPerMinute, sentiment float64) error {
	err := s.client.Response.UpdateOneID(responseID).
		SetFillerCount(fillerCount).
		SetWordsPerMinute(wordsPerMinute).
		SetSentiment(sentiment).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set response metrics: %w", err)
	}
	return nil
}
