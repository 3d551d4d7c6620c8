package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/evaluationresult"
	"github.com/hireloop/hireloop/ent/session"
	"github.com/hireloop/hireloop/pkg/models"
)

// ResultService persists evaluation outcomes. A session has at most one
// result row; re-evaluation replaces it atomically.
type ResultService struct {
	client *ent.Client
}

// NewResultService creates a new ResultService
func NewResultService(client *ent.Client) *ResultService {
	return &ResultService{client: client}
}

// ResultInput is the complete evaluation outcome to persist. Scores use the
// canonical 0-10 scale.
type ResultInput struct {
	SessionID          string
	InterviewID        string
	ResumeScore        float64
	AnswersScore       float64
	OverallScore       float64
	TechnicalScore     *float64
	BehavioralScore    *float64
	CodingScore        *float64
	ResumeFeedback     string
	AnswersFeedback    string
	Recommendation     string
	HireRecommendation *bool
	ConfidenceLevel    float64
	WarningSummary     string
	Metrics            map[string]interface{}
	IsFallback         bool
	ModelUsed          string
}

// Replace writes the result, deleting any prior row for the session in the
// same transaction, and flips the session to evaluated. Readers never see a
// session with zero results between a delete and its insert.
func (s *ResultService) Replace(ctx context.Context, in ResultInput) (*ent.EvaluationResult, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.EvaluationResult.Delete().
		Where(evaluationresult.SessionIDEQ(in.SessionID)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete prior result: %w", err)
	}

	create := tx.EvaluationResult.Create().
		SetID(uuid.NewString()).
		SetSessionID(in.SessionID).
		SetInterviewID(in.InterviewID).
		SetResumeScore(in.ResumeScore).
		SetAnswersScore(in.AnswersScore).
		SetOverallScore(in.OverallScore).
		SetResumeFeedback(in.ResumeFeedback).
		SetAnswersFeedback(in.AnswersFeedback).
		SetRecommendation(in.Recommendation).
		SetConfidenceLevel(in.ConfidenceLevel).
		SetWarningSummary(in.WarningSummary).
		SetIsFallback(in.IsFallback).
		SetModelUsed(in.ModelUsed)
	if in.TechnicalScore != nil {
		create.SetTechnicalScore(*in.TechnicalScore)
	}
	if in.BehavioralScore != nil {
		create.SetBehavioralScore(*in.BehavioralScore)
	}
	if in.CodingScore != nil {
		create.SetCodingScore(*in.CodingScore)
	}
	if in.HireRecommendation != nil {
		create.SetHireRecommendation(*in.HireRecommendation)
	}
	if in.Metrics != nil {
		create.SetMetrics(in.Metrics)
	}

	result, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create result: %w", err)
	}

	if err := tx.Session.Update().
		Where(session.IDEQ(in.SessionID)).
		SetIsEvaluated(true).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to mark session evaluated: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit result: %w", err)
	}
	return result, nil
}

// GetBySession retrieves a session's result in recruiter-facing form.
func (s *ResultService) GetBySession(ctx context.Context, sessionID string) (*models.ResultView, error) {
	result, err := s.client.EvaluationResult.Query().
		Where(evaluationresult.SessionIDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}
	return toResultView(result), nil
}

// toResultView maps the stored row to the wire form, deriving the 0-100
// breakdown from the stored 0-10 sub-scores where present.
func toResultView(r *ent.EvaluationResult) *models.ResultView {
	view := &models.ResultView{
		ResultID:           r.ID,
		SessionID:          r.SessionID,
		InterviewID:        r.InterviewID,
		ResumeScore:        r.ResumeScore,
		AnswersScore:       r.AnswersScore,
		OverallScore:       r.OverallScore,
		ResumeFeedback:     r.ResumeFeedback,
		AnswersFeedback:    r.AnswersFeedback,
		Recommendation:     r.Recommendation,
		HireRecommendation: r.HireRecommendation,
		ConfidenceLevel:    r.ConfidenceLevel,
		WarningSummary:     r.WarningSummary,
		Metrics:            r.Metrics,
		IsFallback:         r.IsFallback,
		ModelUsed:          r.ModelUsed,
		CreatedAt:          r.CreatedAt,
	}

	breakdown := &models.ScoreBreakdown{}
	present := false
	if r.TechnicalScore != nil {
		v := int(*r.TechnicalScore * 10)
		breakdown.Technical = &v
		present = true
	}
	if r.BehavioralScore != nil {
		v := int(*r.BehavioralScore * 10)
		breakdown.Behavioral = &v
		present = true
	}
	if r.CodingScore != nil {
		v := int(*r.CodingScore * 10)
		breakdown.Coding = &v
		present = true
	}
	if present {
		view.Breakdown = breakdown
	}
	return view
}
