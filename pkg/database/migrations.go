package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes let recruiters search transcripts and evaluation feedback
// without scanning every session.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for response transcript full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_responses_content_gin
		ON responses USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create response content GIN index: %w", err)
	}

	// GIN index for evaluation feedback full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_evaluation_results_answers_feedback_gin
		ON evaluation_results USING gin(to_tsvector('english', COALESCE(answers_feedback, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create evaluation feedback GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// 000001_init.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// An interview holds at most one live booking; cancelled schedules stay
	// behind as history.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS schedule_interview_id_active
		ON schedules (interview_id)
		WHERE status != 'cancelled'`)
	if err != nil {
		return fmt.Errorf("failed to create active schedule index: %w", err)
	}

	// Main-question order is unique per session; follow-ups share their
	// parent's order and are excluded.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS question_session_id_question_order_main
		ON questions (session_id, question_order)
		WHERE level = 'main'`)
	if err != nil {
		return fmt.Errorf("failed to create main question order index: %w", err)
	}

	return nil
}
