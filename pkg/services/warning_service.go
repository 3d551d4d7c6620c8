package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/warninglog"
	"github.com/hireloop/hireloop/pkg/models"
)

// WarningService owns the append-only proctoring log. Rows are written once
// per grace-filtered activation edge and never updated.
type WarningService struct {
	client *ent.Client
}

// NewWarningService creates a new WarningService
func NewWarningService(client *ent.Client) *WarningService {
	return &WarningService{client: client}
}

// Record appends one warning. evidencePath is the storage key of the
// annotated frame; empty for suppressed types.
func (s *WarningService) Record(ctx context.Context, sessionID, warningType, message, evidencePath string) error {
	create := s.client.WarningLog.Create().
		SetID(uuid.NewString()).
		SetSessionID(sessionID).
		SetWarningType(warninglog.WarningType(warningType)).
		SetMessage(message)
	if evidencePath != "" {
		create.SetEvidencePath(evidencePath)
	}

	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record warning: %w", err)
	}
	return nil
}

// ListBySession returns a session's warnings oldest first.
func (s *WarningService) ListBySession(ctx context.Context, sessionID string) ([]*ent.WarningLog, error) {
	warnings, err := s.client.WarningLog.Query().
		Where(warninglog.SessionIDEQ(sessionID)).
		Order(ent.Asc(warninglog.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list warnings: %w", err)
	}
	return warnings, nil
}

// CountByType aggregates a session's warnings per type.
func (s *WarningService) CountByType(ctx context.Context, sessionID string) (map[string]int, error) {
	warnings, err := s.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(warnings))
	for _, w := range warnings {
		counts[string(w.WarningType)]++
	}
	return counts, nil
}

// Summary renders the per-type counts as "{count}× {type}" lines for the
// overall evaluation prompt. Suppressed types never reach the evaluator.
func (s *WarningService) Summary(ctx context.Context, sessionID string) (string, error) {
	counts, err := s.CountByType(ctx, sessionID)
	if err != nil {
		return "", err
	}

	types := make([]string, 0, len(counts))
	for t := range counts {
		if models.Suppressed(t) {
			continue
		}
		types = append(types, t)
	}
	sort.Strings(types)

	var b strings.Builder
	for _, t := range types {
		fmt.Fprintf(&b, "%d× %s\n", counts[t], t)
	}
	return strings.TrimSpace(b.String()), nil
}
