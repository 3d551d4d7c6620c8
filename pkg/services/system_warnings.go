package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Warning category constants for categorizing system warnings.
const (
	WarningCategoryAIQuota   = "ai_quota"   // AI provider quota exhausted; fallback content in use
	WarningCategoryVision    = "vision"     // vision sidecar unreachable; frame proctoring degraded
	WarningCategorySandbox   = "sandbox"    // bwrap unavailable; process languages refused or unsandboxed
	WarningCategoryRecording = "recording"  // ffmpeg unavailable; sessions run without video recording
	WarningCategoryRetention = "retention"  // retention sweep failed; artifacts may outlive their window
)

// SystemWarning represents a non-fatal system issue.
type SystemWarning struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Component string    `json:"component,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SystemWarningsService manages in-memory system warnings.
// Thread-safe. Not persisted — warnings are transient and reset on restart.
type SystemWarningsService struct {
	mu       sync.RWMutex
	warnings map[string]*SystemWarning // warningID → warning
}

// NewSystemWarningsService creates a new SystemWarningsService.
func NewSystemWarningsService() *SystemWarningsService {
	return &SystemWarningsService{
		warnings: make(map[string]*SystemWarning),
	}
}

// AddWarning adds a warning and returns its ID.
// If a warning with the same category+component already exists, it is replaced.
func (s *SystemWarningsService) AddWarning(category, message, details, component string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Replace existing warning with same category+component to avoid duplicates
	for id, w := range s.warnings {
		if w.Category == category && w.Component == component {
			delete(s.warnings, id)
			break
		}
	}

	id := uuid.New().String()
	s.warnings[id] = &SystemWarning{
		ID:        id,
		Category:  category,
		Message:   message,
		Details:   details,
		Component: component,
		CreatedAt: time.Now(),
	}
	return id
}

// GetWarnings returns all active warnings as value copies.
// Callers may safely read or compare the returned structs without holding locks.
func (s *SystemWarningsService) GetWarnings() []*SystemWarning {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*SystemWarning, 0, len(s.warnings))
	for _, w := range s.warnings {
		cp := *w
		result = append(result, &cp)
	}
	return result
}

// ClearByComponent removes a warning matching category + component.
// Used when a degraded subsystem recovers. Returns true if a warning was
// removed.
func (s *SystemWarningsService) ClearByComponent(category, component string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, w := range s.warnings {
		if w.Category == category && w.Component == component {
			delete(s.warnings, id)
			return true
		}
	}
	return false
}
