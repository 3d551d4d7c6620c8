// Package masking redacts candidate PII before it reaches persistent storage
// or log output. The session row stores only masked ID details; raw OCR
// output never leaves the verification call stack.
package masking

import (
	"fmt"
	"log/slog"
	"strings"
)

// Service applies PII masking. Created once at application startup.
// Thread-safe and stateless aside from compiled patterns.
type Service struct {
	patterns []*CompiledPattern
	idMasker Masker
}

// NewService creates a masking service with compiled patterns and the ID
// number masker registered.
func NewService() *Service {
	s := &Service{
		patterns: compileBuiltinPatterns(),
		idMasker: &IDNumberMasker{},
	}

	slog.Info("Masking service initialized",
		"builtin_patterns", len(builtinPatterns),
		"compiled_patterns", len(s.patterns))

	return s
}

// MaskText applies all compiled patterns to free-form text. Used for any
// candidate-derived string that ends up in logs or warning messages.
func (s *Service) MaskText(text string) string {
	if text == "" {
		return ""
	}
	masked := text
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}

// MaskIDNumber masks a government ID number, keeping the last four
// characters visible.
func (s *Service) MaskIDNumber(idNumber string) string {
	trimmed := strings.TrimSpace(idNumber)
	if trimmed == "" {
		return ""
	}
	if !s.idMasker.AppliesTo(trimmed) {
		// No digits at all: treat the whole value as sensitive.
		return "[MASKED_ID_NUMBER]"
	}
	return s.idMasker.Mask(trimmed)
}

// MaskIDDetails formats the persisted id_details value from OCR output.
// The extracted name is kept (it is matched against the candidate record);
// the ID number is masked.
func (s *Service) MaskIDDetails(name, idNumber string) string {
	name = strings.TrimSpace(name)
	masked := s.MaskIDNumber(idNumber)
	switch {
	case name == "" && masked == "":
		return ""
	case name == "":
		return fmt.Sprintf("id=%s", masked)
	case masked == "":
		return fmt.Sprintf("name=%s", name)
	default:
		return fmt.Sprintf("name=%s id=%s", name, masked)
	}
}
