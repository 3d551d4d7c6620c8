package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hireloop/hireloop/ent"
	"github.com/hireloop/hireloop/ent/interview"
	"github.com/hireloop/hireloop/pkg/token"
)

// LinkService mints and verifies interview links. The token is self-
// verifying: it is recomputed from the interview's current state, so a
// reschedule silently invalidates every previously issued link.
type LinkService struct {
	client *ent.Client
	codec  *token.Codec
	early  time.Duration
	late   time.Duration
	now    func() time.Time
}

// NewLinkService creates a new LinkService
func NewLinkService(client *ent.Client, codec *token.Codec, earlyGrace, lateGrace time.Duration) *LinkService {
	if codec == nil {
		panic("NewLinkService: codec must not be nil")
	}
	return &LinkService{
		client: client,
		codec:  codec,
		early:  earlyGrace,
		late:   lateGrace,
		now:    time.Now,
	}
}

// WithNow overrides the clock; tests only.
func (s *LinkService) WithNow(now func() time.Time) *LinkService {
	s.now = now
	return s
}

// LateGrace returns the post-interview validity window.
func (s *LinkService) LateGrace() time.Duration {
	return s.late
}

// InterviewID extracts which interview a token claims to belong to, without
// checking the signature. Mid-session calls use it to bind a session to its
// token; full verification stays with Verify.
func (s *LinkService) InterviewID(tok string) (string, error) {
	interviewID, _, err := s.codec.Split(tok)
	if err != nil {
		return "", fmt.Errorf("failed to decode link token: %w", err)
	}
	return interviewID, nil
}

// Mint issues a link token for a scheduled interview and returns it with
// its expiry instant.
func (s *LinkService) Mint(iv *ent.Interview, candidateEmail string) (string, time.Time, error) {
	if iv.StartedAt == nil || iv.EndedAt == nil {
		return "", time.Time{}, NewStateError(CodeInvalidWindow, "interview %s has no scheduled window", iv.ID)
	}
	tok := s.codec.Sign(iv.ID, candidateEmail, *iv.StartedAt)
	return tok, iv.EndedAt.Add(s.late), nil
}

// Verification is the outcome of Verify: the interview the token named (nil
// for BAD_ENCODING/UNKNOWN_INTERVIEW) plus the tagged reason. Callers must
// not leak the reason to the public surface.
type Verification struct {
	Interview *ent.Interview
	Reason    token.Reason
}

// OK reports whether the token is currently usable.
func (v Verification) OK() bool {
	return v.Reason == token.ReasonOK
}

// Verify decodes and checks a link token against the interview's current
// state. It never returns an error for bad tokens, only a tagged reason;
// the error path is reserved for infrastructure failures.
func (s *LinkService) Verify(ctx context.Context, tok string) (Verification, error) {
	interviewID, sig, err := s.codec.Split(tok)
	if err != nil {
		return Verification{Reason: token.ReasonBadEncoding}, nil
	}

	iv, err := s.client.Interview.Query().
		Where(interview.IDEQ(interviewID)).
		WithCandidate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Verification{Reason: token.ReasonUnknownInterview}, nil
		}
		return Verification{}, fmt.Errorf("failed to look up interview: %w", err)
	}

	if iv.StartedAt == nil || iv.Edges.Candidate == nil {
		return Verification{Interview: iv, Reason: token.ReasonSignatureMismatch}, nil
	}

	if !s.codec.Matches(sig, iv.ID, iv.Edges.Candidate.Email, *iv.StartedAt) {
		return Verification{Interview: iv, Reason: token.ReasonSignatureMismatch}, nil
	}

	var expiresAt time.Time
	switch {
	case iv.LinkExpiresAt != nil:
		expiresAt = *iv.LinkExpiresAt
	case iv.EndedAt != nil:
		expiresAt = iv.EndedAt.Add(s.late)
	default:
		return Verification{Interview: iv, Reason: token.ReasonSignatureMismatch}, nil
	}

	reason := token.WindowStatus(s.now(), *iv.StartedAt, expiresAt, s.early)
	return Verification{Interview: iv, Reason: reason}, nil
}
