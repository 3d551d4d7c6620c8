// Package token implements the signed interview link token: a URL-safe
// encoding of the interview id plus an HMAC over the interview's identity,
// candidate email, and scheduled start. Because the signature is derived
// from interview state, rescheduling invalidates every previously minted
// token without any revocation bookkeeping.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"time"
)

// Reason tags the outcome of a verification. Verification never fails with
// an error; it always produces exactly one of these.
type Reason string

const (
	ReasonOK                Reason = "OK"
	ReasonBadEncoding       Reason = "BAD_ENCODING"
	ReasonUnknownInterview  Reason = "UNKNOWN_INTERVIEW"
	ReasonSignatureMismatch Reason = "SIGNATURE_MISMATCH"
	ReasonExpired           Reason = "EXPIRED"
	ReasonNotYetActive      Reason = "NOT_YET_ACTIVE"
)

// ErrBadEncoding is returned by Split when the token cannot be decoded.
var ErrBadEncoding = errors.New("token: bad encoding")

// Codec signs and checks link tokens with a process-wide secret.
type Codec struct {
	secret []byte
}

// NewCodec builds a codec around the INTERVIEW_LINK_SECRET value.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// signature computes the hex HMAC-SHA256 over
// "interview_id:candidate_email:started_at_RFC3339".
func (c *Codec) signature(interviewID, candidateEmail string, startedAt time.Time) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(interviewID))
	mac.Write([]byte(":"))
	mac.Write([]byte(candidateEmail))
	mac.Write([]byte(":"))
	mac.Write([]byte(startedAt.UTC().Format(time.RFC3339)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Sign mints a token for the given interview state.
func (c *Codec) Sign(interviewID, candidateEmail string, startedAt time.Time) string {
	payload := interviewID + ":" + c.signature(interviewID, candidateEmail, startedAt)
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

// Split decodes a token into its interview id and carried signature. The
// payload is split on the last colon so interview ids may themselves
// contain colons.
func (c *Codec) Split(tok string) (interviewID, sig string, err error) {
	raw, err := base64.RawURLEncoding.DecodeString(tok)
	if err != nil {
		// Tolerate padded tokens from older clients.
		raw, err = base64.URLEncoding.DecodeString(tok)
		if err != nil {
			return "", "", ErrBadEncoding
		}
	}
	payload := string(raw)
	i := strings.LastIndex(payload, ":")
	if i <= 0 || i == len(payload)-1 {
		return "", "", ErrBadEncoding
	}
	return payload[:i], payload[i+1:], nil
}

// Matches recomputes the signature over the current interview state and
// compares it to the carried one in constant time.
func (c *Codec) Matches(sig, interviewID, candidateEmail string, startedAt time.Time) bool {
	want := c.signature(interviewID, candidateEmail, startedAt)
	return subtle.ConstantTimeCompare([]byte(sig), []byte(want)) == 1
}

// WindowStatus applies the activation window rule: OK only inside
// [startedAt − earlyGrace, expiresAt].
func WindowStatus(now, startedAt, expiresAt time.Time, earlyGrace time.Duration) Reason {
	if now.Before(startedAt.Add(-earlyGrace)) {
		return ReasonNotYetActive
	}
	if now.After(expiresAt) {
		return ReasonExpired
	}
	return ReasonOK
}
