package token

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndSplit(t *testing.T) {
	c := NewCodec("test-secret")
	started := time.Date(2025, 6, 15, 4, 30, 0, 0, time.UTC)

	tok := c.Sign("iv-123", "c@example.com", started)
	id, sig, err := c.Split(tok)
	require.NoError(t, err)
	assert.Equal(t, "iv-123", id)
	assert.True(t, c.Matches(sig, "iv-123", "c@example.com", started))
}

func TestSplitRejectsGarbage(t *testing.T) {
	c := NewCodec("test-secret")

	for _, tok := range []string{"", "!!!not-base64!!!", "aGVsbG8"} {
		_, _, err := c.Split(tok)
		assert.ErrorIs(t, err, ErrBadEncoding, "token %q", tok)
	}
}

func TestRescheduleInvalidatesSignature(t *testing.T) {
	c := NewCodec("test-secret")
	started := time.Date(2025, 6, 15, 4, 30, 0, 0, time.UTC)

	tok := c.Sign("iv-123", "c@example.com", started)
	_, sig, err := c.Split(tok)
	require.NoError(t, err)

	moved := started.Add(4 * time.Hour)
	assert.False(t, c.Matches(sig, "iv-123", "c@example.com", moved),
		"token minted before reschedule must not match the new start")
	assert.True(t, c.Matches(c.mustSig("iv-123", "c@example.com", moved), "iv-123", "c@example.com", moved))
}

// mustSig is a test helper exposing the raw signature for a state.
func (c *Codec) mustSig(id, email string, startedAt time.Time) string {
	return c.signature(id, email, startedAt)
}

func TestDifferentSecretsDisagree(t *testing.T) {
	started := time.Date(2025, 6, 15, 4, 30, 0, 0, time.UTC)
	a := NewCodec("secret-a")
	b := NewCodec("secret-b")

	tok := a.Sign("iv-1", "c@example.com", started)
	_, sig, err := b.Split(tok)
	require.NoError(t, err)
	assert.False(t, b.Matches(sig, "iv-1", "c@example.com", started))
}

func TestWindowStatus(t *testing.T) {
	started := time.Date(2025, 6, 15, 4, 30, 0, 0, time.UTC)
	expires := time.Date(2025, 6, 15, 7, 0, 0, 0, time.UTC)
	early := 15 * time.Minute

	cases := []struct {
		name string
		now  time.Time
		want Reason
	}{
		{"well before window", time.Date(2025, 6, 15, 3, 0, 0, 0, time.UTC), ReasonNotYetActive},
		{"inside early grace", time.Date(2025, 6, 15, 4, 20, 0, 0, time.UTC), ReasonOK},
		{"at start", started, ReasonOK},
		{"mid window", time.Date(2025, 6, 15, 5, 0, 0, 0, time.UTC), ReasonOK},
		{"at expiry", expires, ReasonOK},
		{"after expiry", expires.Add(time.Second), ReasonExpired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WindowStatus(tc.now, started, expires, early))
		})
	}
}

func TestRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	c := NewCodec("property-secret")
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	properties.Property("sign then split recovers the interview id and a matching signature", prop.ForAll(
		func(id, email string, offsetMinutes int) bool {
			startedAt := base.Add(time.Duration(offsetMinutes) * time.Minute)
			tok := c.Sign(id, email, startedAt)
			gotID, sig, err := c.Split(tok)
			if err != nil {
				return false
			}
			return gotID == id && c.Matches(sig, id, email, startedAt)
		},
		gen.Identifier(),
		gen.Identifier(),
		gen.IntRange(0, 1_000_000),
	))

	properties.Property("any start mutation invalidates a prior signature", prop.ForAll(
		func(id string, shiftMinutes int) bool {
			startedAt := base
			tok := c.Sign(id, "c@example.com", startedAt)
			_, sig, err := c.Split(tok)
			if err != nil {
				return false
			}
			moved := startedAt.Add(time.Duration(shiftMinutes) * time.Minute)
			return !c.Matches(sig, id, "c@example.com", moved)
		},
		gen.Identifier(),
		gen.IntRange(1, 1_000_000),
	))

	properties.TestingRun(t)
}
