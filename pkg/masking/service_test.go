package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskTextRedactsEmailAndPhone(t *testing.T) {
	s := NewService()

	in := "reach priya.sharma@example.com or +91 9876543210 after 5pm"
	out := s.MaskText(in)

	assert.NotContains(t, out, "priya.sharma@example.com")
	assert.NotContains(t, out, "9876543210")
	assert.Contains(t, out, "[MASKED_EMAIL]")
	assert.Contains(t, out, "[MASKED_PHONE]")
}

func TestMaskTextRedactsIDFormats(t *testing.T) {
	s := NewService()

	cases := []struct {
		name string
		in   string
	}{
		{"aadhaar spaced", "aadhaar 1234 5678 9012"},
		{"aadhaar plain", "aadhaar 123456789012"},
		{"pan", "pan ABCDE1234F"},
		{"long run", "ref 987654321012345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := s.MaskText(tc.in)
			assert.NotEqual(t, tc.in, out, "input should have been masked")
			assert.NotContains(t, out, "1234 5678 9012")
			assert.NotContains(t, out, "ABCDE1234F")
		})
	}
}

func TestMaskTextLeavesOrdinaryTextAlone(t *testing.T) {
	s := NewService()

	in := "candidate answered question 3 of 5 in 42 seconds"
	assert.Equal(t, in, s.MaskText(in))
}

func TestMaskIDNumberKeepsLastFour(t *testing.T) {
	s := NewService()

	assert.Equal(t, "XXXX XXXX 9012", s.MaskIDNumber("1234 5678 9012"))
	assert.Equal(t, "XXXXXX234F", s.MaskIDNumber("ABCDE1234F"))
	assert.Equal(t, "XXXX-XXXX-9012", s.MaskIDNumber("1234-5678-9012"))
}

func TestMaskIDNumberShortValues(t *testing.T) {
	s := NewService()

	// Four or fewer maskable characters: nothing to hide behind, keep as-is.
	assert.Equal(t, "1234", s.MaskIDNumber("1234"))
	assert.Equal(t, "", s.MaskIDNumber("   "))
	// No digits at all still counts as sensitive.
	assert.Equal(t, "[MASKED_ID_NUMBER]", s.MaskIDNumber("UNKNOWN"))
}

func TestMaskIDDetails(t *testing.T) {
	s := NewService()

	assert.Equal(t, "name=Priya Sharma id=XXXXXXXX9012",
		s.MaskIDDetails("Priya Sharma", "123456789012"))
	assert.Equal(t, "name=Priya Sharma", s.MaskIDDetails("Priya Sharma", ""))
	assert.Equal(t, "id=XXXXXXXX9012", s.MaskIDDetails("", "123456789012"))
	assert.Equal(t, "", s.MaskIDDetails("", ""))
}

func TestIDNumberMaskerAppliesTo(t *testing.T) {
	m := &IDNumberMasker{}

	assert.True(t, m.AppliesTo("ABC123"))
	assert.False(t, m.AppliesTo("no-digits-here"))
}
