package masking

import "strings"

// Masker is the interface for code-based maskers that need structural
// awareness beyond regex substitution.
type Masker interface {
	// Name returns the unique identifier for this masker.
	Name() string

	// AppliesTo performs a lightweight check on whether this masker should
	// process the value. Should be fast (string inspection, not parsing).
	AppliesTo(value string) bool

	// Mask applies masking and returns the result. Must be defensive:
	// return the original value on processing errors.
	Mask(value string) string
}

// IDNumberMasker masks government ID numbers while keeping the last four
// characters for recruiter-side disambiguation. Applied to OCR-extracted
// id_number values before they are persisted.
type IDNumberMasker struct{}

// Name returns the unique identifier for this masker.
func (m *IDNumberMasker) Name() string { return "id_number" }

// AppliesTo accepts any value with at least one digit.
func (m *IDNumberMasker) AppliesTo(value string) bool {
	return strings.ContainsAny(value, "0123456789")
}

// Mask replaces all but the last four non-separator characters with X,
// preserving spaces and hyphens so the masked value keeps its shape.
func (m *IDNumberMasker) Mask(value string) string {
	runes := []rune(value)

	// Count maskable characters (everything except separators).
	maskable := 0
	for _, r := range runes {
		if r != ' ' && r != '-' {
			maskable++
		}
	}
	if maskable <= 4 {
		return value
	}

	toMask := maskable - 4
	out := make([]rune, len(runes))
	for i, r := range runes {
		if r == ' ' || r == '-' {
			out[i] = r
			continue
		}
		if toMask > 0 {
			out[i] = 'X'
			toMask--
		} else {
			out[i] = r
		}
	}
	return string(out)
}
