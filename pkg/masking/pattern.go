package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// rawPattern is a built-in pattern source before compilation.
type rawPattern struct {
	pattern     string
	replacement string
	description string
}

// builtinPatterns are the PII shapes that must never reach logs or stored
// text verbatim. Broadest patterns run last so the specific replacements
// win (an Aadhaar number is also a long digit run).
var builtinPatterns = map[string]rawPattern{
	"email": {
		pattern:     `[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`,
		replacement: "[MASKED_EMAIL]",
		description: "Email addresses",
	},
	"aadhaar": {
		pattern:     `\b\d{4}[\s\-]?\d{4}[\s\-]?\d{4}\b`,
		replacement: "[MASKED_ID_NUMBER]",
		description: "Aadhaar-format 12-digit identifiers",
	},
	"pan": {
		pattern:     `\b[A-Z]{5}\d{4}[A-Z]\b`,
		replacement: "[MASKED_ID_NUMBER]",
		description: "PAN-format alphanumeric identifiers",
	},
	"phone": {
		pattern:     `(?:\+\d{1,3}[\s\-]?)?\b\d{10}\b`,
		replacement: "[MASKED_PHONE]",
		description: "10-digit phone numbers with optional country code",
	},
	"long_digit_run": {
		pattern:     `\b\d{9,}\b`,
		replacement: "[MASKED_NUMBER]",
		description: "Catch-all for long numeric identifiers",
	},
}

// patternOrder fixes application order; map iteration order would make
// masked output nondeterministic where patterns overlap.
var patternOrder = []string{"email", "aadhaar", "pan", "phone", "long_digit_run"}

// compileBuiltinPatterns compiles the built-in set. Invalid patterns are
// logged and skipped so one bad pattern never disables masking entirely.
func compileBuiltinPatterns() []*CompiledPattern {
	compiled := make([]*CompiledPattern, 0, len(patternOrder))
	for _, name := range patternOrder {
		raw := builtinPatterns[name]
		re, err := regexp.Compile(raw.pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		compiled = append(compiled, &CompiledPattern{
			Name:        name,
			Regex:       re,
			Replacement: raw.replacement,
			Description: raw.description,
		})
	}
	return compiled
}
