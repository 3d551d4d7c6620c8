package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed bank.yaml
var defaultBankYAML []byte

// BankTestCase is one authored test case for a bank coding question.
// Input is the literal argument expression handed to the harness (or the
// setup script for SQL questions).
type BankTestCase struct {
	Input    string `yaml:"input"`
	Expected string `yaml:"expected"`
	Hidden   bool   `yaml:"hidden"`
}

// BankCodingQuestion is an authored coding exercise for one language.
type BankCodingQuestion struct {
	Text      string         `yaml:"text"`
	TestCases []BankTestCase `yaml:"test_cases"`
}

// QuestionBank is the deterministic question content: the fallback set
// served when the AI gateway is degraded, and the coding questions (LLM
// output never carries test cases, so coding always draws from here).
type QuestionBank struct {
	IceBreakers []string                        `yaml:"ice_breakers"`
	Technical   []string                        `yaml:"technical"`
	Behavioral  []string                        `yaml:"behavioral"`
	Coding      map[string][]BankCodingQuestion `yaml:"coding"`
}

var knownLanguages = map[string]bool{
	"python": true, "javascript": true, "java": true,
	"c_sharp": true, "php": true, "ruby": true, "sql": true,
}

// LoadQuestionBank parses the embedded default bank, replaced wholesale by
// the override file when path is set.
func LoadQuestionBank(path string) (*QuestionBank, error) {
	raw := defaultBankYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read question bank %s: %w", path, err)
		}
		raw = b
	}

	var bank QuestionBank
	if err := yaml.Unmarshal(raw, &bank); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}
	if err := bank.validate(); err != nil {
		return nil, err
	}
	return &bank, nil
}

func (b *QuestionBank) validate() error {
	if len(b.IceBreakers) == 0 || len(b.Technical) == 0 || len(b.Behavioral) == 0 {
		return fmt.Errorf("question bank must contain at least one ice-breaker, technical, and behavioral question")
	}
	for lang, qs := range b.Coding {
		if !knownLanguages[lang] {
			return fmt.Errorf("question bank references unknown coding language %q", lang)
		}
		if len(qs) == 0 {
			return fmt.Errorf("question bank has empty coding section for %q", lang)
		}
		for i, q := range qs {
			if q.Text == "" {
				return fmt.Errorf("coding question %s[%d] has no text", lang, i)
			}
			if len(q.TestCases) == 0 {
				return fmt.Errorf("coding question %s[%d] has no test cases", lang, i)
			}
		}
	}
	return nil
}

// CodingFor returns the first authored coding question for a language.
func (b *QuestionBank) CodingFor(lang string) (BankCodingQuestion, bool) {
	qs, ok := b.Coding[lang]
	if !ok || len(qs) == 0 {
		return BankCodingQuestion{}, false
	}
	return qs[0], true
}
