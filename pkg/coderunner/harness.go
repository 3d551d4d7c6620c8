package coderunner

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// defaultEntry is assumed when no function definition can be extracted
// from the submission.
const defaultEntry = "solve"

// langSpec describes how one language's submissions are wrapped and run.
type langSpec struct {
	// sourceFile is the harness file name inside the working directory.
	sourceFile string

	// entryPatterns extract the entry function name; first match wins.
	entryPatterns []*regexp.Regexp

	// harness wraps the submission so running it prints
	// entry(input) on a single line.
	harness func(source, entry, input string) string

	// commands are the compile and run steps, executed in order inside
	// the working directory.
	commands [][]string
}

func (s *langSpec) entryName(source string) string {
	for _, re := range s.entryPatterns {
		if m := re.FindStringSubmatch(source); m != nil {
			return m[1]
		}
	}
	return defaultEntry
}

// Languages lists the supported language names in storage form, sorted.
func Languages() []string {
	out := make([]string, 0, len(languages)+1)
	for name := range languages {
		out = append(out, name)
	}
	out = append(out, "sql")
	sort.Strings(out)
	return out
}

var languages = map[string]*langSpec{
	"python": {
		sourceFile: "main.py",
		entryPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^def\s+([A-Za-z_]\w*)\s*\(`),
		},
		harness: func(source, entry, input string) string {
			return fmt.Sprintf("%s\n\nif __name__ == \"__main__\":\n    print(%s(%s))\n", source, entry, input)
		},
		commands: [][]string{{"python3", "main.py"}},
	},
	"javascript": {
		sourceFile: "main.js",
		entryPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^function\s+([A-Za-z_$][\w$]*)\s*\(`),
			regexp.MustCompile(`(?m)^(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s+)?(?:function\b|\()`),
		},
		harness: func(source, entry, input string) string {
			return fmt.Sprintf("%s\n\nconsole.log(%s(%s));\n", source, entry, input)
		},
		commands: [][]string{{"node", "main.js"}},
	},
	"java": {
		sourceFile: "Main.java",
		entryPatterns: []*regexp.Regexp{
			regexp.MustCompile(`static\s+[\w<>\[\],\s]+?\s(\w+)\s*\(`),
		},
		harness: func(source, entry, input string) string {
			return fmt.Sprintf(
				"public class Main {\n%s\n\n    public static void main(String[] args) {\n        System.out.println(%s(%s));\n    }\n}\n",
				indent(source, "    "), entry, input)
		},
		commands: [][]string{
			{"javac", "Main.java"},
			{"java", "-cp", ".", "Main"},
		},
	},
	"c_sharp": {
		sourceFile: "main.cs",
		entryPatterns: []*regexp.Regexp{
			regexp.MustCompile(`static\s+[\w<>\[\],\s]+?\s(\w+)\s*\(`),
		},
		harness: func(source, entry, input string) string {
			return fmt.Sprintf(
				"using System;\nusing System.Collections.Generic;\nusing System.Linq;\n\npublic class Program {\n%s\n\n    public static void Main() {\n        Console.WriteLine(%s(%s));\n    }\n}\n",
				indent(source, "    "), entry, input)
		},
		commands: [][]string{
			{"mcs", "-out:main.exe", "main.cs"},
			{"mono", "main.exe"},
		},
	},
	"php": {
		sourceFile: "main.php",
		entryPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?mi)^\s*function\s+(\w+)\s*\(`),
		},
		harness: func(source, entry, input string) string {
			body := strings.TrimSpace(source)
			body = strings.TrimPrefix(body, "<?php")
			body = strings.TrimSuffix(body, "?>")
			return fmt.Sprintf("<?php\n%s\n\necho %s(%s), \"\\n\";\n", body, entry, input)
		},
		commands: [][]string{{"php", "main.php"}},
	},
	"ruby": {
		sourceFile: "main.rb",
		entryPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^\s*def\s+([a-z_]\w*[?!]?)`),
		},
		harness: func(source, entry, input string) string {
			return fmt.Sprintf("%s\n\nputs %s(%s)\n", source, entry, input)
		},
		commands: [][]string{{"ruby", "main.rb"}},
	},
}

// indent prefixes every non-empty line, keeping harness output readable
// when a compile error quotes the generated file.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
