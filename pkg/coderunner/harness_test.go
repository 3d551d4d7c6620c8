package coderunner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryNameExtraction(t *testing.T) {
	tests := []struct {
		name     string
		language string
		source   string
		want     string
	}{
		{
			name:     "python def",
			language: "python",
			source:   "def two_sum(nums, target):\n    return []",
			want:     "two_sum",
		},
		{
			name:     "python helper defined first wins",
			language: "python",
			source:   "def helper(x):\n    return x\n\ndef solve(n):\n    return helper(n)",
			want:     "helper",
		},
		{
			name:     "javascript function declaration",
			language: "javascript",
			source:   "function reverseWords(s) {\n  return s;\n}",
			want:     "reverseWords",
		},
		{
			name:     "javascript arrow assignment",
			language: "javascript",
			source:   "const maxDepth = (root) => {\n  return 0;\n};",
			want:     "maxDepth",
		},
		{
			name:     "java static method",
			language: "java",
			source:   "public static int add(int a, int b) {\n    return a + b;\n}",
			want:     "add",
		},
		{
			name:     "java generic return type",
			language: "java",
			source:   "static List<Integer> collect(int n) {\n    return null;\n}",
			want:     "collect",
		},
		{
			name:     "c_sharp static method",
			language: "c_sharp",
			source:   "public static string Greet(string name) {\n    return \"hi \" + name;\n}",
			want:     "Greet",
		},
		{
			name:     "php function",
			language: "php",
			source:   "<?php\nfunction countVowels($s) {\n    return 0;\n}",
			want:     "countVowels",
		},
		{
			name:     "ruby def with predicate name",
			language: "ruby",
			source:   "def palindrome?(s)\n  s == s.reverse\nend",
			want:     "palindrome?",
		},
		{
			name:     "no definition falls back to solve",
			language: "python",
			source:   "x = 1",
			want:     "solve",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, ok := languages[tt.language]
			require.True(t, ok)
			assert.Equal(t, tt.want, spec.entryName(tt.source))
		})
	}
}

func TestPythonHarnessPrintsEntryCall(t *testing.T) {
	spec := languages["python"]
	out := spec.harness("def add(a, b):\n    return a + b", "add", "2, 3")

	assert.Contains(t, out, "def add(a, b):")
	assert.Contains(t, out, "if __name__ == \"__main__\":")
	assert.Contains(t, out, "print(add(2, 3))")
}

func TestJavaHarnessWrapsSourceInMainClass(t *testing.T) {
	spec := languages["java"]
	out := spec.harness("public static int add(int a, int b) {\n    return a + b;\n}", "add", "1, 2")

	assert.True(t, strings.HasPrefix(out, "public class Main {"))
	assert.Contains(t, out, "System.out.println(add(1, 2));")
	assert.Equal(t, 1, strings.Count(out, "public class"), "submission must not be wrapped twice")
}

func TestCSharpHarnessWrapsSourceInProgramClass(t *testing.T) {
	spec := languages["c_sharp"]
	out := spec.harness("public static int Add(int a, int b) {\n    return a + b;\n}", "Add", "1, 2")

	assert.Contains(t, out, "using System;")
	assert.Contains(t, out, "public class Program {")
	assert.Contains(t, out, "Console.WriteLine(Add(1, 2));")
}

func TestPHPHarnessStripsSubmittedTags(t *testing.T) {
	spec := languages["php"]
	out := spec.harness("<?php\nfunction f($x) {\n    return $x;\n}\n?>", "f", "5")

	assert.Equal(t, 1, strings.Count(out, "<?php"), "harness opens exactly one php tag")
	assert.NotContains(t, out, "?>")
	assert.Contains(t, out, "echo f(5), \"\\n\";")
}

func TestRubyHarnessAppendsPuts(t *testing.T) {
	spec := languages["ruby"]
	out := spec.harness("def double(n)\n  n * 2\nend", "double", "21")

	assert.Contains(t, out, "puts double(21)")
}

func TestIndentSkipsBlankLines(t *testing.T) {
	out := indent("a\n\nb", "    ")
	assert.Equal(t, "    a\n\n    b", out)
}
