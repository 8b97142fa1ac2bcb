package codegen

import (
	"strings"
	"testing"
)

func TestExtractVersionsBothFences(t *testing.T) {
	completion := "Here is the code.\n" +
		"```java-annotated\n" +
		"public class A {\n" +
		"    int x = 1 / 0; // ERROR: LOGICAL - Division by zero\n" +
		"}\n" +
		"```\n" +
		"```java-clean\n" +
		"public class A {\n" +
		"    int x = 1 / 0;\n" +
		"}\n" +
		"```\n"

	v, err := ExtractVersions(completion)
	if err != nil {
		t.Fatalf("ExtractVersions: %v", err)
	}
	if !strings.Contains(v.Annotated, "// ERROR:") {
		t.Errorf("annotated version lost the marker: %q", v.Annotated)
	}
	if strings.Contains(v.Clean, "ERROR") {
		t.Errorf("clean version still contains a marker: %q", v.Clean)
	}
}

func TestExtractVersionsDerivesClean(t *testing.T) {
	completion := "```java-annotated\n" +
		"public class B {\n" +
		"    // ERROR: SYNTAX - Missing semicolon\n" +
		"    int y = 2\n" +
		"    String s = null; // ERROR: JAVA - Null risk\n" +
		"}\n" +
		"```\n"

	v, err := ExtractVersions(completion)
	if err != nil {
		t.Fatalf("ExtractVersions: %v", err)
	}
	if strings.Contains(v.Clean, "ERROR") {
		t.Errorf("derived clean version contains a marker: %q", v.Clean)
	}
	if !strings.Contains(v.Clean, "String s = null;") {
		t.Errorf("inline marker removal dropped the code line: %q", v.Clean)
	}
	if strings.Contains(v.Clean, "Missing semicolon") {
		t.Errorf("standalone marker line survived: %q", v.Clean)
	}
}

func TestExtractVersionsPlainJavaFallback(t *testing.T) {
	completion := "```java\npublic class C {}\n```\n"

	v, err := ExtractVersions(completion)
	if err != nil {
		t.Fatalf("ExtractVersions: %v", err)
	}
	if !strings.Contains(v.Annotated, "class C") {
		t.Errorf("fallback missed the java fence: %q", v.Annotated)
	}
}

func TestExtractVersionsLargestFenceFallback(t *testing.T) {
	completion := "```\nshort\n```\nand\n```text\na much longer block of content here\n```\n"

	v, err := ExtractVersions(completion)
	if err != nil {
		t.Fatalf("ExtractVersions: %v", err)
	}
	if !strings.Contains(v.Annotated, "much longer") {
		t.Errorf("expected the largest fenced block, got %q", v.Annotated)
	}
}

func TestExtractVersionsNoCode(t *testing.T) {
	if _, err := ExtractVersions("sorry, I cannot help with that"); err != ErrNoCode {
		t.Fatalf("expected ErrNoCode, got %v", err)
	}
}
