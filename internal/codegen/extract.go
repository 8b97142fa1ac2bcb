package codegen

import (
	"regexp"
	"strings"
)

var (
	annotatedFence = regexp.MustCompile("(?s)```java-annotated\\s*\\n(.*?)```")
	cleanFence     = regexp.MustCompile("(?s)```java-clean\\s*\\n(.*?)```")
	javaFence      = regexp.MustCompile("(?s)```java\\s*\\n(.*?)```")
	anyFence       = regexp.MustCompile("(?s)```(?:[a-zA-Z0-9_-]*)\\s*\\n(.*?)```")

	errorMarker = regexp.MustCompile(`//\s*ERROR:`)
)

// ExtractVersions pulls the annotated and clean code blocks out of an LLM
// completion. When the model omits the java-clean fence the clean version is
// derived from the annotated one by stripping every line that carries an
// ERROR marker. When even the java-annotated fence is missing it falls back
// to a plain java fence and finally to the largest fenced block of any kind.
func ExtractVersions(completion string) (*CodeVersions, error) {
	annotated := firstMatch(annotatedFence, completion)
	clean := firstMatch(cleanFence, completion)

	if annotated == "" {
		annotated = firstMatch(javaFence, completion)
	}
	if annotated == "" {
		annotated = largestMatch(anyFence, completion)
	}
	if annotated == "" {
		return nil, ErrNoCode
	}

	if clean == "" {
		clean = stripErrorLines(annotated)
	}

	return &CodeVersions{
		Annotated: strings.TrimRight(annotated, "\n") + "\n",
		Clean:     strings.TrimRight(clean, "\n") + "\n",
	}, nil
}

func firstMatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

func largestMatch(re *regexp.Regexp, s string) string {
	var best string
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		if len(m[1]) > len(best) {
			best = m[1]
		}
	}
	return best
}

func stripErrorLines(annotated string) string {
	lines := strings.Split(annotated, "\n")
	kept := lines[:0:0]
	for _, line := range lines {
		if errorMarker.MatchString(line) {
			// Marker on its own line disappears entirely; an inline
			// marker loses the trailing comment but keeps the code.
			idx := errorMarker.FindStringIndex(line)
			before := strings.TrimRight(line[:idx[0]], " \t")
			if before == "" {
				continue
			}
			kept = append(kept, before)
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
