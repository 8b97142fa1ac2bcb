package codegen

import (
	"fmt"
	"strings"

	"revtrain/internal/errorcatalog"
)

const generationSystemPrompt = `You are an expert Java instructor who writes realistic training code containing deliberate defects for code review practice.

Rules:
- Implement EVERY requested defect exactly once. Do not add defects that were not requested.
- The code must otherwise be plausible, compile-adjacent Java that a junior developer could have written.
- Return the code twice: first inside a` + " ```java-annotated" + ` fence with a "// ERROR: <CATEGORY> - <Name>" comment on the line of each defect, then inside a` + " ```java-clean" + ` fence with those comments removed and nothing else changed.`

// complexityFor maps a code length to a concrete structural instruction.
func complexityFor(length errorcatalog.CodeLength) string {
	switch length {
	case errorcatalog.LengthShort:
		return "1 simple class with 1-2 basic methods (15-30 lines total)"
	case errorcatalog.LengthLong:
		return "1-2 classes with 4-8 methods and clear relationships (100-150 lines total)"
	default:
		return "1 class with 3-5 methods of moderate complexity (40-80 lines total)"
	}
}

// difficultyInstructions shape how visible the defects are.
func difficultyInstructions(d errorcatalog.Difficulty) string {
	switch d {
	case errorcatalog.DifficultyEasy:
		return "Make the defects fairly visible: each on its own line, using straightforward patterns a beginner could spot."
	case errorcatalog.DifficultyHard:
		return "Disguise the defects inside otherwise-correct logic: spread them across methods and avoid drawing attention to them."
	default:
		return "Make the defects findable with careful reading but not glaring: mix obvious placement with mild disguise."
	}
}

// GenerationPrompt builds the user message for the initial generation call.
func GenerationPrompt(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a %s Java program for a %s domain: %s\n\n",
		input.Length, input.Domain, complexityFor(input.Length))
	fmt.Fprintf(&b, "Difficulty: %s. %s\n\n", input.Difficulty, difficultyInstructions(input.Difficulty))
	fmt.Fprintf(&b, "The code must contain EXACTLY these %d defects, each implemented once:\n\n", len(input.Errors))

	for i, e := range input.Errors {
		fmt.Fprintf(&b, "%d. %s - %s: %s\n", i+1, strings.ToUpper(e.Category), e.Name, e.Description)
		if e.ImplementationGuide != "" {
			fmt.Fprintf(&b, "Implementation: %s\n", e.ImplementationGuide)
		}
		b.WriteString("\n")
	}

	b.WriteString("Remember: every defect marked in the annotated version, the clean version byte-identical except for the removed markers.")
	return b.String()
}

// RegenerationPrompt builds the repair prompt after an evaluation found
// missing defects. It lists what is already correctly implemented (to be
// kept untouched) and what still has to be added.
func RegenerationPrompt(code, domain string, missing, found []string, requested []errorcatalog.ErrorSpec) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The following Java code for a %s domain was generated for review practice, but it does not yet contain all requested defects.\n\n", domain)

	if len(found) > 0 {
		b.WriteString("Correctly implemented (KEEP these exactly as they are):\n")
		for _, f := range found {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		b.WriteString("\n")
	}

	if len(missing) > 0 {
		b.WriteString("MISSING (add each of these, once):\n")
		for _, m := range missing {
			fmt.Fprintf(&b, "- %s\n", m)
			for _, r := range requested {
				if strings.Contains(m, r.Name) && r.ImplementationGuide != "" {
					fmt.Fprintf(&b, "  Implementation: %s\n", r.ImplementationGuide)
				}
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Revise this code, changing as little as possible beyond adding the missing defects. Total defects after revision: %d.\n\n", len(requested))
	b.WriteString("```java\n")
	b.WriteString(code)
	b.WriteString("\n```\n\n")
	b.WriteString("Return the revised code in a ```java-annotated fence with a \"// ERROR: <CATEGORY> - <Name>\" marker on each defect line, then in a ```java-clean fence with the markers removed.")
	return b.String()
}
