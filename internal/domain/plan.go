package domain

import "strings"

// ParagraphSeparator divides quarters in the plan file.
const ParagraphSeparator = "\n\n"

// QuarterPlan is the free-text block describing the current quarter's goals.
type QuarterPlan struct {
	Text string
}

// FirstParagraph returns the plan for the current quarter: everything before
// the first blank line, verbatim. Content without a blank line is returned whole.
func FirstParagraph(content string) QuarterPlan {
	first, _, _ := strings.Cut(content, ParagraphSeparator)
	return QuarterPlan{Text: first}
}
