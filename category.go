package scenario

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is the narrative role of a step.
type Category int

const (
	// CategoryScenario marks the synthetic opening record of every ledger.
	CategoryScenario Category = iota
	// CategoryGiven marks setup steps.
	CategoryGiven
	// CategoryWhen marks action steps.
	CategoryWhen
	// CategoryThen marks verification steps.
	CategoryThen
)

// connective replaces the keyword of a step that repeats the previous
// step's category.
const connective = "and"

var categoryNames = [...]string{
	CategoryScenario: "Scenario",
	CategoryGiven:    "Given",
	CategoryWhen:     "When",
	CategoryThen:     "Then",
}

// categoryKeywords is the rendering table. A cases.Caser is not safe for
// concurrent use, so keywords are computed once here.
var categoryKeywords = func() [len(categoryNames)]string {
	upper := cases.Upper(language.Und)
	var keywords [len(categoryNames)]string
	for i, name := range categoryNames {
		keywords[i] = upper.String(name)
	}
	return keywords
}()

// String returns the category name, e.g. "Given".
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Keyword returns the upper-case keyword used in transcripts, e.g. "GIVEN".
func (c Category) Keyword() string {
	if c < 0 || int(c) >= len(categoryKeywords) {
		return c.String()
	}
	return categoryKeywords[c]
}

// render builds the transcript text of a step appended after previous.
// A repeated category renders with the connective; anything else renders
// with the step's keyword.
func render(previous Category, hasPrevious bool, c Category, description string) string {
	if hasPrevious && previous == c {
		return connective + " " + description
	}
	return c.Keyword() + " " + description
}

// renderScenario builds the transcript text of the opening record.
func renderScenario(title string) string {
	return CategoryScenario.Keyword() + " for " + title
}
