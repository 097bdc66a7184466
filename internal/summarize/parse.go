package summarize

import (
	"strings"

	"github.com/sells-group/intel-cli/internal/model"
)

// Parse extracts structured sections from the model's free-text analysis.
// The full text is always kept as Summary; Mission, Value Proposition and
// Business Model are pulled out when the model labeled them, and bullet
// lines become key insights. Unlabeled text never fails the parse.
func Parse(text string) model.Analysis {
	text = strings.TrimSpace(text)

	analysis := model.Analysis{Summary: text}
	var current *string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "mission") && strings.Contains(line, ":"):
			analysis.Mission = afterColon(line)
			current = &analysis.Mission

		case strings.Contains(lower, "value proposition") && strings.Contains(line, ":"):
			analysis.ValueProposition = afterColon(line)
			current = &analysis.ValueProposition

		case strings.Contains(lower, "business model") && strings.Contains(line, ":"):
			analysis.BusinessModel = afterColon(line)
			current = &analysis.BusinessModel

		case strings.HasPrefix(line, "- "):
			analysis.KeyInsights = append(analysis.KeyInsights, strings.TrimSpace(line[2:]))

		case strings.HasPrefix(line, "• "):
			analysis.KeyInsights = append(analysis.KeyInsights, strings.TrimSpace(strings.TrimPrefix(line, "• ")))

		case current != nil && !mentionsSectionKeyword(lower):
			// Continuation of the open section.
			if *current != "" {
				*current += " " + line
			} else {
				*current = line
			}
		}
	}

	return analysis
}

func afterColon(line string) string {
	_, rest, _ := strings.Cut(line, ":")
	return strings.TrimSpace(rest)
}

func mentionsSectionKeyword(lower string) bool {
	for _, kw := range []string{"mission", "value", "business"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
