package extract

import (
	"regexp"
	"strings"

	"github.com/sells-group/intel-cli/internal/model"
)

const (
	// maxMentionLines caps the generic keyword fallback.
	maxMentionLines = 10
	// maxProbeValueLen bounds a single probed field value.
	maxProbeValueLen = 200
)

// fieldProbe is one named field with its ordered match patterns. The
// first pattern whose capture group is non-empty wins.
type fieldProbe struct {
	field    string
	patterns []*regexp.Regexp
}

// probeSet is the extraction policy for one category: a field
// vocabulary plus a curated keyword set for the fallback scan.
type probeSet struct {
	probes      []fieldProbe
	keywords    []string
	mentionsKey string
}

// extract runs the named probes in order, then falls back to the
// keyword scan when nothing matched.
func (ps probeSet) extract(title, text string) (model.Fields, error) {
	fields := model.NewFields()

	for _, fp := range ps.probes {
		for _, re := range fp.patterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			value := strings.TrimSpace(m[1])
			if value == "" {
				continue
			}
			if len(value) > maxProbeValueLen {
				value = value[:maxProbeValueLen]
			}
			fields.Set(fp.field, value)
			break
		}
	}

	if fields.Len() == 0 {
		if mentions := scanMentions(text, ps.keywords); mentions != "" {
			fields.Set(ps.mentionsKey, mentions)
		}
	}

	return fields, nil
}

// scanMentions keeps lines containing any of the keywords,
// case-insensitively, capped at maxMentionLines.
func scanMentions(text string, keywords []string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				kept = append(kept, trimmed)
				break
			}
		}
		if len(kept) == maxMentionLines {
			break
		}
	}
	return strings.Join(kept, "\n")
}

// labeled builds a case-insensitive pattern matching "<label>: value"
// or "<label> value" at a line start, capturing the value.
func labeled(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^\s*` + label + `\s*[:\-]?\s+(\S[^\n]*)$`)
}
