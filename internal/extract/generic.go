package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sells-group/intel-cli/internal/model"
)

// contentCap bounds the content field of the generic extractor.
const contentCap = 3000

var whitespaceRE = regexp.MustCompile(`\s+`)

// Generic captures the page title, a length-capped content snapshot,
// and the original content length. Used for primary pages and any
// category without a dedicated extractor.
func Generic(title, text string) (model.Fields, error) {
	fields := model.NewFields()

	cleaned := strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
	snapshot := cleaned
	if len(snapshot) > contentCap {
		snapshot = snapshot[:contentCap]
	}

	fields.Set("title", title)
	fields.Set("content", snapshot)
	fields.Set("content_length", strconv.Itoa(len(text)))

	return fields, nil
}
