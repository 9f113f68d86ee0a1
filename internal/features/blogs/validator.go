package blogs

import (
	"errors"
	"regexp"
	"strings"
)

// ValidateConclusion enforces the conclusion invariant: absent, or tagged
// with the rich-text format marker and carrying non-empty text.
func ValidateConclusion(c *Conclusion) error {
	if c == nil {
		return nil
	}
	if c.Format != ConclusionFormat {
		return errors.New("conclusion format must be \"rich-text\"")
	}
	if strings.TrimSpace(c.Text) == "" {
		return errors.New("conclusion text must not be empty")
	}
	return nil
}

// TitleTokenPattern builds a case-insensitive alternation regex matching any
// token of the given title. Tokens shorter than 3 characters are skipped so
// stop words do not relate everything to everything.
func TitleTokenPattern(title string) string {
	var tokens []string
	for _, tok := range strings.Fields(title) {
		tok = strings.TrimFunc(tok, func(r rune) bool {
			return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
		})
		if len(tok) < 3 {
			continue
		}
		tokens = append(tokens, regexp.QuoteMeta(tok))
	}
	if len(tokens) == 0 {
		return ""
	}
	return strings.Join(tokens, "|")
}
