package blogs

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConclusion(t *testing.T) {
	assert.NoError(t, ValidateConclusion(nil))
	assert.NoError(t, ValidateConclusion(&Conclusion{Format: ConclusionFormat, Text: "wrapping up"}))

	assert.Error(t, ValidateConclusion(&Conclusion{Format: "markdown", Text: "wrapping up"}))
	assert.Error(t, ValidateConclusion(&Conclusion{Format: ConclusionFormat, Text: ""}))
	assert.Error(t, ValidateConclusion(&Conclusion{Format: ConclusionFormat, Text: "   "}))
}

func TestTitleTokenPattern(t *testing.T) {
	pattern := TitleTokenPattern("Go Concurrency Patterns in 2026")
	require.NotEmpty(t, pattern)

	re, err := regexp.Compile("(?i)" + pattern)
	require.NoError(t, err)

	assert.True(t, re.MatchString("more CONCURRENCY tricks"))
	assert.True(t, re.MatchString("patterns of distributed systems"))
	assert.True(t, re.MatchString("best posts of 2026"))
	assert.False(t, re.MatchString("unrelated title"))

	// short tokens like "Go" and "in" must not appear in the alternation
	assert.NotContains(t, pattern, "Go")
	assert.NotContains(t, pattern, "in|")
}

func TestTitleTokenPattern_EscapesAndEmpty(t *testing.T) {
	assert.Empty(t, TitleTokenPattern("a b c"))
	assert.Empty(t, TitleTokenPattern(""))

	pattern := TitleTokenPattern("C++ (advanced)")
	if pattern != "" {
		_, err := regexp.Compile(pattern)
		assert.NoError(t, err)
	}
}
