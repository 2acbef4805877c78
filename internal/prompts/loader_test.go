package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExtractionPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("parsing.json", "extract_notification")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.RawText}}")
	assert.Contains(t, prompt, "importantDates")
}

func TestGetMissingKey(t *testing.T) {
	ClearCache()

	_, err := Get("parsing.json", "nonexistent")
	assert.Error(t, err)

	_, err = Get("nonexistent.json", "anything")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	template := "Parse this: {{.RawText}} for {{.RawText}}"
	result := Format(template, map[string]string{"RawText": "SSC CGL notice"})
	assert.Equal(t, "Parse this: SSC CGL notice for SSC CGL notice", result)
	assert.False(t, strings.Contains(result, "{{"))
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	ClearCache()
	assert.Panics(t, func() { MustGet("parsing.json", "nope") })
	assert.NotPanics(t, func() { MustGet("parsing.json", "extract_notification") })
}
