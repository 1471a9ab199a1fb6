package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harou24/oa-cli/internal/providers"
)

func noColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func TestLabeled(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	require.NoError(t, Labeled(&buf, "Summary:", "short"))
	assert.Equal(t, "Summary: short\n", buf.String())
}

func TestHeadingAndError(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	require.NoError(t, Heading(&buf, "API Key Quota:"))
	Error(&buf, "Failed to fetch quota information.")
	assert.Equal(t, "API Key Quota:\nFailed to fetch quota information.\n", buf.String())
}

func TestImage_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Image(&buf, "https://x/y.png", true))
	assert.Contains(t, buf.String(), "https://x/y.png")
}

func TestUsageTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, UsageTable(&buf, []providers.UsageRow{
		{Model: "davinci", Usage: 12, Limit: 100},
		{Model: "ada", Usage: 0.25, Limit: 10},
	}))

	out := buf.String()
	for _, want := range []string{"Model", "Current Usage", "Limit", "davinci", "12", "100", "ada", "0.25"} {
		assert.Contains(t, out, want)
	}
}

func TestModelTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ModelTable(&buf, []providers.Model{
		{ID: "davinci", OwnedBy: "openai", Created: 1649358449},
	}))
	out := buf.String()
	assert.Contains(t, out, "davinci")
	assert.Contains(t, out, "openai")
	assert.Contains(t, out, "2022-04-07")

	buf.Reset()
	require.NoError(t, ModelTable(&buf, nil))
	assert.Contains(t, buf.String(), "No models available")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, Output{Success: true, Content: "hello"}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]any{"success": true, "content": "hello"}, got)
}
