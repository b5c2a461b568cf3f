package utils_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelplanner/pkg/utils"
)

func TestRepairPlanJSON_FencedWithTrailingComma(t *testing.T) {
	got, err := utils.RepairPlanJSON("```json\n{\"a\":1,}\n```")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1)}, got)
}

func TestRepairText_AppendsBracketThenBrace(t *testing.T) {
	got := utils.RepairText(`prefix {"a":[1,2`)

	assert.Equal(t, `{"a":[1,2]}`, got)

	obj, err := utils.RepairPlanJSON(`prefix {"a":[1,2`)
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2)}, obj["a"])
}

func TestRepairText_Steps(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"uppercase tag", "```JSON {\"a\":1}```", `{"a":1}`},
		{"surrounding prose", "Here is your plan: {\"a\":1} Enjoy!", `{"a":1}`},
		{"control chars", "{\"a\":\x00\"b\x07\"}", `{"a":"b"}`},
		{"trailing comma in array", "{\"a\":[1,2,\n]}", `{"a":[1,2]}`},
		{"newlines collapsed", "{\n\"a\": 1,\r\n\"b\": 2\n}", `{ "a": 1, "b": 2 }`},
		{"nested missing braces", `{"a":{"b":1`, `{"a":{"b":1}}`},
		{"already valid", `{"a":[{"b":1}]}`, `{"a":[{"b":1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.RepairText(tt.in))
		})
	}
}

func TestRepairSteps_Order(t *testing.T) {
	names := make([]string, 0, len(utils.RepairSteps))
	for _, step := range utils.RepairSteps {
		names = append(names, step.Name)
	}

	assert.Equal(t, []string{
		"strip-fence",
		"strip-control-chars",
		"trim-to-object",
		"remove-trailing-commas",
		"collapse-newlines",
		"balance-delimiters",
	}, names)
}

func TestRepairPlanJSON_Malformed(t *testing.T) {
	_, err := utils.RepairPlanJSON(`{"a": nope}`)

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrMalformedUpstreamResponse))

	var repairErr *utils.RepairError
	require.True(t, errors.As(err, &repairErr))
	assert.Equal(t, `{"a": nope}`, repairErr.Text)
	assert.Error(t, repairErr.Cause)
	assert.Contains(t, err.Error(), `{"a": nope}`)
}

func TestRepairPlanJSON_NoJSONAtAll(t *testing.T) {
	_, err := utils.RepairPlanJSON("Sorry, I cannot help with that.")

	assert.True(t, errors.Is(err, utils.ErrMalformedUpstreamResponse))
}

func TestRepairPlanJSON_NotAnObject(t *testing.T) {
	_, err := utils.RepairPlanJSON(`[1,2,3]`)

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrInvalidPlanShape))
	assert.False(t, errors.Is(err, utils.ErrMalformedUpstreamResponse))
}

func TestRepairError_TruncatesSnippet(t *testing.T) {
	long := make([]byte, 2000)
	for i := range long {
		long[i] = 'x'
	}
	err := &utils.RepairError{Kind: utils.ErrMalformedUpstreamResponse, Text: string(long)}

	assert.Less(t, len(err.Error()), 600)
	assert.Contains(t, err.Error(), "...")
}

func TestRepairError_SnippetKeepsRunesWhole(t *testing.T) {
	text := strings.Repeat("x", 499) + strings.Repeat("日本", 100)
	err := &utils.RepairError{Kind: utils.ErrMalformedUpstreamResponse, Text: text}

	msg := err.Error()
	assert.True(t, utf8.ValidString(msg))
	assert.NotContains(t, msg, "�")
	assert.True(t, strings.HasSuffix(msg, strings.Repeat("x", 499)+"..."))
}
