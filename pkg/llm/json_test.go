package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	type out struct {
		Summary string `json:"summary"`
		Passed  bool   `json:"passed"`
	}

	tests := []struct {
		name    string
		content string
		want    out
		wantErr bool
	}{
		{
			name:    "bare json",
			content: `{"summary": "ok", "passed": true}`,
			want:    out{Summary: "ok", Passed: true},
		},
		{
			name:    "json fence",
			content: "```json\n{\"summary\": \"fenced\", \"passed\": false}\n```",
			want:    out{Summary: "fenced"},
		},
		{
			name:    "plain fence",
			content: "```\n{\"summary\": \"plain\"}\n```",
			want:    out{Summary: "plain"},
		},
		{
			name:    "surrounding whitespace",
			content: "\n\n  {\"summary\": \"padded\"}  \n",
			want:    out{Summary: "padded"},
		},
		{
			name:    "prose instead of json",
			content: "Sure, here is my analysis of the diff.",
			wantErr: true,
		},
		{
			name:    "truncated json",
			content: `{"summary": "cut off`,
			wantErr: true,
		},
		{
			name:    "empty response",
			content: "",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got out
			err := ExtractJSON(tc.content, &got)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
}

func TestOneOf(t *testing.T) {
	assert.True(t, oneOf("high", "low", "medium", "high"))
	assert.False(t, oneOf("severe", "low", "medium", "high"))
	assert.False(t, oneOf("", "low"))
}
