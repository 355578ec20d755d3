package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{
			name:     "empty token",
			token:    "",
			expected: "",
		},
		{
			name:     "very short token fully hidden",
			token:    "ab",
			expected: "****",
		},
		{
			name:     "short token keeps last two",
			token:    "s3cret",
			expected: "****et",
		},
		{
			name:     "boundary eight chars keeps last two",
			token:    "12345678",
			expected: "****78",
		},
		{
			name:     "long token keeps first and last four",
			token:    "glpat-AbCdEfGhIjKlMnOp",
			expected: "glpa****MnOp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskToken(tt.token))
		})
	}
}

func TestMaskConfig(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.Nil(t, MaskConfig(nil))
	})

	t.Run("sensitive keys redacted, rest untouched", func(t *testing.T) {
		in := map[string]any{
			"app_key":             "dd-app-key-1234567890",
			"external_project_id": 42,
			"default_channel":     "#deploys",
		}
		out := MaskConfig(in)

		assert.Equal(t, "dd-a****7890", out["app_key"])
		assert.Equal(t, 42, out["external_project_id"])
		assert.Equal(t, "#deploys", out["default_channel"])
		// Input map untouched
		assert.Equal(t, "dd-app-key-1234567890", in["app_key"])
	})

	t.Run("non-string sensitive value passes through", func(t *testing.T) {
		out := MaskConfig(map[string]any{"secret": 7})
		assert.Equal(t, 7, out["secret"])
	})
}
