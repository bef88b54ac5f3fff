package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/rushikeshhadawale/unified-ai-command-centre/internal/shared/errors"
)

func TestParseVariables(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    map[string]any
		wantErr bool
	}{
		{
			name: "blank text yields empty mapping",
			text: "",
			want: map[string]any{},
		},
		{
			name: "whitespace-only text yields empty mapping",
			text: "   \n\t",
			want: map[string]any{},
		},
		{
			name: "valid object",
			text: `{"salary_amount": 8000, "due_date": "30 Nov"}`,
			want: map[string]any{"salary_amount": float64(8000), "due_date": "30 Nov"},
		},
		{
			name: "nested values pass through",
			text: `{"meta": {"retry": false}, "tags": ["a","b"]}`,
			want: map[string]any{
				"meta": map[string]any{"retry": false},
				"tags": []any{"a", "b"},
			},
		},
		{
			name:    "malformed json",
			text:    "{not json",
			wantErr: true,
		},
		{
			name:    "array is not a mapping",
			text:    `[1,2,3]`,
			wantErr: true,
		},
		{
			name:    "scalar is not a mapping",
			text:    `42`,
			wantErr: true,
		},
		{
			name:    "string is not a mapping",
			text:    `"hello"`,
			wantErr: true,
		},
		{
			name:    "null is not a mapping",
			text:    `null`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVariables(tt.text)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.HasReason(err, apperrors.ReasonInvalidVariablesJSON))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
