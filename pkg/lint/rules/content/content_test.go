package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveMultipleSpaces(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "interior runs collapsed",
			text: "one  two   three\n",
			want: "one two three\n",
		},
		{
			name: "indentation preserved",
			text: "  - item  with  runs\n",
			want: "  - item with runs\n",
		},
		{
			name: "trailing spaces preserved",
			text: "line  with trail  \n",
			want: "line with trail  \n",
		},
		{
			name: "fenced code untouched",
			text: "```\naligned    code\n```\nprose  here\n",
			want: "```\naligned    code\n```\nprose here\n",
		},
		{
			name: "indented code untouched",
			text: "    aligned    code\nprose  here\n",
			want: "    aligned    code\nprose here\n",
		},
		{
			name: "table rows untouched",
			text: "| a  | b  |\n| -- | -- |\nprose  here\n",
			want: "| a  | b  |\n| -- | -- |\nprose here\n",
		},
		{
			name: "front matter untouched",
			text: "---\ntitle: two  spaces\n---\nprose  here\n",
			want: "---\ntitle: two  spaces\n---\nprose here\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyRemoveMultipleSpaces(tt.text, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrailingNewline(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"adds missing newline", "text", "text\n"},
		{"collapses extra newlines", "text\n\n\n", "text\n"},
		{"single newline unchanged", "text\n", "text\n"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyTrailingNewline(tt.text, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
