package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanDisabledRules(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "inline flow sequence",
			text: "---\ndisabled rules: [yaml-timestamp, trailing-spaces]\n---\nbody\n",
			want: []string{"yaml-timestamp", "trailing-spaces"},
		},
		{
			name: "bare comma list",
			text: "---\ndisabled rules: yaml-timestamp, trailing-spaces\n---\nbody\n",
			want: []string{"yaml-timestamp", "trailing-spaces"},
		},
		{
			name: "dash list",
			text: "---\ndisabled rules:\n  - yaml-timestamp\n  - trailing-spaces\n---\nbody\n",
			want: []string{"yaml-timestamp", "trailing-spaces"},
		},
		{
			name: "quoted aliases",
			text: "---\ndisabled rules: [\"yaml-timestamp\", 'trailing-spaces']\n---\nbody\n",
			want: []string{"yaml-timestamp", "trailing-spaces"},
		},
		{
			name: "mixed case key",
			text: "---\nDisabled Rules: [yaml-timestamp]\n---\nbody\n",
			want: []string{"yaml-timestamp"},
		},
		{
			name: "single alias",
			text: "---\ndisabled rules: yaml-key-sort\n---\nbody\n",
			want: []string{"yaml-key-sort"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := ScanDisabledRules(tt.text)
			assert.Len(t, set, len(tt.want))
			for _, alias := range tt.want {
				assert.True(t, set.Has(alias), "expected %s disabled", alias)
			}
		})
	}
}

func TestScanDisabledRules_All(t *testing.T) {
	set := ScanDisabledRules("---\ndisabled rules: all\n---\nbody\n")
	assert.True(t, set.Has("yaml-timestamp"))
	assert.True(t, set.Has("anything-at-all"))
}

func TestScanDisabledRules_Absent(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no front matter", "body only\n"},
		{"no directive", "---\ntitle: x\n---\nbody\n"},
		{"unterminated block", "---\ndisabled rules: [yaml-timestamp]\nbody\n"},
		{"directive in body", "---\ntitle: x\n---\ndisabled rules: [yaml-timestamp]\n"},
		{"indented lookalike", "---\nouter:\n  disabled rules: [yaml-timestamp]\n---\nbody\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := ScanDisabledRules(tt.text)
			assert.Empty(t, set)
			assert.False(t, set.Has("yaml-timestamp"))
		})
	}
}

// The directive must be honored even when the block as a whole would not
// survive a YAML parse.
func TestScanDisabledRules_UnparsableBlock(t *testing.T) {
	text := "---\ntitle: c: colon soup\ndisabled rules: [yaml-timestamp]\nnested:\n\ttab: indent\n---\nbody\n"
	set := ScanDisabledRules(text)
	assert.True(t, set.Has("yaml-timestamp"))
}

func TestDisabledRulesHas_Empty(t *testing.T) {
	var set DisabledRules
	assert.False(t, set.Has("trailing-spaces"))
}
