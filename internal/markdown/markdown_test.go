package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := New()

	tests := []struct {
		name     string
		src      string
		contains []string
		excludes []string
	}{
		{
			name:     "emphasis",
			src:      "A *grassy* and **bright** tea",
			contains: []string{"<em>grassy</em>", "<strong>bright</strong>"},
		},
		{
			name:     "list",
			src:      "- 80C\n- 2 minutes",
			contains: []string{"<ul>", "<li>80C</li>"},
		},
		{
			name:     "raw html is dropped",
			src:      "<script>alert(1)</script>\n\nsteep",
			contains: []string{"<p>steep</p>"},
			excludes: []string{"<script>"},
		},
		{
			name: "empty",
			src:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.src)
			require.NoError(t, err)
			for _, c := range tt.contains {
				assert.Contains(t, string(out), c)
			}
			for _, e := range tt.excludes {
				assert.NotContains(t, string(out), e)
			}
		})
	}
}
