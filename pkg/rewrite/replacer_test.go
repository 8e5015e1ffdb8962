package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/fixrc/pkg/config"
)

func TestCompileRules(t *testing.T) {
	tests := []struct {
		name      string
		rules     []config.Rule
		wantError string
	}{
		{
			name: "valid_rules",
			rules: []config.Rule{
				{Pattern: `video_data:`, Replace: `render_data:`},
				{Pattern: `tally_data:\s*None,`, Replace: ``},
			},
		},
		{
			name:  "empty_rules",
			rules: []config.Rule{},
		},
		{
			name: "invalid_pattern",
			rules: []config.Rule{
				{Pattern: `video_data:`, Replace: `render_data:`},
				{Pattern: `Some(`, Replace: `x`},
			},
			wantError: "compiling rule 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := CompileRules(tt.rules)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, rs)
			assert.Equal(t, len(tt.rules), rs.Len())
		})
	}
}

func TestRuleSet_Apply(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		rules        []config.Rule
		want         string
		wantCount    int
		wantModified bool
	}{
		{
			name:    "field_rename",
			content: "video_data: Some(x),\n",
			rules: []config.Rule{
				{Pattern: `video_data:`, Replace: `render_data:`},
			},
			want:         "render_data: Some(x),\n",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "delete_field_with_whitespace",
			content: "tally_data: None,\ntally_data:    None,\n",
			rules: []config.Rule{
				{Pattern: `tally_data:\s*None,`, Replace: ``},
			},
			want:         "\n\n",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:    "wrap_payload",
			content: "return Some(frame);",
			rules: []config.Rule{
				{Pattern: `Some\(frame\)`, Replace: `Some(RenderData::Raster2D(frame))`},
			},
			want:         "return Some(RenderData::Raster2D(frame));",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "order_sensitive",
			content: "abc",
			rules: []config.Rule{
				{Pattern: `a`, Replace: `b`},
				{Pattern: `b`, Replace: `c`},
			},
			// The second rule sees the first rule's output.
			want:         "ccc",
			wantCount:    3,
			wantModified: true,
		},
		{
			name:    "reversed_order_differs",
			content: "abc",
			rules: []config.Rule{
				{Pattern: `b`, Replace: `c`},
				{Pattern: `a`, Replace: `b`},
			},
			want:         "bcc",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:    "no_match",
			content: "fn main() {}\n",
			rules: []config.Rule{
				{Pattern: `video_data:`, Replace: `render_data:`},
			},
			want:         "fn main() {}\n",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:    "empty_content",
			content: "",
			rules: []config.Rule{
				{Pattern: `video_data:`, Replace: `render_data:`},
			},
			want:         "",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:    "round_trip_is_not_modified",
			content: "aba",
			rules: []config.Rule{
				{Pattern: `a`, Replace: `x`},
				{Pattern: `x`, Replace: `a`},
			},
			want:         "aba",
			wantCount:    4,
			wantModified: false,
		},
		{
			name:    "longer_name_not_clobbered_by_shorter_pattern",
			content: "Some(video_frame)",
			rules: []config.Rule{
				{Pattern: `Some\(frame\)`, Replace: `Some(RenderData::Raster2D(frame))`},
				{Pattern: `Some\(video_frame\)`, Replace: `Some(RenderData::Raster2D(video_frame))`},
			},
			want:         "Some(RenderData::Raster2D(video_frame))",
			wantCount:    1,
			wantModified: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := CompileRules(tt.rules)
			require.NoError(t, err)

			result := rs.Apply([]byte(tt.content))

			assert.Equal(t, tt.content, string(result.Original))
			assert.Equal(t, tt.want, string(result.Modified))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Equal(t, tt.wantModified, result.WasModified)
		})
	}
}

func TestRuleSet_Apply_DefaultMigration(t *testing.T) {
	rs, err := CompileRules(config.Default().Rules)
	require.NoError(t, err)

	input := `FrameData {
    video_data: Some(frame),
    tally_data: None,
    scene3d_data: None,
    spatial_audio_data: None,
    transform_data: None,
}
`
	// Deleting rules remove the field text but keep the line's leading indent.
	blank := "    "
	want := "FrameData {\n" +
		"    render_data: Some(RenderData::Raster2D(frame)),\n" +
		blank + "\n" +
		blank + "\n" +
		blank + "\n" +
		"    control_data: None,\n" +
		"}\n"

	result := rs.Apply([]byte(input))
	assert.True(t, result.WasModified)
	assert.Equal(t, 6, result.ReplacementCount)
	assert.Equal(t, want, string(result.Modified))

	// Second pass over the output is a no-op: the migration completes in one.
	again := rs.Apply(result.Modified)
	assert.False(t, again.WasModified)
	assert.Equal(t, string(result.Modified), string(again.Modified))
}
