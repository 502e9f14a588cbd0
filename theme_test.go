package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	type tc struct {
		input   string
		check   func(t *testing.T, th *Theme)
		wantErr string
	}

	tests := map[string]tc{
		"empty keeps defaults": {
			input: "",
			check: func(t *testing.T, th *Theme) {
				assert.Equal(t, DefaultTheme(), th)
			},
		},
		"metric override": {
			input: "margin = 2\nfont_size = 18\n",
			check: func(t *testing.T, th *Theme) {
				assert.Equal(t, float32(2), th.Margin)
				assert.Equal(t, float32(18), th.FontSize)
				assert.Equal(t, DefaultTheme().Padding, th.Padding)
			},
		},
		"colour override": {
			input: "[colors]\naccent = \"#ff8800\"\ndim = \"#00000040\"\n",
			check: func(t *testing.T, th *Theme) {
				assert.Equal(t, Color{R: 0xff, G: 0x88, A: 0xff}, th.Colors.Accent)
				assert.Equal(t, Color{A: 0x40}, th.Colors.Dim)
				assert.Equal(t, DefaultTheme().Colors.Surface, th.Colors.Surface)
			},
		},
		"colour name": {
			input: "[colors]\ntext = \"white\"\n",
			check: func(t *testing.T, th *Theme) {
				assert.Equal(t, Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, th.Colors.Text)
			},
		},
		"bad colour":      {input: "[colors]\naccent = \"#12\"\n", wantErr: "failed to parse theme"},
		"bad toml":        {input: "margin = = 1", wantErr: "failed to parse theme"},
		"negative margin": {input: "margin = -1\n", wantErr: "margin must be a number >= 0"},
		"tiny font":       {input: "font_size = 0.5\n", wantErr: "font_size must be a number >= 1"},
		"nan padding":     {input: "padding = nan\n", wantErr: "padding must be a number"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			th, err := ParseTheme([]byte(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, th)
				return
			}
			require.NoError(t, err)
			tt.check(t, th)
		})
	}
}

func TestTheme_Validate_ReportsEveryField(t *testing.T) {
	th := DefaultTheme()
	th.Margin = -1
	th.SliderThumb = 0
	err := th.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "margin")
	assert.Contains(t, err.Error(), "slider_thumb")
	assert.NoError(t, DefaultTheme().Validate())
}

func TestTheme_Color(t *testing.T) {
	th := DefaultTheme()

	type tc struct {
		role Role
		want Color
	}

	tests := map[string]tc{
		"background": {role: RoleBackground, want: th.Colors.Background},
		"surface":    {role: RoleSurface, want: th.Colors.Surface},
		"accent":     {role: RoleAccent, want: th.Colors.Accent},
		"dim":        {role: RoleDim, want: th.Colors.Dim},
		"none":       {role: RoleNone, want: Color{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want.Value(), th.Color(tt.role))
		})
	}
}

func TestSaveLoadTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")

	th := DefaultTheme()
	th.FontSize = 18
	th.Colors.Accent = Color{R: 0x10, G: 0x20, B: 0x30, A: 0x80}
	require.NoError(t, SaveTheme(path, th))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#10203080")

	got, err := LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, th, got)
}

func TestLoadTheme_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTheme(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("margin = -3\n"), 0o644))
	_, err = LoadTheme(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}
