package main

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ui "github.com/grindlemire/go-ui"
)

func newTestSession(t *testing.T, sc script) *session {
	t.Helper()
	s, err := newSession(ui.DefaultTheme(), ui.V2(640, 480))
	require.NoError(t, err)
	require.NoError(t, s.run(sc))
	return s
}

func dump(t *testing.T, s *session) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, dumpItems(&buf, s.ui.DrawList()))
	return buf.String()
}

func TestSession_Script(t *testing.T) {
	type tc struct {
		sc       script
		contains []string
		excludes []string
	}

	tests := map[string]tc{
		"idle": {
			contains: []string{"menubar", "toolbar", `"Brush  8px  100%  Normal"`},
			excludes: []string{`"Open Recent"`, `"Discard unsaved changes?"`},
		},
		"file menu": {
			sc:       script{openMenu: "File"},
			contains: []string{`"Open Recent"`, `"Quit"`},
		},
		"eraser tool": {
			sc:       script{tool: "Eraser"},
			contains: []string{`"Eraser  8px  100%  Normal"`},
		},
		"dialog": {
			sc:       script{dialog: true},
			contains: []string{`"Discard unsaved changes?"`, "dialog-panel"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := dump(t, newTestSession(t, tt.sc))
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestSession_UnknownMenu(t *testing.T) {
	s, err := newSession(ui.DefaultTheme(), ui.V2(640, 480))
	require.NoError(t, err)
	assert.ErrorContains(t, s.run(script{openMenu: "Help"}), `no menu named "Help"`)
}

func TestSession_UnknownTool(t *testing.T) {
	s, err := newSession(ui.DefaultTheme(), ui.V2(640, 480))
	require.NoError(t, err)
	assert.ErrorContains(t, s.run(script{tool: "Lasso"}), `no tool named "Lasso"`)
}

func TestSession_MenuAboveContent(t *testing.T) {
	s := newTestSession(t, script{openMenu: "Edit"})
	items := s.ui.DrawList()
	require.NotEmpty(t, items)
	last := items[len(items)-1]
	assert.Equal(t, ui.MenuLayer, last.Layer)
}

func TestRasterize(t *testing.T) {
	s := newTestSession(t, script{})
	img := rasterize(s.ui.DrawList(), 640, 480, s.measurer)

	th := ui.DefaultTheme()
	// The status bar spans the bottom edge on the surface colour.
	got := img.RGBAAt(320, 479)
	assert.Equal(t, th.Colors.Surface.Value(), got)

	var opaque int
	for y := 0; y < 480; y += 7 {
		for x := 0; x < 640; x += 7 {
			if img.RGBAAt(x, y).A == 0xff {
				opaque++
			}
		}
	}
	assert.Positive(t, opaque)
}

func TestShapeMask(t *testing.T) {
	box := image.Rect(0, 0, 10, 10)

	type tc struct {
		mask shapeMask
		p    image.Point
		want bool
	}

	tests := map[string]tc{
		"rect corner":      {mask: shapeMask{box: box}, p: image.Pt(0, 0), want: true},
		"rect outside":     {mask: shapeMask{box: box}, p: image.Pt(10, 5), want: false},
		"ellipse centre":   {mask: shapeMask{box: box, shape: ui.ShapeEllipse}, p: image.Pt(5, 5), want: true},
		"ellipse corner":   {mask: shapeMask{box: box, shape: ui.ShapeEllipse}, p: image.Pt(0, 0), want: false},
		"rounded corner":   {mask: shapeMask{box: box, shape: ui.ShapeRounded, radius: 4}, p: image.Pt(0, 0), want: false},
		"rounded edge":     {mask: shapeMask{box: box, shape: ui.ShapeRounded, radius: 4}, p: image.Pt(5, 0), want: true},
		"zero radius":      {mask: shapeMask{box: box, shape: ui.ShapeRounded}, p: image.Pt(0, 0), want: true},
		"degenerate shape": {mask: shapeMask{box: image.Rect(0, 0, 0, 4), shape: ui.ShapeEllipse}, p: image.Pt(0, 0), want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mask.contains(tt.p.X, tt.p.Y))
		})
	}
}

func TestChecker(t *testing.T) {
	a := color.NRGBA{R: 1, A: 0xff}
	b := color.NRGBA{G: 1, A: 0xff}
	c := checker{a: a, b: b, cell: 4}
	assert.Equal(t, a, c.At(0, 0))
	assert.Equal(t, b, c.At(4, 0))
	assert.Equal(t, b, c.At(-1, 0))
	assert.Equal(t, a, c.At(-1, -1))
}

func TestParsePreviewFlags(t *testing.T) {
	type tc struct {
		args    []string
		want    previewOptions
		wantErr string
	}

	tests := map[string]tc{
		"defaults": {
			want: previewOptions{width: 960, height: 640, output: "preview.png"},
		},
		"all flags": {
			args: []string{"-w", "320", "-h", "200", "-open", "File", "-dialog", "-o", "x.png", "-theme", "t.toml"},
			want: previewOptions{width: 320, height: 200, openMenu: "File", dialog: true, output: "x.png", themePath: "t.toml"},
		},
		"bad size":  {args: []string{"-w", "0"}, wantErr: "invalid size"},
		"stray arg": {args: []string{"extra"}, wantErr: "unexpected argument"},
		"bad flag":  {args: []string{"-nope"}, wantErr: "render:"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parsePreviewFlags("render", tt.args, "preview.png")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, strings.Contains(err.Error(), tt.wantErr), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
