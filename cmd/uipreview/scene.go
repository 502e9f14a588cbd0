package main

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	ui "github.com/grindlemire/go-ui"
)

// session is the demo chrome of the paint application driven by a UI.
type session struct {
	ui       *ui.UI
	measurer *ui.GoRegularMeasurer

	bar     *ui.MenuBar
	tools   *ui.ButtonGroup
	brush   *ui.Slider
	opacity *ui.Slider
	blend   *ui.Dropdown
	layer   *ui.TextField
	status  *ui.Label
	confirm *ui.Dialog
	size    ui.Vec2

	tool    string
	history []string
}

var toolNames = []string{"Brush", "Eraser", "Fill", "Picker"}

// script lists the interactions run before a preview is taken.
type script struct {
	openMenu string
	dialog   bool
	tool     string
}

func newSession(th *ui.Theme, size ui.Vec2) (*session, error) {
	m, err := ui.NewGoRegularMeasurer()
	if err != nil {
		return nil, err
	}
	s := &session{measurer: m, size: size, tool: toolNames[0]}
	root := s.build()

	undo := ui.Chord(ui.KeyZ, ui.ModCtrl)
	u, err := ui.New(root,
		ui.WithTheme(th),
		ui.WithMeasurer(m),
		ui.WithShortcut(undo, func(*ui.State) { s.undo() }),
	)
	if err != nil {
		return nil, err
	}
	s.ui = u
	s.bar.Menus()[1].Items()[0].SetShortcutHint(undo)
	if err := s.tools.Bind(u.State().Shortcuts(), ui.Chord(ui.KeyRightBracket, ui.ModNone), ui.Chord(ui.KeyLeftBracket, ui.ModNone)); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) build() *ui.Root {
	s.bar = ui.NewMenuBar(ui.WithName("menubar"))
	file := s.bar.AddMenu("File")
	file.AddItem("New", func() { s.record("new canvas") })
	file.AddItem("Open...", func() { s.record("open") })
	_, recent := file.AddSubmenu("Open Recent")
	for _, name := range []string{"sketch.png", "portrait.png", "logo.png"} {
		recent.AddItem(name, func() { s.record("open " + name) })
	}
	file.AddSeparator()
	file.AddItem("Quit", func() { s.confirm.Show(s.ui.State()) })
	edit := s.bar.AddMenu("Edit")
	edit.AddItem("Undo", s.undo)
	edit.AddItem("Clear", func() { s.record("clear") })
	view := s.bar.AddMenu("View")
	view.AddItem("Zoom In", nil)
	view.AddItem("Zoom Out", nil)

	toolbar := ui.NewContainer(ui.Vertical, ui.WithName("toolbar"), ui.WithFillHeight(),
		ui.WithBackground(ui.ThemeColor(ui.RoleSurface)))
	var tools []*ui.Button
	for _, name := range toolNames {
		b := ui.NewButton(name, nil, ui.WithFillWidth())
		tools = append(tools, b)
		toolbar.Add(b)
	}
	s.tools = ui.MustNewButtonGroup(func(i int) { s.selectTool(toolNames[i]) }, tools...)

	canvas := ui.NewContainer(ui.Vertical, ui.WithName("canvas"), ui.WithFill(),
		ui.WithScroll(ui.ScrollBoth),
		ui.WithAlignment(ui.AlignCenter, ui.AlignCenter),
		ui.WithBackground(ui.ThemeCheckerboard()),
		ui.WithChildren(ui.NewImage(demoPicture(320, 240), ui.WithName("picture"))),
	)
	ctx := ui.NewMenu(ui.WithName("context"))
	ctx.AddItem("Select All", nil)
	_, transform := ctx.AddSubmenu("Transform")
	transform.AddItem("Flip Horizontally", nil)
	transform.AddItem("Rotate 90", nil)
	canvas.Add(ctx)
	canvas.SetOnSecondaryClick(func() { ctx.OpenAt(s.ui.State().Mouse()) })

	s.brush = ui.NewSlider(1, 64, 8, func(v float32) { s.record(fmt.Sprintf("brush %g", v)) })
	s.brush.SetStep(1)
	s.opacity = ui.NewSlider(0, 1, 1, func(v float32) { s.record(fmt.Sprintf("opacity %.2f", v)) })
	s.blend = ui.NewDropdown([]string{"Normal", "Multiply", "Screen", "Overlay"}, 0,
		func(_ int, v string) { s.record("blend " + v) })
	s.layer = ui.NewTextField("Layer name")
	s.layer.SetOnSubmit(func(v string) { s.record("rename layer " + v) })

	settings := ui.NewContainer(ui.Vertical, ui.WithName("settings"), ui.WithFillWidth(), ui.WithChildren(
		ui.NewLabel("Size"), s.brush,
		ui.NewLabel("Opacity"), s.opacity,
		ui.NewLabel("Blend"), s.blend,
		ui.NewCheckbox("Pressure", true, nil),
		ui.NewLabel("Layer"), s.layer,
	))
	panel := ui.NewScrollView(settings, ui.ScrollVertical, ui.WithName("panel"), ui.WithWidth(220), ui.WithFillHeight(),
		ui.WithBackground(ui.ThemeColor(ui.RoleSurface)))

	body := ui.NewContainer(ui.Horizontal, ui.WithName("body"), ui.WithFill(), ui.WithMargin(0),
		ui.WithChildren(toolbar, canvas, panel))

	s.status = ui.NewLabel("", ui.WithName("status"))
	s.status.SetTextFunc(func() string {
		return fmt.Sprintf("%s  %gpx  %.0f%%  %s", s.tool, s.brush.Value(), 100*s.opacity.Value(), s.blend.Value())
	})
	statusBar := ui.NewContainer(ui.Horizontal, ui.WithName("statusbar"), ui.WithFillWidth(),
		ui.WithBackground(ui.ThemeColor(ui.RoleSurface)), ui.WithChildren(s.status))

	s.confirm = ui.NewDialog("Quit", ui.NewLabel("Discard unsaved changes?"), []string{"Discard", "Cancel"}, ui.WithDismissible())
	s.confirm.OnClose(func(r ui.DialogResult) { s.record(fmt.Sprintf("dialog %q", r.Label)) })

	return ui.NewRoot(ui.WithName("root"), ui.WithBackground(ui.ThemeColor(ui.RoleBackground)),
		ui.WithChildren(s.bar, body, statusBar))
}

func (s *session) selectTool(name string) {
	s.tool = name
	s.record("tool " + name)
}

func (s *session) record(what string) {
	s.history = append(s.history, what)
	s.ui.State().Logger().Debug("preview action", "action", what)
}

func (s *session) undo() {
	if n := len(s.history); n > 0 {
		s.history = s.history[:n-1]
	}
}

func (s *session) frame() {
	s.ui.Frame(ui.Input{DisplaySize: s.size, Mouse: ui.V2(-1, -1), PrevMouse: ui.V2(-1, -1)})
}

// run settles the layout and applies the scripted interactions.
func (s *session) run(sc script) error {
	s.frame()
	s.frame()

	if sc.tool != "" {
		i := slices.Index(toolNames, sc.tool)
		if i < 0 {
			return fmt.Errorf("no tool named %q", sc.tool)
		}
		s.tools.Set(i)
		s.frame()
	}
	if sc.openMenu != "" {
		var found bool
		for _, m := range s.bar.Menus() {
			if m.Name() == sc.openMenu {
				m.Open()
				found = true
			}
		}
		if !found {
			return fmt.Errorf("no menu named %q", sc.openMenu)
		}
		s.frame()
	}
	if sc.dialog {
		s.confirm.Show(s.ui.State())
		s.frame()
	}
	s.frame()
	return nil
}

// demoPicture paints a hue sweep fading to transparent at the bottom, so
// the checkerboard shows through.
func demoPicture(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		a := uint8(255 - 255*y/h)
		for x := range w {
			r := uint8(255 * x / w)
			g := uint8(255 * y / h)
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: 255 - r, A: a})
		}
	}
	return img
}
