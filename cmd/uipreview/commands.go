package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	ui "github.com/grindlemire/go-ui"
	"github.com/grindlemire/go-ui/internal/debug"
)

// previewOptions are the flags shared by render and dump.
type previewOptions struct {
	themePath string
	width     int
	height    int
	openMenu  string
	dialog    bool
	tool      string
	debugPath string
	output    string
}

func parsePreviewFlags(name string, args []string, defaultOutput string) (previewOptions, error) {
	var o previewOptions
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&o.themePath, "theme", "", "TOML theme file")
	fs.IntVar(&o.width, "w", 960, "display width")
	fs.IntVar(&o.height, "h", 640, "display height")
	fs.StringVar(&o.openMenu, "open", "", "menu to open")
	fs.StringVar(&o.tool, "tool", "", "tool to choose")
	fs.BoolVar(&o.dialog, "dialog", false, "show the unsaved changes dialog")
	fs.StringVar(&o.debugPath, "debug", "", "debug log path")
	fs.StringVar(&o.output, "o", defaultOutput, "output file")
	if err := fs.Parse(args); err != nil {
		return o, fmt.Errorf("%s: %w", name, err)
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("%s: unexpected argument %q", name, fs.Arg(0))
	}
	if o.width <= 0 || o.height <= 0 {
		return o, fmt.Errorf("%s: invalid size %dx%d", name, o.width, o.height)
	}
	return o, nil
}

// startSession loads the theme, wires debug logging and runs the scripted
// frames the options ask for.
func startSession(o previewOptions) (*session, func(), error) {
	cleanup := func() {}
	if o.debugPath != "" {
		if err := debug.Init(o.debugPath); err != nil {
			return nil, nil, err
		}
		cleanup = func() { _ = debug.Close() }
	}

	th := ui.DefaultTheme()
	if o.themePath != "" {
		loaded, err := ui.LoadTheme(o.themePath)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		th = loaded
	}

	s, err := newSession(th, ui.V2(float32(o.width), float32(o.height)))
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if err := s.run(script{openMenu: o.openMenu, dialog: o.dialog, tool: o.tool}); err != nil {
		cleanup()
		return nil, nil, err
	}
	return s, cleanup, nil
}

// runRender implements the render subcommand.
func runRender(args []string) error {
	o, err := parsePreviewFlags("render", args, "preview.png")
	if err != nil {
		return err
	}
	s, cleanup, err := startSession(o)
	if err != nil {
		return err
	}
	defer cleanup()

	img := rasterize(s.ui.DrawList(), o.width, o.height, s.measurer)

	f, err := os.Create(o.output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", o.output, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", o.output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", o.output, err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", o.output, o.width, o.height)
	return nil
}

// runDump implements the dump subcommand.
func runDump(args []string) error {
	o, err := parsePreviewFlags("dump", args, "")
	if err != nil {
		return err
	}
	s, cleanup, err := startSession(o)
	if err != nil {
		return err
	}
	defer cleanup()

	w := io.Writer(os.Stdout)
	if o.output != "" {
		f, err := os.Create(o.output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", o.output, err)
		}
		defer f.Close()
		w = f
	}
	return dumpItems(w, s.ui.DrawList())
}

func dumpItems(w io.Writer, items []ui.DrawItem) error {
	for i, it := range items {
		name := it.Name
		if name == "" {
			name = fmt.Sprintf("%T", it.Node)
		}
		line := fmt.Sprintf("%4d L%-3d %s%s (%g,%g %gx%g)",
			i, it.Layer, indent(it.Depth), name, it.Pos.X, it.Pos.Y, it.Size.X, it.Size.Y)
		if it.Text != "" {
			line += fmt.Sprintf(" %q", it.Text)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// runTheme implements the theme subcommand.
func runTheme(args []string) error {
	fs := flag.NewFlagSet("theme", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	output := fs.String("o", "", "output file")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	th := ui.DefaultTheme()
	if *output != "" {
		return ui.SaveTheme(*output, th)
	}
	data, err := toml.Marshal(th)
	if err != nil {
		return fmt.Errorf("failed to marshal theme: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
