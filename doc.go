// Package ui is the layout and interaction engine behind the paint
// application's interface.
//
// It keeps a retained tree of nodes (leaves, containers, floating surfaces)
// that is laid out from scratch every frame in three passes: minimum sizes
// bottom-up, expansion top-down, positioning top-down. Hit testing scans
// cumulative layers from the top so floating menus and modal dialogs
// intercept the pointer before the content below them. Keyboard, text and
// wheel input is queued and flushed at the start of the next frame, and a
// single node at a time holds the selection.
//
// Rendering, font rasterization and window management are not part of this
// package. The engine consumes an [Input] snapshot and a [TextMeasurer], and
// produces a [DrawList] for a renderer to consume.
//
//	root := ui.NewRoot()
//	root.Add(ui.NewLabel("Hello"))
//	u := ui.MustNew(root)
//	for running {
//		u.Frame(collectInput())
//		renderer.Draw(u.DrawList())
//	}
package ui
