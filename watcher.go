package ui

import (
	"context"
	"time"
)

// Watcher is an event source running on its own goroutine. It hands what
// it observes to the frame goroutine as actions, so handlers may touch the
// tree freely.
type Watcher interface {
	// Start launches the watcher goroutine. It stops when ctx is done.
	Start(ctx context.Context, u *UI)
}

// WatcherProvider is implemented by nodes that bring their own watchers.
type WatcherProvider interface {
	Watchers() []Watcher
}

// ChannelWatcher watches a channel and calls handler for each value.
type ChannelWatcher[T any] struct {
	ch      <-chan T
	handler func(*State, T)
}

// NewChannelWatcher creates a watcher that calls fn for each value received on ch.
// The handler runs at the start of a frame, not on the watcher goroutine.
//
// Example:
//
//	loaded := make(chan image.Image)
//	w := ui.NewChannelWatcher(loaded, func(s *ui.State, img image.Image) {
//	    preview.SetImage(img)
//	})
func NewChannelWatcher[T any](ch <-chan T, fn func(*State, T)) *ChannelWatcher[T] {
	return &ChannelWatcher[T]{
		ch:      ch,
		handler: fn,
	}
}

// Watch creates a channel watcher.
func Watch[T any](ch <-chan T, fn func(*State, T)) Watcher {
	return NewChannelWatcher(ch, fn)
}

// Start the watcher. It returns when ch is closed or ctx is done.
func (w *ChannelWatcher[T]) Start(ctx context.Context, u *UI) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-w.ch:
				if !ok {
					return
				}
				if !u.queueWait(ctx, func(s *State) { w.handler(s, v) }) {
					return
				}
			}
		}
	}()
}

// timerWatcher fires at a regular interval.
type timerWatcher struct {
	interval time.Duration
	handler  Action
}

// OnTimer creates a watcher that queues fn every interval.
func OnTimer(interval time.Duration, fn Action) Watcher {
	return &timerWatcher{interval: interval, handler: fn}
}

// Start the watcher.
func (w *timerWatcher) Start(ctx context.Context, u *UI) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !u.queueWait(ctx, w.handler) {
					return
				}
			}
		}
	}()
}

// StartWatchers starts ws and the watchers of every node in the tree that
// implements WatcherProvider, hidden ones included.
func (u *UI) StartWatchers(ctx context.Context, ws ...Watcher) {
	all := append(collectWatchers(u.state.root), ws...)
	u.state.logger.Debug("starting watchers", "count", len(all))
	for _, w := range all {
		w.Start(ctx, u)
	}
}

// collectWatchers walks the tree and collects watchers from every node
// that provides them.
func collectWatchers(n Node) []Watcher {
	var watchers []Watcher
	if wp, ok := n.(WatcherProvider); ok {
		watchers = append(watchers, wp.Watchers()...)
	}
	if c, ok := asContainer(n); ok {
		for _, child := range c.children {
			watchers = append(watchers, collectWatchers(child)...)
		}
	}
	return watchers
}
