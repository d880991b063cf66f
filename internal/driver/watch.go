package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchSettle is the quiet period before a dropped file is read; file
// copies arrive as bursts of write events.
const watchSettle = 500 * time.Millisecond

// Watch analyzes everything already in the input directory, then keeps
// analyzing .graphml files as they are dropped in. It returns the
// accumulated stats when ctx ends.
func (d *Driver) Watch(ctx context.Context) (Stats, error) {
	stats, err := d.Run(ctx)
	if err != nil {
		return stats, err
	}

	info, err := os.Stat(d.cfg.Input)
	if err != nil {
		return stats, fmt.Errorf("driver: stat input: %w", err)
	}
	if !info.IsDir() {
		return stats, ErrWatchNeedsDir
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return stats, fmt.Errorf("driver: watcher: %w", err)
	}
	defer func() { _ = w.Close() }()
	if err := w.Add(d.cfg.Input); err != nil {
		return stats, fmt.Errorf("driver: watch %s: %w", d.cfg.Input, err)
	}
	d.log.Info("watching for new webs", "dir", d.cfg.Input)

	var (
		mu      sync.Mutex
		pending = make(map[string]*time.Timer)
		ready   = make(chan string)
	)
	defer func() {
		mu.Lock()
		for _, t := range pending {
			t.Stop()
		}
		mu.Unlock()
	}()

	schedule := func(path string) {
		mu.Lock()
		defer mu.Unlock()
		if t, ok := pending[path]; ok {
			t.Reset(watchSettle)
			return
		}
		pending[path] = time.AfterFunc(watchSettle, func() {
			mu.Lock()
			delete(pending, path)
			mu.Unlock()
			select {
			case ready <- path:
			case <-ctx.Done():
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			return stats, nil
		case ev, ok := <-w.Events:
			if !ok {
				return stats, nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(ev.Name), ".graphml") {
				continue
			}
			schedule(ev.Name)
		case werr, ok := <-w.Errors:
			if !ok {
				return stats, nil
			}
			d.log.Warn("watcher error", "err", werr)
		case path := <-ready:
			if err := d.analyzeOne(ctx, path); err != nil {
				stats.Failed++
			} else {
				stats.Analyzed++
			}
		}
	}
}
