// seehuhn.de/go/tikz - create TikZ graphics from Go
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package watch calls a function whenever a file changes.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"

	"seehuhn.de/go/tikz/internal/logger"
)

// DefaultDelay is the debounce period used if [Watcher.Delay] is zero.
const DefaultDelay = 300 * time.Millisecond

// Watcher observes a single file.  Bursts of change events, as produced by
// editors when saving, result in a single call of OnChange.
type Watcher struct {
	Path     string
	Delay    time.Duration
	OnChange func()

	mu    sync.Mutex
	timer *time.Timer
}

// Run watches the file until ctx is cancelled.  The directory containing
// the file is watched, so that the file can be replaced by renaming.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create fsnotify watcher")
	}
	defer fsw.Close()

	path, err := filepath.Abs(w.Path)
	if err != nil {
		return errors.Wrapf(err, "%s", w.Path)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "failed to watch %s", w.Path)
	}
	logger.Debugw("watching", "file", path)

	defer w.stop()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debugw("file changed", "file", event.Name, "op", event.Op.String())
			w.schedule()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("watcher error", "error", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	delay := w.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	w.timer = time.AfterFunc(delay, w.OnChange)
}

func (w *Watcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}
