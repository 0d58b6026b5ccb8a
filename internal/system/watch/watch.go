// Released under an MIT license. See LICENSE.

// Package watch re-evaluates scripts when they change on disk.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Settle is how long events must stop arriving before a change is
// reported. Editors often write a file in several steps.
const Settle = 10 * time.Millisecond

// Watch calls changed with the path of each watched file that changes
// until ctx is done.
func Watch(ctx context.Context, log *slog.Logger, changed func(path string), paths ...string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch directories so that files replaced by a rename are still seen.
	watched := map[string]string{}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}

		watched[abs] = p

		err = w.Add(filepath.Dir(abs))
		if err != nil {
			return err
		}
	}

	pending := map[string]bool{}

	timer := time.NewTimer(Settle)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-w.Errors:
			log.Error("watch", "error", err)

		case e, ok := <-w.Events:
			if !ok {
				return nil
			}

			p, ok := watched[e.Name]
			if !ok || !(e.Has(fsnotify.Write) || e.Has(fsnotify.Create)) {
				continue
			}

			pending[p] = true

			timer.Reset(Settle)

		case <-timer.C:
			for p := range pending {
				log.Debug("watch", "changed", p)
				changed(p)
			}

			pending = map[string]bool{}
		}
	}
}
