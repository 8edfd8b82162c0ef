// Package fnotify reports changes to a set of files, coalescing bursts of
// events into one notification per file.
package fnotify

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/fsnotify.v1"
)

// DefaultDebounce is how long a file must be quiet before its change is
// reported.
const DefaultDebounce = 250 * time.Millisecond

// A Notifier watches files.
type Notifier struct {
	name     string
	Debounce time.Duration
}

// New creates a Notifier; name is used in log messages.
func New(name string) *Notifier {
	return &Notifier{name: name, Debounce: DefaultDebounce}
}

// Notify sends the path of each changed file on res until ctx is done.
// Files that are replaced (removed and recreated, as editors and rsync
// do) stay watched.
func (n *Notifier) Notify(ctx context.Context, files []string, res chan<- string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer watcher.Close()
	for _, f := range files {
		if err := watcher.Add(f); err != nil {
			return errors.Wrapf(err, "watch %s", f)
		}
	}

	pending := map[string]bool{}
	throttler := time.NewTimer(n.Debounce)
	defer throttler.Stop()
	throttled := func() <-chan time.Time {
		if len(pending) == 0 {
			return nil
		}
		return throttler.C
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			throttler.Reset(n.Debounce)
			pending[event.Name] = true
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				if err := watcher.Add(event.Name); err != nil {
					log.Println("watcher", n.name, "cannot re-watch", event.Name+":", err)
				}
			}
		case <-throttled():
			for file := range pending {
				delete(pending, file)
				select {
				case res <- file:
				case <-ctx.Done():
					return nil
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Println("watcher", n.name, "error:", err)
		case <-ctx.Done():
			return nil
		}
	}
}
