package devserver

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// watcher reports writes to the bundle file in a directory.
type watcher struct {
	fs       *fsnotify.Watcher
	onChange func()
	log      *logrus.Logger
}

func newWatcher(dir string, onChange func(), log *logrus.Logger) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// fsnotify watches dirs for file events
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return &watcher{fs: fw, onChange: onChange, log: log}, nil
}

func (w *watcher) run(ctx context.Context) {
	defer w.fs.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != bundleFile {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.onChange()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("watch error")
		}
	}
}
