package watcher

import (
	"errors"
	"path/filepath"

	"learnhub/backend/global"

	"github.com/fsnotify/fsnotify"
)

// SeedWatcher watches a single seed file and invokes the reload callback
// whenever it is written or recreated. Editors often replace files instead
// of writing in place, so the containing directory is watched and events are
// filtered by name.
type SeedWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	stop    chan struct{}
}

func Watch(path string, onChange func(path string)) (*SeedWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	sw := &SeedWatcher{watcher: fsw, path: abs, stop: make(chan struct{})}
	go sw.loop(onChange)
	global.Logger.Info().Str("path", abs).Msg("watching seed file")
	return sw, nil
}

func (sw *SeedWatcher) loop(onChange func(string)) {
	for {
		select {
		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != sw.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			onChange(sw.path)
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			if !errors.Is(err, fsnotify.ErrEventOverflow) {
				global.Logger.Error().Err(err).Msg("seed watcher error")
			}
		case <-sw.stop:
			return
		}
	}
}

func (sw *SeedWatcher) Close() error {
	close(sw.stop)
	return sw.watcher.Close()
}
