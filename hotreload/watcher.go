// Package hotreload rebuilds assets when their files change on disk.
// File events arrive on a background goroutine; reloads run on the frame
// thread during Update, where the GL context is current.
package hotreload

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/plus3/glsamples/content"
	"github.com/plus3/glsamples/game"
	"github.com/plus3/glsamples/gametime"
	"github.com/rs/zerolog"
)

var ErrEmbedded = errors.New("hotreload: embedded content cannot change")

// Reloadable is an asset built from one or more content files.
type Reloadable interface {
	// Sources returns content-relative paths of the files the asset reads.
	Sources() []string
	Reload() error
}

// Watcher is a component that reloads registered assets whose files
// changed since the previous frame.
type Watcher struct {
	game.Base
	Logger game.Service[zerolog.Logger]

	source  content.Source
	watcher *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	once    sync.Once

	assets  []Reloadable
	watched map[string]bool
	reloads int
}

// New creates a watcher over on-disk content.
func New(source content.Source) (*Watcher, error) {
	if !source.OnDisk() {
		return nil, ErrEmbedded
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	return &Watcher{
		source:  source,
		watcher: fsw,
		changes: make(chan string, 64),
		done:    make(chan struct{}),
		watched: make(map[string]bool),
	}, nil
}

// Watch registers an asset and starts watching the directories holding
// its sources. Directories are watched rather than files so editors that
// replace files on save are still seen.
func (w *Watcher) Watch(asset Reloadable) error {
	for _, name := range asset.Sources() {
		dir := filepath.Dir(w.source.Path(name))
		if w.watched[dir] {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.watched[dir] = true
	}
	w.assets = append(w.assets, asset)
	return nil
}

// Initialize starts the event pump.
func (w *Watcher) Initialize() error {
	go w.pump(w.Logger.Get())
	return nil
}

func (w *Watcher) pump(log zerolog.Logger) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.changes <- filepath.Clean(event.Name):
			case <-w.done:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("file watcher error")
		}
	}
}

// Update reloads every asset that reads a file changed since the last
// frame. Each asset is reloaded at most once per frame.
func (w *Watcher) Update(gametime.GameTime) {
	changed := make(map[string]bool)
	for drained := false; !drained; {
		select {
		case name := <-w.changes:
			changed[name] = true
		default:
			drained = true
		}
	}
	if len(changed) == 0 {
		return
	}

	log := w.Logger.Get()
	for _, asset := range w.assets {
		if !w.uses(asset, changed) {
			continue
		}
		if err := asset.Reload(); err != nil {
			log.Error().Err(err).Strs("sources", asset.Sources()).Msg("reload failed, keeping previous version")
			continue
		}
		w.reloads++
		log.Info().Strs("sources", asset.Sources()).Msg("asset reloaded")
	}
}

func (w *Watcher) uses(asset Reloadable, changed map[string]bool) bool {
	for _, name := range asset.Sources() {
		if changed[filepath.Clean(w.source.Path(name))] {
			return true
		}
	}
	return false
}

// Reloads returns the number of successful reloads.
func (w *Watcher) Reloads() int { return w.reloads }

// Close stops the event pump and releases the OS watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}
