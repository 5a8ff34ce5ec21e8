package jsonstore

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DocumentWatcher watches a persisted document file and notifies listeners
// when it is rewritten, so a serving process can rebuild its in-memory
// state without restarting.
type DocumentWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onChange []func(path string)
	logger   *zap.Logger
	stopCh   chan struct{}
}

// NewDocumentWatcher creates a watcher for the document at path.
func NewDocumentWatcher(path string, logger *zap.Logger) (*DocumentWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	// Watch the directory rather than the file itself so atomic saves
	// (write to temp, rename over) are still observed.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch document dir %s: %w", dir, err)
	}

	return &DocumentWatcher{
		path:    path,
		watcher: watcher,
		logger:  logger,
		stopCh:  make(chan struct{}),
	}, nil
}

// OnChange registers a handler invoked after the document changes.
// Handlers must be registered before Start.
func (w *DocumentWatcher) OnChange(handler func(path string)) {
	w.onChange = append(w.onChange, handler)
}

// Start begins watching for document changes
func (w *DocumentWatcher) Start() {
	go w.watchLoop()
	w.logger.Info("Document watcher started", zap.String("path", w.path))
}

// Stop stops watching for document changes
func (w *DocumentWatcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
	w.logger.Info("Document watcher stopped")
}

// watchLoop is the main loop that watches for file changes
func (w *DocumentWatcher) watchLoop() {
	// Debounce timer to avoid multiple reloads per save
	var debounceTimer *time.Timer
	debounceDuration := 100 * time.Millisecond

	for {
		select {
		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}

				debounceTimer = time.AfterFunc(debounceDuration, func() {
					w.handleChange()
				})
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", zap.Error(err))
		}
	}
}

func (w *DocumentWatcher) handleChange() {
	w.logger.Info("Document changed", zap.String("path", w.path))
	for _, handler := range w.onChange {
		handler(w.path)
	}
}
