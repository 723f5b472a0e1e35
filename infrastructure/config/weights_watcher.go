package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	domaincfg "accessengine-backend/domain/config"
)

// weightsFile is the on-disk shape of the scoring weight profile
type weightsFile struct {
	Weights domaincfg.ScoringWeights `yaml:"weights"`
}

// WeightsWatcher serves the live scoring weight profile and hot-reloads
// it when the backing file changes. Invalid profiles are rejected and
// the previous weights keep serving, so a bad edit never breaks scoring.
type WeightsWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	done     chan struct{}
	closeOne sync.Once

	mu       sync.RWMutex
	current  domaincfg.ScoringWeights
	onChange []func(domaincfg.ScoringWeights)
}

// NewWeightsWatcher creates a watcher for the given profile file. An
// empty path serves the default weights with no file watching.
func NewWeightsWatcher(path string, logger *zap.Logger) (*WeightsWatcher, error) {
	w := &WeightsWatcher{
		path:    path,
		logger:  logger,
		done:    make(chan struct{}),
		current: domaincfg.DefaultScoringWeights(),
	}

	if path == "" {
		return w, nil
	}

	if err := w.load(); err != nil {
		w.logger.Warn("Failed to load weight profile, using defaults",
			zap.String("path", path),
			zap.Error(err),
		)
	}

	return w, nil
}

// Current returns the live weight profile
func (w *WeightsWatcher) Current() domaincfg.ScoringWeights {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnChange registers a callback invoked after a successful reload.
// Callbacks run on the watch goroutine and should hand off heavy work.
func (w *WeightsWatcher) OnChange(fn func(domaincfg.ScoringWeights)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, fn)
}

// Start begins watching the profile file for changes. It returns
// immediately; watching stops when ctx is cancelled or Close is called.
func (w *WeightsWatcher) Start(ctx context.Context) error {
	if w.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory: editors replace files by rename, which drops
	// a watch set on the file itself
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w.watcher = watcher
	go w.run(ctx)

	w.logger.Info("Watching weight profile", zap.String("path", w.path))
	return nil
}

func (w *WeightsWatcher) run(ctx context.Context) {
	defer w.watcher.Close()

	target := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := w.load(); err != nil {
				w.logger.Warn("Weight profile reload rejected",
					zap.String("path", w.path),
					zap.Error(err),
				)
				continue
			}
			w.notify()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Weight profile watch error", zap.Error(err))
		}
	}
}

// load reads, validates, and swaps in the profile
func (w *WeightsWatcher) load() error {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return err
	}

	var file weightsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse weight profile: %w", err)
	}
	if err := file.Weights.Validate(); err != nil {
		return err
	}

	w.mu.Lock()
	w.current = file.Weights
	w.mu.Unlock()

	w.logger.Info("Weight profile loaded",
		zap.String("path", w.path),
		zap.Float64("proximity", file.Weights.Proximity),
		zap.Float64("relationship", file.Weights.Relationship),
		zap.Float64("contactability", file.Weights.Contactability),
		zap.Float64("recency", file.Weights.Recency),
	)
	return nil
}

func (w *WeightsWatcher) notify() {
	w.mu.RLock()
	callbacks := make([]func(domaincfg.ScoringWeights), len(w.onChange))
	copy(callbacks, w.onChange)
	weights := w.current
	w.mu.RUnlock()

	for _, fn := range callbacks {
		fn(weights)
	}
}

// Close stops the watcher
func (w *WeightsWatcher) Close() error {
	w.closeOne.Do(func() { close(w.done) })
	return nil
}

// StaticWeights serves a fixed weight profile, used where no profile
// file exists such as Lambda handlers
type StaticWeights struct {
	weights domaincfg.ScoringWeights
}

// NewStaticWeights creates a fixed weight provider
func NewStaticWeights(weights domaincfg.ScoringWeights) *StaticWeights {
	return &StaticWeights{weights: weights}
}

// Current returns the fixed weight profile
func (s *StaticWeights) Current() domaincfg.ScoringWeights {
	return s.weights
}
