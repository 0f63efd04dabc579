package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/mcoot/drophunt/internal/model"
)

// DefaultDebounce is how long Watch waits after the last change event
// before reloading
const DefaultDebounce = 250 * time.Millisecond

// document is the on-disk catalog layout. Files may also hold a bare list.
type document struct {
	Products []model.CatalogRecord `json:"products" yaml:"products"`
}

// File is a Provider backed by a YAML or JSON file.
// Files ending in .json are decoded as JSON; anything else as YAML.
type File struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.RWMutex
	records []model.CatalogRecord
}

var _ Provider = (*File)(nil)

// NewFile loads the catalog at path
func NewFile(path string, logger *slog.Logger) (*File, error) {
	f := &File{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		logger:   logger,
	}
	if err := f.Reload(); err != nil {
		return nil, err
	}
	return f, nil
}

// SetDebounce overrides the reload debounce interval
func (f *File) SetDebounce(d time.Duration) {
	f.debounce = d
}

// Path returns the catalog file path
func (f *File) Path() string {
	return f.path
}

// Records returns the most recently loaded records
func (f *File) Records(ctx context.Context) ([]model.CatalogRecord, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]model.CatalogRecord(nil), f.records...), nil
}

// Reload re-reads the file. On error the previous records are kept.
func (f *File) Reload() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}

	records, err := decode(f.path, data)
	if err != nil {
		return fmt.Errorf("decode catalog %s: %w", f.path, err)
	}

	f.mu.Lock()
	f.records = records
	f.mu.Unlock()

	f.logger.Info("catalog loaded",
		slog.String("path", f.path),
		slog.Int("records", len(records)),
	)
	return nil
}

func decode(path string, data []byte) ([]model.CatalogRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	isList := trimmed[0] == '[' || trimmed[0] == '-'

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if isList {
			var records []model.CatalogRecord
			err := json.Unmarshal(trimmed, &records)
			return records, err
		}
		var doc document
		err := json.Unmarshal(trimmed, &doc)
		return doc.Products, err
	}

	if isList {
		var records []model.CatalogRecord
		err := yaml.Unmarshal(trimmed, &records)
		return records, err
	}
	var doc document
	err := yaml.Unmarshal(trimmed, &doc)
	return doc.Products, err
}

// Watch reloads the catalog whenever the file changes, calling onChange after
// each successful reload. It blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file so that editors which
// replace the file by rename are picked up.
func (f *File) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(f.path)); err != nil {
		return fmt.Errorf("watch catalog dir: %w", err)
	}

	f.logger.Info("watching catalog", slog.String("path", f.path))

	timer := time.NewTimer(f.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != f.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(f.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			f.logger.Error("catalog watcher error", slog.String("error", err.Error()))

		case <-timer.C:
			if err := f.Reload(); err != nil {
				f.logger.Error("catalog reload failed",
					slog.String("path", f.path),
					slog.String("error", err.Error()),
				)
				continue
			}
			if onChange != nil {
				onChange()
			}
		}
	}
}
