package registry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/record"
)

// Lookup order when several files share a name.
var dirExtensions = []string{".yaml", ".yml", ".json"}

// DirStore reads schemas from files named <name>.yaml, <name>.yml or
// <name>.json in one directory. Writes return ErrReadOnly.
type DirStore struct {
	dir      string
	debounce time.Duration
	log      *slog.Logger
}

// DirOption configures a DirStore.
type DirOption func(*DirStore)

// WithDebounce sets how long Watch waits for a file to settle before
// reporting it. Defaults to 250ms.
func WithDebounce(d time.Duration) DirOption {
	return func(s *DirStore) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithDirLogger sets the logger used by Watch.
func WithDirLogger(l *slog.Logger) DirOption {
	return func(s *DirStore) {
		if l != nil {
			s.log = l
		}
	}
}

// NewDirStore returns a store over dir, which must exist.
func NewDirStore(dir string, opts ...DirOption) (*DirStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrStore, dir)
	}
	s := &DirStore{dir: dir, debounce: 250 * time.Millisecond, log: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the watched directory.
func (s *DirStore) Dir() string { return s.dir }

func (s *DirStore) Get(_ context.Context, name string) (*record.Schema, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	for _, ext := range dirExtensions {
		schema, err := record.LoadFile(filepath.Join(s.dir, name+ext))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errors.Join(ErrCorruptSchema, err)
		}
		return schema, nil
	}
	return nil, notFound(name)
}

func (s *DirStore) Put(context.Context, string, *record.Schema) error {
	return ErrReadOnly
}

func (s *DirStore) Delete(context.Context, string) error {
	return ErrReadOnly
}

// List returns the names of schema files in the directory. Files whose
// base name is not a valid schema name are skipped.
func (s *DirStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name, ok := schemaName(e.Name()); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

// schemaName maps a file name to the schema name it defines. Extensions
// match case-sensitively, as Get looks files up by exact name.
func schemaName(file string) (string, bool) {
	ext := filepath.Ext(file)
	if !slices.Contains(dirExtensions, ext) {
		return "", false
	}
	name := strings.TrimSuffix(file, ext)
	return name, ValidName(name)
}

// Watch reports schema files that are created, written, removed or renamed
// until ctx is cancelled. Bursts of events for one file are collapsed into
// a single call after the debounce interval. onChange may be called from
// several goroutines.
func (s *DirStore) Watch(ctx context.Context, onChange func(name string)) error {
	if onChange == nil {
		return errors.New("registry: nil watch callback")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Join(ErrStore, err)
	}
	if err := watcher.Add(s.dir); err != nil {
		_ = watcher.Close()
		return errors.Join(ErrStore, err)
	}

	log := s.log.With(logger.Component("registry.watch"), slog.String("dir", s.dir))
	log.InfoContext(ctx, "watching schema directory")

	go func() {
		defer watcher.Close()

		var mu sync.Mutex
		timers := make(map[string]*time.Timer)
		defer func() {
			mu.Lock()
			for _, t := range timers {
				t.Stop()
			}
			mu.Unlock()
		}()

		const relevant = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&relevant == 0 {
					continue
				}
				name, ok := schemaName(filepath.Base(event.Name))
				if !ok {
					continue
				}
				mu.Lock()
				if t, exists := timers[name]; exists {
					t.Stop()
				}
				timers[name] = time.AfterFunc(s.debounce, func() {
					mu.Lock()
					delete(timers, name)
					mu.Unlock()
					if ctx.Err() != nil {
						return
					}
					log.DebugContext(ctx, "schema file changed", logger.Schema(name))
					onChange(name)
				})
				mu.Unlock()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WarnContext(ctx, "schema watcher error", logger.Error(err))
			}
		}
	}()
	return nil
}
