// Package watch observes a store's directory and reports changes to the
// collection documents. It lets a long-running caller notice edits made
// by other plank invocations without polling.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/plankhq/plank/internal/repo"
)

// Op represents the type of file system operation.
type Op int

const (
	// OpCreate indicates the collection document appeared.
	OpCreate Op = iota
	// OpModify indicates the collection document was rewritten.
	OpModify
	// OpDelete indicates the collection document was removed.
	OpDelete
)

// String returns a human-readable representation of the operation.
func (op Op) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpModify:
		return "modify"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Event represents a change to one collection's document.
type Event struct {
	// Collection is the collection name ("users", "teams", "tasks").
	Collection string
	// Path is the path of the document that changed.
	Path string
	// Op is the operation that occurred.
	Op Op
}

// Watcher watches a storage directory for collection document changes.
// It uses fsnotify for cross-platform file system event monitoring.
type Watcher struct {
	watcher *fsnotify.Watcher
	events  chan Event
	errors  chan error
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// New creates a Watcher. It must be started with Start() before it will
// emit events.
func New() (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	return &Watcher{
		watcher: watcher,
		events:  make(chan Event, 100),
		errors:  make(chan error, 10),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching the storage directory. The directory must exist.
func (w *Watcher) Start(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("watcher already running")
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch storage directory %s: %w", dir, err)
	}

	w.running = true
	w.wg.Add(1)
	go w.processEvents()
	return nil
}

// Stop stops watching and cleans up resources. It blocks until the event
// processing goroutine has exited.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.mu.Unlock()

	close(w.done)

	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}

	w.wg.Wait()

	close(w.events)
	close(w.errors)
	return nil
}

// IsRunning reports whether the watcher has been started and not yet
// stopped.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Events returns the channel that emits collection change notifications.
// It is closed when the watcher is stopped.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel that emits error notifications. It is
// closed when the watcher is stopped.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if converted, ok := convertEvent(event); ok {
				select {
				case w.events <- converted:
				case <-w.done:
					return
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			case <-w.done:
				return
			}
		}
	}
}

// convertEvent converts an fsnotify event to an Event. Returns false for
// events that should be ignored: temp files from in-flight atomic saves,
// unrelated files, and chmod noise.
func convertEvent(event fsnotify.Event) (Event, bool) {
	collection, ok := collectionFor(event.Name)
	if !ok {
		return Event{}, false
	}

	var op Op
	switch {
	case event.Has(fsnotify.Create):
		op = OpCreate
	case event.Has(fsnotify.Write):
		op = OpModify
	case event.Has(fsnotify.Remove):
		op = OpDelete
	case event.Has(fsnotify.Rename):
		// The atomic save renames a temp file over the document; the
		// old name disappearing reads as a delete, the new document
		// triggers its own create.
		op = OpDelete
	default:
		return Event{}, false
	}

	return Event{Collection: collection, Path: event.Name, Op: op}, true
}

// collectionFor maps a file path to its collection name. Only the exact
// document names count; "users.json.tmp-*" and friends are ignored.
func collectionFor(path string) (string, bool) {
	base := filepath.Base(path)
	for _, collection := range []string{repo.UsersCollection, repo.TeamsCollection, repo.TasksCollection} {
		if base == collection+".json" {
			return collection, true
		}
	}
	return "", false
}
