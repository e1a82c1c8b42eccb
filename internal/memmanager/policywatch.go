package memmanager

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// namedPolicy maps the policy names accepted by a policy file to the
// PolicyFunc they select. "nextfit" gets a fresh cursor each time it is
// selected, so switching away and back to it restarts the scan.
func namedPolicy(name string) PolicyFunc {
	switch strings.TrimSpace(name) {
	case "bestfit":
		return BestFit
	case "worstfit":
		return WorstFit
	case "firstfit":
		return FirstFit
	case "nextfit":
		return NewNextFitCursor().Policy()
	default:
		return nil
	}
}

// PolicyWatcher switches a Manager's placement policy whenever a named
// policy file is written, without the caller having to wire up its own
// filesystem watch loop.
type PolicyWatcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// WatchPolicyFile starts watching path's parent directory and calls
// m.SetAllocator whenever path is written with a recognized policy
// name ("bestfit", "worstfit", "firstfit", "nextfit"). Unrecognized
// content is ignored; setPolicy itself remains synchronous and takes
// effect on the next Allocate (SPEC_FULL.md §4.5 addendum).
func WatchPolicyFile(path string, m *Manager) (*PolicyWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &AllocatorError{Code: ErrIO, Message: "create watcher: " + err.Error()}
	}

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()

		return nil, &AllocatorError{Code: ErrIO, Message: "watch " + dir + ": " + err.Error()}
	}

	pw := &PolicyWatcher{watcher: w, done: make(chan struct{})}

	go pw.loop(path, m)

	return pw, nil
}

func (pw *PolicyWatcher) loop(path string, m *Manager) {
	for {
		select {
		case <-pw.done:
			return
		case ev, ok := <-pw.watcher.Events:
			if !ok {
				return
			}

			if ev.Name != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			content, err := os.ReadFile(path)
			if err != nil {
				continue
			}

			if p := namedPolicy(string(content)); p != nil {
				m.SetAllocator(p)
			}
		case _, ok := <-pw.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close stops the watch loop and releases the underlying watcher.
func (pw *PolicyWatcher) Close() error {
	close(pw.done)

	return pw.watcher.Close()
}
