package deck

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// SettleDelay lets editors finish atomic saves before the deck is reread.
const SettleDelay = 100 * time.Millisecond

// ChangedMsg reports that the watched deck changed on disk.
type ChangedMsg struct {
	Path string
}

// Watcher reports changes to a deck file or directory.
type Watcher struct {
	path string
	// file is set when watching a single file through its directory.
	file string
	w    *fsnotify.Watcher
	log  *slog.Logger
}

// Watch starts watching path. A single file is watched through its parent
// directory so that rename-on-save still triggers.
func Watch(path string, log *slog.Logger) (*Watcher, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	wt := &Watcher{path: path, w: fw, log: log}
	target := path
	if !info.IsDir() {
		wt.file = filepath.Clean(path)
		target = filepath.Dir(wt.file)
	}
	if err := fw.Add(target); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch deck: %w", err)
	}
	return wt, nil
}

// Next returns a command that blocks until the next relevant change. The
// caller re-issues Next after handling each ChangedMsg.
func (wt *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-wt.w.Events:
				if !ok {
					return nil
				}
				if !wt.relevant(event) {
					continue
				}
				time.Sleep(SettleDelay)
				wt.drain()
				return ChangedMsg{Path: wt.path}
			case err, ok := <-wt.w.Errors:
				if !ok {
					return nil
				}
				if wt.log != nil {
					wt.log.Warn("deck watcher", "err", err)
				}
			}
		}
	}
}

func (wt *Watcher) relevant(e fsnotify.Event) bool {
	if !e.Op.Has(fsnotify.Write) && !e.Op.Has(fsnotify.Create) &&
		!e.Op.Has(fsnotify.Remove) && !e.Op.Has(fsnotify.Rename) {
		return false
	}
	if wt.file != "" {
		return filepath.Clean(e.Name) == wt.file
	}
	return isSlideFile(filepath.Base(e.Name))
}

// drain drops events queued during the settle delay.
func (wt *Watcher) drain() {
	for {
		select {
		case _, ok := <-wt.w.Events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// Close stops watching. Pending Next commands return nil.
func (wt *Watcher) Close() error {
	return wt.w.Close()
}
