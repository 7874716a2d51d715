package fswatcher

import (
	"path/filepath"
	"strings"

	fsnotify "github.com/fsnotify/fsnotify"
)

type Event struct {
	Op   Op
	Name string
}

func (ev *Event) String() string {
	return ev.Op.String() + ": " + ev.Name
}

//----------

const (
	Attrib Op = 1 << iota
	Create
	Modify // write, truncate
	Remove
	Rename

	AllOps Op = Attrib | Create | Modify | Remove | Rename
)

type Op uint16

func (op Op) HasAny(op2 Op) bool { return op&op2 != 0 }
func (op *Op) Add(op2 Op)        { *op |= op2 }
func (op *Op) Remove(op2 Op)     { *op &^= op2 }

func (op Op) String() string {
	names := []string{"attrib", "create", "modify", "remove", "rename"}
	u := []string{}
	for i, n := range names {
		if op.HasAny(1 << i) {
			u = append(u, n)
		}
	}
	return strings.Join(u, "|")
}

//----------

// Watches individual files. The parent directory is watched so that files
// replaced by editors (rename over) keep being reported.
type FileWatcher struct {
	w      *fsnotify.Watcher
	files  map[string]bool
	events chan interface{} // *Event or error
	OpMask Op
}

func NewFileWatcher() (*FileWatcher, error) {
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &FileWatcher{
		w:      w0,
		files:  map[string]bool{},
		events: make(chan interface{}),
		OpMask: Create | Modify | Rename,
	}
	go w.eventLoop()
	return w, nil
}

func (w *FileWatcher) Close() error {
	return w.w.Close()
}

// Not safe to call concurrently with the events being read.
func (w *FileWatcher) Add(filename string) error {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := w.w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	w.files[abs] = true
	return nil
}

func (w *FileWatcher) Events() <-chan interface{} {
	return w.events
}

//----------

func (w *FileWatcher) eventLoop() {
	defer close(w.events)
	for {
		select {
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.events <- err
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			name := filepath.Clean(ev.Name)
			if !w.files[name] {
				continue
			}
			var op Op
			if ev.Op&fsnotify.Create > 0 {
				op.Add(Create)
			}
			if ev.Op&fsnotify.Write > 0 {
				op.Add(Modify)
			}
			if ev.Op&fsnotify.Remove > 0 {
				op.Add(Remove)
			}
			if ev.Op&fsnotify.Rename > 0 {
				op.Add(Rename)
			}
			if ev.Op&fsnotify.Chmod > 0 {
				op.Add(Attrib)
			}
			if op&w.OpMask > 0 {
				w.events <- &Event{Op: op, Name: name}
			}
		}
	}
}
