package trackbar

import (
	"image"
	"sync"
)

const ClassName = "trackbar"

// Control type registration, done once per process.
type Class struct {
	Name string
	New  func(host Host, bounds image.Rectangle, opt Options) *Trackbar
}

var registry struct {
	sync.Mutex
	registered bool
	class      *Class
}

// Idempotent. Returns the registered class and whether this call did the
// registration.
func RegisterControlType() (*Class, bool) {
	registry.Lock()
	defer registry.Unlock()
	if registry.registered {
		return registry.class, false
	}
	registry.class = &Class{Name: ClassName, New: New}
	registry.registered = true
	return registry.class, true
}

func LookupControlType(name string) (*Class, bool) {
	registry.Lock()
	defer registry.Unlock()
	if !registry.registered || name != registry.class.Name {
		return nil, false
	}
	return registry.class, true
}

// Returns false if it was not registered.
func UnregisterControlType() bool {
	registry.Lock()
	defer registry.Unlock()
	if !registry.registered {
		return false
	}
	registry.registered = false
	registry.class = nil
	return true
}
