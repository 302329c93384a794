package selection

import (
	"errors"
	"fmt"
	"image/color"
	"sync"
)

var (
	// ErrObjectBusy is returned when another live lease already highlights the object.
	ErrObjectBusy = errors.New("object is highlighted by another selection")
	// ErrLeaseReleased is returned when a released lease is used again.
	ErrLeaseReleased = errors.New("lease already released")
	// ErrUnknownObject is returned when the scene has no such object.
	ErrUnknownObject = errors.New("unknown scene object")
)

// ObjectID identifies one renderable object in a scene.
type ObjectID string

// Appearance is the part of an object's material a selection may change.
type Appearance struct {
	Color    color.RGBA
	Opacity  float64
	Emissive color.RGBA
}

// Scene is implemented by the renderer that owns object appearances.
type Scene interface {
	Appearance(id ObjectID) (Appearance, bool)
	SetAppearance(id ObjectID, a Appearance)
}

// Registry hands out leases over the objects of one scene and makes sure no
// object is highlighted by two leases at once.
type Registry struct {
	mu     sync.Mutex
	scene  Scene
	owners map[ObjectID]*Lease
}

// NewRegistry creates a registry for scene.
func NewRegistry(scene Scene) *Registry {
	return &Registry{
		scene:  scene,
		owners: make(map[ObjectID]*Lease),
	}
}

// Acquire starts a new lease.
func (r *Registry) Acquire() *Lease {
	return &Lease{registry: r}
}

// Owned returns the number of objects currently held by any lease.
func (r *Registry) Owned() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.owners)
}

type backup struct {
	id       ObjectID
	original Appearance
}

// Lease owns the original appearance of every object it highlighted until
// Release puts them back. Scene calls are made while the registry lock is
// held, so a Scene must not call back into the registry.
type Lease struct {
	registry *Registry
	backups  []backup
	released bool
}

// Highlight applies a to object id. The first highlight of an object backs up
// its appearance; later ones only change it.
func (l *Lease) Highlight(id ObjectID, a Appearance) error {
	r := l.registry
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.released {
		return ErrLeaseReleased
	}
	switch owner := r.owners[id]; {
	case owner == l:
		r.scene.SetAppearance(id, a)
		return nil
	case owner != nil:
		return fmt.Errorf("%w: %s", ErrObjectBusy, id)
	}

	original, ok := r.scene.Appearance(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownObject, id)
	}
	l.backups = append(l.backups, backup{id: id, original: original})
	r.owners[id] = l
	r.scene.SetAppearance(id, a)
	return nil
}

// Held returns the objects backed up by this lease, in highlight order.
func (l *Lease) Held() []ObjectID {
	l.registry.mu.Lock()
	defer l.registry.mu.Unlock()
	ids := make([]ObjectID, len(l.backups))
	for i, b := range l.backups {
		ids[i] = b.id
	}
	return ids
}

// Release restores every backed-up appearance, newest first, and frees the
// objects. Calling it again does nothing.
func (l *Lease) Release() {
	r := l.registry
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.released {
		return
	}
	l.released = true
	for i := len(l.backups) - 1; i >= 0; i-- {
		b := l.backups[i]
		r.scene.SetAppearance(b.id, b.original)
		delete(r.owners, b.id)
	}
	l.backups = nil
}

// Released reports whether Release has been called.
func (l *Lease) Released() bool {
	l.registry.mu.Lock()
	defer l.registry.mu.Unlock()
	return l.released
}
