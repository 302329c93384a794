package selection

import "sync"

// MemoryScene is a Scene backed by a map, for hosts without a renderer.
type MemoryScene struct {
	mu      sync.RWMutex
	objects map[ObjectID]Appearance
}

// NewMemoryScene creates an empty scene.
func NewMemoryScene() *MemoryScene {
	return &MemoryScene{objects: make(map[ObjectID]Appearance)}
}

// Add registers id with its initial appearance.
func (s *MemoryScene) Add(id ObjectID, a Appearance) {
	s.SetAppearance(id, a)
}

func (s *MemoryScene) Appearance(id ObjectID) (Appearance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.objects[id]
	return a, ok
}

func (s *MemoryScene) SetAppearance(id ObjectID, a Appearance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[id] = a
}
