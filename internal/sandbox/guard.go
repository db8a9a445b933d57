package sandbox

import "sync"

// Guard tracks the identity of the latest generation so dependent work
// (speech synthesis started for an earlier response) can tell it has been
// superseded. In-flight calls are not cancelled; their results are simply
// dropped on arrival.
type Guard struct {
	mu      sync.Mutex
	current string
}

// Begin records id as the active generation and returns it.
func (g *Guard) Begin(id string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = id
	return id
}

// Current reports whether id is still the active generation.
func (g *Guard) Current(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current == id
}
