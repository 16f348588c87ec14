package relationship

import "sync"

// pairGuard tracks which viewer/target pairs have a mutation in flight, so a
// double-clicked action cannot reach the remote store twice.
type pairGuard struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

func newPairGuard() *pairGuard {
	return &pairGuard{pending: make(map[string]struct{})}
}

// pairKey canonicalizes an unordered user pair to a single key.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// acquire reserves the key. It returns false when an operation for the same
// key is already pending.
func (g *pairGuard) acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.pending[key]; exists {
		return false
	}
	g.pending[key] = struct{}{}
	return true
}

// release frees the key once the operation has resolved, success or failure.
func (g *pairGuard) release(key string) {
	g.mu.Lock()
	delete(g.pending, key)
	g.mu.Unlock()
}
