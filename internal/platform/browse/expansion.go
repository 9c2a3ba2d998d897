package browse

import (
	"sort"
	"sync"
)

// Expansion tracks which records currently show their detail. State is keyed
// by record identity and is independent of filtering, sorting and paging.
type Expansion struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

func NewExpansion() *Expansion {
	return &Expansion{ids: make(map[string]struct{})}
}

// Toggle flips the state of id and returns the new state.
func (e *Expansion) Toggle(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.ids[id]; ok {
		delete(e.ids, id)
		return false
	}
	e.ids[id] = struct{}{}
	return true
}

// IsExpanded reports whether id is expanded. A nil Expansion has nothing expanded.
func (e *Expansion) IsExpanded(id string) bool {
	if e == nil {
		return false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.ids[id]
	return ok
}

// Expanded returns the expanded identifiers in sorted order.
func (e *Expansion) Expanded() []string {
	if e == nil {
		return nil
	}
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]string, 0, len(e.ids))
	for id := range e.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

type expansionKey struct {
	subject string
	view    string
}

// ExpansionRegistry holds one Expansion per (session subject, view) pair.
type ExpansionRegistry struct {
	mu   sync.Mutex
	sets map[expansionKey]*Expansion
}

func NewExpansionRegistry() *ExpansionRegistry {
	return &ExpansionRegistry{sets: make(map[expansionKey]*Expansion)}
}

// For returns the expansion state of subject in view, creating it on first use.
func (r *ExpansionRegistry) For(subject, view string) *Expansion {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := expansionKey{subject: subject, view: view}
	exp, ok := r.sets[k]
	if !ok {
		exp = NewExpansion()
		r.sets[k] = exp
	}
	return exp
}

// Forget drops every expansion state held for subject.
func (r *ExpansionRegistry) Forget(subject string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k := range r.sets {
		if k.subject == subject {
			delete(r.sets, k)
		}
	}
}
