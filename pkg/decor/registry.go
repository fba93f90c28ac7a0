package decor

import "strings"

// Blog is one entry in the host-supplied blog registry.
type Blog struct {
	ID   string
	Name string
}

// Registry is the ordered list of blogs the engine validates pseudo-post
// opener lines against. The engine treats it as an opaque read-only lookup
// table; it is injected at construction and never mutated.
type Registry []Blog

// Lookup returns the blog whose name matches (case-insensitive).
func (r Registry) Lookup(name string) (Blog, bool) {
	for _, b := range r {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return Blog{}, false
}

// Names returns the blog names in registry order.
func (r Registry) Names() []string {
	names := make([]string, len(r))
	for i, b := range r {
		names[i] = b.Name
	}
	return names
}
