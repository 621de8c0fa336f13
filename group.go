package brindle

import (
	"net/http"
	"strings"
)

// Group is a scoped view of a Router under a path prefix: accumulated
// registrations are joined onto prefix before reaching the underlying
// trees, which it shares directly with its parent (and, transitively, with
// Router itself). Because the trees are shared rather than copied, routes
// registered through a Group are visible on the parent immediately, and the
// Group's prefix never leaks back onto the parent's own registrations.
//
// Grounded on the teacher's Group/NewGroup (group.go) and the prefix-join
// performed in route.go's newRoute, generalized to the trim-then-join rule
// spec.md §4.5 requires.
type Group[T any] struct {
	router     *Router[T]
	prefix     string
	middleware []T
}

// NewGroup forks a new scoped view rooted at the join of g's prefix and
// prefix. The returned Group shares g's router (and therefore its trees);
// build, if non-nil, is invoked with the new scope so nested registrations
// can be expressed inline.
//
// Named NewGroup rather than Group because Router embeds an anonymous
// Group field: a promoted method sharing that name would be shadowed by
// the field itself and never be callable as r.Group(...).
func (g *Group[T]) NewGroup(prefix string, build func(*Group[T])) *Group[T] {
	child := &Group[T]{
		router:     g.router,
		prefix:     joinPath(g.prefix, prefix),
		middleware: append([]T(nil), g.middleware...),
	}
	if build != nil {
		build(child)
	}
	return child
}

// Use appends value to the group's middleware list. The list is carried
// into child groups by copy and has no effect on Find's match results; it
// is stored for a host to consume separately (spec.md §3, §4.4).
func (g *Group[T]) Use(value T) {
	g.middleware = append(g.middleware, value)
}

// Middleware returns the group's accumulated middleware list.
func (g *Group[T]) Middleware() []T {
	return g.middleware
}

func (g *Group[T]) register(method, pattern string, value T) error {
	return g.router.Register(method, joinPath(g.prefix, pattern), value)
}

// GET registers value for pattern under the GET method, within this group's prefix.
func (g *Group[T]) GET(pattern string, value T) error {
	return g.register(http.MethodGet, pattern, value)
}

// POST registers value for pattern under the POST method, within this group's prefix.
func (g *Group[T]) POST(pattern string, value T) error {
	return g.register(http.MethodPost, pattern, value)
}

// PUT registers value for pattern under the PUT method, within this group's prefix.
func (g *Group[T]) PUT(pattern string, value T) error {
	return g.register(http.MethodPut, pattern, value)
}

// PATCH registers value for pattern under the PATCH method, within this group's prefix.
func (g *Group[T]) PATCH(pattern string, value T) error {
	return g.register(http.MethodPatch, pattern, value)
}

// DELETE registers value for pattern under the DELETE method, within this group's prefix.
func (g *Group[T]) DELETE(pattern string, value T) error {
	return g.register(http.MethodDelete, pattern, value)
}

// HEAD registers value for pattern under the HEAD method, within this group's prefix.
func (g *Group[T]) HEAD(pattern string, value T) error {
	return g.register(http.MethodHead, pattern, value)
}

// OPTIONS registers value for pattern under the OPTIONS method, within this group's prefix.
func (g *Group[T]) OPTIONS(pattern string, value T) error {
	return g.register(http.MethodOptions, pattern, value)
}

// CONNECT registers value for pattern under the CONNECT method, within this group's prefix.
func (g *Group[T]) CONNECT(pattern string, value T) error {
	return g.register(http.MethodConnect, pattern, value)
}

// TRACE registers value for pattern under the TRACE method, within this group's prefix.
func (g *Group[T]) TRACE(pattern string, value T) error {
	return g.register(http.MethodTrace, pattern, value)
}

var anyMethods = [...]string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
	http.MethodConnect,
	http.MethodTrace,
}

// ANY registers the same value under all nine conventional HTTP methods.
func (g *Group[T]) ANY(pattern string, value T) error {
	for _, method := range anyMethods {
		if err := g.register(method, pattern, value); err != nil {
			return err
		}
	}
	return nil
}

// joinPath implements the grouping layer's path-joining rule (spec.md
// §4.5): if b is empty the result is a; otherwise a's trailing slashes and
// b's leading slashes are stripped and the two are joined with exactly one
// slash.
func joinPath(a, b string) string {
	if b == "" {
		return a
	}
	a = strings.TrimRight(a, "/")
	b = strings.TrimLeft(b, "/")
	if a == "" {
		return "/" + b
	}
	return a + "/" + b
}
