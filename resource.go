package brindle

import "net/http"

// Action names one of the seven conventional REST actions a resource or
// resource collection can expose (spec.md §4.6).
type Action string

const (
	ActionIndex  Action = "index"
	ActionShow   Action = "show"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionEdit   Action = "edit"
	ActionNew    Action = "new"
)

// actionRoute is one row of a resource action table: the sub-pattern and
// HTTP method an action expands to, joined onto the resource's base name.
type actionRoute struct {
	action Action
	sub    string
	method string
}

// singularActions is the fixed table for Resource: a resource addressed
// without an identifier in its own path (e.g. a caller's own profile).
var singularActions = []actionRoute{
	{ActionShow, "", http.MethodGet},
	{ActionCreate, "", http.MethodPost},
	{ActionUpdate, "", http.MethodPatch},
	{ActionUpdate, "", http.MethodPut},
	{ActionDelete, "", http.MethodDelete},
	{ActionEdit, "edit", http.MethodGet},
	{ActionNew, "new", http.MethodGet},
}

// collectionActions is the fixed table for Resources: a collection of
// resources addressed by a ":id" path parameter.
var collectionActions = []actionRoute{
	{ActionIndex, "", http.MethodGet},
	{ActionCreate, "", http.MethodPost},
	{ActionNew, "new", http.MethodGet},
	{ActionShow, ":id", http.MethodGet},
	{ActionUpdate, ":id", http.MethodPatch},
	{ActionUpdate, ":id", http.MethodPut},
	{ActionDelete, ":id", http.MethodDelete},
	{ActionEdit, ":id/edit", http.MethodGet},
}

// filter holds the accumulated effect of Only/Except options.
type filter struct {
	only   map[Action]bool
	except map[Action]bool
}

// Option narrows the set of actions a Resource/Resources call registers.
// Grounded on dmitrymomot-foundation/mux_options.go's generic functional
// option pattern, retargeted from configuring a mux to filtering an action
// table.
type Option func(*filter)

// Only retains exactly the listed actions, dropping every other action in
// the table. If both Only and Except are given, Only is applied first.
func Only(actions ...Action) Option {
	return func(f *filter) {
		f.only = toSet(actions)
	}
}

// Except removes the listed actions from the table (after Only, if also given).
func Except(actions ...Action) Option {
	return func(f *filter) {
		f.except = toSet(actions)
	}
}

func toSet(actions []Action) map[Action]bool {
	set := make(map[Action]bool, len(actions))
	for _, a := range actions {
		set[a] = true
	}
	return set
}

// Resource expands the singular resource action table under g, registering
// one route per action present in handlers. Actions missing from handlers
// are silently skipped, so a caller need only supply the actions it wants
// to expose.
func Resource[T any](g *Group[T], name string, handlers map[Action]T, opts ...Option) error {
	return expand(g, name, singularActions, handlers, opts)
}

// Resources expands the collection resource action table under g.
func Resources[T any](g *Group[T], name string, handlers map[Action]T, opts ...Option) error {
	return expand(g, name, collectionActions, handlers, opts)
}

func expand[T any](g *Group[T], name string, table []actionRoute, handlers map[Action]T, opts []Option) error {
	f := &filter{}
	for _, opt := range opts {
		opt(f)
	}

	for _, row := range table {
		if f.only != nil && !f.only[row.action] {
			continue
		}
		if f.except != nil && f.except[row.action] {
			continue
		}
		value, ok := handlers[row.action]
		if !ok {
			continue
		}
		if err := g.register(row.method, joinPath(name, row.sub), value); err != nil {
			return err
		}
	}
	return nil
}
