package server

import (
	"net/http"
	"sort"
	"strings"
)

// BasicRouter dispatches dashboard requests by path and method.
//
// Each path carries a small method table so the index page and the form
// endpoints hanging off it can share prefixes. A request for a known path
// with an unregistered method gets a 405 with the Allow header filled in.
type BasicRouter struct {
	mux         *http.ServeMux
	routes      map[string]methodTable
	middlewares []Middleware
}

type methodTable map[string]http.Handler

// NewBasicRouter creates an empty [BasicRouter].
func NewBasicRouter() *BasicRouter {
	return &BasicRouter{
		mux:    http.NewServeMux(),
		routes: map[string]methodTable{},
	}
}

// Use adds [Middleware] to the stack. Handlers registered afterwards are
// wrapped with it; register middleware before routes.
func (r *BasicRouter) Use(middleware ...Middleware) {
	r.middlewares = append(r.middlewares, middleware...)
}

// Handle registers a handler for the given method and path.
//
// Registering a second method on an already known path extends that path's
// method table instead of replacing it.
func (r *BasicRouter) Handle(method, path string, handler http.Handler) {
	table, ok := r.routes[path]
	if !ok {
		table = methodTable{}
		r.routes[path] = table
		r.mux.Handle(path, table)
	}

	table[strings.ToUpper(method)] = r.apply(handler)
}

// ServeHTTP implements [http.Handler] for the entire router.
func (r *BasicRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// ServeHTTP picks the handler for the request method, answering 405 with
// the registered methods in the Allow header when there is none.
func (t methodTable) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if handler, ok := t[strings.ToUpper(req.Method)]; ok {
		handler.ServeHTTP(w, req)
		return
	}

	allowed := make([]string, 0, len(t))
	for method := range t {
		allowed = append(allowed, method)
	}
	sort.Strings(allowed)

	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
}

// apply wraps a handler with the middleware stack, last added wrapping first.
func (r *BasicRouter) apply(handler http.Handler) http.Handler {
	wrapped := handler

	for i := len(r.middlewares) - 1; i >= 0; i-- {
		wrapped = r.middlewares[i](wrapped)
	}

	return wrapped
}
