package adapters

import (
	"path"
	"strings"

	"twala_backend/internal/feature/onboarding/usecase"
)

// DefaultAuthRoutes are the pages the gate never interrupts.
var DefaultAuthRoutes = []string{"/login", "/signup"}

type routeClassifier struct {
	prefixes []string
}

var _ usecase.RouteClassifier = (*routeClassifier)(nil)

// NewRouteClassifier treats each prefix and its sub-paths as an auth route.
// With no prefixes DefaultAuthRoutes is used.
func NewRouteClassifier(prefixes ...string) *routeClassifier {
	if len(prefixes) == 0 {
		prefixes = DefaultAuthRoutes
	}
	clean := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		clean = append(clean, path.Clean("/"+strings.TrimSpace(p)))
	}
	return &routeClassifier{prefixes: clean}
}

// IsAuthRoute ignores the query string and trailing slashes: "/login/?next=/x" is an auth route,
// "/loginhelp" is not.
func (c *routeClassifier) IsAuthRoute(route string) bool {
	if i := strings.IndexAny(route, "?#"); i >= 0 {
		route = route[:i]
	}
	route = path.Clean("/" + route)
	for _, p := range c.prefixes {
		if route == p || strings.HasPrefix(route, p+"/") {
			return true
		}
	}
	return false
}
