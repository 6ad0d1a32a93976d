package nav

import (
	"log/slog"
	"sync"
)

// Authorizer answers whether a session is active. The session manager
// satisfies it.
type Authorizer interface {
	Authenticated() bool
}

// Machine tracks the current location and history under the central guard
// table. All navigation funnels through resolve, so no caller can land on a
// view the guards would reject.
type Machine struct {
	auth   Authorizer
	logger *slog.Logger

	mu   sync.Mutex
	cur  Location
	hist []Location
}

// NewMachine creates a machine positioned at the authenticated root, or at
// login when no session is active.
func NewMachine(auth Authorizer, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Machine{auth: auth, logger: logger}
	m.cur = resolve(Location{Route: RouteDashboard}, auth.Authenticated())
	return m
}

// Current returns the location that should render.
func (m *Machine) Current() Location {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Auth may have lapsed since the last transition; re-check so a
	// protected view never renders without a session.
	m.cur = resolve(m.cur, m.auth.Authenticated())
	return m.cur
}

// Go transitions to the given route. The transition must be in the current
// route's outbound set; guards may still redirect the landing location (e.g.
// a missing parameter lands on the list ancestor). When entering
// order-detail from an order list, the current location is captured as the
// return context.
func (m *Machine) Go(to Route, params Params) (Location, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	from := m.cur.Route
	if !Allowed(from, to) {
		return m.cur, &ErrNotAllowed{From: from, To: to}
	}

	next := Location{Route: to, Params: params}
	if to == RouteOrderDetail {
		next.ReturnTo = orderReturnTarget(m.cur)
	}
	next = resolve(next, m.auth.Authenticated())

	if next.Route != m.cur.Route || next.Params != m.cur.Params {
		m.hist = append(m.hist, m.cur)
	}
	m.logger.Debug("Navigate", "from", from, "to", next.Route)
	m.cur = next
	return m.cur, nil
}

// Back returns to the previous location, re-applying guards. With no history
// it stays put.
func (m *Machine) Back() Location {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n := len(m.hist); n > 0 {
		m.cur = resolve(m.hist[n-1], m.auth.Authenticated())
		m.hist = m.hist[:n-1]
	}
	return m.cur
}

// ReturnFromOrder leaves the order-detail route for its return context, or
// the canonical products list when the context is absent or unusable.
func (m *Machine) ReturnFromOrder() Location {
	m.mu.Lock()
	defer m.mu.Unlock()

	target := Location{Route: RouteProducts}
	if m.cur.Route == RouteOrderDetail && m.cur.ReturnTo != nil {
		target = Location{Route: m.cur.ReturnTo.Route, Params: m.cur.ReturnTo.Params}
	}
	m.cur = resolve(target, m.auth.Authenticated())
	return m.cur
}

// SignedIn moves to the authenticated root and discards all pre-auth
// history, so back-navigation cannot reach the login form's prior target.
func (m *Machine) SignedIn() Location {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hist = nil
	m.cur = resolve(Location{Route: RouteDashboard}, m.auth.Authenticated())
	return m.cur
}

// SignedOut resets to the public login state and clears history.
func (m *Machine) SignedOut() Location {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hist = nil
	m.cur = Location{Route: RouteLogin}
	return m.cur
}

// orderReturnTarget captures where order-detail should return to. Only the
// two order lists are valid sources; anything else falls back to the
// canonical default at return time.
func orderReturnTarget(from Location) *Target {
	switch from.Route {
	case RouteProductOrders, RouteUserOrders:
		return &Target{Route: from.Route, Params: from.Params}
	}
	return nil
}

// resolve applies the guard table until the location is renderable:
// unknown routes land on the root, protected routes require a session, and
// missing parameters redirect to the nearest listable ancestor.
func resolve(loc Location, authenticated bool) Location {
	for {
		spec, known := routes[loc.Route]
		switch {
		case !known:
			if !authenticated {
				return Location{Route: RouteLogin}
			}
			loc = Location{Route: RouteDashboard}
			continue
		case spec.protected && !authenticated:
			return Location{Route: RouteLogin}
		case loc.Route == RouteLogin && authenticated:
			loc = Location{Route: RouteDashboard}
			continue
		}

		missing := false
		for _, p := range spec.requires {
			if !loc.Params.has(p) {
				missing = true
				break
			}
		}
		if missing {
			// Order-detail without its id prefers its return context's
			// list over the generic fallback.
			next := spec.fallback
			var params Params
			if loc.Route == RouteOrderDetail && loc.ReturnTo != nil && validReturn(*loc.ReturnTo) {
				next = loc.ReturnTo.Route
				params = loc.ReturnTo.Params
			}
			loc = Location{Route: next, Params: params}
			continue
		}

		if loc.Route == RouteOrderDetail && loc.ReturnTo != nil && !validReturn(*loc.ReturnTo) {
			loc.ReturnTo = nil
		}
		return loc
	}
}

// validReturn accepts only resolvable order-list targets as return context;
// a stale or forged context is dropped in favor of the default.
func validReturn(t Target) bool {
	switch t.Route {
	case RouteProductOrders:
		return t.Params.has(ParamProductID)
	case RouteUserOrders:
		return t.Params.has(ParamUserID)
	}
	return false
}
