// Package nav is the console's navigation state machine: one central table
// maps each logical route to its auth requirement, required parameters, and
// allowed outbound transitions, and a Machine walks it under those guards.
//
// Guards are applied in one place (resolve) rather than re-derived per page:
// protected routes without a session land on login, parameterized routes
// missing their parameter land on the nearest listable ancestor, and unknown
// routes land on the authenticated root (or login).
package nav

import "fmt"

// Route is an enumerated logical position in the console.
type Route string

const (
	RouteLogin Route = "login"

	RouteDashboard     Route = "dashboard"
	RouteBudget        Route = "budget"
	RouteBudgetEdit    Route = "budget-edit"
	RouteHistory       Route = "history"
	RouteParticipants  Route = "participants"
	RouteProducts      Route = "products"
	RouteProductCreate Route = "product-create"
	RouteProductDetail Route = "product-detail"
	RouteProductEdit   Route = "product-edit"
	RouteProductStock  Route = "product-stock"
	RouteProductOrders Route = "product-orders"
	RouteOrderDetail   Route = "order-detail"
	RouteUsers         Route = "users"
	RouteUserDetail    Route = "user-detail"
	RouteUserOrders    Route = "user-orders"
	RouteUserPoints    Route = "user-points"
)

// Param identifies a path parameter a route may require.
type Param string

const (
	ParamProductID    Param = "productId"
	ParamOrderID      Param = "orderId"
	ParamUserID       Param = "userId"
	ParamRouletteDate Param = "rouletteDate"
)

// Params carries the path parameters bound to a location.
type Params struct {
	ProductID    int64
	OrderID      int64
	UserID       int64
	RouletteDate string
}

func (p Params) has(param Param) bool {
	switch param {
	case ParamProductID:
		return p.ProductID > 0
	case ParamOrderID:
		return p.OrderID > 0
	case ParamUserID:
		return p.UserID > 0
	case ParamRouletteDate:
		return p.RouletteDate != ""
	}
	return false
}

// Target names a route plus its bound parameters, used for the order-detail
// return context.
type Target struct {
	Route  Route
	Params Params
}

// Location is the machine's full position: a route, its parameters, and the
// transient return context for order-detail.
type Location struct {
	Route  Route
	Params Params

	// ReturnTo is where leaving the order-detail route goes back to. Absent
	// or unusable contexts fall back to the canonical products list.
	ReturnTo *Target
}

// routeSpec is the central per-route table entry.
type routeSpec struct {
	// protected routes require an authenticated session.
	protected bool

	// requires lists parameters that must be bound; without them the route
	// redirects to fallback instead of rendering in an invalid state.
	requires []Param

	// fallback is the nearest listable ancestor for a missing parameter.
	fallback Route
}

var routes = map[Route]routeSpec{
	RouteLogin: {},

	RouteDashboard:     {protected: true},
	RouteBudget:        {protected: true},
	RouteBudgetEdit:    {protected: true},
	RouteHistory:       {protected: true},
	RouteParticipants:  {protected: true, requires: []Param{ParamRouletteDate}, fallback: RouteHistory},
	RouteProducts:      {protected: true},
	RouteProductCreate: {protected: true},
	RouteProductDetail: {protected: true, requires: []Param{ParamProductID}, fallback: RouteProducts},
	RouteProductEdit:   {protected: true, requires: []Param{ParamProductID}, fallback: RouteProducts},
	RouteProductStock:  {protected: true, requires: []Param{ParamProductID}, fallback: RouteProducts},
	RouteProductOrders: {protected: true, requires: []Param{ParamProductID}, fallback: RouteProducts},
	RouteOrderDetail:   {protected: true, requires: []Param{ParamOrderID}, fallback: RouteProducts},
	RouteUsers:         {protected: true},
	RouteUserDetail:    {protected: true, requires: []Param{ParamUserID}, fallback: RouteUsers},
	RouteUserOrders:    {protected: true, requires: []Param{ParamUserID}, fallback: RouteUsers},
	RouteUserPoints:    {protected: true, requires: []Param{ParamUserID}, fallback: RouteUsers},
}

// transitions lists each route's fixed set of outbound transitions. Back
// navigation, sign-in, and sign-out move through their own entry points and
// are not listed here.
var transitions = map[Route][]Route{
	RouteLogin:     {RouteDashboard},
	RouteDashboard: {RouteBudget, RouteProducts, RouteUsers},

	RouteBudget:       {RouteBudgetEdit, RouteHistory, RouteDashboard},
	RouteBudgetEdit:   {RouteBudget},
	RouteHistory:      {RouteParticipants, RouteBudget},
	RouteParticipants: {RouteHistory},

	RouteProducts:      {RouteProductDetail, RouteProductCreate, RouteDashboard},
	RouteProductCreate: {RouteProducts},
	RouteProductDetail: {RouteProductEdit, RouteProductStock, RouteProductOrders, RouteProducts},
	RouteProductEdit:   {RouteProductDetail},
	RouteProductStock:  {RouteProductDetail},
	RouteProductOrders: {RouteOrderDetail, RouteProductDetail},
	RouteOrderDetail:   {RouteProductOrders, RouteUserOrders, RouteProducts},

	RouteUsers:      {RouteUserDetail, RouteDashboard},
	RouteUserDetail: {RouteUserOrders, RouteUserPoints, RouteUsers},
	RouteUserOrders: {RouteOrderDetail, RouteUserDetail},
	RouteUserPoints: {RouteUserDetail},
}

// Known reports whether the route exists in the table.
func Known(r Route) bool {
	_, ok := routes[r]
	return ok
}

// Protected reports whether the route requires a session. Unknown routes are
// treated as protected.
func Protected(r Route) bool {
	spec, ok := routes[r]
	if !ok {
		return true
	}
	return spec.protected
}

// Allowed reports whether the transition from one route to another is in the
// table.
func Allowed(from, to Route) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func (r Route) String() string { return string(r) }

// ErrNotAllowed rejects a transition absent from the table.
type ErrNotAllowed struct {
	From, To Route
}

func (e *ErrNotAllowed) Error() string {
	return fmt.Sprintf("nav: no transition %s -> %s", e.From, e.To)
}
