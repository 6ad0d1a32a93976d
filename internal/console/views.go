package console

import (
	"context"
	"fmt"

	"github.com/rouletteup/admin-console/internal/budget"
	"github.com/rouletteup/admin-console/internal/models"
	"github.com/rouletteup/admin-console/internal/nav"
	"github.com/rouletteup/admin-console/internal/pager"
)

// mount discards the previous page's state and builds the controller for the
// new location, issuing its initial load. Errors land in the view's error
// slot; the page still mounts so the user can retry.
func (a *App) mount(ctx context.Context, loc nav.Location) {
	a.view = view{loc: loc}
	a.pending = nil

	switch loc.Route {
	case nav.RouteLogin, nav.RouteBudget, nav.RouteProductCreate:
		// Static pages, nothing to fetch.

	case nav.RouteDashboard:
		today, err := a.api.TodayRoulette(ctx)
		if err != nil {
			a.view.err = err
			return
		}
		a.view.today = &today

	case nav.RouteBudgetEdit:
		r := budget.NewReconciler(a.api, a.logger)
		a.view.budget = r
		a.view.err = r.Load(ctx)

	case nav.RouteHistory:
		c := pager.New(a.api.RouletteHistory, GridPageSize)
		a.view.history = c
		a.view.err = c.Load(ctx, 0)

	case nav.RouteParticipants:
		date := loc.Params.RouletteDate
		c := pager.New(func(ctx context.Context, page, size int) (models.Page[models.PointRecord], error) {
			return a.api.PointsByRouletteDate(ctx, date, page, size)
		}, TablePageSize)
		a.view.points = c
		a.view.err = c.Load(ctx, 0)

	case nav.RouteProducts:
		c := pager.New(a.api.Products, GridPageSize)
		a.view.products = c
		a.view.err = c.Load(ctx, 0)

	case nav.RouteProductDetail, nav.RouteProductEdit, nav.RouteProductStock:
		detail, err := a.api.Product(ctx, loc.Params.ProductID)
		if err != nil {
			a.view.err = err
			return
		}
		a.view.productDetail = &detail

	case nav.RouteProductOrders:
		id := loc.Params.ProductID
		c := pager.New(func(ctx context.Context, page, size int) (models.Page[models.Order], error) {
			return a.api.OrdersByProduct(ctx, id, page, size)
		}, TablePageSize)
		a.view.orders = c
		a.view.err = c.Load(ctx, 0)

	case nav.RouteOrderDetail:
		detail, err := a.api.Order(ctx, loc.Params.OrderID)
		if err != nil {
			a.view.err = err
			return
		}
		a.view.orderDetail = &detail

	case nav.RouteUsers:
		c := pager.New(a.api.Users, GridPageSize)
		a.view.users = c
		a.view.err = c.Load(ctx, 0)

	case nav.RouteUserDetail:
		detail, err := a.api.User(ctx, loc.Params.UserID)
		if err != nil {
			a.view.err = err
			return
		}
		a.view.userDetail = &detail

	case nav.RouteUserOrders:
		id := loc.Params.UserID
		c := pager.New(func(ctx context.Context, page, size int) (models.Page[models.Order], error) {
			return a.api.OrdersByUser(ctx, id, page, size)
		}, TablePageSize)
		a.view.orders = c
		a.view.err = c.Load(ctx, 0)

	case nav.RouteUserPoints:
		id := loc.Params.UserID
		c := pager.New(func(ctx context.Context, page, size int) (models.Page[models.PointRecord], error) {
			return a.api.PointsByUser(ctx, id, page, size)
		}, TablePageSize)
		a.view.points = c
		a.view.err = c.Load(ctx, 0)
	}
}

// render prints the mounted view.
func (a *App) render() {
	v := &a.view
	fmt.Fprintf(a.out, "== %s ==\n", v.loc.Route)
	if v.err != nil {
		fmt.Fprintf(a.out, "! %v\n", v.err)
	}

	switch v.loc.Route {
	case nav.RouteLogin:
		fmt.Fprintln(a.out, "sign in with: login <nickname>")

	case nav.RouteDashboard:
		if s, ok := a.sessions.Current(); ok {
			fmt.Fprintf(a.out, "signed in as %s (#%d)\n", s.Nickname, s.ID)
		}
		if v.today != nil {
			fmt.Fprintf(a.out, "today %s: budget %d, used %d, participants %d\n",
				v.today.RouletteDate, v.today.TotalBudget, v.today.UsedBudget, v.today.ParticipantCount)
		}

	case nav.RouteBudget:
		fmt.Fprintln(a.out, "go budget-edit | go history | go dashboard")

	case nav.RouteBudgetEdit:
		a.renderBudget()

	case nav.RouteHistory:
		if v.history != nil {
			renderGrid(a, v.history.Content(), v.history.PageInfo(), v.history.Number(),
				func(item models.RouletteHistoryItem) string {
					suffix := ""
					if item.DeletedAt != nil {
						suffix = " (deleted)"
					}
					return fmt.Sprintf("%s budget=%d used=%d participants=%d%s",
						item.RouletteDate, item.TotalBudget, item.UsedBudget, item.ParticipantCount, suffix)
				})
		}

	case nav.RouteParticipants:
		fmt.Fprintf(a.out, "roulette %s\n", v.loc.Params.RouletteDate)
		a.renderPoints()

	case nav.RouteProducts:
		if v.products != nil {
			renderGrid(a, v.products.Content(), v.products.PageInfo(), v.products.Number(),
				func(p models.Product) string {
					return fmt.Sprintf("#%d %s price=%d stock=%d", p.ID, p.Name, p.Price, p.StockQuantity)
				})
		}

	case nav.RouteProductCreate:
		fmt.Fprintln(a.out, "create <name> <price> <stock>")

	case nav.RouteProductDetail, nav.RouteProductEdit, nav.RouteProductStock:
		if v.productDetail != nil {
			p := v.productDetail
			fmt.Fprintf(a.out, "#%d %s price=%d stock=%d created=%s\n",
				p.ID, p.Name, p.Price, p.StockQuantity, p.CreatedAt)
		}

	case nav.RouteProductOrders, nav.RouteUserOrders:
		a.renderOrders()

	case nav.RouteOrderDetail:
		if v.orderDetail != nil {
			o := v.orderDetail
			who := fmt.Sprintf("user #%d", o.UserID)
			if o.Nickname != nil {
				who = *o.Nickname
			}
			fmt.Fprintf(a.out, "order #%d %s x%d @%d [%s] by %s\n",
				o.ID, o.ProductName, o.Quantity, o.ProductPrice, o.Status, who)
		}

	case nav.RouteUsers:
		if v.users != nil {
			renderGrid(a, v.users.Content(), v.users.PageInfo(), v.users.Number(),
				func(u models.User) string {
					return fmt.Sprintf("#%d %s", u.ID, u.Nickname)
				})
		}

	case nav.RouteUserDetail:
		if v.userDetail != nil {
			fmt.Fprintf(a.out, "user #%d %s\n", v.userDetail.ID, v.userDetail.Nickname)
			fmt.Fprintln(a.out, "go user-orders | go user-points")
		}

	case nav.RouteUserPoints:
		a.renderPoints()
	}
}

func (a *App) renderBudget() {
	r := a.view.budget
	if r == nil {
		return
	}
	if today, ok := r.Today(); ok {
		fmt.Fprintf(a.out, "today %s: budget %d (used %d)\n",
			today.RouletteDate, today.TotalBudget, today.UsedBudget)
	}
	if err := r.TodayErr(); err != nil {
		fmt.Fprintf(a.out, "! today: %v\n", err)
	}
	for _, row := range r.Rows() {
		marker := " "
		if row.Override {
			marker = "*"
		}
		saving := ""
		if row.Saving {
			saving = " (saving)"
		}
		fmt.Fprintf(a.out, "%s %s  %d%s\n", marker, row.Date, row.TotalBudget, saving)
	}
	if err := r.FutureErr(); err != nil {
		fmt.Fprintf(a.out, "! future: %v\n", err)
	}
}

func (a *App) renderPoints() {
	c := a.view.points
	if c == nil {
		return
	}
	for _, p := range c.Content() {
		fmt.Fprintf(a.out, "point #%d user=#%d granted=%d remaining=%d [%s] expires=%s\n",
			p.ID, p.UserID, p.GrantedPoint, p.RemainingPoint, p.Status, p.ExpiresAt)
	}
	a.renderPager(c.PageInfo(), c.Number())
}

func (a *App) renderOrders() {
	c := a.view.orders
	if c == nil {
		return
	}
	for _, o := range c.Content() {
		fmt.Fprintf(a.out, "order #%d %s x%d @%d [%s]\n",
			o.ID, o.ProductName, o.Quantity, o.ProductPrice, o.Status)
	}
	a.renderPager(c.PageInfo(), c.Number())
}

// renderGrid prints a card-grid listing padded to the stable grid shape.
func renderGrid[T any](a *App, items []T, info models.PageInfo, number int, line func(T) string) {
	grid := pager.PadGrid(items, GridCols, GridRows)
	for _, slot := range grid {
		if slot == nil {
			fmt.Fprintln(a.out, "·")
			continue
		}
		fmt.Fprintln(a.out, line(*slot))
	}
	a.renderPager(info, number)
}

// renderPager prints the bounded page-number window with first/last
// shortcuts and ellipsis markers.
func (a *App) renderPager(info models.PageInfo, number int) {
	if info.TotalPages <= 0 {
		fmt.Fprintln(a.out, "(empty)")
		return
	}
	w := pager.PageWindow(number, info.TotalPages)
	out := ""
	if w.ShowFirst {
		out += "1 … "
	}
	for _, p := range w.Pages {
		if p == number {
			out += fmt.Sprintf("[%d] ", p+1)
		} else {
			out += fmt.Sprintf("%d ", p+1)
		}
	}
	if w.ShowLast {
		out += fmt.Sprintf("… %d", info.TotalPages)
	}
	fmt.Fprintf(a.out, "page %d/%d: %s\n", number+1, info.TotalPages, out)
}
