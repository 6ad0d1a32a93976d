// Package console is the interactive front-end over the navigation machine,
// the paginated resource controllers, and the budget reconciler. It owns no
// policy of its own: every transition, guard, refetch, and validation lives
// in the packages it composes; the console only parses commands and prints
// the resulting state.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rouletteup/admin-console/internal/api"
	"github.com/rouletteup/admin-console/internal/budget"
	"github.com/rouletteup/admin-console/internal/models"
	"github.com/rouletteup/admin-console/internal/nav"
	"github.com/rouletteup/admin-console/internal/pager"
	"github.com/rouletteup/admin-console/internal/session"
)

const (
	// MinNicknameLength is the local sign-in floor; shorter nicknames never
	// reach the network.
	MinNicknameLength = 2

	// GridPageSize is the page size for card-grid listings (history,
	// products, users), matching the 3x4 grid.
	GridPageSize = 12

	// TablePageSize is the page size for table listings (orders, points).
	TablePageSize = 10

	// GridCols and GridRows shape the card grid.
	GridCols = 3
	GridRows = 4
)

// ErrNicknameTooShort rejects sign-in input locally.
var ErrNicknameTooShort = errors.New("console: nickname must be at least 2 characters")

// view holds the state scoped to the currently mounted route. It is
// discarded wholesale on every navigation; no list or detail state survives
// its page.
type view struct {
	loc nav.Location

	history  *pager.Controller[models.RouletteHistoryItem]
	points   *pager.Controller[models.PointRecord]
	products *pager.Controller[models.Product]
	orders   *pager.Controller[models.Order]
	users    *pager.Controller[models.User]
	budget   *budget.Reconciler

	productDetail *models.ProductDetail
	orderDetail   *models.OrderDetail
	userDetail    *models.UserDetail
	today         *models.TodayRoulette

	err error
}

// pendingAction is a destructive command awaiting explicit confirmation.
type pendingAction struct {
	prompt string
	run    func(ctx context.Context) error
}

// App wires the session manager, navigation machine, and API client behind a
// line-oriented command loop.
type App struct {
	api      *api.Client
	sessions *session.Manager
	machine  *nav.Machine
	logger   *slog.Logger

	in  *bufio.Scanner
	out io.Writer

	view    view
	pending *pendingAction
}

// New creates the console app. Call Run to start the loop.
func New(client *api.Client, sessions *session.Manager, machine *nav.Machine, in io.Reader, out io.Writer, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		api:      client,
		sessions: sessions,
		machine:  machine,
		logger:   logger,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run mounts the initial location and processes commands until EOF or quit.
func (a *App) Run(ctx context.Context) error {
	a.mount(ctx, a.machine.Current())
	a.render()

	for {
		fmt.Fprintf(a.out, "[%s] > ", a.view.loc.Route)
		if !a.in.Scan() {
			return a.in.Err()
		}
		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		if err := a.dispatch(ctx, line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
	}
}

var errQuit = errors.New("quit")

// dispatch handles one command line. A pending destructive action consumes
// the next line: "confirm" dispatches it, anything else cancels.
func (a *App) dispatch(ctx context.Context, line string) error {
	if a.pending != nil {
		p := a.pending
		a.pending = nil
		if line != "confirm" {
			fmt.Fprintln(a.out, "cancelled")
			return nil
		}
		if err := p.run(ctx); err != nil {
			return err
		}
		a.render()
		return nil
	}

	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		a.printHelp()
		return nil
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.logout(ctx)
	case "go":
		return a.goTo(ctx, args)
	case "back":
		a.mount(ctx, a.machine.Back())
		a.render()
		return nil
	case "return":
		a.mount(ctx, a.machine.ReturnFromOrder())
		a.render()
		return nil
	case "open":
		return a.open(ctx, args)
	case "page":
		return a.page(ctx, args)
	case "refresh":
		a.mount(ctx, a.machine.Current())
		a.render()
		return nil
	case "today", "future", "create", "update", "stock", "delete", "cancel", "reclaim":
		return a.mutate(ctx, cmd, args)
	}
	return fmt.Errorf("unknown command %q (try help)", cmd)
}

// login validates locally, signs in against the backend, persists the
// session, and jumps to the authenticated root.
func (a *App) login(ctx context.Context, args []string) error {
	if a.sessions.Authenticated() {
		return errors.New("already signed in")
	}
	nickname := strings.TrimSpace(strings.Join(args, " "))
	if len([]rune(nickname)) < MinNicknameLength {
		return ErrNicknameTooShort
	}

	s, err := a.api.SignIn(ctx, nickname)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.FieldError("nickname") != "" {
			return errors.New(apiErr.FieldError("nickname"))
		}
		return err
	}
	if err := a.sessions.SignIn(ctx, s); err != nil {
		return err
	}
	a.mount(ctx, a.machine.SignedIn())
	a.render()
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.sessions.SignOut(ctx); err != nil {
		return err
	}
	a.mount(ctx, a.machine.SignedOut())
	a.render()
	return nil
}

// goTo navigates by route name, binding the route's parameter from the
// argument when one is given.
func (a *App) goTo(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: go <route> [id|date]")
	}
	route := nav.Route(args[0])
	params, err := bindParam(route, args[1:])
	if err != nil {
		return err
	}
	loc, err := a.machine.Go(route, params)
	if err != nil {
		return err
	}
	a.mount(ctx, loc)
	a.render()
	return nil
}

// open drills into the detail view for the current listing.
func (a *App) open(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: open <id|date>")
	}
	var (
		to     nav.Route
		params nav.Params
	)
	switch a.view.loc.Route {
	case nav.RouteProducts:
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		to, params = nav.RouteProductDetail, nav.Params{ProductID: id}
	case nav.RouteUsers:
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		to, params = nav.RouteUserDetail, nav.Params{UserID: id}
	case nav.RouteHistory:
		to, params = nav.RouteParticipants, nav.Params{RouletteDate: args[0]}
	case nav.RouteProductOrders:
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		to, params = nav.RouteOrderDetail, nav.Params{OrderID: id}
		params.ProductID = a.view.loc.Params.ProductID
	case nav.RouteUserOrders:
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		to, params = nav.RouteOrderDetail, nav.Params{OrderID: id}
		params.UserID = a.view.loc.Params.UserID
	default:
		return fmt.Errorf("nothing to open from %s", a.view.loc.Route)
	}
	loc, err := a.machine.Go(to, params)
	if err != nil {
		return err
	}
	a.mount(ctx, loc)
	a.render()
	return nil
}

// page drives the current listing's controller: "page next", "page prev", or
// "page <n>" (1-based as displayed, 0-based internally).
func (a *App) page(ctx context.Context, args []string) error {
	ctrl := a.currentPagination()
	if ctrl == nil {
		return fmt.Errorf("no pagination on %s", a.view.loc.Route)
	}
	if len(args) != 1 {
		return errors.New("usage: page <n|next|prev>")
	}
	var err error
	switch args[0] {
	case "next":
		err = ctrl.Next(ctx)
	case "prev":
		err = ctrl.Prev(ctx)
	default:
		n, convErr := strconv.Atoi(args[0])
		if convErr != nil || n < 1 {
			return errors.New("page numbers start at 1")
		}
		err = ctrl.SetPage(ctx, n-1)
	}
	a.render()
	return err
}

// pagination is the slice of pager.Controller the command loop needs,
// independent of the element type.
type pagination interface {
	Load(ctx context.Context, pageIndex int) error
	SetPage(ctx context.Context, pageIndex int) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Number() int
	HasNext() bool
	HasPrev() bool
	Err() error
}

func (a *App) currentPagination() pagination {
	v := &a.view
	switch {
	case v.history != nil:
		return v.history
	case v.points != nil:
		return v.points
	case v.products != nil:
		return v.products
	case v.orders != nil:
		return v.orders
	case v.users != nil:
		return v.users
	}
	return nil
}

func bindParam(route nav.Route, args []string) (nav.Params, error) {
	var p nav.Params
	if len(args) == 0 {
		return p, nil
	}
	switch route {
	case nav.RouteProductDetail, nav.RouteProductEdit, nav.RouteProductStock, nav.RouteProductOrders:
		id, err := parseID(args[0])
		if err != nil {
			return p, err
		}
		p.ProductID = id
	case nav.RouteOrderDetail:
		id, err := parseID(args[0])
		if err != nil {
			return p, err
		}
		p.OrderID = id
	case nav.RouteUserDetail, nav.RouteUserOrders, nav.RouteUserPoints:
		id, err := parseID(args[0])
		if err != nil {
			return p, err
		}
		p.UserID = id
	case nav.RouteParticipants:
		p.RouletteDate = args[0]
	}
	return p, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `commands:
  login <nickname>        sign in
  logout                  sign out
  go <route> [id|date]    navigate (e.g. go products, go product-detail 42)
  open <id|date>          open the detail view for a listed item
  back                    previous page
  return                  leave order detail for its originating list
  page <n|next|prev>      paginate the current listing
  refresh                 reload the current view
  today <amount>          set today's budget (budget-edit)
  future <date> <amount>  set a future date's budget (budget-edit)
  create <name> <price> <stock>   add a product (product-create)
  update <name> <price>   edit the current product (product-edit)
  stock <amount>          increase stock (product-stock)
  delete                  delete the current product (product-detail)
  cancel                  cancel the current order (order-detail)
  reclaim <point-id>      reclaim a point record (participants, user-points)
  quit
`)
}
