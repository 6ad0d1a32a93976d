package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/rouletteup/admin-console/internal/budget"
	"github.com/rouletteup/admin-console/internal/models"
	"github.com/rouletteup/admin-console/internal/nav"
	"github.com/rouletteup/admin-console/internal/pager"
)

// mutate handles the write commands. Each is valid only on its own route;
// destructive ones (delete, cancel, reclaim) stage a pending action that the
// next "confirm" line dispatches. No mutation is retried automatically.
func (a *App) mutate(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "today":
		return a.setToday(ctx, args)
	case "future":
		return a.setFuture(ctx, args)
	case "create":
		return a.createProduct(ctx, args)
	case "update":
		return a.updateProduct(ctx, args)
	case "stock":
		return a.increaseStock(ctx, args)
	case "delete":
		return a.deleteProduct()
	case "cancel":
		return a.cancelOrder()
	case "reclaim":
		return a.reclaimPoint(args)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (a *App) setToday(ctx context.Context, args []string) error {
	r := a.view.budget
	if r == nil {
		return errors.New("today is only available on budget-edit")
	}
	if len(args) != 1 {
		return errors.New("usage: today <amount>")
	}
	v, err := budget.ParseAmount(args[0])
	if err != nil {
		return err
	}
	err = r.UpdateToday(ctx, v)
	a.render()
	return err
}

func (a *App) setFuture(ctx context.Context, args []string) error {
	r := a.view.budget
	if r == nil {
		return errors.New("future is only available on budget-edit")
	}
	if len(args) != 2 {
		return errors.New("usage: future <date> <amount>")
	}
	v, err := budget.ParseAmount(args[1])
	if err != nil {
		return err
	}
	err = r.UpdateFuture(ctx, args[0], v)
	a.render()
	return err
}

func (a *App) createProduct(ctx context.Context, args []string) error {
	if a.view.loc.Route != nav.RouteProductCreate {
		return errors.New("create is only available on product-create")
	}
	if len(args) != 3 {
		return errors.New("usage: create <name> <price> <stock>")
	}
	price, err := budget.ParseAmount(args[1])
	if err != nil {
		return err
	}
	stock, err := budget.ParseAmount(args[2])
	if err != nil {
		return err
	}
	req := models.CreateProduct{Name: args[0], Price: price, StockQuantity: stock}
	if err := a.api.CreateProduct(ctx, req); err != nil {
		return err
	}
	// Back to the list, which reloads from the server.
	loc, err := a.machine.Go(nav.RouteProducts, nav.Params{})
	if err != nil {
		return err
	}
	a.mount(ctx, loc)
	a.render()
	return nil
}

func (a *App) updateProduct(ctx context.Context, args []string) error {
	if a.view.loc.Route != nav.RouteProductEdit || a.view.productDetail == nil {
		return errors.New("update is only available on product-edit")
	}
	if len(args) != 2 {
		return errors.New("usage: update <name> <price>")
	}
	price, err := budget.ParseAmount(args[1])
	if err != nil {
		return err
	}
	id := a.view.loc.Params.ProductID
	if err := a.api.UpdateProduct(ctx, id, models.UpdateProduct{Name: args[0], Price: price}); err != nil {
		return err
	}
	loc, err := a.machine.Go(nav.RouteProductDetail, nav.Params{ProductID: id})
	if err != nil {
		return err
	}
	a.mount(ctx, loc)
	a.render()
	return nil
}

func (a *App) increaseStock(ctx context.Context, args []string) error {
	if a.view.loc.Route != nav.RouteProductStock {
		return errors.New("stock is only available on product-stock")
	}
	if len(args) != 1 {
		return errors.New("usage: stock <amount>")
	}
	amount, err := budget.ParseAmount(args[0])
	if err != nil {
		return err
	}
	id := a.view.loc.Params.ProductID
	if err := a.api.UpdateProductStock(ctx, id, amount); err != nil {
		return err
	}
	loc, err := a.machine.Go(nav.RouteProductDetail, nav.Params{ProductID: id})
	if err != nil {
		return err
	}
	a.mount(ctx, loc)
	a.render()
	return nil
}

// deleteProduct stages the delete; on confirm it dispatches and navigates to
// the product list, which reloads page 0.
func (a *App) deleteProduct() error {
	if a.view.loc.Route != nav.RouteProductDetail || a.view.productDetail == nil {
		return errors.New("delete is only available on product-detail")
	}
	id := a.view.loc.Params.ProductID
	name := a.view.productDetail.Name
	a.stage(fmt.Sprintf("delete product #%d %q", id, name), func(ctx context.Context) error {
		if err := a.api.DeleteProduct(ctx, id); err != nil {
			return err
		}
		loc, err := a.machine.Go(nav.RouteProducts, nav.Params{})
		if err != nil {
			return err
		}
		a.mount(ctx, loc)
		return nil
	})
	return nil
}

// cancelOrder stages the cancel; on confirm the order record is refetched
// wholesale so the displayed status is the server's.
func (a *App) cancelOrder() error {
	if a.view.loc.Route != nav.RouteOrderDetail || a.view.orderDetail == nil {
		return errors.New("cancel is only available on order-detail")
	}
	id := a.view.loc.Params.OrderID
	a.stage(fmt.Sprintf("cancel order #%d", id), func(ctx context.Context) error {
		if err := a.api.CancelOrder(ctx, id); err != nil {
			return err
		}
		detail, err := a.api.Order(ctx, id)
		if err != nil {
			return err
		}
		a.view.orderDetail = &detail
		return nil
	})
	return nil
}

// reclaimPoint stages the reclaim; on confirm the current points page is
// reloaded through the controller.
func (a *App) reclaimPoint(args []string) error {
	c := a.view.points
	if c == nil {
		return errors.New("reclaim is only available on participants or user-points")
	}
	if len(args) != 1 {
		return errors.New("usage: reclaim <point-id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	a.stage(fmt.Sprintf("reclaim point #%d", id), func(ctx context.Context) error {
		return c.Mutate(ctx, func(ctx context.Context) error {
			return a.api.ReclaimPoint(ctx, id)
		}, pager.ReloadCurrent)
	})
	return nil
}

// stage records a destructive action and prompts for confirmation.
func (a *App) stage(prompt string, run func(ctx context.Context) error) {
	a.pending = &pendingAction{prompt: prompt, run: run}
	fmt.Fprintf(a.out, "%s: type confirm to proceed\n", prompt)
}
