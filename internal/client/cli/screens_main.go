package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"brewdesk/internal/client/api"
	"brewdesk/internal/client/session"
)

func (a *App) screenHome(ctx context.Context) error {
	name := "there"
	if u := a.session.User(); u != nil && u.Name != "" {
		name = u.Name
	}
	fmt.Fprintf(a.out, "Hello, %s.\n", name)
	fmt.Fprintln(a.out, "Screens: users, settings, all-products, stock-in, stock-out, orders, about.")
	return nil
}

func (a *App) screenAbout(ctx context.Context) error {
	fmt.Fprintln(a.out, "brewdesk — back-office client for the café service.")
	return nil
}

func (a *App) screenUsers(ctx context.Context) error {
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users.")
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "%-8s %-24s %-28s %s\n", u.ID, u.Name, u.Email, u.Role)
	}

	action, err := getSimpleText(a.reader, "Action: (a)dd, (u)pdate, empty to leave", a.out)
	if err != nil {
		return err
	}
	switch action {
	case "":
		return nil
	case "a", "add":
		return a.addUser(ctx)
	case "u", "update":
		return a.updateUser(ctx)
	default:
		fmt.Fprintln(a.out, "Unknown action:", action)
		return nil
	}
}

func (a *App) addUser(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Role (empty for none)", a.out)
	if err != nil {
		return err
	}

	u, err := a.api.CreateUser(ctx, api.CreateUserRequest{Name: name, Email: email, Role: role})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created %s (%s).\n", u.Name, u.ID)
	return nil
}

func (a *App) updateUser(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "User id", a.out)
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}

	u, err := a.api.GetUser(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s <%s> role %s\n", u.Name, u.Email, u.Role)

	name, err := getSimpleText(a.reader, "New name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "New role (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if name == "" && role == "" {
		return nil
	}

	updated, err := a.api.UpdateUser(ctx, id, api.UpdateUserRequest{Name: name, Role: role})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated %s.\n", updated.ID)
	return nil
}

func (a *App) screenSettings(ctx context.Context) error {
	if u := a.session.User(); u != nil {
		fmt.Fprintf(a.out, "Signed in as %s <%s>\n", u.Name, u.Email)
	} else {
		fmt.Fprintln(a.out, "Signed in; no profile on record.")
	}
	if claims, err := a.session.Claims(); err == nil && !claims.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "Session expires %s\n", claims.ExpiresAt.Format(time.RFC1123))
	}

	name, err := getSimpleText(a.reader, "New display name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return nil
	}
	if err := a.session.UpdateUser(ctx, session.Profile{Name: name}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

func (a *App) screenAllProducts(ctx context.Context) error {
	items, err := a.api.ListMenu(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "The menu is empty.")
	}
	for _, it := range items {
		fmt.Fprintf(a.out, "%-8s %-24s %8.2f  stock %d\n", it.ID, it.Name, it.Price, it.Stock)
	}

	name, err := getSimpleText(a.reader, "New product name (empty to skip)", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return nil
	}
	priceText, err := getSimpleText(a.reader, "Price", a.out)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil || price < 0 {
		fmt.Fprintln(a.out, "Price must be a non-negative number.")
		return nil
	}
	stockText, err := getSimpleText(a.reader, "Initial stock", a.out)
	if err != nil {
		return err
	}
	stock, err := strconv.Atoi(stockText)
	if err != nil || stock < 0 {
		fmt.Fprintln(a.out, "Stock must be a non-negative number.")
		return nil
	}

	item, err := a.api.CreateMenuItem(ctx, api.CreateMenuItemRequest{Name: name, Price: price, Stock: stock})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s (%s).\n", item.Name, item.ID)
	return nil
}

// screenStockAdjust handles both stock-in (direction +1) and stock-out
// (direction -1); the backend sees a signed delta either way.
func (a *App) screenStockAdjust(ctx context.Context, direction int) error {
	id, err := getSimpleText(a.reader, "Product id", a.out)
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}
	qtyText, err := getSimpleText(a.reader, "Quantity", a.out)
	if err != nil {
		return err
	}
	qty, err := strconv.Atoi(qtyText)
	if err != nil || qty <= 0 {
		fmt.Fprintln(a.out, "Quantity must be a positive number.")
		return nil
	}

	item, err := a.api.AdjustStock(ctx, id, api.StockAdjustment{Delta: direction * qty})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s now has %d in stock.\n", item.Name, item.Stock)
	return nil
}

func (a *App) screenOrders(ctx context.Context) error {
	userID := ""
	if u := a.session.User(); u != nil {
		userID = u.ID
	}

	orders, err := a.api.ListOrders(ctx, a.config.TenantID, userID)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders.")
		return nil
	}
	for _, o := range orders {
		fmt.Fprintf(a.out, "%-12s %-12s %8.2f\n", o.ID, o.Status, o.Total)
	}

	id, err := getSimpleText(a.reader, "Order id to mark done (empty to skip)", a.out)
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}
	err = a.api.UpdateOrderStatus(ctx, a.config.TenantID, userID, id, api.UpdateOrderStatusRequest{Status: "done"})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Order updated.")
	return nil
}
