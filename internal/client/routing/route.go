// Package routing contains the navigation-gating core: the route table, the
// guard that rules on every attempted transition, and the router that
// applies verdicts with a bounded redirect chain.
package routing

// Route names. These are the stable identifiers the guard and the screens
// agree on; paths are cosmetic.
const (
	RouteWelcome     = "welcome"
	RouteLogin       = "login"
	RouteRegister    = "register"
	RouteEmail       = "email"
	RouteVerifyOTP   = "verify-otp"
	RouteSetPassword = "set-password"
	RouteHome        = "home"
	RouteAbout       = "about"
	RouteUsers       = "users"
	RouteSettings    = "settings"
	RouteAllProducts = "all-products"
	RouteStockOut    = "stock-out"
	RouteStockIn     = "stock-in"
	RouteOrders      = "orders"
	RouteNotFound    = "not-found"
)

// Route describes one destination the guard can rule on. GuestOnly marks
// screens meant for unauthenticated visitors; RequiresAuth marks the
// authenticated area. The two are mutually exclusive in the table below.
type Route struct {
	Name         string
	Path         string
	RequiresAuth bool
	GuestOnly    bool
}

var table = map[string]Route{
	RouteWelcome:     {Name: RouteWelcome, Path: "/", GuestOnly: true},
	RouteLogin:       {Name: RouteLogin, Path: "/login", GuestOnly: true},
	RouteRegister:    {Name: RouteRegister, Path: "/register", GuestOnly: true},
	RouteEmail:       {Name: RouteEmail, Path: "/email", GuestOnly: true},
	RouteVerifyOTP:   {Name: RouteVerifyOTP, Path: "/verify-otp", GuestOnly: true},
	RouteSetPassword: {Name: RouteSetPassword, Path: "/set-password", GuestOnly: true},
	RouteHome:        {Name: RouteHome, Path: "/home", RequiresAuth: true},
	RouteAbout:       {Name: RouteAbout, Path: "/about", RequiresAuth: true},
	RouteUsers:       {Name: RouteUsers, Path: "/users", RequiresAuth: true},
	RouteSettings:    {Name: RouteSettings, Path: "/settings", RequiresAuth: true},
	RouteAllProducts: {Name: RouteAllProducts, Path: "/inventory/all", RequiresAuth: true},
	RouteStockOut:    {Name: RouteStockOut, Path: "/inventory/out", RequiresAuth: true},
	RouteStockIn:     {Name: RouteStockIn, Path: "/inventory/in", RequiresAuth: true},
	RouteOrders:      {Name: RouteOrders, Path: "/orders", RequiresAuth: true},
	RouteNotFound:    {Name: RouteNotFound, Path: "/not-found"},
}

// Lookup resolves a route name. Unmatched names resolve to the not-found
// terminal route, which requires no authentication.
func Lookup(name string) Route {
	if r, ok := table[name]; ok {
		return r
	}
	return table[RouteNotFound]
}

// Routes returns every route in the table. Intended for tests and help
// output; the returned slice is a copy.
func Routes() []Route {
	out := make([]Route, 0, len(table))
	for _, r := range table {
		out = append(out, r)
	}
	return out
}
