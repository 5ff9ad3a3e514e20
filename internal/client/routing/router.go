package routing

import (
	"context"

	"brewdesk/internal/logging"
)

// maxRedirects bounds the redirect chain. The rule data in this table never
// loops (every redirect target is itself admissible within one more hop),
// but the mechanism does not rely on that: past the bound the router fails
// safe to the fallback.
const maxRedirects = 8

// Router commits navigations. Every attempted transition, including ones
// produced by a prior redirect, is re-evaluated by the guard rather than
// trusted blindly.
type Router struct {
	auth AuthState
	ob   OnboardingState
	log  logging.Logger
}

func NewRouter(auth AuthState, ob OnboardingState, log logging.Logger) *Router {
	return &Router{auth: auth, ob: ob, log: log}
}

// Navigate resolves name and walks the guard's verdicts to the route the
// application may actually show. Unknown names resolve to not-found.
func (r *Router) Navigate(ctx context.Context, name string) Route {
	dest := Lookup(name)

	for hops := 0; hops < maxRedirects; hops++ {
		v := Decide(dest, r.auth, r.ob)
		if v.Allowed {
			if dest.Name != name {
				r.log.Debug(ctx, "navigation redirected", "requested", name, "landed", dest.Name)
			}
			return dest
		}
		dest = Lookup(v.RedirectTo)
	}

	// Conflicting rule data. The fallback itself must pass the guard: login
	// is the safe terminal for a guest, but a logged-in session gets bounced
	// off guest-only screens, so in that case land on the not-found terminal,
	// which no rule ever rejects.
	fallback := Lookup(RouteLogin)
	if v := Decide(fallback, r.auth, r.ob); !v.Allowed {
		fallback = Lookup(RouteNotFound)
	}
	r.log.Warn(ctx, "redirect chain exceeded, falling back", "requested", name, "fallback", fallback.Name)
	return fallback
}
