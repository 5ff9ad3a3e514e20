package routing

// AuthState is the slice of the auth session the guard reads.
type AuthState interface {
	IsLoggedIn() bool
}

// OnboardingState is the slice of the wizard progress the guard reads.
type OnboardingState interface {
	Email() string
	OTPVerified() bool
}

// Verdict is the guard's ruling on one attempted transition: either the
// destination is allowed, or the transition must go to RedirectTo instead.
type Verdict struct {
	Allowed    bool
	RedirectTo string
}

func allow() Verdict {
	return Verdict{Allowed: true}
}

func redirectTo(name string) Verdict {
	return Verdict{RedirectTo: name}
}

// Decide rules on a transition to dest. It is a pure function of its
// arguments and always terminates in a verdict; rules are evaluated in
// order and the first match wins.
//
// The ordering is load-bearing. The guest-only rule runs first so a
// logged-in user skips the wizard entirely, and the wizard-prerequisite
// rules run before the generic authenticated-area rule so an unauthenticated
// user mid-wizard lands on the correct wizard step instead of generically on
// login.
func Decide(dest Route, auth AuthState, ob OnboardingState) Verdict {
	// A logged-in user has no business on guest-only screens.
	if dest.GuestOnly && auth.IsLoggedIn() {
		return redirectTo(RouteHome)
	}

	// The OTP screen is meaningless without an address to verify.
	if dest.Name == RouteVerifyOTP && ob.Email() == "" {
		return redirectTo(RouteLogin)
	}

	// Setting a password requires a confirmed one-time code.
	if dest.Name == RouteSetPassword && !ob.OTPVerified() {
		return redirectTo(RouteVerifyOTP)
	}

	if dest.RequiresAuth && !auth.IsLoggedIn() {
		return redirectTo(RouteLogin)
	}

	// Verified but no email on record: the wizard state is gone, start over.
	if dest.Name == RouteSetPassword && ob.Email() == "" {
		return redirectTo(RouteLogin)
	}

	return allow()
}
