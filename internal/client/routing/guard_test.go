package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubAuth struct {
	loggedIn bool
}

func (s stubAuth) IsLoggedIn() bool { return s.loggedIn }

type stubOnboarding struct {
	email    string
	verified bool
}

func (s stubOnboarding) Email() string     { return s.email }
func (s stubOnboarding) OTPVerified() bool { return s.verified }

func TestDecide_LoggedInGuestPagesRedirectHome(t *testing.T) {
	auth := stubAuth{loggedIn: true}
	ob := stubOnboarding{}

	var guestOnly int
	for _, r := range Routes() {
		if !r.GuestOnly {
			continue
		}
		guestOnly++
		v := Decide(r, auth, ob)
		assert.False(t, v.Allowed, "dest %s", r.Name)
		assert.Equal(t, RouteHome, v.RedirectTo, "dest %s", r.Name)
	}
	assert.Equal(t, 6, guestOnly)
}

func TestDecide_VerifyOTPNeedsEmail(t *testing.T) {
	v := Decide(Lookup(RouteVerifyOTP), stubAuth{}, stubOnboarding{email: ""})
	assert.False(t, v.Allowed)
	assert.Equal(t, RouteLogin, v.RedirectTo)

	v = Decide(Lookup(RouteVerifyOTP), stubAuth{}, stubOnboarding{email: "a@b.com"})
	assert.True(t, v.Allowed)
}

func TestDecide_SetPasswordNeedsVerification(t *testing.T) {
	// Unverified redirects to the OTP stage regardless of email.
	for _, email := range []string{"", "a@b.com"} {
		v := Decide(Lookup(RouteSetPassword), stubAuth{}, stubOnboarding{email: email})
		assert.False(t, v.Allowed, "email %q", email)
		assert.Equal(t, RouteVerifyOTP, v.RedirectTo, "email %q", email)
	}
}

func TestDecide_SetPasswordVerifiedNoEmailRedirectsLogin(t *testing.T) {
	v := Decide(Lookup(RouteSetPassword), stubAuth{}, stubOnboarding{email: "", verified: true})
	assert.False(t, v.Allowed)
	assert.Equal(t, RouteLogin, v.RedirectTo)
}

func TestDecide_SetPasswordVerifiedWithEmailAllowedWithoutAuth(t *testing.T) {
	// Scenario E: the final wizard step does not require a full login.
	v := Decide(Lookup(RouteSetPassword), stubAuth{}, stubOnboarding{email: "a@b.com", verified: true})
	assert.True(t, v.Allowed)
}

func TestDecide_AuthenticatedAreaNeedsLogin(t *testing.T) {
	// Scenario A: fresh session, /home redirects to login.
	for _, name := range []string{
		RouteHome, RouteAbout, RouteUsers, RouteSettings,
		RouteAllProducts, RouteStockOut, RouteStockIn, RouteOrders,
	} {
		v := Decide(Lookup(name), stubAuth{}, stubOnboarding{})
		assert.False(t, v.Allowed, "dest %s", name)
		assert.Equal(t, RouteLogin, v.RedirectTo, "dest %s", name)

		v = Decide(Lookup(name), stubAuth{loggedIn: true}, stubOnboarding{})
		assert.True(t, v.Allowed, "dest %s", name)
	}
}

func TestDecide_WizardRulesWinOverGenericAuthRule(t *testing.T) {
	// Unauthenticated mid-wizard: land on the right wizard step, not login.
	v := Decide(Lookup(RouteSetPassword), stubAuth{}, stubOnboarding{email: "a@b.com"})
	assert.Equal(t, RouteVerifyOTP, v.RedirectTo)
}

func TestDecide_NotFoundAlwaysAllowed(t *testing.T) {
	v := Decide(Lookup("no-such-route"), stubAuth{}, stubOnboarding{})
	assert.True(t, v.Allowed)

	v = Decide(Lookup("no-such-route"), stubAuth{loggedIn: true}, stubOnboarding{})
	assert.True(t, v.Allowed)
}

func TestLookup_UnmatchedResolvesToNotFound(t *testing.T) {
	r := Lookup("/definitely/not/registered")
	assert.Equal(t, RouteNotFound, r.Name)
	assert.False(t, r.RequiresAuth)
	assert.False(t, r.GuestOnly)
}
