package cli

import (
	"context"
	"errors"
	"fmt"

	"brewdesk/internal/client/api"
	"brewdesk/internal/client/onboarding"
	"brewdesk/internal/client/routing"
	"brewdesk/internal/client/session"
	"brewdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to the interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) screenWelcome(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to brewdesk.")
	fmt.Fprintln(a.out, "Type 'go login' to sign in, 'go register' to create an account,")
	fmt.Fprintln(a.out, "or 'go email' if you forgot your password.")
	return nil
}

func (a *App) screenLogin(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}

	res, err := a.api.Login(ctx, api.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Wrong email or password.")
			return nil
		}
		return err
	}

	err = a.session.Login(ctx, session.Profile{
		ID:    res.User.ID,
		Name:  res.User.Name,
		Email: res.User.Email,
		Role:  res.User.Role,
	}, res.Token)
	if err != nil {
		return err
	}

	// A login ends any wizard in flight.
	if err := a.progress.Reset(ctx); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", res.User.Name)
	return a.navigateTo(ctx, routing.RouteHome)
}

func (a *App) screenRegister(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Display name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}

	err = a.api.Register(ctx, api.RegisterRequest{Name: name, Email: email, Password: string(password)})
	if err != nil {
		return err
	}

	a.progress.StartFlow(onboarding.FlowRegister)
	if err := a.progress.SetRegistrationData(ctx, onboarding.StepOTP, email, ""); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "We sent a verification code to your email.")
	return a.navigateTo(ctx, routing.RouteVerifyOTP)
}

func (a *App) screenEmail(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email of the account to reset", a.out)
	if err != nil {
		return err
	}

	if err := a.api.ForgotPassword(ctx, api.ForgotPasswordRequest{Email: email}); err != nil {
		return err
	}

	a.progress.StartFlow(onboarding.FlowForgotPassword)
	if err := a.progress.SetRegistrationData(ctx, onboarding.StepOTP, email, ""); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "We sent a reset code to your email.")
	return a.navigateTo(ctx, routing.RouteVerifyOTP)
}

func (a *App) screenVerifyOTP(ctx context.Context) error {
	code, err := getSimpleText(a.reader, fmt.Sprintf("Enter the code sent to %s", a.progress.Email()), a.out)
	if err != nil {
		return err
	}

	res, err := a.api.VerifyOTP(ctx, api.VerifyOTPRequest{
		Email: a.progress.Email(),
		Code:  code,
		Flow:  string(a.progress.Flow()),
	})
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			fmt.Fprintln(a.out, "That code did not match. Try again with 'go verify-otp'.")
			return nil
		}
		return err
	}

	if err := a.progress.MarkVerified(ctx); err != nil {
		if errors.Is(err, common.ErrInvalidState) {
			// Wizard state is gone from under us; let the guard pick the
			// right screen instead of surfacing an internal error.
			return a.navigateTo(ctx, routing.RouteVerifyOTP)
		}
		return err
	}
	if err := a.progress.SetRegistrationData(ctx, onboarding.StepSetPassword, "", res.TempToken); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Code confirmed.")
	return a.navigateTo(ctx, routing.RouteSetPassword)
}

func (a *App) screenSetPassword(ctx context.Context) error {
	password, err := getPassword(a.out, "New password")
	if err != nil {
		return err
	}

	err = a.api.SetPassword(ctx, api.SetPasswordRequest{
		Email:     a.progress.Email(),
		Password:  string(password),
		TempToken: a.progress.TempToken(),
	})
	if err != nil {
		return err
	}

	if err := a.progress.Reset(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Password set. You can log in now.")
	return a.navigateTo(ctx, routing.RouteLogin)
}
