package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"brewdesk/internal/client/routing"
	"brewdesk/internal/common"
)

func (a *App) getStatus() string {
	s := a.current.Name
	if u := a.session.User(); u != nil && u.Name != "" {
		s = s + " " + u.Name
	}
	return fmt.Sprintf("[%s]", s)
}

// Run starts the interactive shell. The first navigation goes to welcome;
// the guard bounces an already-authenticated session straight to home.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "brewdesk (type 'help' for commands)")

	if err := a.navigateTo(ctx, routing.RouteWelcome); err != nil {
		a.printError(err)
	}

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "brewdesk %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.session.IsLoggedIn() {
				fmt.Fprintln(a.out, "Commands: go <screen>, logout, exit")
				fmt.Fprintln(a.out, "Screens: home, about, users, settings, all-products, stock-in, stock-out, orders")
			} else {
				fmt.Fprintln(a.out, "Commands: go <screen>, exit")
				fmt.Fprintln(a.out, "Screens: welcome, login, register, email, verify-otp, set-password")
			}

		case "go", "open":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: go <screen>")
				continue
			}
			if err := a.navigateTo(ctx, args[0]); err != nil {
				a.printError(err)
			}

		case "logout":
			if err := a.Logout(ctx); err != nil {
				a.printError(err)
			}

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) printError(err error) {
	switch {
	case errors.Is(err, common.ErrUnavailable):
		fmt.Fprintln(a.out, "The server is unavailable. Try again later.")
	case errors.Is(err, common.ErrUnauthorized):
		fmt.Fprintln(a.out, "You are not authorized for that.")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}
