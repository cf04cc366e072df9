package cli

import (
	"context"
	"errors"
	"os"

	"github.com/craftedwonders/storefront/internal/client/api"
	"github.com/craftedwonders/storefront/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and attempts to create a new account
// on the server. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Register(ctx, username, email, string(password)); err != nil {
		a.log.Error(ctx, "registration failed", "email", email, "error", err)
		printlnFn("Registration failed.")
		return err
	}

	printlnFn("Success! You can log in now.")
	return nil
}

// Login prompts for credentials and authenticates against the server. On
// success the identity is persisted, the bearer token installed, and the
// user's remote cart loaded. Logging in while already logged in replaces
// the session outright; the previous user's cart never leaks into the new
// one because Load fully replaces it.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			printlnFn("Invalid email or password.")
		case errors.Is(err, api.ErrUnavailable):
			printlnFn("Server unavailable, try again later.")
		default:
			printlnFn("Login failed.")
		}
		a.log.Warn(ctx, "login failed", "email", email, "error", err)
		return err
	}

	if err := a.session.Login(ctx, *user); err != nil {
		a.log.Error(ctx, "persisting session failed", "error", err)
		return err
	}
	a.client.SetToken(user.Token)

	a.cart.Clear(ctx)
	a.cart.Load(ctx, user.Email)

	printlnFn("Welcome, " + user.Username + "!")
	return nil
}

// Logout clears the session and the in-memory cart. The remote cart record
// is left in place for the next login.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.cart.Clear(ctx)
	a.client.SetToken("")
	printlnFn("Logged out.")
	return nil
}
