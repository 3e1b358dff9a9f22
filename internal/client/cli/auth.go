package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/ordercli/internal/client/models"
	"github.com/dmitrijs2005/ordercli/internal/common"
)

// SignUp prompts for a new username and password and appends them to the
// account file. Registering an existing username again is allowed.
func (a *App) SignUp(ctx context.Context) error {
	username, err := a.prompt("Enter new username: ")
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Enter new password: ", a.out, a.terminalFd)
	if err != nil {
		return err
	}

	if err := a.authService.Register(ctx, username, password); err != nil {
		if errors.Is(err, common.ErrInvalidUsername) {
			a.log.Warn(ctx, "registration rejected", "user", username, "error", err)
			a.println("Username must not contain ':'.")
			return err
		}
		a.log.Error(ctx, "registration failed", "user", username, "error", err)
		a.println("Error registering user.")
		return err
	}

	a.log.Info(ctx, "user registered", "user", username)
	a.println("User registered successfully.")
	return nil
}

// Login prompts for credentials and, on an exact match, starts a new
// session with an empty order.
func (a *App) Login(ctx context.Context) error {
	username, err := a.prompt("Enter username: ")
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Enter password: ", a.out, a.terminalFd)
	if err != nil {
		return err
	}

	if err := a.authService.Authenticate(ctx, username, password); err != nil {
		if !errors.Is(err, common.ErrInvalidCredentials) {
			a.log.Error(ctx, "account file unreadable", "error", err)
			a.println("Error reading user file.")
		}
		a.log.Warn(ctx, "login failed", "user", username)
		a.println("Invalid username or password.")
		return err
	}

	a.session = models.NewSession(username)
	a.log = a.logger.With("session", a.session.ID.String(), "user", username)
	a.log.Info(ctx, "login successful")
	a.println("Login successful!")
	return nil
}

// Logout drops the session together with its order.
func (a *App) Logout(ctx context.Context) error {
	if a.session != nil {
		a.log.Info(ctx, "logout", "discarded_items", a.session.Order.Len())
	}
	a.session = nil
	a.log = a.logger
	return nil
}
