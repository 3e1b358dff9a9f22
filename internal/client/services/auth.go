// Package services contains the application services behind the ordercli
// menus. This file defines account registration and authentication over the
// plaintext account store.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ordercli/internal/client/models"
	"github.com/dmitrijs2005/ordercli/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/ordercli/internal/common"
	"github.com/go-playground/validator/v10"
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Register: append the credentials; usernames containing ':' are
//     rejected with common.ErrInvalidUsername.
//   - Authenticate: nil on an exact match, common.ErrInvalidCredentials
//     when no line matches, a wrapped I/O error when the store is unreadable.
type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) error
}

type authService struct {
	repo     accounts.Repository
	validate *validator.Validate
}

// NewAuthService constructs an AuthService over the given account repository.
func NewAuthService(repo accounts.Repository) AuthService {
	return &authService{repo: repo, validate: validator.New()}
}

func (a *authService) Register(ctx context.Context, username, password string) error {
	c := models.Credentials{Username: username, Password: password}
	if err := a.validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", common.ErrInvalidUsername, describe(err))
	}
	if err := a.repo.Append(ctx, c); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (a *authService) Authenticate(ctx context.Context, username, password string) error {
	ok, err := a.repo.Match(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}
	if !ok {
		return common.ErrInvalidCredentials
	}
	return nil
}

// describe turns validator errors into a short human-readable message.
func describe(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "excludes":
			msgs = append(msgs, fmt.Sprintf("%s must not contain %q", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed validation (%s)", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
