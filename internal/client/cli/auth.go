package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/noteapp/internal/client/models"
	"github.com/dmitrijs2005/noteapp/internal/common"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

// Login prompts for credentials and authenticates. The last successful
// username is offered as the default. A failure leaves the session unset;
// the service flashes the reason and the next render shows it.
func (a *App) Login(ctx context.Context) error {
	prompt := "Enter username"
	last := a.authService.LastUsername(ctx)
	if last != "" {
		prompt = fmt.Sprintf("Enter username [%s]", last)
	}

	username, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if username == "" {
		username = last
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	_, err = a.authService.Login(ctx, models.Credentials{Username: username, Password: string(password)})
	a.render()
	return err
}

// Logout forgets the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return err
	}
	a.render()
	return nil
}
