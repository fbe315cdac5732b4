package cli

import (
	"context"
	"errors"
	"fmt"

	"markbook/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	account, err := a.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid email or password!")
		} else {
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
		}
		return err
	}

	a.session.Establish(account)
	fmt.Fprintf(a.out, "Welcome %s!\n", account.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Clear()
	fmt.Fprintln(a.out, "You have been logged out.")
	return nil
}
