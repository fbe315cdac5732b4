package cli

import (
	"context"
	"errors"
	"fmt"

	"markbook/internal/common"
	"markbook/internal/server/services"
)

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Enter phone", a.out)
	if err != nil {
		return err
	}
	dob, err := GetSimpleText(a.reader, "Enter date of birth (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	account, err := a.auth.Register(ctx, &services.RegisterRequest{
		Name:        name,
		Phone:       phone,
		DateOfBirth: dob,
		Email:       email,
		Password:    password,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrAccountExists):
			fmt.Fprintln(a.out, "User with this email or name already exists!")
		case errors.Is(err, common.ErrInvalidAccount):
			fmt.Fprintf(a.out, "Invalid input: %v\n", err)
		default:
			fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "User %q registered successfully! You can now log in.\n", account.Name)
	return nil
}
