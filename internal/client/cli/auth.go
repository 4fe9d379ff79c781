package cli

import (
	"context"

	"github.com/dmitrijs2005/medreminder/internal/client/models"
	"github.com/dmitrijs2005/medreminder/internal/client/services"
	"github.com/dmitrijs2005/medreminder/internal/common"
)

// Register prompts for the account fields and creates the account. It does
// not log in.
func (a *App) Register(ctx context.Context) error {
	var r models.Registration
	var err error

	if r.Name, err = GetSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}
	if r.Email, err = GetSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	password, err := GetPassword(a.reader, a.inputFd, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	r.Password = string(password)

	if r.Phone, err = GetSimpleText(a.reader, "Enter phone", a.out); err != nil {
		return err
	}

	if err := a.authService.Register(ctx, r); err != nil {
		return a.fail(err, services.MsgRegisterFailed)
	}

	a.println(a.ui.Success("Registration successful! You can now log in."))
	return nil
}

// Login prompts for credentials, stores the issued token and loads the
// reminders of the account.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.reader, a.inputFd, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, models.Credentials{Email: email, Password: string(password)}); err != nil {
		return a.fail(err, services.MsgLoginFailed)
	}

	a.println(a.ui.Success("Login successful!"))
	return a.List(ctx)
}

// Logout forgets the stored token and everything loaded with it.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return a.fail(err, "Logout failed")
	}
	a.println(a.ui.Success("Logged out."))
	return nil
}
