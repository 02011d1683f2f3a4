package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/gmc-client/internal/service"
	"github.com/MKhiriev/gmc-client/models"
)

func (a *App) whoami(ctx context.Context, _ []string) error {
	s, ok, err := a.services.AuthService.Session(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	if s.MfaPending {
		fmt.Fprintln(a.out, "MFA code pending: run mfa-submit")
		return nil
	}

	me, err := a.services.UserService.FetchMe(ctx)
	if errors.Is(err, service.ErrNotLoggedIn) {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	if err != nil {
		return err
	}
	return a.printJSON(me)
}

func (a *App) user(ctx context.Context, args []string) error {
	pos, _, err := positional(args, 1, "user <id>")
	if err != nil {
		return err
	}

	u, err := a.services.UserService.FetchUser(ctx, pos[0])
	if err != nil {
		return err
	}
	return a.printJSON(u)
}

func (a *App) updateMe(ctx context.Context, args []string) error {
	fs := a.flagSet("update-me")
	username := fs.String("username", "", "new username")
	email := fs.String("email", "", "new email")
	alerts := fs.Bool("alert-emails", false, "receive alert emails")
	changePassword := fs.Bool("change-password", false, "prompt for a new password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	set := visited(fs)
	var params models.UserUpdateParams
	if set["username"] {
		params.Username = models.String(*username)
	}
	if set["email"] {
		params.Email = models.String(*email)
	}
	if set["alert-emails"] {
		params.AlertEmails = models.Bool(*alerts)
	}
	if *changePassword {
		current, err := a.prompt.Password("Current password")
		if err != nil {
			return err
		}
		next, err := a.prompt.Password("New password")
		if err != nil {
			return err
		}
		repeat, err := a.prompt.Password("Repeat new password")
		if err != nil {
			return err
		}
		if next != repeat {
			return ErrPasswordMismatch
		}
		params.CurrentPassword = models.String(current)
		params.NewPassword = models.String(next)
	}

	if params.IsEmpty() {
		return ErrNothingToUpdate
	}

	resp, err := a.services.UserService.UpdateMe(ctx, params)
	if err != nil {
		return err
	}
	a.printDescription(resp, "Account updated")
	return nil
}

// deleteMe removes the account and then logs off locally.
func (a *App) deleteMe(ctx context.Context, _ []string) error {
	password, err := a.prompt.Password("Password")
	if err != nil {
		return err
	}

	resp, err := a.services.UserService.DeleteMe(ctx, password)
	if err != nil {
		return err
	}
	a.printDescription(resp, "Account deleted")

	return a.services.AuthService.Logoff(ctx)
}

func (a *App) info(ctx context.Context, _ []string) error {
	info, err := a.services.InstanceService.FetchInstanceInfo(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(info)
}
