package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/gmc-client/models"
)

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.flagSet("login")
	username := fs.String("u", "", "username")
	code := fs.String("code", "", "MFA code, prompted when the account requires one")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" {
		u, err := a.prompt.Line("Username")
		if err != nil {
			return err
		}
		*username = u
	}

	password, err := a.prompt.Password("Password")
	if err != nil {
		return err
	}

	result, err := a.services.AuthService.Login(ctx, *username, password)
	if err != nil {
		return err
	}

	if result.Mfa {
		fmt.Fprintln(a.out, "MFA code required")
		return a.submitCode(ctx, *code)
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", *username)
	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.flagSet("register")
	username := fs.String("u", "", "username")
	email := fs.String("e", "", "email")
	captchaOut := fs.String("captcha-out", "captcha.png", "where to save the captcha image")
	if err := fs.Parse(args); err != nil {
		return err
	}

	info, err := a.services.InstanceService.FetchInstanceInfo(ctx)
	if err != nil {
		return err
	}

	req := models.RegisterRequest{Username: *username, Email: *email}
	if req.Username == "" {
		if req.Username, err = a.prompt.Line("Username"); err != nil {
			return err
		}
	}
	if req.Email == "" {
		if req.Email, err = a.prompt.Line("Email"); err != nil {
			return err
		}
	}

	if req.Password, err = a.prompt.Password("Password"); err != nil {
		return err
	}
	repeat, err := a.prompt.Password("Repeat password")
	if err != nil {
		return err
	}
	if repeat != req.Password {
		return ErrPasswordMismatch
	}

	if info.Captcha {
		if req.CaptchaID, err = a.saveCaptcha(ctx, *captchaOut); err != nil {
			return err
		}
		if req.CaptchaAnswer, err = a.prompt.Line("Captcha answer"); err != nil {
			return err
		}
	}

	if _, err = a.services.AuthService.Register(ctx, req); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered and logged in as %s\n", req.Username)
	return nil
}

func (a *App) saveCaptcha(ctx context.Context, path string) (string, error) {
	id, err := a.services.InstanceService.FetchCaptcha(ctx)
	if err != nil {
		return "", err
	}

	f, err := a.create(path)
	if err != nil {
		return "", fmt.Errorf("create captcha file: %w", err)
	}
	if err = a.services.InstanceService.FetchCaptchaImage(ctx, id, f); err != nil {
		f.Close()
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("write captcha file: %w", err)
	}

	fmt.Fprintf(a.out, "Captcha saved to %s\n", path)
	return id, nil
}

func (a *App) readCode(raw string) (int, error) {
	if raw == "" {
		var err error
		if raw, err = a.prompt.Line("MFA code"); err != nil {
			return 0, err
		}
	}
	return parseCode(raw)
}

func (a *App) submitCode(ctx context.Context, raw string) error {
	code, err := a.readCode(raw)
	if err != nil {
		return err
	}

	if _, err = a.services.AuthService.MfaSubmit(ctx, code); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged in")
	return nil
}

func (a *App) mfaSubmit(ctx context.Context, args []string) error {
	fs := a.flagSet("mfa-submit")
	code := fs.String("code", "", "MFA code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return a.submitCode(ctx, *code)
}

func (a *App) mfaSetup(ctx context.Context, args []string) error {
	fs := a.flagSet("mfa-setup")
	code := fs.String("code", "", "first code from the authenticator app")
	if err := fs.Parse(args); err != nil {
		return err
	}

	start, err := a.services.AuthService.MfaStartSetup(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Add this URI to your authenticator app:\n%s\n", start.MfaURI)
	if err = a.copy(start.MfaURI); err != nil {
		a.logger.Warn().Err(err).Msg("copy MFA URI to clipboard")
	} else {
		fmt.Fprintln(a.out, "(copied to clipboard)")
	}

	c, err := a.readCode(*code)
	if err != nil {
		return err
	}

	resp, err := a.services.AuthService.MfaFinishSetup(ctx, c)
	if err != nil {
		return err
	}

	a.printDescription(resp, "MFA enabled")
	return nil
}

func (a *App) mfaDisable(ctx context.Context, args []string) error {
	fs := a.flagSet("mfa-disable")
	code := fs.String("code", "", "current MFA code")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, err := a.readCode(*code)
	if err != nil {
		return err
	}

	resp, err := a.services.AuthService.MfaDisable(ctx, c)
	if err != nil {
		return err
	}

	a.printDescription(resp, "MFA disabled")
	return nil
}

func (a *App) logoff(ctx context.Context, _ []string) error {
	if err := a.services.AuthService.Logoff(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged off")
	return nil
}

func (a *App) printDescription(c models.Confirmation, fallback string) {
	printDescription(a.out, c, fallback)
}

func printDescription(w io.Writer, c models.Confirmation, fallback string) {
	if d := c.Description(); d != "" {
		fmt.Fprintln(w, d)
		return
	}
	fmt.Fprintln(w, fallback)
}
