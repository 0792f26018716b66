package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogctl/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, an email and a password and creates
// a new account. On success the returned identity is installed as the
// current session, so the user is signed in right away.
//
// The password byte slice is wiped before returning. Validation errors
// from the server are printed per field.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.api.Register(ctx, userName, email, string(password))
	if err != nil {
		printRequestError(a.out, err)
		return err
	}

	if err := a.session.Login(ctx, user, user.Token); err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Username)
	return nil
}

// Login prompts for credentials, authenticates against the server and
// installs the returned identity and token as the current session. The
// token is persisted, so the next start resumes signed in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		printRequestError(a.out, err)
		return err
	}

	if err := a.session.Login(ctx, user, user.Token); err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", user.Username)
	return nil
}

// Logout drops the persisted token and the in-memory identity.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
