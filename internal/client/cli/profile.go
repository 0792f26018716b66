package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogctl/internal/client/api"
	"github.com/dmitrijs2005/blogctl/internal/common"
)

// Profile prints the current user's settings.
func (a *App) Profile(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not signed in")
		return common.ErrAuthRequired
	}

	fmt.Fprintf(a.out, "Username: %s\n", user.Username)
	fmt.Fprintf(a.out, "Email:    %s\n", user.Email)
	if user.Bio != "" {
		fmt.Fprintf(a.out, "Bio:      %s\n", user.Bio)
	}
	if user.Image != "" {
		fmt.Fprintf(a.out, "Avatar:   %s\n", user.Image)
	}
	return nil
}

// UpdateProfile changes profile settings. Fields left empty keep their
// current values; the server may rotate the token, in which case the
// fresh one replaces the persisted credential.
func (a *App) UpdateProfile(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Sign in to change your profile")
		return common.ErrAuthRequired
	}

	var update api.UserUpdate

	username, err := getSimpleText(a.reader, promptWithCurrent("Username", user.Username), a.out)
	if err != nil {
		return err
	}
	update.Username = username

	email, err := getSimpleText(a.reader, promptWithCurrent("Email", user.Email), a.out)
	if err != nil {
		return err
	}
	update.Email = email

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	update.Password = string(password)

	image, err := getSimpleText(a.reader, promptWithCurrent("Avatar image URL", user.Image), a.out)
	if err != nil {
		return err
	}
	update.Image = image

	updated, err := a.api.UpdateUser(ctx, a.session.Token(), update)
	if err != nil {
		printRequestError(a.out, err)
		return err
	}

	token := updated.Token
	if token == "" {
		token = a.session.Token()
	}
	if err := a.session.Login(ctx, updated, token); err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Profile updated")
	return nil
}
