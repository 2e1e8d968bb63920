package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/wanttogo/internal/api"
	"github.com/dmitrijs2005/wanttogo/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readCredentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}
	return userName, password, nil
}

// Register prompts for a user name and password and creates the account.
func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.client.Register(ctx, userName, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registration successful! Please login.")
	return nil
}

// Login prompts for credentials and opens a session.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.client.Login(ctx, userName, string(password)); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.client.UserName())
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.client.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// destinationKey turns "Swiss Alps" or "swiss-alps" into the catalog key.
func destinationKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// Show prints a destination. Both "Swiss Alps" and "swiss-alps" work.
func (a *App) Show(ctx context.Context, name string) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	d, err := a.client.ViewDestination(ctx, destinationKey(name))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (%s)\n%s\n", d.Name, d.Country, d.Description)
	if d.MediaURL != "" {
		fmt.Fprintln(a.out, "Video:", d.MediaURL)
	}
	if d.AlreadyInList {
		fmt.Fprintln(a.out, "* on your want-to-go list")
	}
	return nil
}

// Add puts a destination on the list. It accepts the same spellings as
// Show; the list itself stores the catalog display name.
func (a *App) Add(ctx context.Context, name string) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	d, err := a.client.ViewDestination(ctx, destinationKey(name))
	if err != nil {
		return err
	}

	resp, err := a.client.AddToList(ctx, d.Name)
	if err != nil {
		return err
	}

	if resp.Outcome == api.OutcomeAlreadyPresent {
		fmt.Fprintln(a.out, "This destination is already in your want-to-go list!")
		return nil
	}
	fmt.Fprintln(a.out, "Successfully added to your want-to-go list!")
	return nil
}

func (a *App) List(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	list, err := a.client.ViewList(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "Your want-to-go list is empty.")
		return nil
	}
	for i, name := range list {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, name)
	}
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return err
	}
	a.setMode(ModeOnline)
	fmt.Fprintln(a.out, "pong")
	return nil
}
