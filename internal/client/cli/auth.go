package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/carekeeper/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for the new account's details and registers it. A
// successful signup leaves the user logged in.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := GetOptionalText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	req := models.SignupRequest{Name: name, Email: email, Password: password, Phone: phone}
	if !a.session.Signup(ctx, req) {
		printlnFn("Signup failed")
		return nil
	}

	printlnFn("Welcome,", a.session.User().Name)
	return nil
}

// Login prompts for credentials and authenticates against the server.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if !a.session.Login(ctx, email, password) {
		printlnFn("Login failed: check email and password")
		return nil
	}

	printlnFn("Welcome,", a.session.User().Name)
	return nil
}

// Logout tears down the session. Local state is cleared even when the
// server cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out")
	return nil
}
