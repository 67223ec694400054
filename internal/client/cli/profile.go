package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/carekeeper/internal/models"
)

func (a *App) Profile(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}

	printlnFn("Name: ", u.Name)
	printlnFn("Email:", u.Email)
	printlnFn("Phone:", u.Phone)
	if u.EmergencyContact.Name != "" {
		printlnFn(fmt.Sprintf("Emergency contact: %s (%s), %s",
			u.EmergencyContact.Name, u.EmergencyContact.Relationship, u.EmergencyContact.Phone))
	}
	printlnFn(fmt.Sprintf("Preferences: notifications=%t theme=%s language=%s",
		u.Preferences.Notifications, u.Preferences.Theme, u.Preferences.Language))
	return nil
}

// EditProfile prompts for the editable profile fields. Empty input keeps
// the current value; email cannot be changed.
func (a *App) EditProfile(ctx context.Context) error {
	var patch models.UserPatch

	name, err := GetOptionalText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	if name != "" {
		patch.Name = &name
	}

	phone, err := GetOptionalText(a.reader, "Phone", os.Stdout)
	if err != nil {
		return err
	}
	if phone != "" {
		patch.Phone = &phone
	}

	ecName, err := GetOptionalText(a.reader, "Emergency contact name", os.Stdout)
	if err != nil {
		return err
	}
	ecPhone, err := GetOptionalText(a.reader, "Emergency contact phone", os.Stdout)
	if err != nil {
		return err
	}
	ecRelationship, err := GetOptionalText(a.reader, "Emergency contact relationship", os.Stdout)
	if err != nil {
		return err
	}
	if ecName != "" || ecPhone != "" || ecRelationship != "" {
		ec := &models.EmergencyContactPatch{}
		if ecName != "" {
			ec.Name = &ecName
		}
		if ecPhone != "" {
			ec.Phone = &ecPhone
		}
		if ecRelationship != "" {
			ec.Relationship = &ecRelationship
		}
		patch.EmergencyContact = ec
	}

	if err := a.session.UpdateProfile(ctx, patch); err != nil {
		printlnFn("Failed to update profile:", err.Error())
		return err
	}

	printlnFn("Profile updated")
	return nil
}
