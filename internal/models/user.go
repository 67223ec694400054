// Package models defines the wire-level entities exchanged between the
// CareKeeper client and server, plus the patch structs used for partial
// updates. A patch field is applied only when non-nil, so a submitted value
// overrides the stored one and an omitted field leaves it untouched.
package models

import "time"

// EmergencyContact is the person to reach when the cared-for person needs
// urgent help.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// Preferences holds per-user application settings.
type Preferences struct {
	Notifications bool   `json:"notifications"`
	Theme         string `json:"theme"`
	Language      string `json:"language"`
}

// User is the public account record. The password hash is kept in the
// server-side credential store and never appears here.
type User struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	Preferences      Preferences      `json:"preferences"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// EmergencyContactPatch updates individual emergency-contact fields.
type EmergencyContactPatch struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
}

// PreferencesPatch updates individual preference fields.
type PreferencesPatch struct {
	Notifications *bool   `json:"notifications,omitempty"`
	Theme         *string `json:"theme,omitempty"`
	Language      *string `json:"language,omitempty"`
}

// UserPatch is a partial profile update. Email is immutable: it is the
// unique key of the credential store.
type UserPatch struct {
	Name             *string                `json:"name,omitempty"`
	Phone            *string                `json:"phone,omitempty"`
	EmergencyContact *EmergencyContactPatch `json:"emergencyContact,omitempty"`
	Preferences      *PreferencesPatch      `json:"preferences,omitempty"`
}

// Apply merges the patch into u field-by-field.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.EmergencyContact != nil {
		if p.EmergencyContact.Name != nil {
			u.EmergencyContact.Name = *p.EmergencyContact.Name
		}
		if p.EmergencyContact.Phone != nil {
			u.EmergencyContact.Phone = *p.EmergencyContact.Phone
		}
		if p.EmergencyContact.Relationship != nil {
			u.EmergencyContact.Relationship = *p.EmergencyContact.Relationship
		}
	}
	if p.Preferences != nil {
		if p.Preferences.Notifications != nil {
			u.Preferences.Notifications = *p.Preferences.Notifications
		}
		if p.Preferences.Theme != nil {
			u.Preferences.Theme = *p.Preferences.Theme
		}
		if p.Preferences.Language != nil {
			u.Preferences.Language = *p.Preferences.Language
		}
	}
}

// DefaultPreferences are assigned at signup.
func DefaultPreferences() Preferences {
	return Preferences{Notifications: true, Theme: "light", Language: "en"}
}
