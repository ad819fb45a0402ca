// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other
// languages, but without inheritance. Go favours composition over inheritance.
package model

import "net/url"

// Theme is the binary display preference. It is persisted independently of
// the session so the choice survives a logout.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// User represents a registered account in the user directory.
//
// Email is the login key and must be unique across the directory
// (case-sensitive exact match). PasswordHash holds a bcrypt hash — the
// plaintext password never leaves the registration/login call.
//
// Avatar is not user-supplied: it is derived deterministically from the
// display name (see AvatarFor) and regenerated whenever the name changes.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Avatar       string `json:"avatar"`
	Bio          string `json:"bio,omitempty"`
	Instagram    string `json:"instagram,omitempty"`
	Twitter      string `json:"twitter,omitempty"`
}

// AvatarFor derives the avatar URL for a display name.
//
// The scheme targets the ui-avatars image service: the name is
// query-escaped into a generated-initials image with a fixed palette.
// Same name in, same URL out — that determinism is what lets a profile
// rename regenerate the avatar without storing any extra state.
func AvatarFor(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) +
		"&background=6d28d9&color=fff&size=160"
}
