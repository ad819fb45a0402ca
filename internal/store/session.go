package store

import (
	"log/slog"
	"strings"

	"github.com/eraycan/toplana/internal/apperror"
	"github.com/eraycan/toplana/internal/model"
)

// ProfileUpdate carries a partial profile edit. Nil fields are left
// untouched; a non-nil field overwrites, even with an empty string (that is
// how a bio gets cleared). Email and password are deliberately absent —
// email is the login key and passwords change through a dedicated flow, not
// a profile merge.
type ProfileUpdate struct {
	Name      *string
	Bio       *string
	Instagram *string
	Twitter   *string
}

// Register creates a new account and signs it in.
//
// The email must not already exist in the directory (case-sensitive exact
// match → apperror.ErrConflict). The avatar is derived deterministically
// from the display name; bio and social handles start empty. The previous
// session's joined set, if any, is untouched — only Logout clears it.
func (s *Store) Register(name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, apperror.ValidationFailed("name", "name is required")
	}
	if email == "" {
		return nil, apperror.ValidationFailed("email", "email is required")
	}
	if password == "" {
		return nil, apperror.ValidationFailed("password", "password is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findUserLocked(email) != nil {
		return nil, apperror.Conflict("user", "email already registered")
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Avatar:       model.AvatarFor(name),
	}
	s.users = append(s.users, user)
	s.currentEmail = email

	s.logger.Info("user registered", slog.String("email", email))
	s.persistLocked()

	out := user
	return &out, nil
}

// Login authenticates against the directory and activates the session.
//
// FAILURE IS UNIFORM: an unknown email and a wrong password both return the
// same apperror.ErrInvalidCredentials with the same message and no
// distinguishing side effect, so the login form cannot be used to probe
// which accounts exist.
//
// Login does not reset the joined-ad set; only Logout does.
func (s *Store) Login(email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUserLocked(email)
	if user == nil {
		return nil, apperror.InvalidCredentials()
	}
	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		return nil, apperror.InvalidCredentials()
	}

	s.currentEmail = email

	s.logger.Info("user logged in", slog.String("email", email))
	s.persistLocked()

	out := *user
	return &out, nil
}

// Logout clears the session and, unconditionally, the joined-ad set.
// Membership is session-scoped in this design: the next login starts with
// an empty joined list. (The durable participant rosters on the ads
// themselves are unaffected — see JoinAd.)
//
// Safe to call when already anonymous.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentEmail != "" {
		s.logger.Info("user logged out", slog.String("email", s.currentEmail))
	}
	s.currentEmail = ""
	s.joined = nil
	s.persistLocked()
}

// UpdateProfile merges the supplied fields into the active user's record.
//
// A name change regenerates the avatar with the same derivation used at
// registration; any other change leaves the avatar alone. The frozen author
// snapshots on previously created advertisements are intentionally NOT
// touched — a listing keeps showing the identity that posted it.
func (s *Store) UpdateProfile(update ProfileUpdate) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.currentLocked()
	if user == nil {
		return nil, apperror.Unauthenticated("updating a profile requires login")
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, apperror.ValidationFailed("name", "name cannot be empty")
		}
		if name != user.Name {
			user.Name = name
			user.Avatar = model.AvatarFor(name)
		}
	}
	if update.Bio != nil {
		user.Bio = strings.TrimSpace(*update.Bio)
	}
	if update.Instagram != nil {
		user.Instagram = strings.TrimSpace(*update.Instagram)
	}
	if update.Twitter != nil {
		user.Twitter = strings.TrimSpace(*update.Twitter)
	}

	s.logger.Info("profile updated", slog.String("email", user.Email))
	s.persistLocked()

	out := *user
	return &out, nil
}
