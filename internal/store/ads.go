package store

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/eraycan/toplana/internal/apperror"
	"github.com/eraycan/toplana/internal/model"
)

// CreateAdInput is the already-validated form data for a new listing. The
// author is never part of the input — it is always the active session user.
type CreateAdInput struct {
	Title           string
	Description     string
	CategoryID      string
	Location        string
	Date            string // model.DateLayout
	Time            string // model.TimeLayout, optional
	MaxParticipants int
	Tags            []string
}

// CreateAd posts a new advertisement authored by the active session user.
//
// The category id MUST resolve against the fixed category set; an unknown id
// is an explicit validation error, never a silent drop. The new ad starts
// with CurrentParticipants = 1 (the author takes the first slot), carries a
// frozen snapshot of the author's display fields, and is prepended so the
// collection stays most-recent-first.
func (s *Store) CreateAd(in CreateAdInput) (*model.Advertisement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.currentLocked()
	if user == nil {
		return nil, apperror.Unauthenticated("posting an advertisement requires login")
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperror.ValidationFailed("title", "title is required")
	}
	category, ok := s.categoryByIDLocked(in.CategoryID)
	if !ok {
		return nil, apperror.ValidationFailed("categoryId",
			fmt.Sprintf("unknown category %q", in.CategoryID))
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		return nil, apperror.ValidationFailed("location", "location is required")
	}
	if _, err := time.ParseInLocation(model.DateLayout, in.Date, time.Local); err != nil {
		return nil, apperror.ValidationFailed("date",
			fmt.Sprintf("date must be in %s form", model.DateLayout))
	}
	if in.Time != "" {
		if _, err := time.Parse(model.TimeLayout, in.Time); err != nil {
			return nil, apperror.ValidationFailed("time",
				fmt.Sprintf("time must be in %s form", model.TimeLayout))
		}
	}
	if in.MaxParticipants < 2 {
		return nil, apperror.ValidationFailed("maxParticipants",
			"an event needs room for at least 2 participants")
	}

	tags := make([]string, 0, len(in.Tags))
	for _, tag := range in.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	ad := model.Advertisement{
		ID:                  xid.New().String(),
		Title:               title,
		Description:         strings.TrimSpace(in.Description),
		Category:            category,
		Location:            location,
		Date:                in.Date,
		Time:                in.Time,
		MaxParticipants:     in.MaxParticipants,
		CurrentParticipants: 1, // the author
		AuthorName:          user.Name,
		AuthorContact:       user.Email,
		AuthorAvatar:        user.Avatar,
		CreatedAt:           s.now(),
		Tags:                tags,
	}
	s.ads = slices.Insert(s.ads, 0, ad)

	s.logger.Info("advertisement created",
		slog.String("id", ad.ID),
		slog.String("title", ad.Title),
		slog.String("author", ad.AuthorContact),
	)

	// Advertisements are not part of the persisted subset — no snapshot.

	out := ad.Clone()
	return &out, nil
}

// JoinAd reserves one of an advertisement's capacity slots for the active
// session user.
//
// Rules, in order:
//   - no session            → ErrUnauthenticated
//   - unknown ad            → ErrNotFound
//   - author joining own ad → ErrForbidden
//   - already joined        → nil no-op (idempotent; the durable roster
//     also blocks a re-increment after a logout/login cycle)
//   - at capacity           → ErrConflict; neither the counter nor any
//     membership state changes
//
// On success the participant counter increments by exactly one, the user's
// display snapshot is appended to the ad's durable roster, and the ad id
// joins the session's joined set — all atomically under the store lock, so
// 1 <= CurrentParticipants <= MaxParticipants holds at every observable
// moment.
func (s *Store) JoinAd(adID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.currentLocked()
	if user == nil {
		return apperror.Unauthenticated("joining an event requires login")
	}
	ad := s.findAdLocked(adID)
	if ad == nil {
		return apperror.NotFound("advertisement", adID)
	}
	if ad.AuthorContact == user.Email {
		return apperror.Forbidden("you cannot join your own advertisement")
	}

	if ad.HasParticipant(user.Email) {
		// Joined in an earlier session: the roster entry survives logout,
		// the session-scoped joined set does not. Relink without touching
		// the counter.
		if !slices.Contains(s.joined, adID) {
			s.joined = append(s.joined, adID)
			s.persistLocked()
		}
		return nil
	}
	if slices.Contains(s.joined, adID) {
		return nil
	}

	if ad.Full() {
		return apperror.Conflict("advertisement", fmt.Sprintf("%s is already full", adID))
	}

	ad.CurrentParticipants++
	ad.Participants = append(ad.Participants, model.Participant{
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
	})
	s.joined = append(s.joined, adID)

	s.logger.Info("joined advertisement",
		slog.String("id", adID),
		slog.String("email", user.Email),
		slog.Int("participants", ad.CurrentParticipants),
	)
	s.persistLocked()

	return nil
}

// ParticipantsOf returns the attendance list for an advertisement: the
// author first, then the durable roster in join order. Unknown ads yield an
// empty list.
func (s *Store) ParticipantsOf(adID string) []model.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()

	ad := s.findAdLocked(adID)
	if ad == nil {
		return []model.Participant{}
	}

	avatar := ad.AuthorAvatar
	if avatar == "" {
		// Seed ads carry no author avatar; derive one the same way
		// registration does.
		avatar = model.AvatarFor(ad.AuthorName)
	}

	out := make([]model.Participant, 0, 1+len(ad.Participants))
	out = append(out, model.Participant{
		Name:   ad.AuthorName,
		Email:  ad.AuthorContact,
		Avatar: avatar,
	})
	out = append(out, ad.Participants...)
	return out
}
