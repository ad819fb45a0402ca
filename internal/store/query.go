package store

import (
	"slices"
	"strings"
	"time"

	"github.com/eraycan/toplana/internal/model"
)

// FilteredAds returns the listing feed: the ad collection narrowed by the
// category filter and the search query, ordered upcoming-first.
//
// FILTER PIPELINE (both conditions must hold):
//  1. category — keep all when no category is selected, otherwise only ads
//     of the selected category;
//  2. search — when the query is non-empty, keep ads where the lowercased
//     query is a substring of the title, description or location, OR
//     matches at least one tag. Case-insensitive, OR across fields.
//
// ORDER: a stable total order with two keys. Primary: upcoming events
// (start >= now) before past ones. Secondary: chronological ascending
// within each partition. Ads whose date cannot be parsed sort into the past
// partition before all dated ads (zero time).
func (s *Store) FilteredAds() []model.Advertisement {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	out := make([]model.Advertisement, 0, len(s.ads))
	for i := range s.ads {
		ad := &s.ads[i]
		if s.selectedCategory != "" && ad.Category.ID != s.selectedCategory {
			continue
		}
		if !matchesQuery(ad, s.searchQuery) {
			continue
		}
		out = append(out, ad.Clone())
	}

	slices.SortStableFunc(out, func(a, b model.Advertisement) int {
		aPast, aAt := sortKey(&a, now)
		bPast, bAt := sortKey(&b, now)
		if aPast != bPast {
			if aPast {
				return 1
			}
			return -1
		}
		return aAt.Compare(bAt)
	})

	return out
}

// sortKey classifies an ad against now: past-or-upcoming plus its start
// instant. Unparseable dates are past with a zero instant.
func sortKey(ad *model.Advertisement, now time.Time) (past bool, at time.Time) {
	at, ok := ad.StartsAt()
	if !ok {
		return true, time.Time{}
	}
	return at.Before(now), at
}

// matchesQuery implements the search half of the filter pipeline.
func matchesQuery(ad *model.Advertisement, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(ad.Title), query) ||
		strings.Contains(strings.ToLower(ad.Description), query) ||
		strings.Contains(strings.ToLower(ad.Location), query) {
		return true
	}
	for _, tag := range ad.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// UpcomingJoined returns the session's joined ads whose calendar date is
// today or later. The comparison is date-only (midnight on both sides), so
// an event scheduled for today still counts as upcoming.
func (s *Store) UpcomingJoined() []model.Advertisement {
	return s.joinedByTime(true)
}

// PastJoined returns the session's joined ads whose calendar date has
// passed.
func (s *Store) PastJoined() []model.Advertisement {
	return s.joinedByTime(false)
}

func (s *Store) joinedByTime(upcoming bool) []model.Advertisement {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var out []model.Advertisement
	for i := range s.ads {
		ad := &s.ads[i]
		if !slices.Contains(s.joined, ad.ID) {
			continue
		}
		day, ok := ad.Day()
		past := !ok || day.Before(today)
		if past == upcoming {
			continue
		}
		out = append(out, ad.Clone())
	}
	return out
}

// MyAds returns the ads authored by the active session user, newest first.
// Authorship is matched by the frozen author contact, so ads created before
// a (hypothetical) email change would stop matching — contact is the only
// identity an ad carries. Empty when anonymous.
func (s *Store) MyAds() []model.Advertisement {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.currentLocked()
	if user == nil {
		return nil
	}

	var out []model.Advertisement
	for i := range s.ads {
		if s.ads[i].AuthorContact == user.Email {
			out = append(out, s.ads[i].Clone())
		}
	}
	return out
}
