package model

import "time"

// Date and time-of-day layouts used by Advertisement. The date is a plain
// calendar date with no timezone; the optional time is a wall-clock time.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Participant is a display snapshot of someone attending an advertisement:
// the author (always the first participant) or a joiner.
type Participant struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// Advertisement is a posted event listing with a capacity and a schedule.
//
// AUTHOR IDENTITY IS A FROZEN SNAPSHOT:
// AuthorName, AuthorContact, and AuthorAvatar are copied from the author's
// user record at creation time, not looked up live. A later profile rename
// deliberately does NOT propagate here — the listing keeps showing whoever
// posted it, and no cascading update is ever needed. This is intentional
// denormalization, not a missing join.
//
// Participants is the durable roster of joiners (author excluded). The
// capacity invariant holds at all times after creation:
//
//	1 <= CurrentParticipants <= MaxParticipants
//
// with CurrentParticipants == 1 + len(Participants), since the author
// occupies the first slot.
type Advertisement struct {
	ID                  string        `json:"id"`
	Title               string        `json:"title"`
	Description         string        `json:"description"`
	Category            Category      `json:"category"`
	Location            string        `json:"location"`
	Date                string        `json:"date"`           // DateLayout
	Time                string        `json:"time,omitempty"` // TimeLayout, optional
	MaxParticipants     int           `json:"maxParticipants"`
	CurrentParticipants int           `json:"currentParticipants"`
	AuthorName          string        `json:"authorName"`
	AuthorContact       string        `json:"authorContact"`
	AuthorAvatar        string        `json:"authorAvatar,omitempty"`
	CreatedAt           time.Time     `json:"createdAt"`
	Tags                []string      `json:"tags"`
	Participants        []Participant `json:"participants,omitempty"`
}

// StartsAt returns the ad's start instant (date plus time-of-day, midnight
// when no time is set). ok is false when the date does not parse.
func (a *Advertisement) StartsAt() (t time.Time, ok bool) {
	day, err := time.ParseInLocation(DateLayout, a.Date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	if a.Time == "" {
		return day, true
	}
	tod, err := time.Parse(TimeLayout, a.Time)
	if err != nil {
		// Date is still usable on its own.
		return day, true
	}
	return day.Add(time.Duration(tod.Hour())*time.Hour + time.Duration(tod.Minute())*time.Minute), true
}

// Day returns the ad's calendar date at midnight local time.
// ok is false when the date does not parse.
func (a *Advertisement) Day() (t time.Time, ok bool) {
	day, err := time.ParseInLocation(DateLayout, a.Date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// HasParticipant reports whether the email is already on the roster.
// The author is checked separately (self-join is forbidden upstream).
func (a *Advertisement) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p.Email == email {
			return true
		}
	}
	return false
}

// Full reports whether every capacity slot is taken.
func (a *Advertisement) Full() bool {
	return a.CurrentParticipants >= a.MaxParticipants
}

// Clone returns a deep copy. Queries hand out clones so view code can never
// mutate store-owned state through a shared slice.
func (a *Advertisement) Clone() Advertisement {
	out := *a
	if a.Tags != nil {
		out.Tags = make([]string, len(a.Tags))
		copy(out.Tags, a.Tags)
	}
	if a.Participants != nil {
		out.Participants = make([]Participant, len(a.Participants))
		copy(out.Participants, a.Participants)
	}
	return out
}
