package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/eraycan/toplana/internal/model"
)

// iconGlyphs maps the closed category icon enumeration onto terminal
// glyphs. Every CategoryIcon constant has an entry; an unknown icon cannot
// occur because seed loading validates against the enum.
var iconGlyphs = map[model.CategoryIcon]string{
	model.IconGamepad:  "🎮",
	model.IconFilm:     "🎬",
	model.IconDumbbell: "🏋",
	model.IconMusic:    "🎵",
	model.IconUtensils: "🍽",
	model.IconMapPin:   "📍",
	model.IconBookOpen: "📖",
	model.IconSparkles: "✨",
}

func glyph(icon model.CategoryIcon) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return "•"
}

// renderAds writes the listing feed in the order the store returned it.
func renderAds(w io.Writer, ads []model.Advertisement) {
	if len(ads) == 0 {
		fmt.Fprintln(w, "No listings match.")
		return
	}
	for i, ad := range ads {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderAd(w, &ad)
	}
}

func renderAd(w io.Writer, ad *model.Advertisement) {
	when := ad.Date
	if ad.Time != "" {
		when += " " + ad.Time
	}
	fmt.Fprintf(w, "%s %s [%s]\n", glyph(ad.Category.Icon), ad.Title, ad.ID)
	fmt.Fprintf(w, "   %s | %s | %s\n", ad.Category.Name, when, ad.Location)
	fmt.Fprintf(w, "   participants: %d/%d | by %s\n",
		ad.CurrentParticipants, ad.MaxParticipants, ad.AuthorName)
	if ad.Description != "" {
		fmt.Fprintf(w, "   %s\n", ad.Description)
	}
	if len(ad.Tags) > 0 {
		fmt.Fprintf(w, "   tags: %s\n", strings.Join(ad.Tags, ", "))
	}
}

func renderParticipants(w io.Writer, parts []model.Participant) {
	if len(parts) == 0 {
		fmt.Fprintln(w, "No such listing.")
		return
	}
	for i, p := range parts {
		role := "joined"
		if i == 0 {
			role = "author"
		}
		fmt.Fprintf(w, "%d. %s <%s> (%s)\n", i+1, p.Name, p.Email, role)
	}
}

func renderUser(w io.Writer, u *model.User) {
	fmt.Fprintf(w, "%s <%s>\n", u.Name, u.Email)
	if u.Bio != "" {
		fmt.Fprintf(w, "bio: %s\n", u.Bio)
	}
	if u.Instagram != "" {
		fmt.Fprintf(w, "instagram: @%s\n", u.Instagram)
	}
	if u.Twitter != "" {
		fmt.Fprintf(w, "twitter: @%s\n", u.Twitter)
	}
	fmt.Fprintf(w, "avatar: %s\n", u.Avatar)
}
