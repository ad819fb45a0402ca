package store

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eraycan/toplana/internal/model"
)

//go:embed seed.yaml
var seedYAML []byte

// seedFile mirrors the layout of seed.yaml. Ads reference categories by id;
// loadSeed resolves them into value copies so an Advertisement is
// self-contained.
type seedFile struct {
	Categories []seedCategory `yaml:"categories"`
	Ads        []seedAd       `yaml:"ads"`
}

type seedCategory struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Icon  string `yaml:"icon"`
	Color string `yaml:"color"`
}

type seedAd struct {
	ID                  string   `yaml:"id"`
	Title               string   `yaml:"title"`
	Description         string   `yaml:"description"`
	Category            string   `yaml:"category"`
	Location            string   `yaml:"location"`
	Date                string   `yaml:"date"`
	Time                string   `yaml:"time"`
	MaxParticipants     int      `yaml:"maxParticipants"`
	CurrentParticipants int      `yaml:"currentParticipants"`
	AuthorName          string   `yaml:"authorName"`
	AuthorContact       string   `yaml:"authorContact"`
	CreatedAt           string   `yaml:"createdAt"`
	Tags                []string `yaml:"tags"`
}

// loadSeed decodes and validates the embedded seed data. The file is
// compiled into the binary, so any error here is a build defect, not a
// runtime condition — New fails loudly instead of starting with a broken
// baseline.
func loadSeed() ([]model.Category, []model.Advertisement, error) {
	var f seedFile
	if err := yaml.Unmarshal(seedYAML, &f); err != nil {
		return nil, nil, fmt.Errorf("store: decoding seed data: %w", err)
	}

	byID := make(map[string]model.Category, len(f.Categories))
	categories := make([]model.Category, 0, len(f.Categories))
	for _, c := range f.Categories {
		icon := model.CategoryIcon(c.Icon)
		if !icon.Valid() {
			return nil, nil, fmt.Errorf("store: seed category %q has unknown icon %q", c.ID, c.Icon)
		}
		if _, dup := byID[c.ID]; dup {
			return nil, nil, fmt.Errorf("store: duplicate seed category id %q", c.ID)
		}
		cat := model.Category{ID: c.ID, Name: c.Name, Icon: icon, Color: c.Color}
		byID[c.ID] = cat
		categories = append(categories, cat)
	}

	ads := make([]model.Advertisement, 0, len(f.Ads))
	for _, a := range f.Ads {
		cat, ok := byID[a.Category]
		if !ok {
			return nil, nil, fmt.Errorf("store: seed ad %q references unknown category %q", a.ID, a.Category)
		}
		createdAt, err := time.ParseInLocation(model.DateLayout, a.CreatedAt, time.Local)
		if err != nil {
			return nil, nil, fmt.Errorf("store: seed ad %q has bad createdAt: %w", a.ID, err)
		}
		if a.MaxParticipants < 2 {
			return nil, nil, fmt.Errorf("store: seed ad %q has capacity %d, minimum is 2", a.ID, a.MaxParticipants)
		}
		if a.CurrentParticipants < 1 || a.CurrentParticipants > a.MaxParticipants {
			return nil, nil, fmt.Errorf("store: seed ad %q breaks the capacity invariant (%d/%d)",
				a.ID, a.CurrentParticipants, a.MaxParticipants)
		}
		ads = append(ads, model.Advertisement{
			ID:                  a.ID,
			Title:               a.Title,
			Description:         a.Description,
			Category:            cat,
			Location:            a.Location,
			Date:                a.Date,
			Time:                a.Time,
			MaxParticipants:     a.MaxParticipants,
			CurrentParticipants: a.CurrentParticipants,
			AuthorName:          a.AuthorName,
			AuthorContact:       a.AuthorContact,
			CreatedAt:           createdAt,
			Tags:                a.Tags,
		})
	}

	return categories, ads, nil
}
