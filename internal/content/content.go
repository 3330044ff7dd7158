// Package content serves the static educational modules.
package content

import (
	"errors"
	"sort"
)

// ErrModuleNotFound is returned when no module exists for a slug.
var ErrModuleNotFound = errors.New("content module not found")

// Module is one static educational unit.
type Module struct {
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Points  []string `json:"points"`
}

var modules = map[string]Module{
	"tracker-intro": {
		Slug:    "tracker-intro",
		Title:   "Periods Tracker",
		Summary: "Enter your last period start date and average cycle length to get the expected next date.",
		Points: []string{
			"A typical cycle runs between 20 and 45 days.",
			"The expected date is the last start plus the cycle length.",
			"Saved predictions appear in your history once you are logged in.",
		},
	},
	"do-and-donts": {
		Slug:    "do-and-donts",
		Title:   "Do & Don'ts",
		Summary: "Small habits that make period days easier.",
		Points: []string{
			"Do: rest, warm compress, light stretching, plenty of water.",
			"Do: change sanitary products regularly.",
			"Don't: excess caffeine.",
			"Don't: heavy exercise on heavy-flow days.",
			"Don't: unhygienic sanitary practices.",
		},
	},
	"diet": {
		Slug:    "diet",
		Title:   "Diet Tips",
		Summary: "Foods that help with energy and iron levels.",
		Points: []string{
			"Spinach, lentils and eggs for iron.",
			"Fresh fruit and vegetables.",
			"Warm or herbal tea.",
			"Drink more water than usual.",
			"If you feel dizzy or weak, favor iron-rich foods and see a doctor.",
		},
	},
	"yoga": {
		Slug:    "yoga",
		Title:   "Yoga for Relief",
		Summary: "Gentle poses that ease cramps.",
		Points: []string{
			"Child's pose.",
			"Cat-Cow.",
			"Legs-up-the-wall.",
			"Deep breathing.",
		},
	},
}

// List returns all modules sorted by slug.
func List() []Module {
	out := make([]Module, 0, len(modules))
	for _, m := range modules {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// Get returns the module for the given slug.
// Returns ErrModuleNotFound if no such module exists.
func Get(slug string) (Module, error) {
	m, ok := modules[slug]
	if !ok {
		return Module{}, ErrModuleNotFound
	}
	return m, nil
}
