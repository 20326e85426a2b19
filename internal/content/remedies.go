package content

import (
	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
)

// Remedy is one home-remedy reference entry. Doshas lists the base types
// the remedy is recommended for; empty means suitable for all.
type Remedy struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Ailment     string        `json:"ailment"`
	Preparation string        `json:"preparation"`
	Doshas      []enums.Dosha `json:"doshas,omitempty"`
}

var remedies = []Remedy{
	{
		ID:          "ginger-honey-tea",
		Name:        "Ginger Honey Tea",
		Category:    "digestion",
		Ailment:     "sluggish digestion, mild nausea",
		Preparation: "Simmer sliced fresh ginger for five minutes, cool slightly, stir in a spoon of raw honey.",
		Doshas:      []enums.Dosha{enums.DoshaVata, enums.DoshaKapha},
	},
	{
		ID:          "cumin-coriander-fennel",
		Name:        "CCF Tea",
		Category:    "digestion",
		Ailment:     "bloating, post-meal heaviness",
		Preparation: "Steep equal parts cumin, coriander, and fennel seeds in hot water for ten minutes.",
	},
	{
		ID:          "aloe-rose-cooler",
		Name:        "Aloe Rose Cooler",
		Category:    "skin",
		Ailment:     "acidity, skin heat, irritability",
		Preparation: "Blend two spoons of aloe pulp with rose water and a pinch of cardamom; drink chilled.",
		Doshas:      []enums.Dosha{enums.DoshaPitta},
	},
	{
		ID:          "turmeric-milk",
		Name:        "Golden Milk",
		Category:    "immunity",
		Ailment:     "seasonal colds, poor sleep",
		Preparation: "Warm milk with half a teaspoon of turmeric, black pepper, and a little ghee before bed.",
		Doshas:      []enums.Dosha{enums.DoshaVata, enums.DoshaKapha},
	},
	{
		ID:          "triphala-night",
		Name:        "Triphala at Night",
		Category:    "digestion",
		Ailment:     "irregular elimination",
		Preparation: "Half a teaspoon of triphala powder in warm water thirty minutes before sleep.",
	},
	{
		ID:          "sesame-oil-gargle",
		Name:        "Sesame Oil Pulling",
		Category:    "oral",
		Ailment:     "gum sensitivity, dry mouth",
		Preparation: "Swish a spoon of warm sesame oil for five to ten minutes on an empty stomach, then rinse.",
		Doshas:      []enums.Dosha{enums.DoshaVata},
	},
	{
		ID:          "trikatu-honey",
		Name:        "Trikatu with Honey",
		Category:    "respiratory",
		Ailment:     "congestion, heaviness after meals",
		Preparation: "A quarter teaspoon of trikatu mixed into honey, taken before lunch.",
		Doshas:      []enums.Dosha{enums.DoshaKapha},
	},
	{
		ID:          "brahmi-tea",
		Name:        "Brahmi Tea",
		Category:    "mind",
		Ailment:     "racing thoughts, poor focus",
		Preparation: "Steep dried brahmi leaves for seven minutes; sweeten with jaggery if needed.",
		Doshas:      []enums.Dosha{enums.DoshaVata, enums.DoshaPitta},
	},
}

// RemedyByID returns the remedy with the given id.
func RemedyByID(id string) (Remedy, error) {
	for _, remedy := range remedies {
		if remedy.ID == id {
			return remedy, nil
		}
	}
	return Remedy{}, pkgerrors.New(pkgerrors.CodeNotFound, "remedy not found")
}

// Remedies returns remedies filtered by optional category and dosha. Empty
// filters match everything.
func Remedies(category string, dosha enums.Dosha) []Remedy {
	out := make([]Remedy, 0, len(remedies))
	for _, remedy := range remedies {
		if category != "" && remedy.Category != category {
			continue
		}
		if dosha != "" && !remedySuits(remedy, dosha) {
			continue
		}
		out = append(out, remedy)
	}
	return out
}

func remedySuits(remedy Remedy, dosha enums.Dosha) bool {
	if len(remedy.Doshas) == 0 {
		return true
	}
	for _, d := range remedy.Doshas {
		if d == dosha {
			return true
		}
	}
	return false
}
