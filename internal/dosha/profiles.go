package dosha

import (
	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
)

// Profile is the encyclopedic entry for one constitution.
type Profile struct {
	Constitution enums.Constitution `json:"constitution"`
	Title        string             `json:"title"`
	Summary      string             `json:"summary"`
	Elements     []string           `json:"elements"`
	Strengths    []string           `json:"strengths"`
	Imbalances   []string           `json:"imbalances"`
	DietTips     []string           `json:"diet_tips"`
}

var profiles = map[enums.Constitution]Profile{
	enums.ConstitutionVata: {
		Constitution: enums.ConstitutionVata,
		Title:        "Vata",
		Summary:      "Governed by air and ether, vata types are quick, creative, and light in body and mind.",
		Elements:     []string{"air", "ether"},
		Strengths:    []string{"creativity", "adaptability", "quick learning"},
		Imbalances:   []string{"anxiety", "dry skin", "irregular digestion", "restless sleep"},
		DietTips:     []string{"favor warm, cooked, grounding meals", "limit raw and cold foods", "keep regular meal times"},
	},
	enums.ConstitutionPitta: {
		Constitution: enums.ConstitutionPitta,
		Title:        "Pitta",
		Summary:      "Governed by fire and water, pitta types are sharp, driven, and run warm.",
		Elements:     []string{"fire", "water"},
		Strengths:    []string{"focus", "strong digestion", "leadership"},
		Imbalances:   []string{"irritability", "acidity", "inflammation", "skin sensitivity"},
		DietTips:     []string{"favor cooling, mildly spiced foods", "limit fried, sour, and very spicy meals", "avoid eating when angry"},
	},
	enums.ConstitutionKapha: {
		Constitution: enums.ConstitutionKapha,
		Title:        "Kapha",
		Summary:      "Governed by earth and water, kapha types are steady, calm, and physically resilient.",
		Elements:     []string{"earth", "water"},
		Strengths:    []string{"endurance", "patience", "strong immunity"},
		Imbalances:   []string{"sluggishness", "weight gain", "congestion", "attachment"},
		DietTips:     []string{"favor light, warm, and spiced foods", "limit dairy and heavy sweets", "eat your largest meal at midday"},
	},
	enums.ConstitutionVataPitta: {
		Constitution: enums.ConstitutionVataPitta,
		Title:        "Vata-Pitta",
		Summary:      "A dual type blending vata's quickness with pitta's intensity; energetic but prone to burnout.",
		Elements:     []string{"air", "ether", "fire"},
		Strengths:    []string{"drive", "creativity", "fast thinking"},
		Imbalances:   []string{"overwork", "nervous tension", "acid digestion"},
		DietTips:     []string{"favor warm, moderately rich meals", "avoid both skipped meals and heavy spice", "wind down before sleep"},
	},
	enums.ConstitutionPittaKapha: {
		Constitution: enums.ConstitutionPittaKapha,
		Title:        "Pitta-Kapha",
		Summary:      "A dual type pairing pitta's fire with kapha's stability; strong constitution with a tendency to excess.",
		Elements:     []string{"fire", "water", "earth"},
		Strengths:    []string{"stamina", "determination", "robust digestion"},
		Imbalances:   []string{"inflammation", "weight gain", "stubbornness"},
		DietTips:     []string{"favor light, bitter, and astringent foods", "limit oily and fried meals", "stay active after eating"},
	},
	enums.ConstitutionVataKapha: {
		Constitution: enums.ConstitutionVataKapha,
		Title:        "Vata-Kapha",
		Summary:      "A dual type mixing vata's lightness with kapha's steadiness; sensitive to cold and changeable routines.",
		Elements:     []string{"air", "ether", "earth", "water"},
		Strengths:    []string{"empathy", "persistence", "imagination"},
		Imbalances:   []string{"cold intolerance", "congestion", "variable energy"},
		DietTips:     []string{"favor warm, lightly spiced, moist foods", "avoid cold drinks and raw meals", "keep a steady daily rhythm"},
	},
	enums.ConstitutionTridosha: {
		Constitution: enums.ConstitutionTridosha,
		Title:        "Tridosha",
		Summary:      "A balanced constitution with all three doshas in roughly equal measure; resilient when routines stay moderate.",
		Elements:     []string{"air", "ether", "fire", "water", "earth"},
		Strengths:    []string{"balance", "adaptability", "even temperament"},
		Imbalances:   []string{"whichever dosha the season or lifestyle aggravates"},
		DietTips:     []string{"eat seasonally", "keep portions moderate", "adjust to whichever dosha feels aggravated"},
	},
}

// ProfileFor looks up the profile for a constitution label.
func ProfileFor(constitution enums.Constitution) (Profile, error) {
	profile, ok := profiles[constitution]
	if !ok {
		return Profile{}, pkgerrors.New(pkgerrors.CodeNotFound, "unknown constitution")
	}
	return profile, nil
}

// Profiles returns every profile keyed in canonical order.
func Profiles() []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, c := range enums.Constitutions() {
		out = append(out, profiles[c])
	}
	return out
}
