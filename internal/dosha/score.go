package dosha

import "github.com/ayurnest/ayurnest-backend/pkg/enums"

// Score tallies quiz answers and returns the dominant constitution.
//
// The quiz has five questions with one of the three base doshas per chosen
// option. The label with the highest count wins; a two-way tie at the top
// maps to the fixed compound label for that pair and a three-way tie maps
// to tridosha. Partial answer maps are tallied as-is, so an empty map also
// resolves to tridosha.
func Score(answers map[int]enums.Dosha) enums.Constitution {
	var vata, pitta, kapha int
	for _, choice := range answers {
		switch choice {
		case enums.DoshaVata:
			vata++
		case enums.DoshaPitta:
			pitta++
		case enums.DoshaKapha:
			kapha++
		}
	}

	max := vata
	if pitta > max {
		max = pitta
	}
	if kapha > max {
		max = kapha
	}

	vataLeads := vata == max
	pittaLeads := pitta == max
	kaphaLeads := kapha == max

	switch {
	case vataLeads && pittaLeads && kaphaLeads:
		return enums.ConstitutionTridosha
	case vataLeads && pittaLeads:
		return enums.ConstitutionVataPitta
	case pittaLeads && kaphaLeads:
		return enums.ConstitutionPittaKapha
	case vataLeads && kaphaLeads:
		return enums.ConstitutionVataKapha
	case vataLeads:
		return enums.ConstitutionVata
	case pittaLeads:
		return enums.ConstitutionPitta
	default:
		return enums.ConstitutionKapha
	}
}
