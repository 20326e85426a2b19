package enums

import "fmt"

// Dosha is one of the three base Ayurvedic body-type categories a quiz
// answer can belong to.
type Dosha string

const (
	DoshaVata  Dosha = "vata"
	DoshaPitta Dosha = "pitta"
	DoshaKapha Dosha = "kapha"
)

var validDoshas = []Dosha{DoshaVata, DoshaPitta, DoshaKapha}

// IsValid checks whether the given dosha matches the canonical enum.
func (d Dosha) IsValid() bool {
	for _, candidate := range validDoshas {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDosha converts raw strings into Dosha.
func ParseDosha(value string) (Dosha, error) {
	for _, candidate := range validDoshas {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid dosha %q", value)
}

// Constitution is the seven-valued body-type classification assigned to a
// user: three base doshas, three pairwise combinations, and the balanced
// tri-dosha type.
type Constitution string

const (
	ConstitutionVata       Constitution = "vata"
	ConstitutionPitta      Constitution = "pitta"
	ConstitutionKapha      Constitution = "kapha"
	ConstitutionVataPitta  Constitution = "vata-pitta"
	ConstitutionPittaKapha Constitution = "pitta-kapha"
	ConstitutionVataKapha  Constitution = "vata-kapha"
	ConstitutionTridosha   Constitution = "tridosha"
)

var validConstitutions = []Constitution{
	ConstitutionVata,
	ConstitutionPitta,
	ConstitutionKapha,
	ConstitutionVataPitta,
	ConstitutionPittaKapha,
	ConstitutionVataKapha,
	ConstitutionTridosha,
}

// IsValid checks whether the given constitution matches the canonical enum.
func (c Constitution) IsValid() bool {
	for _, candidate := range validConstitutions {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseConstitution converts raw strings into Constitution.
func ParseConstitution(value string) (Constitution, error) {
	for _, candidate := range validConstitutions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid constitution %q", value)
}

// Constitutions returns every valid constitution label.
func Constitutions() []Constitution {
	out := make([]Constitution, len(validConstitutions))
	copy(out, validConstitutions)
	return out
}
