package dosha

import (
	"testing"

	"github.com/ayurnest/ayurnest-backend/pkg/enums"
)

func TestScoreStrictMajority(t *testing.T) {
	answers := map[int]enums.Dosha{
		0: enums.DoshaKapha,
		1: enums.DoshaKapha,
		2: enums.DoshaKapha,
		3: enums.DoshaVata,
		4: enums.DoshaPitta,
	}
	if got := Score(answers); got != enums.ConstitutionKapha {
		t.Fatalf("expected kapha, got %s", got)
	}
}

func TestScoreTwoWayTieReturnsCompound(t *testing.T) {
	answers := map[int]enums.Dosha{
		0: enums.DoshaVata,
		1: enums.DoshaVata,
		2: enums.DoshaPitta,
		3: enums.DoshaPitta,
		4: enums.DoshaKapha,
	}
	if got := Score(answers); got != enums.ConstitutionVataPitta {
		t.Fatalf("expected vata-pitta, got %s", got)
	}
}

func TestScoreCompoundPairs(t *testing.T) {
	cases := []struct {
		name    string
		answers map[int]enums.Dosha
		want    enums.Constitution
	}{
		{
			name: "pitta kapha tie",
			answers: map[int]enums.Dosha{
				0: enums.DoshaPitta,
				1: enums.DoshaPitta,
				2: enums.DoshaKapha,
				3: enums.DoshaKapha,
				4: enums.DoshaVata,
			},
			want: enums.ConstitutionPittaKapha,
		},
		{
			name: "vata kapha tie",
			answers: map[int]enums.Dosha{
				0: enums.DoshaVata,
				1: enums.DoshaVata,
				2: enums.DoshaKapha,
				3: enums.DoshaKapha,
				4: enums.DoshaPitta,
			},
			want: enums.ConstitutionVataKapha,
		},
	}

	for _, tc := range cases {
		if got := Score(tc.answers); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestScoreThreeWayTieReturnsTridosha(t *testing.T) {
	// Only three of five questions answered, one per dosha.
	answers := map[int]enums.Dosha{
		0: enums.DoshaVata,
		2: enums.DoshaPitta,
		4: enums.DoshaKapha,
	}
	if got := Score(answers); got != enums.ConstitutionTridosha {
		t.Fatalf("expected tridosha, got %s", got)
	}
}

func TestScoreEmptyAnswersReturnsTridosha(t *testing.T) {
	if got := Score(map[int]enums.Dosha{}); got != enums.ConstitutionTridosha {
		t.Fatalf("expected tridosha for empty answers, got %s", got)
	}
}

func TestScorePartialAnswersTalliedLiterally(t *testing.T) {
	answers := map[int]enums.Dosha{
		1: enums.DoshaPitta,
		3: enums.DoshaPitta,
	}
	if got := Score(answers); got != enums.ConstitutionPitta {
		t.Fatalf("expected pitta, got %s", got)
	}
}

func TestProfileForUnknownConstitution(t *testing.T) {
	if _, err := ProfileFor(enums.Constitution("airbender")); err == nil {
		t.Fatal("expected error for unknown constitution")
	}
}

func TestProfilesCoverAllConstitutions(t *testing.T) {
	all := Profiles()
	if len(all) != len(enums.Constitutions()) {
		t.Fatalf("expected %d profiles, got %d", len(enums.Constitutions()), len(all))
	}
	for _, p := range all {
		if p.Title == "" || p.Summary == "" {
			t.Fatalf("profile %s has empty content", p.Constitution)
		}
	}
}

func TestQuestionsShape(t *testing.T) {
	qs := Questions()
	if len(qs) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(qs))
	}
	for i, q := range qs {
		if q.Index != i {
			t.Fatalf("question %d has index %d", i, q.Index)
		}
		if len(q.Options) != 3 {
			t.Fatalf("question %d has %d options", i, len(q.Options))
		}
		for _, opt := range q.Options {
			if !opt.Dosha.IsValid() {
				t.Fatalf("question %d option %q has invalid dosha", i, opt.Label)
			}
		}
	}
}
