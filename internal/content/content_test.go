package content

import (
	"testing"

	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
)

func TestRoutineForEveryBaseDosha(t *testing.T) {
	for _, d := range []enums.Dosha{enums.DoshaVata, enums.DoshaPitta, enums.DoshaKapha} {
		routine, ok := RoutineFor(d)
		if !ok {
			t.Fatalf("missing routine for %s", d)
		}
		if len(routine.Steps) == 0 {
			t.Fatalf("routine for %s has no steps", d)
		}
	}
}

func TestRoutineForUnknownDosha(t *testing.T) {
	if _, ok := RoutineFor(enums.Dosha("ether")); ok {
		t.Fatal("expected no routine for unknown dosha")
	}
}

func TestRemedyByIDNotFound(t *testing.T) {
	_, err := RemedyByID("no-such-remedy")
	if err == nil {
		t.Fatal("expected not found error")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestRemediesFilterByCategory(t *testing.T) {
	results := Remedies("digestion", "")
	if len(results) == 0 {
		t.Fatal("expected digestion remedies")
	}
	for _, r := range results {
		if r.Category != "digestion" {
			t.Fatalf("unexpected category %s", r.Category)
		}
	}
}

func TestRemediesFilterByDoshaIncludesUniversal(t *testing.T) {
	results := Remedies("", enums.DoshaPitta)
	var sawUniversal bool
	for _, r := range results {
		if len(r.Doshas) == 0 {
			sawUniversal = true
			continue
		}
		var suits bool
		for _, d := range r.Doshas {
			if d == enums.DoshaPitta {
				suits = true
			}
		}
		if !suits {
			t.Fatalf("remedy %s does not suit pitta", r.ID)
		}
	}
	if !sawUniversal {
		t.Fatal("expected universal remedies in dosha-filtered results")
	}
}
