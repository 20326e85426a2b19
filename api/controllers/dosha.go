package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayurnest/ayurnest-backend/api/responses"
	"github.com/ayurnest/ayurnest-backend/api/validators"
	"github.com/ayurnest/ayurnest-backend/internal/dosha"
	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
	"github.com/ayurnest/ayurnest-backend/pkg/logger"
)

// DoshaQuestions returns the quiz questionnaire.
func DoshaQuestions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"questions": dosha.Questions(),
			"count":     dosha.QuestionCount(),
		})
	}
}

type doshaAnswerDTO struct {
	Question int    `json:"question" validate:"min=0"`
	Dosha    string `json:"dosha" validate:"required"`
}

type doshaScoreRequest struct {
	Answers []doshaAnswerDTO `json:"answers" validate:"required,dive"`
}

// DoshaScore tallies quiz answers and returns the winning constitution with
// its profile. Scoring is stateless; saving the result is a profile call.
func DoshaScore(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req doshaScoreRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		answers := make(map[int]enums.Dosha, len(req.Answers))
		for _, answer := range req.Answers {
			if answer.Question >= dosha.QuestionCount() {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "question index out of range"))
				return
			}
			d, err := enums.ParseDosha(answer.Dosha)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid dosha answer"))
				return
			}
			answers[answer.Question] = d
		}

		constitution := dosha.Score(answers)
		profile, err := dosha.ProfileFor(constitution)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"constitution": constitution,
			"profile":      profile,
		})
	}
}

func DoshaProfiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"profiles": dosha.Profiles()})
	}
}

func DoshaProfileDetail(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		constitution, err := enums.ParseConstitution(chi.URLParam(r, "constitution"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid constitution"))
			return
		}

		profile, err := dosha.ProfileFor(constitution)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, profile)
	}
}
