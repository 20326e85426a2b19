package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ayurnest/ayurnest-backend/api/responses"
	"github.com/ayurnest/ayurnest-backend/internal/content"
	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
	"github.com/ayurnest/ayurnest-backend/pkg/logger"
)

func RoutineList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"routines": content.Routines()})
	}
}

func RoutineDetail(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := enums.ParseDosha(chi.URLParam(r, "dosha"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid dosha"))
			return
		}

		routine, ok := content.RoutineFor(d)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "routine not found"))
			return
		}
		responses.WriteSuccess(w, routine)
	}
}

// RemedyList filters the remedy library by optional category and dosha.
func RemedyList(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimSpace(r.URL.Query().Get("category"))

		var d enums.Dosha
		if raw := strings.TrimSpace(r.URL.Query().Get("dosha")); raw != "" {
			parsed, err := enums.ParseDosha(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid dosha"))
				return
			}
			d = parsed
		}

		responses.WriteSuccess(w, map[string]any{"remedies": content.Remedies(category, d)})
	}
}

func RemedyDetail(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		remedy, err := content.RemedyByID(chi.URLParam(r, "remedyId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, remedy)
	}
}
