package controllers

import (
	"net/http"
	"strings"

	"github.com/ayurnest/ayurnest-backend/api/responses"
	"github.com/ayurnest/ayurnest-backend/internal/address"
	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
	"github.com/ayurnest/ayurnest-backend/pkg/logger"
)

// AddressAutocomplete suggests delivery addresses for a partial query.
func AddressAutocomplete(svc address.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := requireUserID(r); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := strings.TrimSpace(r.URL.Query().Get("q"))
		if input == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "query parameter q is required"))
			return
		}
		region := strings.TrimSpace(r.URL.Query().Get("region"))

		suggestions, err := svc.Autocomplete(r.Context(), input, region)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"suggestions": suggestions})
	}
}

// AddressResolve turns a picked place id into a structured address.
func AddressResolve(svc address.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := requireUserID(r); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		placeID := strings.TrimSpace(r.URL.Query().Get("place_id"))
		if placeID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "query parameter place_id is required"))
			return
		}

		resolved, err := svc.Resolve(r.Context(), placeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resolved)
	}
}
