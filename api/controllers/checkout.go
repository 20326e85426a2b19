package controllers

import (
	"net/http"

	"github.com/ayurnest/ayurnest-backend/api/responses"
	"github.com/ayurnest/ayurnest-backend/api/validators"
	"github.com/ayurnest/ayurnest-backend/internal/checkout"
	"github.com/ayurnest/ayurnest-backend/pkg/logger"
)

// Checkout places an order from the caller's cart.
func Checkout(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := requireUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req checkout.PlaceOrderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.PlaceOrder(r.Context(), userID, req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
