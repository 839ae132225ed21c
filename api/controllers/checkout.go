package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/artlease-io/artlease-backend/api/middleware"
	"github.com/artlease-io/artlease-backend/api/responses"
	"github.com/artlease-io/artlease-backend/api/validators"
	checkoutsvc "github.com/artlease-io/artlease-backend/internal/checkout"
	pkgerrors "github.com/artlease-io/artlease-backend/pkg/errors"
	"github.com/artlease-io/artlease-backend/pkg/logger"
)

// Checkout converts the session cart into an order. Works for guests too;
// when the request carries a valid token the order is tied to the user.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := cartIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutsvc.Input
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var userID *uuid.UUID
		if raw := middleware.UserIDFromContext(r.Context()); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id"))
				return
			}
			userID = &parsed
		}

		result, err := svc.Checkout(r.Context(), cartID, userID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
