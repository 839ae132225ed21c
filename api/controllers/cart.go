package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/artlease-io/artlease-backend/api/middleware"
	"github.com/artlease-io/artlease-backend/api/responses"
	"github.com/artlease-io/artlease-backend/api/validators"
	cartsvc "github.com/artlease-io/artlease-backend/internal/cart"
	pkgerrors "github.com/artlease-io/artlease-backend/pkg/errors"
	"github.com/artlease-io/artlease-backend/pkg/logger"
)

type cartLineRequest struct {
	ArtworkID uuid.UUID `json:"artwork_id" validate:"required"`
	Months    int       `json:"months"`
	StartDate string    `json:"start_date,omitempty"`
}

// CartFetch returns the session cart identified by the cart token.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := cartIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.Get(r.Context(), cartID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

// CartAdd puts an artwork in the cart, or re-prices the existing line when
// the artwork is already there.
func CartAdd(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := cartIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartLineRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.Add(r.Context(), cartID, payload.ArtworkID, payload.Months, payload.StartDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

// CartUpdateLine changes duration or start date on an existing line.
func CartUpdateLine(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := cartIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		artworkID, err := pathUUID(r, "artworkId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload struct {
			Months    int    `json:"months"`
			StartDate string `json:"start_date,omitempty"`
		}
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.UpdateLine(r.Context(), cartID, artworkID, payload.Months, payload.StartDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

// CartRemoveLine drops an artwork from the cart.
func CartRemoveLine(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := cartIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		artworkID, err := pathUUID(r, "artworkId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.RemoveLine(r.Context(), cartID, artworkID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

// CartClear empties the session cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := cartIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Clear(r.Context(), cartID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}

func cartIDFromRequest(r *http.Request) (string, error) {
	cartID := middleware.CartIDFromContext(r.Context())
	if cartID == "" {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "cart token middleware missing")
	}
	return cartID, nil
}
