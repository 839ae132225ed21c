package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artlease-io/artlease-backend/api/middleware"
	"github.com/artlease-io/artlease-backend/api/responses"
	"github.com/artlease-io/artlease-backend/api/validators"
	"github.com/artlease-io/artlease-backend/internal/catalog"
	"github.com/artlease-io/artlease-backend/pkg/enums"
	pkgerrors "github.com/artlease-io/artlease-backend/pkg/errors"
	"github.com/artlease-io/artlease-backend/pkg/logger"
)

type artworkRequest struct {
	Title         string `json:"title" validate:"required"`
	ArtistName    string `json:"artist_name" validate:"required"`
	GalleryName   string `json:"gallery_name,omitempty"`
	DisplayName   string `json:"display_name,omitempty"`
	Type          string `json:"type,omitempty"`
	Genre         string `json:"genre,omitempty"`
	PricePerMonth string `json:"price_per_month" validate:"required"`
	Size          string `json:"size,omitempty"`
	Year          string `json:"year,omitempty"`
	LeaseStatus   string `json:"lease_status,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
	Description   string `json:"description,omitempty"`
}

type artworkUpdateRequest struct {
	Title         *string `json:"title,omitempty"`
	ArtistName    *string `json:"artist_name,omitempty"`
	GalleryName   *string `json:"gallery_name,omitempty"`
	Type          *string `json:"type,omitempty"`
	Genre         *string `json:"genre,omitempty"`
	PricePerMonth *string `json:"price_per_month,omitempty"`
	Size          *string `json:"size,omitempty"`
	Year          *string `json:"year,omitempty"`
	LeaseStatus   *string `json:"lease_status,omitempty"`
	ImageURL      *string `json:"image_url,omitempty"`
	Description   *string `json:"description,omitempty"`
}

// ProviderListArtworks returns the caller's own listings, deleted excluded.
func ProviderListArtworks(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := catalogActor(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := pageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListForProvider(r.Context(), actor, page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ProviderCreateArtwork lists a new artwork under the caller's provider
// profile, creating the profile on first upload.
func ProviderCreateArtwork(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := catalogActor(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload artworkRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		artwork, err := svc.Create(r.Context(), actor, payload.displayName(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, artwork)
	}
}

// ProviderUpdateArtwork patches one of the caller's listings.
func ProviderUpdateArtwork(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := catalogActor(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		artworkID, err := pathUUID(r, "artworkId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload artworkUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		artwork, err := svc.Update(r.Context(), actor, artworkID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, artwork)
	}
}

// ProviderDeleteArtwork soft-deletes one of the caller's listings.
func ProviderDeleteArtwork(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := catalogActor(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		artworkID, err := pathUUID(r, "artworkId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), actor, artworkID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func catalogActor(r *http.Request) (catalog.Actor, error) {
	rawID := middleware.UserIDFromContext(r.Context())
	if rawID == "" {
		return catalog.Actor{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return catalog.Actor{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id")
	}
	return catalog.Actor{
		UserID: userID,
		Role:   enums.Role(middleware.RoleFromContext(r.Context())),
	}, nil
}

func (p artworkRequest) displayName() string {
	if name := strings.TrimSpace(p.DisplayName); name != "" {
		return name
	}
	if name := strings.TrimSpace(p.GalleryName); name != "" {
		return name
	}
	return strings.TrimSpace(p.ArtistName)
}

func (p artworkRequest) toCreateInput() (catalog.CreateArtworkInput, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(p.PricePerMonth))
	if err != nil {
		return catalog.CreateArtworkInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price").
			WithDetails(map[string]string{"price_per_month": "must be a decimal amount"})
	}
	return catalog.CreateArtworkInput{
		Title:         strings.TrimSpace(p.Title),
		ArtistName:    strings.TrimSpace(p.ArtistName),
		GalleryName:   strings.TrimSpace(p.GalleryName),
		Type:          strings.TrimSpace(p.Type),
		Genre:         strings.TrimSpace(p.Genre),
		PricePerMonth: price,
		Size:          strings.TrimSpace(p.Size),
		Year:          strings.TrimSpace(p.Year),
		LeaseStatus:   strings.TrimSpace(p.LeaseStatus),
		ImageURL:      strings.TrimSpace(p.ImageURL),
		Description:   p.Description,
	}, nil
}

func (p artworkUpdateRequest) toUpdateInput() (catalog.UpdateArtworkInput, error) {
	input := catalog.UpdateArtworkInput{
		Title:       p.Title,
		ArtistName:  p.ArtistName,
		GalleryName: p.GalleryName,
		Type:        p.Type,
		Genre:       p.Genre,
		Size:        p.Size,
		Year:        p.Year,
		LeaseStatus: p.LeaseStatus,
		ImageURL:    p.ImageURL,
		Description: p.Description,
	}
	if p.PricePerMonth != nil {
		price, err := decimal.NewFromString(strings.TrimSpace(*p.PricePerMonth))
		if err != nil {
			return catalog.UpdateArtworkInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price").
				WithDetails(map[string]string{"price_per_month": "must be a decimal amount"})
		}
		input.PricePerMonth = &price
	}
	return input, nil
}
