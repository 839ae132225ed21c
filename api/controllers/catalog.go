package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/artlease-io/artlease-backend/api/responses"
	"github.com/artlease-io/artlease-backend/api/validators"
	"github.com/artlease-io/artlease-backend/internal/catalog"
	pkgerrors "github.com/artlease-io/artlease-backend/pkg/errors"
	"github.com/artlease-io/artlease-backend/pkg/logger"
	"github.com/artlease-io/artlease-backend/pkg/pagination"
)

// CatalogList serves the faceted browse endpoint. Unknown filter values are
// passed through untouched; the service treats unrecognized tags as no-ops.
func CatalogList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters, err := catalogFilters(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), filters, page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// CatalogFacets lists the distinct filterable values for the browse UI.
func CatalogFacets(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		facets, err := svc.Facets(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, facets)
	}
}

// CatalogDetail returns one listed artwork.
func CatalogDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "artworkId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		artwork, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, artwork)
	}
}

func catalogFilters(r *http.Request) (catalog.Filters, error) {
	query := r.URL.Query()
	filters := catalog.Filters{
		Q:       strings.TrimSpace(query.Get("q")),
		Artist:  strings.TrimSpace(query.Get("artist")),
		Gallery: strings.TrimSpace(query.Get("gallery")),
		Type:    strings.TrimSpace(query.Get("type")),
		Genre:   strings.TrimSpace(query.Get("genre")),
		Price:   strings.TrimSpace(query.Get("price")),
		Size:    strings.TrimSpace(query.Get("size")),
		Period:  strings.TrimSpace(query.Get("period")),
	}

	if raw := strings.TrimSpace(query.Get("providerId")); raw != "" {
		providerID, err := uuid.Parse(raw)
		if err != nil {
			return catalog.Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid identifier").
				WithDetails(map[string]string{"providerId": "must be a UUID"})
		}
		filters.ProviderID = &providerID
	}

	return filters, nil
}

func pageParams(r *http.Request) (pagination.Params, error) {
	limit, err := validators.ParseQueryInt(r, "limit", 0, 0, pagination.MaxLimit)
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{
		Limit:  limit,
		Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
	}, nil
}

func pathUUID(r *http.Request, param string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid identifier").
			WithDetails(map[string]string{param: "must be a UUID"})
	}
	return id, nil
}
