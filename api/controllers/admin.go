package controllers

import (
	"context"
	"net/http"

	"github.com/artlease-io/artlease-backend/api/responses"
	"github.com/artlease-io/artlease-backend/internal/catalog"
	"github.com/artlease-io/artlease-backend/internal/providers"
	"github.com/artlease-io/artlease-backend/pkg/logger"
	"github.com/artlease-io/artlease-backend/pkg/pagination"
)

// ProviderDirectory lists provider accounts for the admin surface.
type ProviderDirectory interface {
	List(ctx context.Context, params pagination.Params) (*providers.ListResult, error)
}

// AdminArtworksList pages the whole catalog through the shared filter path,
// including the providerId facet for per-provider drill-down.
func AdminArtworksList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
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

// AdminProvidersList pages every provider account, newest first.
func AdminProvidersList(directory ProviderDirectory, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := directory.List(r.Context(), page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
