package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arimendoza/coffeehaus-backend/api/middleware"
	"github.com/arimendoza/coffeehaus-backend/api/responses"
	"github.com/arimendoza/coffeehaus-backend/api/validators"
	"github.com/arimendoza/coffeehaus-backend/internal/favorites"
	"github.com/arimendoza/coffeehaus-backend/pkg/enums"
	pkgerrors "github.com/arimendoza/coffeehaus-backend/pkg/errors"
	"github.com/arimendoza/coffeehaus-backend/pkg/logger"
)

// FavoritesList returns the owner's saved products, newest first.
func FavoritesList(svc favorites.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "favorites service unavailable"))
			return
		}

		owner := middleware.UserEmailFromContext(r.Context())
		records, err := svc.List(r.Context(), owner)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, records)
	}
}

type addFavoriteRequest struct {
	ProductID   string   `json:"productId" validate:"required"`
	ProductType string   `json:"productType" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	RatingCount string   `json:"ratingCount"`
	Roasted     string   `json:"roasted"`
	Tags        []string `json:"tags"`
}

// FavoritesAdd stores a product snapshot under the owner's favorites.
func FavoritesAdd(svc favorites.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "favorites service unavailable"))
			return
		}

		var body addFavoriteRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		owner := middleware.UserEmailFromContext(r.Context())
		record, err := svc.Add(r.Context(), owner, favorites.AddFavoriteInput{
			ProductID:   body.ProductID,
			ProductType: enums.ProductType(body.ProductType),
			Name:        body.Name,
			Subtitle:    body.Subtitle,
			Description: body.Description,
			Image:       body.Image,
			Rating:      body.Rating,
			RatingCount: body.RatingCount,
			Roasted:     body.Roasted,
			Tags:        body.Tags,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, record)
	}
}

// FavoritesRemove deletes the owner's favorite for the given product. Removing
// an absent favorite succeeds.
func FavoritesRemove(svc favorites.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "favorites service unavailable"))
			return
		}

		owner := middleware.UserEmailFromContext(r.Context())
		productID := chi.URLParam(r, "productId")
		if err := svc.Remove(r.Context(), owner, productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "removed"})
	}
}
