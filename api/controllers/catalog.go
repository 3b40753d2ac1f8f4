package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/arimendoza/coffeehaus-backend/api/responses"
	"github.com/arimendoza/coffeehaus-backend/api/validators"
	"github.com/arimendoza/coffeehaus-backend/internal/catalog"
	"github.com/arimendoza/coffeehaus-backend/pkg/enums"
	pkgerrors "github.com/arimendoza/coffeehaus-backend/pkg/errors"
	"github.com/arimendoza/coffeehaus-backend/pkg/logger"
)

// CatalogCoffees lists the brewed drinks in display order.
func CatalogCoffees(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		products, err := svc.ListCoffees(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

// CatalogBeans lists the whole-bean offerings in display order.
func CatalogBeans(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		products, err := svc.ListBeans(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

// CatalogProductDetail exposes a single product by its UUID path param.
func CatalogProductDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		product, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

type createProductRequest struct {
	Type              string  `json:"type" validate:"required"`
	Name              string  `json:"name" validate:"required"`
	Description       string  `json:"description"`
	Roasted           string  `json:"roasted"`
	Image             string  `json:"image"`
	SpecialIngredient string  `json:"special_ingredient"`
	Ingredients       string  `json:"ingredients"`
	Category          string  `json:"category"`
	Price             float64 `json:"price" validate:"gte=0"`
	AverageRating     float64 `json:"average_rating"`
	RatingsCount      string  `json:"ratings_count"`
	DisplayIndex      int     `json:"display_index"`
}

// CatalogCreateProduct inserts a product. Exposed outside production only.
func CatalogCreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var body createProductRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), catalog.CreateProductInput{
			Type:              enums.ProductType(body.Type),
			Name:              body.Name,
			Description:       body.Description,
			Roasted:           body.Roasted,
			Image:             body.Image,
			SpecialIngredient: body.SpecialIngredient,
			Ingredients:       body.Ingredients,
			Category:          body.Category,
			Price:             body.Price,
			AverageRating:     body.AverageRating,
			RatingsCount:      body.RatingsCount,
			DisplayIndex:      body.DisplayIndex,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}
