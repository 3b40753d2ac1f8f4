package cart

import (
	"net/http"

	"github.com/arimendoza/coffeehaus-backend/api/middleware"
	"github.com/arimendoza/coffeehaus-backend/api/responses"
	"github.com/arimendoza/coffeehaus-backend/api/validators"
	cartsvc "github.com/arimendoza/coffeehaus-backend/internal/cart"
	pkgerrors "github.com/arimendoza/coffeehaus-backend/pkg/errors"
	"github.com/arimendoza/coffeehaus-backend/pkg/logger"
)

// CartFetch returns the owner's cart document. A missing cart reads as empty.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		owner, err := ownerFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.Get(r.Context(), owner)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartDocument(items))
	}
}

// CartReplace overwrites the owner's cart with the supplied document.
// Last writer wins; there is no version check.
func CartReplace(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		owner, err := ownerFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload replaceCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.Replace(r.Context(), owner, toLineItems(payload.Items))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartDocument(items))
	}
}

// CartAddItem merges one line item into the owner's cart. Same product and
// size accumulate quantity; a new size joins the existing item's size list.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		owner, err := ownerFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.Add(r.Context(), owner, toLineItem(payload.Item))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartDocument(items))
	}
}

// CartClear empties the owner's cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		owner, err := ownerFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Clear(r.Context(), owner); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartDocument(nil))
	}
}

func ownerFromContext(r *http.Request) (string, error) {
	owner := middleware.UserEmailFromContext(r.Context())
	if owner == "" {
		return "", pkgerrors.New(pkgerrors.CodeForbidden, "owner identity missing")
	}
	return owner, nil
}
