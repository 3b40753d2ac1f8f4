package controllers

import (
	"net/http"

	"github.com/arimendoza/coffeehaus-backend/api/middleware"
	"github.com/arimendoza/coffeehaus-backend/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"scope": "public", "status": "ok"})
	}
}

func PrivatePing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "private", "status": "ok"}
		if email := middleware.UserEmailFromContext(r.Context()); email != "" {
			payload["owner_email"] = email
		}
		responses.WriteSuccess(w, payload)
	}
}
