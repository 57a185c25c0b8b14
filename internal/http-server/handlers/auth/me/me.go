package me

import (
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/models"
	"github.com/go-chi/render"
	"net/http"
)

type Response struct {
	response.Response
	User models.User `json:"user"`
}

func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			User:     user,
		})
	}
}
