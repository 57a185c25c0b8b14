package health

import (
	"eventManager/internal/lib/api/response"
	"github.com/go-chi/render"
	"net/http"
	"time"
)

type Response struct {
	response.Response
	Time time.Time `json:"time"`
}

func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, Response{
			Response: response.OK(),
			Time:     time.Now().UTC(),
		})
	}
}
