package getEventTickets

import (
	"context"
	"errors"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"log/slog"
	"net/http"
)

type TicketsResponse struct {
	response.Response
	Tickets []models.TicketView `json:"tickets"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketsGetter
type TicketsGetter interface {
	Tickets(ctx context.Context, eventID string) ([]models.Ticket, error)
}

func New(log *slog.Logger, getter TicketsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.getEventTickets.New"

		log := log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "eventId")
		if eventID == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		if _, err := uuid.Parse(eventID); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		tickets, err := getter.Tickets(r.Context(), eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get tickets", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.InternalError(r, "failed to get tickets", err))
			return
		}

		views := make([]models.TicketView, 0, len(tickets))
		for _, t := range tickets {
			views = append(views, t.View())
		}

		render.JSON(w, r, TicketsResponse{
			Response: response.OK(),
			Tickets:  views,
		})
	}
}
