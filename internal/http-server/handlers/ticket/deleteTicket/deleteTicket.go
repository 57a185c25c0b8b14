package deleteTicket

import (
	"context"
	"errors"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/services/events"
	"eventManager/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"log/slog"
	"net/http"
)

type Response struct {
	response.Response
	Message     string `json:"message"`
	Deactivated bool   `json:"deactivated"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketDeleter
type TicketDeleter interface {
	DeleteTicket(ctx context.Context, organizerID, id string) (bool, error)
}

func New(log *slog.Logger, deleter TicketDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.deleteTicket.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		ticketID := chi.URLParam(r, "id")
		if ticketID == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("ticket id is required"))
			return
		}

		if _, err := uuid.Parse(ticketID); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid ticket id format"))
			return
		}

		deactivated, err := deleter.DeleteTicket(r.Context(), user.ID, ticketID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrTicketNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("ticket not found"))
			case errors.Is(err, events.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("not authorized to manage tickets for this event"))
			default:
				log.Error("failed to delete ticket", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.InternalError(r, "failed to delete ticket", err))
			}
			return
		}

		msg := "ticket deleted successfully"
		if deactivated {
			msg = "ticket has bookings and was deactivated instead"
		}

		log.Info("ticket removed", slog.String("id", ticketID), slog.Bool("deactivated", deactivated))

		render.JSON(w, r, Response{
			Response:    response.OK(),
			Message:     msg,
			Deactivated: deactivated,
		})
	}
}
