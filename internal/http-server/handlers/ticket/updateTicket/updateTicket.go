package updateTicket

import (
	"context"
	"errors"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/api/validate"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/services/events"
	"eventManager/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"log/slog"
	"net/http"
)

type Request struct {
	TicketType        *string          `json:"ticket_type" validate:"omitempty,min=1,max=100"`
	Price             *decimal.Decimal `json:"price" validate:"omitempty,min=0,max=10000"`
	QuantityAvailable *int             `json:"quantity_available" validate:"omitempty,min=1,max=100000"`
	Description       *string          `json:"description" validate:"omitempty,max=500"`
	IsActive          *bool            `json:"is_active"`
}

type TicketResponse struct {
	response.Response
	Ticket models.TicketView `json:"ticket"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketUpdater
type TicketUpdater interface {
	UpdateTicket(ctx context.Context, organizerID, id string, upd models.TicketUpdate) (models.Ticket, error)
}

func New(log *slog.Logger, updater TicketUpdater) http.HandlerFunc {
	v := validate.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.updateTicket.New"

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

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = v.Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		ticket, err := updater.UpdateTicket(r.Context(), user.ID, ticketID, models.TicketUpdate{
			TicketType:        req.TicketType,
			Price:             req.Price,
			QuantityAvailable: req.QuantityAvailable,
			Description:       req.Description,
			IsActive:          req.IsActive,
		})
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrTicketNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("ticket not found"))
			case errors.Is(err, events.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("not authorized to manage tickets for this event"))
			case errors.Is(err, storage.ErrCapacityBelowSold):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("quantity available cannot be less than quantity sold"))
			default:
				log.Error("failed to update ticket", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.InternalError(r, "failed to update ticket", err))
			}
			return
		}

		log.Info("ticket updated", slog.String("id", ticketID))

		render.JSON(w, r, TicketResponse{
			Response: response.OK(),
			Ticket:   ticket.View(),
		})
	}
}
