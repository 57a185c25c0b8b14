package createTicket

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
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"log/slog"
	"net/http"
)

type Request struct {
	EventID           string           `json:"event_id" validate:"required,uuid"`
	TicketType        string           `json:"ticket_type" validate:"required,min=1,max=100"`
	Price             *decimal.Decimal `json:"price" validate:"required,min=0,max=10000"`
	QuantityAvailable int              `json:"quantity_available" validate:"required,min=1,max=100000"`
	Description       string           `json:"description,omitempty" validate:"max=500"`
}

type TicketResponse struct {
	response.Response
	Ticket models.TicketView `json:"ticket"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketCreator
type TicketCreator interface {
	CreateTicket(ctx context.Context, organizerID string, ticket models.Ticket) (models.Ticket, error)
}

func New(log *slog.Logger, creator TicketCreator) http.HandlerFunc {
	v := validate.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.createTicket.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
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

			log.Info("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		ticket, err := creator.CreateTicket(r.Context(), user.ID, models.Ticket{
			EventID:           req.EventID,
			TicketType:        req.TicketType,
			Price:             *req.Price,
			QuantityAvailable: req.QuantityAvailable,
			Description:       req.Description,
		})
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, events.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("not authorized to manage tickets for this event"))
			default:
				log.Error("failed to create ticket", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.InternalError(r, "failed to create ticket", err))
			}
			return
		}

		log.Info("ticket created", slog.String("id", ticket.ID), slog.String("event_id", ticket.EventID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, TicketResponse{
			Response: response.OK(),
			Ticket:   ticket.View(),
		})
	}
}
