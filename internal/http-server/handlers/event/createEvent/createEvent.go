package createEvent

import (
	"context"
	"errors"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/api/validate"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type EventRequest struct {
	EventName   string               `json:"event_name" validate:"required,min=1,max=200"`
	Description string               `json:"description" validate:"required,min=10,max=5000"`
	EventDate   string               `json:"event_date" validate:"required,date,notpast"`
	EventTime   string               `json:"event_time" validate:"required,hhmm"`
	EndTime     string               `json:"end_time,omitempty" validate:"omitempty,hhmm"`
	Venue       string               `json:"venue" validate:"required,min=1,max=200"`
	Address     string               `json:"address,omitempty" validate:"max=500"`
	Category    models.EventCategory `json:"category" validate:"required,oneof=music sports arts business food health tech other"`
	EventImage  string               `json:"event_image,omitempty" validate:"omitempty,url"`
	Capacity    int                  `json:"capacity" validate:"required,min=1,max=100000"`
	Status      models.EventStatus   `json:"status,omitempty" validate:"omitempty,oneof=draft published cancelled"`
}

type EventResponse struct {
	response.Response
	Event models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	Create(ctx context.Context, organizerID string, event models.Event) (models.Event, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	v := validate.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
		)

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		var req EventRequest

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

		// Already checked by the validator.
		eventDate, _ := validate.ParseDate(req.EventDate)

		event, err := creator.Create(r.Context(), user.ID, models.Event{
			EventName:   req.EventName,
			Description: req.Description,
			EventDate:   eventDate,
			EventTime:   req.EventTime,
			EndTime:     req.EndTime,
			Venue:       req.Venue,
			Address:     req.Address,
			Category:    req.Category,
			EventImage:  req.EventImage,
			Capacity:    req.Capacity,
			Status:      req.Status,
		})
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.InternalError(r, "failed to add event", err))

			return
		}

		log.Info("event added", slog.String("id", event.ID))

		responseOK(w, r, event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event models.Event) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Event:    event,
	})
}
