package updateEvent

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
	"log/slog"
	"net/http"
)

// Request holds a partial update, absent fields keep their value.
type Request struct {
	EventName   *string               `json:"event_name" validate:"omitempty,min=1,max=200"`
	Description *string               `json:"description" validate:"omitempty,min=10,max=5000"`
	EventDate   *string               `json:"event_date" validate:"omitempty,date,notpast"`
	EventTime   *string               `json:"event_time" validate:"omitempty,hhmm"`
	EndTime     *string               `json:"end_time" validate:"omitempty,hhmm"`
	Venue       *string               `json:"venue" validate:"omitempty,min=1,max=200"`
	Address     *string               `json:"address" validate:"omitempty,max=500"`
	Category    *models.EventCategory `json:"category" validate:"omitempty,oneof=music sports arts business food health tech other"`
	EventImage  *string               `json:"event_image" validate:"omitempty,url"`
	Capacity    *int                  `json:"capacity" validate:"omitempty,min=1,max=100000"`
	Status      *models.EventStatus   `json:"status" validate:"omitempty,oneof=draft published cancelled"`
}

func (req Request) toUpdate() models.EventUpdate {
	upd := models.EventUpdate{
		EventName:   req.EventName,
		Description: req.Description,
		EventTime:   req.EventTime,
		EndTime:     req.EndTime,
		Venue:       req.Venue,
		Address:     req.Address,
		Category:    req.Category,
		EventImage:  req.EventImage,
		Capacity:    req.Capacity,
		Status:      req.Status,
	}

	if req.EventDate != nil {
		if d, err := validate.ParseDate(*req.EventDate); err == nil {
			upd.EventDate = &d
		}
	}

	return upd
}

type Response struct {
	response.Response
	Event models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	Update(ctx context.Context, organizerID, id string, upd models.EventUpdate) (models.Event, error)
}

func New(log *slog.Logger, updater EventUpdater) http.HandlerFunc {
	v := validate.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		eventID := chi.URLParam(r, "id")
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

		log = log.With(slog.String("event_id", eventID))

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
			if errors.As(err, &validateErr) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		event, err := updater.Update(r.Context(), user.ID, eventID, req.toUpdate())
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, events.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("not authorized to update this event"))
			default:
				log.Error("failed to update event", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.InternalError(r, "failed to update event", err))
			}
			return
		}

		log.Info("event updated")

		render.JSON(w, r, Response{
			Response: response.OK(),
			Event:    event,
		})
	}
}
