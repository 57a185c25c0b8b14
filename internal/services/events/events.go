// Package events manages events and their ticket tiers on behalf of
// organizers.
package events

import (
	"context"
	"errors"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPage         = 10000
)

var ErrForbidden = errors.New("access denied")

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	CreateEvent(ctx context.Context, event models.Event) (models.Event, error)
	EventByID(ctx context.Context, id string) (models.Event, error)
	EventsByOrganizer(ctx context.Context, organizerID string) ([]models.Event, error)
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, int, error)
	UpdateEvent(ctx context.Context, id string, upd models.EventUpdate) (models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	CompletedAttendeeIDs(ctx context.Context, eventID string) ([]string, error)
	CreateTicket(ctx context.Context, ticket models.Ticket) (models.Ticket, error)
	TicketByID(ctx context.Context, id string) (models.Ticket, error)
	TicketsByEvent(ctx context.Context, eventID string, activeOnly bool) ([]models.Ticket, error)
	UpdateTicket(ctx context.Context, id string, upd models.TicketUpdate) (models.Ticket, error)
	DeleteTicket(ctx context.Context, id string) (bool, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	EventChanged(ctx context.Context, event models.Event, cancelled bool, attendeeIDs []string) int
}

type Service struct {
	log      *slog.Logger
	storage  Storage
	notifier Notifier
	now      func() time.Time
}

func New(log *slog.Logger, storage Storage, notifier Notifier) *Service {
	return &Service{
		log:      log.With(slog.String("component", "services/events")),
		storage:  storage,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *Service) Create(ctx context.Context, organizerID string, event models.Event) (models.Event, error) {
	const op = "services.events.Create"

	event.OrganizerID = organizerID
	if event.Status == "" {
		event.Status = models.EventStatusDraft
	}

	created, err := s.storage.CreateEvent(ctx, event)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (models.Event, error) {
	const op = "services.events.Get"

	event, err := s.storage.EventByID(ctx, id)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

// List returns one page of the public listing. Missing paging and sorting
// options fall back to defaults and the status defaults to published.
func (s *Service) List(ctx context.Context, filter models.EventFilter) ([]models.Event, models.Pagination, error) {
	const op = "services.events.List"

	filter = s.normalize(filter)

	events, total, err := s.storage.ListEvents(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("%s: %w", op, err)
	}

	return events, models.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *Service) normalize(f models.EventFilter) models.EventFilter {
	switch {
	case f.Page < 1:
		f.Page = 1
	case f.Page > MaxPage:
		f.Page = MaxPage
	}

	switch {
	case f.Limit <= 0:
		f.Limit = DefaultPageSize
	case f.Limit > MaxPageSize:
		f.Limit = MaxPageSize
	}

	if f.SortBy == "" {
		f.SortBy = models.SortByDate
	}

	if f.Status == "" {
		f.Status = models.EventStatusPublished
	}

	f.Now = s.now().UTC()

	return f
}

func (s *Service) MyEvents(ctx context.Context, organizerID string) ([]models.Event, error) {
	const op = "services.events.MyEvents"

	events, err := s.storage.EventsByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// Update applies a partial update and tells every paying attendee about it.
func (s *Service) Update(ctx context.Context, organizerID, id string, upd models.EventUpdate) (models.Event, error) {
	const op = "services.events.Update"

	existing, err := s.owned(ctx, organizerID, id)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.storage.UpdateEvent(ctx, id, upd)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	cancelled := upd.Status != nil &&
		*upd.Status == models.EventStatusCancelled &&
		existing.Status != models.EventStatusCancelled

	// The update is already stored, so the fan-out outlives the request.
	s.fanOut(context.WithoutCancel(ctx), existing, cancelled)

	return updated, nil
}

func (s *Service) fanOut(ctx context.Context, event models.Event, cancelled bool) {
	ids, err := s.storage.CompletedAttendeeIDs(ctx, event.ID)
	if err != nil {
		s.log.Error("failed to load attendees for notifications",
			slog.String("event_id", event.ID),
			sl.Err(err),
		)
		return
	}

	if len(ids) == 0 {
		return
	}

	s.notifier.EventChanged(ctx, event, cancelled, ids)
}

// Delete removes an event nobody has paid for yet.
func (s *Service) Delete(ctx context.Context, organizerID, id string) error {
	const op = "services.events.Delete"

	if _, err := s.owned(ctx, organizerID, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Tickets lists the active tickets of an event, cheapest first.
func (s *Service) Tickets(ctx context.Context, eventID string) ([]models.Ticket, error) {
	const op = "services.events.Tickets"

	if _, err := s.storage.EventByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tickets, err := s.storage.TicketsByEvent(ctx, eventID, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tickets, nil
}

func (s *Service) CreateTicket(ctx context.Context, organizerID string, ticket models.Ticket) (models.Ticket, error) {
	const op = "services.events.CreateTicket"

	if _, err := s.owned(ctx, organizerID, ticket.EventID); err != nil {
		return models.Ticket{}, fmt.Errorf("%s: %w", op, err)
	}

	ticket.QuantitySold = 0
	ticket.IsActive = true

	created, err := s.storage.CreateTicket(ctx, ticket)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *Service) UpdateTicket(ctx context.Context, organizerID, id string, upd models.TicketUpdate) (models.Ticket, error) {
	const op = "services.events.UpdateTicket"

	if _, err := s.ownedTicket(ctx, organizerID, id); err != nil {
		return models.Ticket{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.storage.UpdateTicket(ctx, id, upd)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

// DeleteTicket deletes a ticket, or only deactivates it when some were sold.
// It reports which of the two happened.
func (s *Service) DeleteTicket(ctx context.Context, organizerID, id string) (bool, error) {
	const op = "services.events.DeleteTicket"

	if _, err := s.ownedTicket(ctx, organizerID, id); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	deactivated, err := s.storage.DeleteTicket(ctx, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return deactivated, nil
}

func (s *Service) owned(ctx context.Context, organizerID, eventID string) (models.Event, error) {
	event, err := s.storage.EventByID(ctx, eventID)
	if err != nil {
		return models.Event{}, err
	}

	if event.OrganizerID != organizerID {
		return models.Event{}, ErrForbidden
	}

	return event, nil
}

func (s *Service) ownedTicket(ctx context.Context, organizerID, ticketID string) (models.Ticket, error) {
	ticket, err := s.storage.TicketByID(ctx, ticketID)
	if err != nil {
		return models.Ticket{}, err
	}

	if _, err = s.owned(ctx, organizerID, ticket.EventID); err != nil {
		return models.Ticket{}, err
	}

	return ticket, nil
}
